package catalog

import "errors"

var (
	// ErrUnknownTier возвращается при запросе несуществующего тарифа
	ErrUnknownTier = errors.New("catalog: unknown service tier")
)
