package list_services

import (
	"github.com/royalrinse/booking-service/internal/domain"
)

type Catalog interface {
	List() []domain.ServiceTier
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
