package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownTier возвращается при неизвестном тарифе
	// Молчаливого фолбэка на базовый тариф нет: явный тариф обязан
	// разрешаться в каталоге
	ErrUnknownTier = errors.New("create_booking: unknown service tier")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот не входит
	// в список доступных на дату
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrUserNotFound возвращается, когда учетная запись заявителя не найдена
	ErrUserNotFound = errors.New("create_booking: user account not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
