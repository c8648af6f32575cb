package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// или недоступно вызывающему (чужие бронирования не раскрываются)
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается, когда у вызывающего нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInstrument возвращается, когда платежные реквизиты не
	// проходят минимальную проверку формы (демо-валидация, не настоящая)
	ErrInvalidInstrument = errors.New("bookings: invalid payment instrument")

	// ErrAlreadyPaid возвращается при повторной попытке оплаты
	ErrAlreadyPaid = errors.New("bookings: booking already paid")

	// ErrNotPayable возвращается, когда статус бронирования уже не
	// допускает оплату (rejected или completed)
	ErrNotPayable = errors.New("bookings: booking is not payable in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
