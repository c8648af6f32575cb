package admin_transition

import "errors"

var (
	// ErrAccessDenied возвращается, когда действие выполняет не администратор
	ErrAccessDenied = errors.New("admin_transition: access denied")

	// ErrInvalidAction возвращается при неизвестном действии
	ErrInvalidAction = errors.New("admin_transition: invalid action")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("admin_transition: booking not found")

	// ErrInvalidTransition возвращается, когда действие недопустимо для
	// текущего статуса бронирования (rejected и completed терминальны,
	// complete возможен только из approved)
	ErrInvalidTransition = errors.New("admin_transition: illegal status transition")

	// ErrSlotConflict возвращается, когда слот уже занят другим одобренным
	// бронированием: на пару (дата, слот) допускается не более одного аппрува
	ErrSlotConflict = errors.New("admin_transition: slot already approved for another booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_transition: internal error")
)
