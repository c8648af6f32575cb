package create_booking

import (
	"time"

	"github.com/royalrinse/booking-service/pkg/types"
)

// Request модель заявки на бронирование
// Заявку может подать только аутентифицированный пользователь: UserID
// берется из identity запроса, а не из тела
type Request struct {
	UserID       int64            // ID учетной записи заявителя
	CustomerName string           // Имя клиента (пустое — подставляется имя учетной записи)
	Phone        string           // Контактный телефон (обязателен)
	Email        *string          // Контактный email (опционально)
	Tier         string           // Тариф (пустой — базовый тариф каталога)
	Date         time.Time        // Дата мойки (без времени)
	TimeSlot     types.TimeString // Слот из дневного набора
	Address      string           // Адрес подачи (обязателен)
	Notes        *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	CustomerName string           // Имя клиента
	UserID       int64            // ID учетной записи
	Tier         string           // Разрешенный тариф
	Date         time.Time        // Дата бронирования
	TimeSlot     types.TimeString // Слот
	Status       string           // Статус (всегда pending при создании)
	Paid         bool             // Флаг оплаты (всегда false при создании)
	Amount       float64          // Цена тарифа на момент создания
	CreatedAt    time.Time        // Время создания
}
