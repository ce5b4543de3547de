package create_booking

import (
	"time"

	"github.com/ibbie/MT-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name      string           // Имя клиента
	Phone     string           // Телефон клиента (ключ кулдауна)
	Service   string           // Название услуги из каталога
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	Name        string           // Имя клиента
	Phone       string           // Телефон клиента
	Service     string           // Услуга
	Date        time.Time        // Дата записи
	StartTime   types.TimeString // Время начала
	Status      string           // Статус (всегда pending при создании)
	CreatedAt   time.Time        // Время создания
	UpdatedAt   time.Time        // Время обновления
}
