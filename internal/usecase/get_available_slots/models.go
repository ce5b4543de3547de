package get_available_slots

import (
	"time"

	"github.com/ibbie/MT-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date    time.Time // Дата, на которую запрашиваются слоты (без времени)
	Service string    // Название услуги из каталога
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time          // Дата, на которую запрашивались слоты
	Service string             // Услуга
	Slots   []types.TimeString // Открытые слоты в порядке рабочего расписания
}
