package create_booking

import (
	"time"

	"github.com/ibbie/MT-BookingService/internal/domain"
	createBooking "github.com/ibbie/MT-BookingService/internal/usecase/create_booking"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // "2025-10-15"
	Time    string `json:"time"` // "10:00"
}

// BookingResponse HTTP модель созданного бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

// RejectionResponse отказ при конфликте слота. Suggestions содержит
// свежий список доступных слотов на запрошенную дату (может быть пустым).
type RejectionResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Пустые date/time пропускаются без парсинга: их отсутствие должен
// диагностировать сам pipeline ("All fields required"), а не ошибка формата.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		Name:    r.Name,
		Phone:   r.Phone,
		Service: r.Service,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.Time != "" {
		startTime, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: BookingResponse{
			ID:        resp.ID,
			Name:      resp.Name,
			Phone:     resp.Phone,
			Service:   resp.Service,
			Date:      resp.Date.Format(domain.DateFormat),
			Time:      resp.StartTime.String(),
			Status:    resp.Status,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
		},
	}
}

// suggestionsToStrings конвертирует слоты в строки для ответа
func suggestionsToStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
