package cancel_booking

import "github.com/ibbie/MT-BookingService/internal/service/bookings/models"

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool                    `json:"success"`
	Booking *models.BookingResponse `json:"booking"`
}
