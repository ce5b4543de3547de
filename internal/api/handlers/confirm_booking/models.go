package confirm_booking

import "github.com/ibbie/MT-BookingService/internal/service/bookings/models"

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Success bool                    `json:"success"`
	Booking *models.BookingResponse `json:"booking"`
}
