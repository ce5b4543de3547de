package get_availability

import (
	getAvailableSlots "github.com/ibbie/MT-BookingService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}
	return &AvailabilityResponse{AvailableSlots: slots}
}
