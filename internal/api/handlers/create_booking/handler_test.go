package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/ibbie/MT-BookingService/internal/usecase/create_booking"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:        1,
			Name:      "Ivan",
			Phone:     "+7 900 000-00-01",
			Service:   "Haircut",
			Date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			Status:    "pending",
			CreatedAt: time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, `{"name":"Ivan","phone":"+7 900 000-00-01","service":"Haircut","date":"2025-10-14","time":"10:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, "2025-10-14", resp.Booking.Date)
	assert.Equal(t, "10:00", resp.Booking.Time)
	assert.Equal(t, "pending", resp.Booking.Status)

	// Дата и время доходят до use case разобранными
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, types.TimeString("10:00"), uc.lastReq.StartTime)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFieldsRequired)
}

func TestHandle_MalformedDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"name":"Ivan","phone":"1","service":"Haircut","date":"14.10.2025","time":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgFieldsRequired)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"fields required", createBooking.ErrFieldsRequired, http.StatusBadRequest, msgFieldsRequired},
		{"unknown service", createBooking.ErrUnknownService, http.StatusBadRequest, msgInvalidService},
		{"closed day", createBooking.ErrClosedDay, http.StatusBadRequest, msgClosedDay},
		{"date not allowed", createBooking.ErrDateNotAllowed, http.StatusBadRequest, msgDateNotAllowed},
		{"day fully booked", createBooking.ErrDayFullyBooked, http.StatusConflict, msgDayFullyBooked},
		{"cooldown", createBooking.ErrRecentBooking, http.StatusTooManyRequests, msgRecentBooking},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError, "Server error"},
	}

	body := `{"name":"Ivan","phone":"1","service":"Haircut","date":"2025-10-14","time":"10:00"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandle_SlotTakenCarriesSuggestions(t *testing.T) {
	uc := &fakeUseCase{
		err: &createBooking.SlotTakenError{
			Suggestions: []types.TimeString{"09:00", "11:30"},
		},
	}

	rec := doRequest(t, uc, `{"name":"Ivan","phone":"1","service":"Haircut","date":"2025-10-14","time":"10:00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp RejectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgSlotTaken, resp.Message)
	assert.Equal(t, []string{"09:00", "11:30"}, resp.Suggestions)
}

func TestHandle_SlotTakenWithNoAlternatives(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.SlotTakenError{}}

	rec := doRequest(t, uc, `{"name":"Ivan","phone":"1","service":"Haircut","date":"2025-10-14","time":"10:00"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	// suggestions присутствует даже пустым
	assert.Contains(t, rec.Body.String(), `"suggestions":[]`)
}
