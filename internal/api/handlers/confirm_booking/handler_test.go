package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibbie/MT-BookingService/internal/service/bookings"
	"github.com/ibbie/MT-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}

type fakeService struct {
	resp   *models.BookingResponse
	err    error
	lastID int64
}

func (f *fakeService) Confirm(ctx context.Context, id int64) (*models.BookingResponse, error) {
	f.lastID = id
	return f.resp, f.err
}

func doRequest(t *testing.T, svc *fakeService, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/"+bookingID+"/confirm", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	svc := &fakeService{
		resp: &models.BookingResponse{ID: 7, Status: "confirmed"},
	}

	rec := doRequest(t, svc, "7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.lastID)

	var resp ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "confirmed", resp.Booking.Status)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: bookings.ErrBookingNotFound}

	rec := doRequest(t, svc, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)
}

func TestHandle_NonNumericID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidID)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeService{err: errors.New("boom")}

	rec := doRequest(t, svc, "7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
