package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibbie/MT-BookingService/internal/domain"
	"github.com/ibbie/MT-BookingService/pkg/types"
)

// Понедельник внутри окна записи
var testNow = time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	active []*domain.Booking
	err    error
	calls  int
}

func (f *fakeRepo) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	f.calls++
	return f.active, f.err
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, domain.DefaultRules(), nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute_OpenDay(t *testing.T) {
	repo := &fakeRepo{
		active: []*domain.Booking{
			{Service: "Haircut", StartTime: "10:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

func TestExecute_MissingParams(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{Service: "Haircut"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SoftFiltersReturnEmpty(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "closed sunday",
			req: &Request{
				Date:    time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC),
				Service: "Haircut",
			},
		},
		{
			name: "date beyond window",
			req: &Request{
				Date:    testNow.AddDate(0, 0, 31),
				Service: "Haircut",
			},
		},
		{
			name: "date in the past",
			req: &Request{
				Date:    testNow.AddDate(0, 0, -1),
				Service: "Haircut",
			},
		},
		{
			name: "unknown service",
			req: &Request{
				Date:    time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
				Service: "Massage",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(repo)

			resp, err := uc.Execute(context.Background(), tt.req)

			require.NoError(t, err)
			require.NotNil(t, resp.Slots)
			assert.Empty(t, resp.Slots)
			// Мягкие фильтры отрабатывают до похода в базу
			assert.Equal(t, 0, repo.calls)
		})
	}
}

func TestExecute_RepositoryFailureIsInternal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:    time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		Service: "Haircut",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
