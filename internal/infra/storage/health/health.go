package health

import (
	"context"
	"fmt"
	"time"

	"github.com/ibbie/MT-BookingService/pkg/dbmetrics"
)

var ErrPing = fmt.Errorf("db ping failed")

// Repository отвечает на один вопрос: жива ли база.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ServerTime возвращает текущее время базы в RFC3339.
func (r *Repository) ServerTime(ctx context.Context) (string, error) {
	var now time.Time
	if err := r.db.QueryRowContext(ctx, "SELECT now()").Scan(&now); err != nil {
		return "", fmt.Errorf("%w: ServerTime - query: %v", ErrPing, err)
	}

	return now.UTC().Format(time.RFC3339), nil
}
