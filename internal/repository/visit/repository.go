package visit

import (
	"context"
	"time"
)

type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type Repository interface {
	// Increment bumps today's visit counter in a single statement.
	Increment(ctx context.Context) error
	CountSince(ctx context.Context, since time.Time) ([]DayCount, error)
	Total(ctx context.Context) (int64, error)
}
