package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dquintana/fondapos/internal/core/domain"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// DailySales sums paid orders whose payment timestamp falls inside the
// local calendar day of the configured timezone. The window is the
// half-open range [local midnight, next local midnight), converted to
// UTC for the range query, which keeps DST transition days correct.
// A zero date means today, resolved in the report timezone so the
// business day is right even when the server clock runs in another
// zone.
func (s *Service) DailySales(ctx context.Context, date time.Time) (*domain.DailySales, error) {
	if date.IsZero() {
		date = time.Now().In(s.location)
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
	end := start.AddDate(0, 0, 1)

	orders, err := s.repo.ListPaidOrdersBetween(ctx, start.UTC(), end.UTC())
	if err != nil {
		s.logger.Error("list paid orders", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, order := range orders {
		total, err = total.Add(order.Total)
		if err != nil {
			return nil, fmt.Errorf("daily total: %w", err)
		}
	}

	return &domain.DailySales{
		Date:   start,
		Orders: orders,
		Total:  total,
	}, nil
}
