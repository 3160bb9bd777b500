package repo

import (
	"context"

	"github.com/zazianopizza/zaziano/internal/domain"
)

type OpeningHoursRepository interface {
	EnsureDefault(ctx context.Context) error
	Get(ctx context.Context) (*domain.OpeningHours, error)
	Update(ctx context.Context, schedule domain.WeekSchedule) (*domain.OpeningHours, error)
}

type SettingsRepository interface {
	EnsureDefault(ctx context.Context) error
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, deliveryFee float64) (*domain.Settings, error)
}
