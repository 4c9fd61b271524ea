package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	// CountActiveByProviderAndDate counts bookings that consume reception
	// capacity (everything except cancelled and no-show) for one day.
	CountActiveByProviderAndDate(ctx context.Context, db *gorm.DB, providerID uuid.UUID, day time.Time) (int64, error)
}
