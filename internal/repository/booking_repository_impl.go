package repository

import (
	"context"
	"time"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) CountActiveByProviderAndDate(ctx context.Context, db *gorm.DB, providerID uuid.UUID, day time.Time) (int64, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var count int64
	err := db.WithContext(ctx).Model(&entity.Booking{}).
		Where("provider_id = ? AND date >= ? AND date < ?", providerID, startOfDay, endOfDay).
		Where("status NOT IN ?", []entity.BookingStatus{entity.BookingStatusCancelled, entity.BookingStatusNoShow}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
