package usecase

import (
	"context"
	"time"

	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/repository"
	"care-platform-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CapacityUsecase interface {
	GetProviderCapacity(ctx context.Context, providerID uuid.UUID, date string) (*dto.CapacityResponse, error)
}

type capacityUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	providerRepo  repository.ProviderRepository
	bookingRepo   repository.BookingRepository
	capacityCache service.CapacityCache
}

func NewCapacityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.ProviderRepository,
	bookingRepo repository.BookingRepository,
	capacityCache service.CapacityCache,
) CapacityUsecase {
	return &capacityUsecase{
		db:            db,
		log:           log,
		providerRepo:  providerRepo,
		bookingRepo:   bookingRepo,
		capacityCache: capacityCache,
	}
}

// GetProviderCapacity reports the reception capacity usage for a provider on
// one day. The returned numbers are advisory: the booking service performs
// its own check when actually placing a booking.
func (u *capacityUsecase) GetProviderCapacity(ctx context.Context, providerID uuid.UUID, date string) (*dto.CapacityResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, providerID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", providerID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	if provider.HasOpenReception() {
		return &dto.CapacityResponse{Open: true}, nil
	}

	day := time.Now()
	if date != "" {
		day, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	used, hit := u.capacityCache.GetUsed(ctx, providerID, day)
	if !hit {
		used, err = u.bookingRepo.CountActiveByProviderAndDate(ctx, u.db, providerID, day)
		if err != nil {
			u.log.Warnf("Failed to count bookings for provider %s: %+v", providerID, err)
			return nil, err
		}
		u.capacityCache.SetUsed(ctx, providerID, day, used)
	}

	capacity := int64(provider.ReceptionCapacity)
	remaining := capacity - used
	if remaining < 0 {
		remaining = 0
	}

	return &dto.CapacityResponse{
		Open:      false,
		Capacity:  &capacity,
		Used:      &used,
		Remaining: &remaining,
	}, nil
}
