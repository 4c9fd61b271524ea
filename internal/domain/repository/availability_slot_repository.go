package repository

import (
	"context"
	"time"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilitySlotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AvailabilitySlot, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.AvailabilitySlot, error)
	Exists(ctx context.Context, db *gorm.DB, providerID uuid.UUID, date time.Time, startTime string) (bool, error)
	Update(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
