package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackingRepository interface {
	Create(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tracking, error)
	FindByReference(ctx context.Context, db *gorm.DB, referenceType entity.ReferenceType, referenceID uuid.UUID) (*entity.Tracking, error)
	FindByTrackingNumber(ctx context.Context, db *gorm.DB, trackingNumber string) (*entity.Tracking, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.TrackingFilter, offset, limit int) ([]entity.Tracking, int64, error)
	Update(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error
}
