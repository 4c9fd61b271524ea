package repository

import (
	"context"
	"errors"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type trackingRepository struct{}

func NewTrackingRepository() domainRepo.TrackingRepository {
	return &trackingRepository{}
}

func (r *trackingRepository) Create(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error {
	return db.WithContext(ctx).Create(tracking).Error
}

func (r *trackingRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tracking, error) {
	var tracking entity.Tracking
	err := db.WithContext(ctx).Where("id = ?", id).First(&tracking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepository) FindByReference(ctx context.Context, db *gorm.DB, referenceType entity.ReferenceType, referenceID uuid.UUID) (*entity.Tracking, error) {
	var tracking entity.Tracking
	err := db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceID).
		First(&tracking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepository) FindByTrackingNumber(ctx context.Context, db *gorm.DB, trackingNumber string) (*entity.Tracking, error) {
	var tracking entity.Tracking
	err := db.WithContext(ctx).Where("tracking_number = ?", trackingNumber).First(&tracking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (r *trackingRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.TrackingFilter, offset, limit int) ([]entity.Tracking, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Tracking{})

	if filter != nil {
		if filter.ReferenceType != "" {
			query = query.Where("reference_type = ?", filter.ReferenceType)
		}
		if filter.Status != "" {
			query = query.Where("current_status = ?", filter.Status)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("tracking_number ILIKE ? OR assigned_to ILIKE ?", pattern, pattern)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trackings []entity.Tracking
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&trackings).Error
	if err != nil {
		return nil, 0, err
	}
	return trackings, total, nil
}

func (r *trackingRepository) Update(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error {
	return db.WithContext(ctx).Save(tracking).Error
}
