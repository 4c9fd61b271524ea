package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"gorm.io/gorm"
)

type activityLogRepository struct{}

func NewActivityLogRepository() domainRepo.ActivityLogRepository {
	return &activityLogRepository{}
}

func (r *activityLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error {
	return db.WithContext(ctx).Create(log).Error
}
