package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.ActivityLog) error
}
