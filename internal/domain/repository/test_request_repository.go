package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestRequestRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TestRequest, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.TestRequestStatus) (int64, error)
}
