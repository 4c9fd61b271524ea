package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error)
}
