package repository

import (
	"context"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.OrderStatus) (int64, error)
}
