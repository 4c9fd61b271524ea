package repository

import (
	"context"
	"errors"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct{}

func NewOrderRepository() domainRepo.OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
