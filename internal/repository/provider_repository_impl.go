package repository

import (
	"context"
	"errors"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type providerRepository struct{}

func NewProviderRepository() domainRepo.ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := db.WithContext(ctx).Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}
