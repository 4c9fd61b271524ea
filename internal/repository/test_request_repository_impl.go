package repository

import (
	"context"
	"errors"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type testRequestRepository struct{}

func NewTestRequestRepository() domainRepo.TestRequestRepository {
	return &testRequestRepository{}
}

func (r *testRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TestRequest, error) {
	var request entity.TestRequest
	err := db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *testRequestRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.TestRequestStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.TestRequest{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
