package repository

import (
	"context"
	"errors"
	"time"

	"care-platform-api/internal/domain/entity"
	domainRepo "care-platform-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilitySlotRepository struct{}

func NewAvailabilitySlotRepository() domainRepo.AvailabilitySlotRepository {
	return &availabilitySlotRepository{}
}

func (r *availabilitySlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *availabilitySlotRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	var slot entity.AvailabilitySlot
	err := db.WithContext(ctx).Preload("Provider").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *availabilitySlotRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.AvailabilitySlot, error) {
	query := db.WithContext(ctx).Model(&entity.AvailabilitySlot{})

	if filter != nil {
		if filter.ProviderID != nil {
			query = query.Where("provider_id = ?", *filter.ProviderID)
		}
		if filter.ClinicID != nil {
			query = query.Where("clinic_id = ?", *filter.ClinicID)
		}
		if filter.HospitalID != nil {
			query = query.Where("hospital_id = ?", *filter.HospitalID)
		}
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		switch {
		case filter.Date != "":
			query = query.Where("date = ?", filter.Date)
		case filter.StartDate != "" && filter.EndDate != "":
			query = query.Where("date >= ? AND date <= ?", filter.StartDate, filter.EndDate)
		default:
			query = query.Where("date >= ?", time.Now().UTC().Truncate(24*time.Hour))
		}
	}

	var slots []entity.AvailabilitySlot
	err := query.
		Preload("Provider").
		Order("date ASC, start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilitySlotRepository) Exists(ctx context.Context, db *gorm.DB, providerID uuid.UUID, date time.Time, startTime string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.AvailabilitySlot{}).
		Where("provider_id = ? AND date = ? AND start_time = ?", providerID, date, startTime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *availabilitySlotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.WithContext(ctx).Omit("Provider").Save(slot).Error
}

func (r *availabilitySlotRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.AvailabilitySlot{})
	return affected.RowsAffected, affected.Error
}
