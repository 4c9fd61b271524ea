package usecase

import (
	"context"
	"time"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockProviderRepository is a mock implementation of ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Provider, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Provider), args.Error(1)
}

// MockAvailabilitySlotRepository is a mock implementation of AvailabilitySlotRepository
type MockAvailabilitySlotRepository struct {
	mock.Mock
}

func (m *MockAvailabilitySlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error {
	args := m.Called(ctx, db, slot)
	return args.Error(0)
}

func (m *MockAvailabilitySlotRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilitySlotRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.SlotFilter) ([]entity.AvailabilitySlot, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AvailabilitySlot), args.Error(1)
}

func (m *MockAvailabilitySlotRepository) Exists(ctx context.Context, db *gorm.DB, providerID uuid.UUID, date time.Time, startTime string) (bool, error) {
	args := m.Called(ctx, db, providerID, date, startTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockAvailabilitySlotRepository) Update(ctx context.Context, db *gorm.DB, slot *entity.AvailabilitySlot) error {
	args := m.Called(ctx, db, slot)
	return args.Error(0)
}

func (m *MockAvailabilitySlotRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTrackingRepository is a mock implementation of TrackingRepository
type MockTrackingRepository struct {
	mock.Mock
}

func (m *MockTrackingRepository) Create(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error {
	args := m.Called(ctx, db, tracking)
	return args.Error(0)
}

func (m *MockTrackingRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Tracking, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) FindByReference(ctx context.Context, db *gorm.DB, referenceType entity.ReferenceType, referenceID uuid.UUID) (*entity.Tracking, error) {
	args := m.Called(ctx, db, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) FindByTrackingNumber(ctx context.Context, db *gorm.DB, trackingNumber string) (*entity.Tracking, error) {
	args := m.Called(ctx, db, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tracking), args.Error(1)
}

func (m *MockTrackingRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.TrackingFilter, offset, limit int) ([]entity.Tracking, int64, error) {
	args := m.Called(ctx, db, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.Tracking), args.Get(1).(int64), args.Error(2)
}

func (m *MockTrackingRepository) Update(ctx context.Context, db *gorm.DB, tracking *entity.Tracking) error {
	args := m.Called(ctx, db, tracking)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	args := m.Called(ctx, db, id, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockTestRequestRepository is a mock implementation of TestRequestRepository
type MockTestRequestRepository struct {
	mock.Mock
}

func (m *MockTestRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TestRequest, error) {
	args := m.Called(ctx, db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TestRequest), args.Error(1)
}

func (m *MockTestRequestRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.TestRequestStatus) (int64, error) {
	args := m.Called(ctx, db, id, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountActiveByProviderAndDate(ctx context.Context, db *gorm.DB, providerID uuid.UUID, day time.Time) (int64, error) {
	args := m.Called(ctx, db, providerID, day)
	return args.Get(0).(int64), args.Error(1)
}

// MockActivityService is a mock implementation of service.ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, db *gorm.DB, adminID *uuid.UUID, admin string, action string, metadata entity.JSON) error {
	args := m.Called(ctx, db, adminID, admin, action, metadata)
	return args.Error(0)
}

// MockCapacityCache is a mock implementation of service.CapacityCache
type MockCapacityCache struct {
	mock.Mock
}

func (m *MockCapacityCache) GetUsed(ctx context.Context, providerID uuid.UUID, day time.Time) (int64, bool) {
	args := m.Called(ctx, providerID, day)
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockCapacityCache) SetUsed(ctx context.Context, providerID uuid.UUID, day time.Time, used int64) {
	m.Called(ctx, providerID, day, used)
}
