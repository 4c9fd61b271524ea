package usecase

import (
	"context"
	"testing"

	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSlotFixture() (*MockAvailabilitySlotRepository, *MockProviderRepository, *MockActivityService, SlotUsecase) {
	slotRepo := new(MockAvailabilitySlotRepository)
	providerRepo := new(MockProviderRepository)
	activity := new(MockActivityService)
	log := logrus.New()
	uc := NewSlotUsecase(nil, log, slotRepo, providerRepo, activity)
	return slotRepo, providerRepo, activity, uc
}

func testProvider(id uuid.UUID) *entity.Provider {
	online := 150.0
	home := 300.0
	return &entity.Provider{
		ID:                    id,
		Name:                  "Dr. Ahmed",
		ConsultationFee:       100,
		OnlineConsultationFee: &online,
		HomeVisitFee:          &home,
		ReceptionType:         entity.ReceptionLimited,
		ReceptionCapacity:     10,
	}
}

func TestGenerateSlots(t *testing.T) {
	providerID := uuid.New()

	// 2026-01-05 is a Monday
	baseReq := func() *dto.GenerateSlotsRequest {
		return &dto.GenerateSlotsRequest{
			ProviderID:   providerID,
			StartDate:    "2026-01-05",
			EndDate:      "2026-01-05",
			WorkingDays:  []string{"Monday"},
			StartTime:    "09:00",
			EndTime:      "11:00",
			SlotDuration: 30,
		}
	}

	t.Run("fills working window with fixed-length slots", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var created []*entity.AvailabilitySlot
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = append(created, args.Get(2).(*entity.AvailabilitySlot))
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.GenerateSlots(context.Background(), baseReq())

		assert.NoError(t, err)
		assert.Equal(t, 4, result.TotalSlots)
		assert.Len(t, created, 4)
		assert.Equal(t, "09:00", created[0].StartTime)
		assert.Equal(t, "09:30", created[0].EndTime)
		assert.Equal(t, "10:30", created[3].StartTime)
		assert.Equal(t, "11:00", created[3].EndTime)
		assert.Equal(t, 100.0, created[0].Price)
		assert.Equal(t, entity.SlotTypeClinic, created[0].Type)
		assert.Equal(t, entity.SlotStatusAvailable, created[0].Status)
	})

	t.Run("skips candidates starting inside the break window", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var starts []string
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			starts = append(starts, args.Get(2).(*entity.AvailabilitySlot).StartTime)
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		req := baseReq()
		req.BreakStart = "09:30"
		req.BreakEnd = "10:00"

		result, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 3, result.TotalSlots)
		assert.Equal(t, []string{"09:00", "10:00", "10:30"}, starts)
	})

	t.Run("rerun creates nothing when slots already exist", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(true, nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.GenerateSlots(context.Background(), baseReq())

		assert.NoError(t, err)
		assert.Equal(t, 0, result.TotalSlots)
		slotRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rolls minute overflow into the hour", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var created []*entity.AvailabilitySlot
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = append(created, args.Get(2).(*entity.AvailabilitySlot))
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		req := baseReq()
		req.StartTime = "09:00"
		req.EndTime = "10:30"
		req.SlotDuration = 45

		result, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.TotalSlots)
		assert.Equal(t, "09:45", created[1].StartTime)
		assert.Equal(t, "10:30", created[1].EndTime)
	})

	t.Run("skips non-working days", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		// Mon 2026-01-05 .. Sun 2026-01-11, only Tuesday and Thursday work
		req := baseReq()
		req.EndDate = "2026-01-11"
		req.WorkingDays = []string{"tuesday", "thursday"}

		result, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 8, result.TotalSlots)
	})

	t.Run("prices online slots from the online fee", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var created []*entity.AvailabilitySlot
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = append(created, args.Get(2).(*entity.AvailabilitySlot))
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		req := baseReq()
		req.Type = entity.SlotTypeOnline

		_, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 150.0, created[0].Price)
		assert.Equal(t, entity.SlotTypeOnline, created[0].Type)
	})

	t.Run("falls back to consultation fee when home fee is unset", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		provider := testProvider(providerID)
		provider.HomeVisitFee = nil
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(provider, nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var created []*entity.AvailabilitySlot
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = append(created, args.Get(2).(*entity.AvailabilitySlot))
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		req := baseReq()
		req.Type = entity.SlotTypeHome

		_, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 100.0, created[0].Price)
	})

	t.Run("defaults duration to 30 minutes", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)

		var created []*entity.AvailabilitySlot
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = append(created, args.Get(2).(*entity.AvailabilitySlot))
		}).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		req := baseReq()
		req.SlotDuration = 0

		result, err := uc.GenerateSlots(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 4, result.TotalSlots)
		assert.Equal(t, 30, created[0].Duration)
	})

	t.Run("continues after a failed insert", func(t *testing.T) {
		slotRepo, providerRepo, activity, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, "09:00").Return(false, nil)
		slotRepo.On("Exists", mock.Anything, mock.Anything, providerID, mock.Anything, mock.Anything).Return(false, nil)
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(s *entity.AvailabilitySlot) bool {
			return s.StartTime == "09:00"
		})).Return(assert.AnError)
		slotRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		result, err := uc.GenerateSlots(context.Background(), baseReq())

		assert.NoError(t, err)
		assert.Equal(t, 3, result.TotalSlots)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		_, providerRepo, _, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(nil, nil)

		_, err := uc.GenerateSlots(context.Background(), baseReq())

		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		_, providerRepo, _, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)

		req := baseReq()
		req.StartDate = "2026-01-10"
		req.EndDate = "2026-01-05"

		_, err := uc.GenerateSlots(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects malformed dates and times", func(t *testing.T) {
		_, providerRepo, _, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)

		req := baseReq()
		req.StartDate = "05/01/2026"
		_, err := uc.GenerateSlots(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)

		req = baseReq()
		req.StartTime = "9am"
		_, err = uc.GenerateSlots(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("rejects unknown working day names", func(t *testing.T) {
		_, providerRepo, _, uc := newSlotFixture()
		providerRepo.On("FindByID", mock.Anything, mock.Anything, providerID).Return(testProvider(providerID), nil)

		req := baseReq()
		req.WorkingDays = []string{"funday"}

		_, err := uc.GenerateSlots(context.Background(), req)

		assert.ErrorIs(t, err, ErrInvalidWorkingDay)
	})
}

func TestUpdateSlot(t *testing.T) {
	slotID := uuid.New()

	t.Run("rejects time changes on a booked slot", func(t *testing.T) {
		slotRepo, _, _, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusBooked,
		}, nil)

		_, err := uc.UpdateSlot(context.Background(), slotID, &dto.UpdateSlotRequest{StartTime: "10:00"})

		assert.ErrorIs(t, err, ErrSlotBooked)
	})

	t.Run("rejects reopening a booked slot", func(t *testing.T) {
		slotRepo, _, _, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusBooked,
		}, nil)

		_, err := uc.UpdateSlot(context.Background(), slotID, &dto.UpdateSlotRequest{Status: entity.SlotStatusAvailable})

		assert.ErrorIs(t, err, ErrSlotBooked)
	})

	t.Run("allows completing a booked slot", func(t *testing.T) {
		slotRepo, _, activity, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusBooked,
		}, nil)
		slotRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.UpdateSlot(context.Background(), slotID, &dto.UpdateSlotRequest{Status: entity.SlotStatusCompleted})

		assert.NoError(t, err)
		assert.Equal(t, entity.SlotStatusCompleted, resp.Status)
	})

	t.Run("updates price and notes on an available slot", func(t *testing.T) {
		slotRepo, _, activity, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusAvailable,
			Price:  100,
		}, nil)
		slotRepo.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		price := 120.0
		notes := "peak pricing"
		resp, err := uc.UpdateSlot(context.Background(), slotID, &dto.UpdateSlotRequest{Price: &price, Notes: &notes})

		assert.NoError(t, err)
		assert.Equal(t, 120.0, resp.Price)
		assert.Equal(t, "peak pricing", resp.Notes)
	})

	t.Run("returns not found for unknown slot", func(t *testing.T) {
		slotRepo, _, _, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(nil, nil)

		_, err := uc.UpdateSlot(context.Background(), slotID, &dto.UpdateSlotRequest{})

		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestDeleteSlot(t *testing.T) {
	slotID := uuid.New()

	t.Run("rejects deleting a booked slot", func(t *testing.T) {
		slotRepo, _, _, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusBooked,
		}, nil)

		err := uc.DeleteSlot(context.Background(), slotID)

		assert.ErrorIs(t, err, ErrSlotBooked)
		slotRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deletes an available slot", func(t *testing.T) {
		slotRepo, _, activity, uc := newSlotFixture()
		slotRepo.On("FindByID", mock.Anything, mock.Anything, slotID).Return(&entity.AvailabilitySlot{
			ID:     slotID,
			Status: entity.SlotStatusAvailable,
		}, nil)
		slotRepo.On("Delete", mock.Anything, mock.Anything, slotID).Return(int64(1), nil)
		activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := uc.DeleteSlot(context.Background(), slotID)

		assert.NoError(t, err)
		slotRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything, slotID)
	})
}
