package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"care-platform-api/internal/converter"
	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"
	"care-platform-api/internal/domain/repository"
	"care-platform-api/internal/service"
	"care-platform-api/pkg/timeofday"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidWorkingDay = errors.New("unknown working day name")
	ErrSlotBooked        = errors.New("booked slot cannot be modified")
)

const defaultSlotDuration = 30

// weekdayNames maps lowercase day names to time.Weekday (Sunday = 0)
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type SlotUsecase interface {
	GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error)
	GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.SlotResponse, error)
	ListSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error)
	UpdateSlot(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
}

type slotUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotRepo        repository.AvailabilitySlotRepository
	providerRepo    repository.ProviderRepository
	activityService service.ActivityService
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.AvailabilitySlotRepository,
	providerRepo repository.ProviderRepository,
	activityService service.ActivityService,
) SlotUsecase {
	return &slotUsecase{
		db:              db,
		log:             log,
		slotRepo:        slotRepo,
		providerRepo:    providerRepo,
		activityService: activityService,
	}
}

// GenerateSlots materializes bookable slots for a provider over a date range
// from a recurring weekly template.
//
// Duplicate candidates (same provider, date, start time) are skipped, so
// re-running the same request is idempotent. Persistence is best-effort:
// a failed insert is logged and does not abort the remaining candidates.
func (u *slotUsecase) GenerateSlots(ctx context.Context, req *dto.GenerateSlotsRequest) (*dto.GenerateSlotsResponse, error) {
	provider, err := u.providerRepo.FindByID(ctx, u.db, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find provider %s: %+v", req.ProviderID, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	workingDays := make(map[time.Weekday]bool, len(req.WorkingDays))
	for _, name := range req.WorkingDays {
		weekday, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, ErrInvalidWorkingDay
		}
		workingDays[weekday] = true
	}

	dayStart, err := timeofday.Parse(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	dayEnd, err := timeofday.Parse(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	// Break window is start-inclusive, end-exclusive and only applies when
	// both bounds are present.
	var breakStart, breakEnd timeofday.TimeOfDay
	hasBreak := req.BreakStart != "" && req.BreakEnd != ""
	if hasBreak {
		if breakStart, err = timeofday.Parse(req.BreakStart); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if breakEnd, err = timeofday.Parse(req.BreakEnd); err != nil {
			return nil, ErrInvalidTimeFormat
		}
	}

	duration := req.SlotDuration
	if duration <= 0 {
		duration = defaultSlotDuration
	}

	slotType := req.Type
	if slotType == "" {
		slotType = entity.SlotTypeClinic
	}
	price := provider.FeeForSlotType(slotType)

	created := 0
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		if !workingDays[date.Weekday()] {
			continue
		}

		// A slot is only emitted when it fully fits before the end of the
		// working window (half-open interval semantics).
		for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(duration) {
			if hasBreak && !start.Before(breakStart) && start.Before(breakEnd) {
				continue
			}

			exists, err := u.slotRepo.Exists(ctx, u.db, req.ProviderID, date, start.String())
			if err != nil {
				u.log.Warnf("Failed to check existing slot %s %s: %+v", date.Format("2006-01-02"), start, err)
				continue
			}
			if exists {
				continue
			}

			slot := &entity.AvailabilitySlot{
				ProviderID: req.ProviderID,
				ClinicID:   req.ClinicID,
				HospitalID: req.HospitalID,
				Date:       date,
				StartTime:  start.String(),
				EndTime:    start.Add(duration).String(),
				Duration:   duration,
				Type:       slotType,
				Status:     entity.SlotStatusAvailable,
				Price:      price,
			}

			if err := u.slotRepo.Create(ctx, u.db, slot); err != nil {
				// The unique index on (provider_id, date, start_time) closes
				// the check-then-insert race; a duplicate here is a concurrent
				// generator run, not a failure.
				u.log.Warnf("Failed to create slot %s %s: %+v", date.Format("2006-01-02"), start, err)
				continue
			}
			created++
		}
	}

	if err := u.activityService.Record(ctx, u.db, actorID(ctx), actorName(ctx), entity.ActivitySlotsGenerate, entity.JSON{
		"provider_id": req.ProviderID.String(),
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"total_slots": created,
	}); err != nil {
		u.log.Warnf("Failed to record slot generation activity: %+v", err)
	}

	u.log.Infof("Generated %d slots for provider %s (%s..%s)", created, req.ProviderID, req.StartDate, req.EndDate)
	return &dto.GenerateSlotsResponse{TotalSlots: created}, nil
}

func (u *slotUsecase) GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) ListSlots(ctx context.Context, filter *entity.SlotFilter) (*dto.SlotListResponse, error) {
	slots, err := u.slotRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list slots: %+v", err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// UpdateSlot applies a partial update. A booked slot is immutable except for
// the transition to completed.
func (u *slotUsecase) UpdateSlot(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if slot.IsBooked() {
		if req.StartTime != "" || req.EndTime != "" || req.Duration != nil {
			return nil, ErrSlotBooked
		}
		if req.Status != "" && !slot.CanTransitionTo(req.Status) {
			return nil, ErrSlotBooked
		}
	}

	if req.Status != "" {
		slot.Status = req.Status
	}
	if req.StartTime != "" {
		if _, err := timeofday.Parse(req.StartTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		if _, err := timeofday.Parse(req.EndTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		slot.EndTime = req.EndTime
	}
	if req.Duration != nil {
		slot.Duration = *req.Duration
	}
	if req.Price != nil {
		slot.Price = *req.Price
	}
	if req.Notes != nil {
		slot.Notes = *req.Notes
	}

	if err := u.slotRepo.Update(ctx, u.db, slot); err != nil {
		u.log.Warnf("Failed to update slot %s: %+v", slotID, err)
		return nil, err
	}

	if err := u.activityService.Record(ctx, u.db, actorID(ctx), actorName(ctx), entity.ActivitySlotUpdate, entity.JSON{
		"slot_id": slotID.String(),
		"status":  string(slot.Status),
	}); err != nil {
		u.log.Warnf("Failed to record slot update activity: %+v", err)
	}

	return converter.SlotToResponse(slot), nil
}

func (u *slotUsecase) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	slot, err := u.slotRepo.FindByID(ctx, u.db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot %s: %+v", slotID, err)
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}

	if !slot.CanDelete() {
		return ErrSlotBooked
	}

	if _, err := u.slotRepo.Delete(ctx, u.db, slotID); err != nil {
		u.log.Warnf("Failed to delete slot %s: %+v", slotID, err)
		return err
	}

	if err := u.activityService.Record(ctx, u.db, actorID(ctx), actorName(ctx), entity.ActivitySlotDelete, entity.JSON{
		"slot_id": slotID.String(),
	}); err != nil {
		u.log.Warnf("Failed to record slot delete activity: %+v", err)
	}

	return nil
}
