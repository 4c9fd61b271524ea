package usecase

import (
	"context"
	"errors"

	"care-platform-api/internal/converter"
	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"
	"care-platform-api/internal/domain/repository"
	"care-platform-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTrackingNotFound = errors.New("tracking not found")
	ErrTrackingQuery    = errors.New("reference type with reference id, or tracking number, is required")
)

// productOrderStatusMap maps fine-grained tracking statuses to the coarse
// order status. The mapping is partial: unmapped statuses leave the order
// untouched.
var productOrderStatusMap = map[string]entity.OrderStatus{
	entity.StatusOrderCreated:     entity.OrderStatusPending,
	entity.StatusPaymentConfirmed: entity.OrderStatusPending,
	entity.StatusPreparing:        entity.OrderStatusProcessing,
	entity.StatusShipped:          entity.OrderStatusShipped,
	entity.StatusOutForDelivery:   entity.OrderStatusShipped,
	entity.StatusDelivered:        entity.OrderStatusDelivered,
	entity.StatusCompleted:        entity.OrderStatusDelivered,
	entity.StatusCancelled:        entity.OrderStatusCancelled,
}

// homeTestStatusMap maps tracking statuses to the coarse test-request status
var homeTestStatusMap = map[string]entity.TestRequestStatus{
	entity.StatusOrderCreated:       entity.TestRequestInProgress,
	entity.StatusPaymentConfirmed:   entity.TestRequestInProgress,
	entity.StatusTechnicianAssigned: entity.TestRequestInProgress,
	entity.StatusTechnicianOnWay:    entity.TestRequestInProgress,
	entity.StatusSampleCollected:    entity.TestRequestInProgress,
	entity.StatusSampleInAnalysis:   entity.TestRequestInProgress,
	entity.StatusResultsReady:       entity.TestRequestInProgress,
	entity.StatusCompleted:          entity.TestRequestDone,
	entity.StatusCancelled:          entity.TestRequestCancelled,
}

// TrackingQuery selects a tracking either by reference pair or by number
type TrackingQuery struct {
	ReferenceType  entity.ReferenceType
	ReferenceID    uuid.UUID
	TrackingNumber string
}

type TrackingUsecase interface {
	CreateTracking(ctx context.Context, req *dto.CreateTrackingRequest) (*dto.TrackingResponse, bool, error)
	GetTracking(ctx context.Context, query *TrackingQuery) (*dto.TrackingResponse, error)
	GetTrackingAdmin(ctx context.Context, trackingID uuid.UUID) (*dto.AdminTrackingResponse, error)
	ListTrackings(ctx context.Context, filter *entity.TrackingFilter, page, limit int) (*dto.TrackingListResponse, int64, error)
	UpdateTracking(ctx context.Context, trackingID uuid.UUID, req *dto.UpdateTrackingRequest) (*dto.TrackingResponse, error)
}

type trackingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	trackingRepo    repository.TrackingRepository
	orderRepo       repository.OrderRepository
	testRequestRepo repository.TestRequestRepository
	activityService service.ActivityService
}

func NewTrackingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	trackingRepo repository.TrackingRepository,
	orderRepo repository.OrderRepository,
	testRequestRepo repository.TestRequestRepository,
	activityService service.ActivityService,
) TrackingUsecase {
	return &trackingUsecase{
		db:              db,
		log:             log,
		trackingRepo:    trackingRepo,
		orderRepo:       orderRepo,
		testRequestRepo: testRequestRepo,
		activityService: activityService,
	}
}

// CreateTracking creates the tracking record for an order or test request.
// Creation is idempotent: when a tracking already exists for the reference
// pair it is returned as-is and the second return value is false.
func (u *trackingUsecase) CreateTracking(ctx context.Context, req *dto.CreateTrackingRequest) (*dto.TrackingResponse, bool, error) {
	existing, err := u.trackingRepo.FindByReference(ctx, u.db, req.ReferenceType, req.ReferenceID)
	if err != nil {
		u.log.Warnf("Failed to check existing tracking for %s/%s: %+v", req.ReferenceType, req.ReferenceID, err)
		return nil, false, err
	}
	if existing != nil {
		return converter.TrackingToResponse(existing, false), false, nil
	}

	initialStatus := req.InitialStatus
	if initialStatus == "" {
		initialStatus = entity.StatusOrderCreated
	}
	note := req.Note
	if note == "" {
		note = "تم إنشاء الطلب"
	}

	tracking := &entity.Tracking{
		TrackingNumber: entity.NewTrackingNumber(req.ReferenceType),
		ReferenceType:  req.ReferenceType,
		ReferenceID:    req.ReferenceID,
	}
	tracking.AppendStatus(entity.StatusHistoryItem{
		Status:    initialStatus,
		Note:      note,
		ChangedBy: entity.ChangedBySystem,
	})

	if err := u.trackingRepo.Create(ctx, u.db, tracking); err != nil {
		u.log.Warnf("Failed to create tracking for %s/%s: %+v", req.ReferenceType, req.ReferenceID, err)
		return nil, false, err
	}

	if err := u.activityService.Record(ctx, u.db, actorID(ctx), actorName(ctx), entity.ActivityTrackingCreate, entity.JSON{
		"tracking_number": tracking.TrackingNumber,
		"reference_type":  string(req.ReferenceType),
		"reference_id":    req.ReferenceID.String(),
	}); err != nil {
		u.log.Warnf("Failed to record tracking create activity: %+v", err)
	}

	return converter.TrackingToResponse(tracking, false), true, nil
}

// GetTracking resolves a tracking by reference pair or tracking number and
// returns it with display metadata and the ordered status progression.
func (u *trackingUsecase) GetTracking(ctx context.Context, query *TrackingQuery) (*dto.TrackingResponse, error) {
	var tracking *entity.Tracking
	var err error

	switch {
	case query.TrackingNumber != "":
		tracking, err = u.trackingRepo.FindByTrackingNumber(ctx, u.db, query.TrackingNumber)
	case query.ReferenceType != "" && query.ReferenceID != uuid.Nil:
		tracking, err = u.trackingRepo.FindByReference(ctx, u.db, query.ReferenceType, query.ReferenceID)
	default:
		return nil, ErrTrackingQuery
	}
	if err != nil {
		u.log.Warnf("Failed to find tracking: %+v", err)
		return nil, err
	}
	if tracking == nil {
		return nil, ErrTrackingNotFound
	}

	return converter.TrackingToResponse(tracking, true), nil
}

// GetTrackingAdmin returns a tracking with the referenced entity attached
// and the full status catalog for the reference type.
func (u *trackingUsecase) GetTrackingAdmin(ctx context.Context, trackingID uuid.UUID) (*dto.AdminTrackingResponse, error) {
	tracking, err := u.trackingRepo.FindByID(ctx, u.db, trackingID)
	if err != nil {
		u.log.Warnf("Failed to find tracking %s: %+v", trackingID, err)
		return nil, err
	}
	if tracking == nil {
		return nil, ErrTrackingNotFound
	}

	response := &dto.AdminTrackingResponse{
		TrackingResponse:  *converter.TrackingToResponse(tracking, false),
		AvailableStatuses: entity.StatusCatalog(tracking.ReferenceType),
	}

	switch tracking.ReferenceType {
	case entity.ReferenceProductOrder:
		order, err := u.orderRepo.FindByID(ctx, u.db, tracking.ReferenceID)
		if err != nil {
			u.log.Warnf("Failed to load order %s: %+v", tracking.ReferenceID, err)
		} else if order != nil {
			response.ReferenceData = order
		}
	case entity.ReferenceHomeTest:
		request, err := u.testRequestRepo.FindByID(ctx, u.db, tracking.ReferenceID)
		if err != nil {
			u.log.Warnf("Failed to load test request %s: %+v", tracking.ReferenceID, err)
		} else if request != nil {
			response.ReferenceData = request
		}
	}

	return response, nil
}

func (u *trackingUsecase) ListTrackings(ctx context.Context, filter *entity.TrackingFilter, page, limit int) (*dto.TrackingListResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	trackings, total, err := u.trackingRepo.FindAll(ctx, u.db, filter, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list trackings: %+v", err)
		return nil, 0, err
	}

	return &dto.TrackingListResponse{
		Trackings: converter.TrackingsToResponses(trackings),
		Total:     total,
	}, total, nil
}

// UpdateTracking performs the admin patch: an optional status append plus
// metadata field updates.
//
// The status append and currentStatus update land in one row write, so
// readers never see them out of sync. The mapped update of the referenced
// order or test request happens afterwards and is best-effort: the tracking
// record is the source of truth and is not rolled back when the cascade
// fails.
func (u *trackingUsecase) UpdateTracking(ctx context.Context, trackingID uuid.UUID, req *dto.UpdateTrackingRequest) (*dto.TrackingResponse, error) {
	tracking, err := u.trackingRepo.FindByID(ctx, u.db, trackingID)
	if err != nil {
		u.log.Warnf("Failed to find tracking %s: %+v", trackingID, err)
		return nil, err
	}
	if tracking == nil {
		return nil, ErrTrackingNotFound
	}

	statusChanged := req.Status != ""
	if statusChanged {
		changedBy := req.ChangedBy
		if changedBy == "" {
			changedBy = entity.ChangedByAdmin
		}
		tracking.AppendStatus(entity.StatusHistoryItem{
			Status:        req.Status,
			Note:          req.Note,
			ChangedBy:     changedBy,
			ChangedByName: req.ChangedByName,
		})
	}

	if req.AssignedTo != nil {
		tracking.AssignedTo = *req.AssignedTo
	}
	if req.AssignedToPhone != nil {
		tracking.AssignedToPhone = *req.AssignedToPhone
	}
	if req.ResultsFileURL != nil {
		tracking.ResultsFileURL = *req.ResultsFileURL
	}
	// A note without a status change goes to the standing notes field, not
	// the history.
	if req.Note != "" && !statusChanged {
		tracking.Notes = req.Note
	}

	if err := u.trackingRepo.Update(ctx, u.db, tracking); err != nil {
		u.log.Warnf("Failed to update tracking %s: %+v", trackingID, err)
		return nil, err
	}

	if statusChanged {
		u.cascadeEntityStatus(ctx, tracking, req.Status)

		if err := u.activityService.Record(ctx, u.db, actorID(ctx), actorName(ctx), entity.ActivityTrackingStatus, entity.JSON{
			"tracking_number": tracking.TrackingNumber,
			"status":          req.Status,
		}); err != nil {
			u.log.Warnf("Failed to record tracking status activity: %+v", err)
		}
	}

	return converter.TrackingToResponse(tracking, false), nil
}

// cascadeEntityStatus propagates a mapped coarse status onto the referenced
// entity. Unmapped statuses are a deliberate no-op. Failures are logged for
// reconciliation and never surfaced to the caller.
func (u *trackingUsecase) cascadeEntityStatus(ctx context.Context, tracking *entity.Tracking, status string) {
	switch tracking.ReferenceType {
	case entity.ReferenceProductOrder:
		mapped, ok := productOrderStatusMap[status]
		if !ok {
			return
		}
		if _, err := u.orderRepo.UpdateStatus(ctx, u.db, tracking.ReferenceID, mapped); err != nil {
			u.log.Errorf("Failed to cascade status %s to order %s: %+v", mapped, tracking.ReferenceID, err)
		}
	case entity.ReferenceHomeTest:
		mapped, ok := homeTestStatusMap[status]
		if !ok {
			return
		}
		if _, err := u.testRequestRepo.UpdateStatus(ctx, u.db, tracking.ReferenceID, mapped); err != nil {
			u.log.Errorf("Failed to cascade status %s to test request %s: %+v", mapped, tracking.ReferenceID, err)
		}
	}
}
