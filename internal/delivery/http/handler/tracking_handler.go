package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"
	"care-platform-api/internal/usecase"
	"care-platform-api/pkg/response"
	"care-platform-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TrackingHandler struct {
	trackingUsecase usecase.TrackingUsecase
	validator       *validator.CustomValidator
}

func NewTrackingHandler(trackingUsecase usecase.TrackingUsecase, validator *validator.CustomValidator) *TrackingHandler {
	return &TrackingHandler{
		trackingUsecase: trackingUsecase,
		validator:       validator,
	}
}

// GetTracking resolves a tracking by reference pair or tracking number
func (h *TrackingHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	trackingQuery := &usecase.TrackingQuery{
		ReferenceType:  entity.ReferenceType(query.Get("reference_type")),
		TrackingNumber: query.Get("tracking_number"),
	}
	if value := query.Get("reference_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			response.BadRequest(w, "Invalid reference_id")
			return
		}
		trackingQuery.ReferenceID = id
	}

	tracking, err := h.trackingUsecase.GetTracking(r.Context(), trackingQuery)
	if err != nil {
		switch err {
		case usecase.ErrTrackingQuery:
			response.BadRequest(w, "Provide reference_type with reference_id, or tracking_number")
		case usecase.ErrTrackingNotFound:
			response.NotFound(w, "Tracking not found")
		default:
			response.InternalServerError(w, "Failed to get tracking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tracking retrieved successfully", tracking)
}

// CreateTracking is idempotent: posting the same reference pair twice
// returns the existing record.
func (h *TrackingHandler) CreateTracking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tracking, created, err := h.trackingUsecase.CreateTracking(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create tracking")
		return
	}

	if !created {
		response.Success(w, http.StatusOK, "Tracking already exists", tracking)
		return
	}
	response.Success(w, http.StatusCreated, "Tracking created successfully", tracking)
}

func (h *TrackingHandler) ListTrackings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := &entity.TrackingFilter{
		ReferenceType: entity.ReferenceType(query.Get("reference_type")),
		Status:        query.Get("status"),
		Search:        query.Get("search"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 {
		limit = 20
	}

	trackings, total, err := h.trackingUsecase.ListTrackings(r.Context(), filter, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list trackings")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, http.StatusOK, "Trackings retrieved successfully", trackings, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *TrackingHandler) GetTrackingAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trackingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid tracking ID")
		return
	}

	tracking, err := h.trackingUsecase.GetTrackingAdmin(r.Context(), trackingID)
	if err != nil {
		if err == usecase.ErrTrackingNotFound {
			response.NotFound(w, "Tracking not found")
			return
		}
		response.InternalServerError(w, "Failed to get tracking")
		return
	}

	response.Success(w, http.StatusOK, "Tracking retrieved successfully", tracking)
}

func (h *TrackingHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trackingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid tracking ID")
		return
	}

	var req dto.UpdateTrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tracking, err := h.trackingUsecase.UpdateTracking(r.Context(), trackingID, &req)
	if err != nil {
		if err == usecase.ErrTrackingNotFound {
			response.NotFound(w, "Tracking not found")
			return
		}
		response.InternalServerError(w, "Failed to update tracking")
		return
	}

	response.Success(w, http.StatusOK, "Tracking updated successfully", tracking)
}
