package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"
	"care-platform-api/internal/usecase"
	"care-platform-api/pkg/response"
	"care-platform-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

func (h *SlotHandler) GenerateSlots(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotUsecase.GenerateSlots(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrInvalidDateRange:
			response.BadRequest(w, "Start date must not be after end date")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM")
		case usecase.ErrInvalidWorkingDay:
			response.BadRequest(w, "Unknown working day name")
		default:
			response.InternalServerError(w, "Failed to generate slots")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slots generated successfully", result)
}

func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid slot ID")
		return
	}

	slot, err := h.slotUsecase.GetSlot(r.Context(), slotID)
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot retrieved successfully", slot)
}

func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	filter, err := slotFilterFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	slots, err := h.slotUsecase.ListSlots(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid slot ID")
		return
	}

	var req dto.UpdateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.slotUsecase.UpdateSlot(r.Context(), slotID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotBooked:
			response.BadRequest(w, "Booked slot cannot be modified")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM")
		default:
			response.InternalServerError(w, "Failed to update slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot updated successfully", slot)
}

func (h *SlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid slot ID")
		return
	}

	err = h.slotUsecase.DeleteSlot(r.Context(), slotID)
	if err != nil {
		switch err {
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Slot not found")
		case usecase.ErrSlotBooked:
			response.BadRequest(w, "Booked slot cannot be deleted")
		default:
			response.InternalServerError(w, "Failed to delete slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}

// slotFilterFromQuery builds the domain filter from list query parameters.
// Status defaults to available; with no date bounds the repository limits
// results to today onward.
func slotFilterFromQuery(r *http.Request) (*entity.SlotFilter, error) {
	query := r.URL.Query()

	filter := &entity.SlotFilter{
		Type:      entity.SlotType(query.Get("type")),
		Status:    entity.SlotStatus(query.Get("status")),
		Date:      query.Get("date"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
	if filter.Status == "" {
		filter.Status = entity.SlotStatusAvailable
	}

	if value := query.Get("provider_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errors.New("Invalid provider_id")
		}
		filter.ProviderID = &id
	}
	if value := query.Get("clinic_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errors.New("Invalid clinic_id")
		}
		filter.ClinicID = &id
	}
	if value := query.Get("hospital_id"); value != "" {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, errors.New("Invalid hospital_id")
		}
		filter.HospitalID = &id
	}

	return filter, nil
}
