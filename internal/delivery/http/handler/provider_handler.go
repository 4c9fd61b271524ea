package handler

import (
	"net/http"

	"care-platform-api/internal/usecase"
	"care-platform-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProviderHandler struct {
	capacityUsecase usecase.CapacityUsecase
}

func NewProviderHandler(capacityUsecase usecase.CapacityUsecase) *ProviderHandler {
	return &ProviderHandler{
		capacityUsecase: capacityUsecase,
	}
}

// GetCapacity reports reception capacity usage for a provider on a day
// (defaults to today).
func (h *ProviderHandler) GetCapacity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	capacity, err := h.capacityUsecase.GetProviderCapacity(r.Context(), providerID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to get provider capacity")
		}
		return
	}

	response.Success(w, http.StatusOK, "Capacity retrieved successfully", capacity)
}
