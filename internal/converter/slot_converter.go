package converter

import (
	"care-platform-api/internal/delivery/dto"
	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
)

// SlotToResponse converts an AvailabilitySlot entity to SlotResponse DTO
func SlotToResponse(slot *entity.AvailabilitySlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.SlotResponse{
		ID:         slot.ID,
		ProviderID: slot.ProviderID,
		ClinicID:   slot.ClinicID,
		HospitalID: slot.HospitalID,
		Date:       slot.Date.Format("2006-01-02"),
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Duration:   slot.Duration,
		Type:       slot.Type,
		Status:     slot.Status,
		Price:      slot.Price,
		Notes:      slot.Notes,
		CreatedAt:  slot.CreatedAt,
		UpdatedAt:  slot.UpdatedAt,
	}

	// Include provider info if available
	if slot.Provider.ID != uuid.Nil {
		response.Provider = &dto.ProviderSummary{
			ID:          slot.Provider.ID,
			Name:        slot.Provider.Name,
			NameAr:      slot.Provider.NameAr,
			Specialty:   slot.Provider.Specialty,
			SpecialtyAr: slot.Provider.SpecialtyAr,
			Image:       slot.Provider.Image,
		}
	}

	return response
}

// SlotsToResponses converts a slice of AvailabilitySlot entities to SlotResponse DTOs
func SlotsToResponses(slots []entity.AvailabilitySlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}
