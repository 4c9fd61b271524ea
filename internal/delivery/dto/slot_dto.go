package dto

import (
	"time"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type GenerateSlotsRequest struct {
	ProviderID   uuid.UUID       `json:"provider_id" validate:"required"`
	ClinicID     *uuid.UUID      `json:"clinic_id" validate:"omitempty"`
	HospitalID   *uuid.UUID      `json:"hospital_id" validate:"omitempty"`
	StartDate    string          `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate      string          `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	WorkingDays  []string        `json:"working_days" validate:"required,min=1"`
	StartTime    string          `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime      string          `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotDuration int             `json:"slot_duration" validate:"omitempty,gte=5,lte=480"`
	BreakStart   string          `json:"break_start" validate:"omitempty"` // Format: HH:MM
	BreakEnd     string          `json:"break_end" validate:"omitempty"`   // Format: HH:MM
	Type         entity.SlotType `json:"type" validate:"omitempty,oneof=clinic online home"`
}

type UpdateSlotRequest struct {
	Status    entity.SlotStatus `json:"status" validate:"omitempty,oneof=available booked completed blocked"`
	StartTime string            `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime   string            `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	Duration  *int              `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Price     *float64          `json:"price" validate:"omitempty,gte=0"`
	Notes     *string           `json:"notes" validate:"omitempty"`
}

// Response DTOs

type GenerateSlotsResponse struct {
	TotalSlots int `json:"total_slots"`
}

type ProviderSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NameAr      string    `json:"name_ar"`
	Specialty   string    `json:"specialty"`
	SpecialtyAr string    `json:"specialty_ar"`
	Image       string    `json:"image,omitempty"`
}

type SlotResponse struct {
	ID         uuid.UUID         `json:"id"`
	ProviderID uuid.UUID         `json:"provider_id"`
	Provider   *ProviderSummary  `json:"provider,omitempty"`
	ClinicID   *uuid.UUID        `json:"clinic_id,omitempty"`
	HospitalID *uuid.UUID        `json:"hospital_id,omitempty"`
	Date       string            `json:"date"`
	StartTime  string            `json:"start_time"`
	EndTime    string            `json:"end_time"`
	Duration   int               `json:"duration"`
	Type       entity.SlotType   `json:"type"`
	Status     entity.SlotStatus `json:"status"`
	Price      float64           `json:"price"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}
