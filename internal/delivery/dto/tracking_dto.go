package dto

import (
	"time"

	"care-platform-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTrackingRequest struct {
	ReferenceType entity.ReferenceType `json:"reference_type" validate:"required,oneof=home_test product_order"`
	ReferenceID   uuid.UUID            `json:"reference_id" validate:"required"`
	InitialStatus string               `json:"initial_status" validate:"omitempty"`
	Note          string               `json:"note" validate:"omitempty"`
}

type UpdateTrackingRequest struct {
	Status          string           `json:"status" validate:"omitempty"`
	Note            string           `json:"note" validate:"omitempty"`
	ChangedBy       entity.ChangedBy `json:"changed_by" validate:"omitempty,oneof=system admin technician delivery"`
	ChangedByName   string           `json:"changed_by_name" validate:"omitempty"`
	AssignedTo      *string          `json:"assigned_to" validate:"omitempty"`
	AssignedToPhone *string          `json:"assigned_to_phone" validate:"omitempty"`
	ResultsFileURL  *string          `json:"results_file_url" validate:"omitempty"`
}

// Response DTOs

type StatusHistoryItemResponse struct {
	Status        string             `json:"status"`
	StatusInfo    *entity.StatusInfo `json:"status_info,omitempty"`
	Note          string             `json:"note,omitempty"`
	ChangedBy     entity.ChangedBy   `json:"changed_by"`
	ChangedByName string             `json:"changed_by_name,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

type TrackingResponse struct {
	ID                uuid.UUID                   `json:"id"`
	TrackingNumber    string                      `json:"tracking_number"`
	ReferenceType     entity.ReferenceType        `json:"reference_type"`
	ReferenceID       uuid.UUID                   `json:"reference_id"`
	CurrentStatus     string                      `json:"current_status"`
	CurrentStatusInfo *entity.StatusInfo          `json:"current_status_info,omitempty"`
	StatusHistory     []StatusHistoryItemResponse `json:"status_history"`
	OrderedStatuses   []string                    `json:"ordered_statuses,omitempty"`
	EstimatedDelivery *time.Time                  `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time                  `json:"actual_delivery,omitempty"`
	AssignedTo        string                      `json:"assigned_to,omitempty"`
	AssignedToPhone   string                      `json:"assigned_to_phone,omitempty"`
	ResultsFileURL    string                      `json:"results_file_url,omitempty"`
	Notes             string                      `json:"notes,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

type AdminTrackingResponse struct {
	TrackingResponse
	ReferenceData     interface{}         `json:"reference_data,omitempty"`
	AvailableStatuses []entity.StatusInfo `json:"available_statuses"`
}

type TrackingListResponse struct {
	Trackings []TrackingResponse `json:"trackings"`
	Total     int64              `json:"total"`
}
