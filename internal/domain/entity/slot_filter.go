package entity

import "github.com/google/uuid"

// SlotFilter is a domain-level filter for querying availability slots.
// Used by repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	ProviderID *uuid.UUID
	ClinicID   *uuid.UUID
	HospitalID *uuid.UUID
	Type       SlotType
	Status     SlotStatus
	Date       string // Format: YYYY-MM-DD, exact day
	StartDate  string // Format: YYYY-MM-DD
	EndDate    string // Format: YYYY-MM-DD
}

// TrackingFilter is a domain-level filter for the admin tracking list
type TrackingFilter struct {
	ReferenceType ReferenceType
	Status        string
	Search        string // matches tracking number or assignee
}
