package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotType represents where the consultation takes place
type SlotType string

const (
	SlotTypeClinic SlotType = "clinic"
	SlotTypeOnline SlotType = "online"
	SlotTypeHome   SlotType = "home"
)

// SlotStatus represents the lifecycle state of a slot
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCompleted SlotStatus = "completed"
	SlotStatusBlocked   SlotStatus = "blocked"
)

// AvailabilitySlot represents one bookable time window for one provider on
// one calendar date. Slots are created in bulk by the slot generator and
// booked by the patient-facing booking flow.
//
// The (provider_id, date, start_time) unique index is the real duplicate
// guard; the generator's existence check only avoids pointless inserts.
type AvailabilitySlot struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProviderID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_slot_provider_date_start,priority:1" json:"provider_id"`
	ClinicID   *uuid.UUID `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	HospitalID *uuid.UUID `gorm:"type:uuid;index" json:"hospital_id,omitempty"`
	Date       time.Time  `gorm:"type:date;not null;uniqueIndex:idx_slot_provider_date_start,priority:2" json:"date"`
	StartTime  string     `gorm:"type:varchar(5);not null;uniqueIndex:idx_slot_provider_date_start,priority:3" json:"start_time"`
	EndTime    string     `gorm:"type:varchar(5);not null" json:"end_time"`
	Duration   int        `gorm:"not null;default:30" json:"duration"`
	Type       SlotType   `gorm:"type:varchar(20);not null;default:'clinic'" json:"type"`
	Status     SlotStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	Price      float64    `gorm:"not null" json:"price"`
	BookingID  *uuid.UUID `gorm:"type:uuid" json:"booking_id,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// IsBooked reports whether the slot holds an active booking
func (s *AvailabilitySlot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// CanTransitionTo enforces the booked-slot immutability rule: a booked slot
// may only move forward to completed.
func (s *AvailabilitySlot) CanTransitionTo(status SlotStatus) bool {
	if s.Status == SlotStatusBooked {
		return status == SlotStatusCompleted
	}
	return true
}

// CanDelete reports whether the slot may be removed
func (s *AvailabilitySlot) CanDelete() bool {
	return s.Status != SlotStatusBooked
}

// ValidSlotType reports whether t is a known slot type
func ValidSlotType(t SlotType) bool {
	switch t {
	case SlotTypeClinic, SlotTypeOnline, SlotTypeHome:
		return true
	}
	return false
}

// ValidSlotStatus reports whether s is a known slot status
func ValidSlotStatus(s SlotStatus) bool {
	switch s {
	case SlotStatusAvailable, SlotStatusBooked, SlotStatusCompleted, SlotStatusBlocked:
		return true
	}
	return false
}
