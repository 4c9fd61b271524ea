package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no-show"
)

// Booking is a patient booking against a provider. The booking flow itself
// is owned by the patient-facing service; this service only counts active
// bookings per provider and day for the capacity endpoint.
type Booking struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProviderID uuid.UUID     `gorm:"type:uuid;not null;index:idx_booking_provider_date,priority:1" json:"provider_id"`
	SlotID     *uuid.UUID    `gorm:"type:uuid;index" json:"slot_id,omitempty"`
	Date       time.Time     `gorm:"type:date;not null;index:idx_booking_provider_date,priority:2" json:"date"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Provider Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsActive reports whether the booking consumes reception capacity
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled && b.Status != BookingStatusNoShow
}
