package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceptionType controls how a provider accepts bookings
type ReceptionType string

const (
	// ReceptionOpen means the provider accepts bookings without a daily cap
	ReceptionOpen ReceptionType = "open"
	// ReceptionLimited means bookings are capped at ReceptionCapacity per day
	ReceptionLimited ReceptionType = "limited"
)

// Provider represents a doctor or lab professional offering bookable services.
// This service only reads fee and capacity fields; provider management is
// owned by the admin backoffice.
type Provider struct {
	ID                   uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                 string        `gorm:"type:varchar(150);not null" json:"name"`
	NameAr               string        `gorm:"type:varchar(150);not null" json:"name_ar"`
	Specialty            string        `gorm:"type:varchar(100);index" json:"specialty"`
	SpecialtyAr          string        `gorm:"type:varchar(100)" json:"specialty_ar"`
	Image                string        `gorm:"type:text" json:"image,omitempty"`
	ConsultationFee      float64       `gorm:"not null" json:"consultation_fee"`
	OnlineConsultationFee *float64     `json:"online_consultation_fee,omitempty"`
	HomeVisitFee         *float64      `json:"home_visit_fee,omitempty"`
	ReceptionType        ReceptionType `gorm:"type:varchar(20);not null;default:'open'" json:"reception_type"`
	ReceptionCapacity    int           `gorm:"not null;default:0" json:"reception_capacity"`
	IsActive             bool          `gorm:"not null;default:true" json:"is_active"`
	CreatedAt            time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slots []AvailabilitySlot `gorm:"foreignKey:ProviderID" json:"slots,omitempty"`
}

func (Provider) TableName() string {
	return "providers"
}

// FeeForSlotType resolves the slot price from the provider's fee fields.
// Online and home fees fall back to the base consultation fee when unset.
func (p *Provider) FeeForSlotType(slotType SlotType) float64 {
	switch slotType {
	case SlotTypeOnline:
		if p.OnlineConsultationFee != nil && *p.OnlineConsultationFee > 0 {
			return *p.OnlineConsultationFee
		}
	case SlotTypeHome:
		if p.HomeVisitFee != nil && *p.HomeVisitFee > 0 {
			return *p.HomeVisitFee
		}
	}
	return p.ConsultationFee
}

// HasOpenReception reports whether the provider accepts bookings without a cap
func (p *Provider) HasOpenReception() bool {
	return p.ReceptionType == ReceptionOpen
}
