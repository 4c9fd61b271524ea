package entity

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ReferenceType identifies the kind of business entity a tracking follows
type ReferenceType string

const (
	ReferenceHomeTest     ReferenceType = "home_test"
	ReferenceProductOrder ReferenceType = "product_order"
)

// ValidReferenceType reports whether t is a known reference type
func ValidReferenceType(t ReferenceType) bool {
	return t == ReferenceHomeTest || t == ReferenceProductOrder
}

// ChangedBy identifies who performed a status change
type ChangedBy string

const (
	ChangedBySystem     ChangedBy = "system"
	ChangedByAdmin      ChangedBy = "admin"
	ChangedByTechnician ChangedBy = "technician"
	ChangedByDelivery   ChangedBy = "delivery"
)

// StatusHistoryItem is one entry in a tracking's append-only history
type StatusHistoryItem struct {
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	ChangedBy     ChangedBy `json:"changed_by"`
	ChangedByName string    `json:"changed_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StatusHistory is stored as a JSONB array so the history and current status
// live in one row and update atomically.
type StatusHistory []StatusHistoryItem

// Value implements driver.Valuer for JSONB storage
func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		return json.Marshal(StatusHistory{})
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner for JSONB storage
func (h *StatusHistory) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal status history value:", value))
	}
	return json.Unmarshal(bytes, h)
}

// Tracking is the canonical status record for an order or home-test request.
// Exactly one tracking exists per (reference_type, reference_id); the
// referenced entity carries only a coarse derived status.
type Tracking struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TrackingNumber    string        `gorm:"type:varchar(20);uniqueIndex;not null" json:"tracking_number"`
	ReferenceType     ReferenceType `gorm:"type:varchar(20);not null;uniqueIndex:idx_tracking_reference,priority:1" json:"reference_type"`
	ReferenceID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_tracking_reference,priority:2" json:"reference_id"`
	CurrentStatus     string        `gorm:"type:varchar(50);not null;index" json:"current_status"`
	StatusHistory     StatusHistory `gorm:"type:jsonb;not null;default:'[]'" json:"status_history"`
	EstimatedDelivery *time.Time    `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time    `json:"actual_delivery,omitempty"`
	AssignedTo        string        `gorm:"type:varchar(150)" json:"assigned_to,omitempty"`
	AssignedToPhone   string        `gorm:"type:varchar(30)" json:"assigned_to_phone,omitempty"`
	ResultsFileURL    string        `gorm:"type:text" json:"results_file_url,omitempty"`
	Notes             string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tracking) TableName() string {
	return "trackings"
}

// AppendStatus pushes a history entry and keeps CurrentStatus in sync.
// Delivered and completed statuses also stamp the actual delivery time.
func (t *Tracking) AppendStatus(item StatusHistoryItem) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.ChangedBy == "" {
		item.ChangedBy = ChangedBySystem
	}
	t.StatusHistory = append(t.StatusHistory, item)
	t.CurrentStatus = item.Status

	if item.Status == "delivered" || item.Status == "completed" {
		now := item.CreatedAt
		t.ActualDelivery = &now
	}
}

// LastStatus returns the most recent history entry, or nil when empty
func (t *Tracking) LastStatus() *StatusHistoryItem {
	if len(t.StatusHistory) == 0 {
		return nil
	}
	return &t.StatusHistory[len(t.StatusHistory)-1]
}

// NewTrackingNumber builds a human-readable tracking number:
// HT/PO prefix + two-digit year + month + five random digits.
func NewTrackingNumber(referenceType ReferenceType) string {
	prefix := "PO"
	if referenceType == ReferenceHomeTest {
		prefix = "HT"
	}
	now := time.Now()
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		n = big.NewInt(now.UnixNano() % 100000)
	}
	return fmt.Sprintf("%s%s%05d", prefix, now.Format("0601"), n.Int64())
}
