package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityLog records an admin or system action for the backoffice audit trail
type ActivityLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminID   *uuid.UUID `gorm:"type:uuid;index" json:"admin_id,omitempty"`
	Admin     string     `gorm:"type:varchar(150);not null" json:"admin"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common activity actions
const (
	ActivitySlotsGenerate  = "slots.generate"
	ActivitySlotUpdate     = "slot.update"
	ActivitySlotDelete     = "slot.delete"
	ActivityTrackingCreate = "tracking.create"
	ActivityTrackingStatus = "tracking.status_change"
	ActivityTrackingUpdate = "tracking.update"
)
