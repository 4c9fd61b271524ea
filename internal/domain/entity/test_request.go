package entity

import (
	"time"

	"github.com/google/uuid"
)

// TestRequestStatus is the coarse Arabic status shown on home-test requests
type TestRequestStatus string

const (
	TestRequestInProgress TestRequestStatus = "جاري"
	TestRequestDone       TestRequestStatus = "مكتمل"
	TestRequestCancelled  TestRequestStatus = "ملغى"
)

// TestRequest is a home lab test request. Nurse dispatch and payment live
// elsewhere; only the denormalized status is written here.
type TestRequest struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientName string            `gorm:"type:varchar(150)" json:"patient_name"`
	Phone       string            `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Address     string            `gorm:"type:text" json:"address,omitempty"`
	Status      TestRequestStatus `gorm:"type:varchar(20);not null;default:'جاري';index" json:"status"`
	TrackingID  *uuid.UUID        `gorm:"type:uuid;index" json:"tracking_id,omitempty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TestRequest) TableName() string {
	return "test_requests"
}
