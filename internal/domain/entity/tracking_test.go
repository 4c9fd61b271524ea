package entity

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^(HT|PO)\d{9}$`)

	ht := NewTrackingNumber(ReferenceHomeTest)
	assert.Regexp(t, pattern, ht)
	assert.Equal(t, "HT", ht[:2])

	po := NewTrackingNumber(ReferenceProductOrder)
	assert.Equal(t, "PO", po[:2])

	// yymm segment reflects the current month
	assert.Equal(t, time.Now().Format("0601"), po[2:6])
}

func TestAppendStatus(t *testing.T) {
	t.Run("keeps current status in sync", func(t *testing.T) {
		tracking := &Tracking{}
		tracking.AppendStatus(StatusHistoryItem{Status: StatusOrderCreated})
		tracking.AppendStatus(StatusHistoryItem{Status: StatusPreparing, ChangedBy: ChangedByAdmin})

		assert.Equal(t, StatusPreparing, tracking.CurrentStatus)
		assert.Len(t, tracking.StatusHistory, 2)
		assert.Equal(t, ChangedBySystem, tracking.StatusHistory[0].ChangedBy)
		assert.False(t, tracking.StatusHistory[0].CreatedAt.IsZero())
		assert.Nil(t, tracking.ActualDelivery)
	})

	t.Run("stamps actual delivery on delivered and completed", func(t *testing.T) {
		tracking := &Tracking{}
		tracking.AppendStatus(StatusHistoryItem{Status: StatusDelivered})
		assert.NotNil(t, tracking.ActualDelivery)

		tracking = &Tracking{}
		tracking.AppendStatus(StatusHistoryItem{Status: StatusCompleted})
		assert.NotNil(t, tracking.ActualDelivery)
	})
}

func TestLastStatus(t *testing.T) {
	tracking := &Tracking{}
	assert.Nil(t, tracking.LastStatus())

	tracking.AppendStatus(StatusHistoryItem{Status: StatusOrderCreated})
	tracking.AppendStatus(StatusHistoryItem{Status: StatusShipped})
	assert.Equal(t, StatusShipped, tracking.LastStatus().Status)
}

func TestStatusHistoryRoundTrip(t *testing.T) {
	history := StatusHistory{
		{Status: StatusOrderCreated, Note: "تم إنشاء الطلب", ChangedBy: ChangedBySystem, CreatedAt: time.Now().Truncate(time.Second)},
		{Status: StatusShipped, ChangedBy: ChangedByAdmin, ChangedByName: "admin@example.com", CreatedAt: time.Now().Truncate(time.Second)},
	}

	value, err := history.Value()
	assert.NoError(t, err)

	var scanned StatusHistory
	assert.NoError(t, scanned.Scan(value))
	assert.Len(t, scanned, 2)
	assert.Equal(t, StatusShipped, scanned[1].Status)
	assert.Equal(t, "admin@example.com", scanned[1].ChangedByName)
}

func TestStatusHistoryValueNilIsEmptyArray(t *testing.T) {
	var history StatusHistory
	value, err := history.Value()
	assert.NoError(t, err)

	var raw []json.RawMessage
	assert.NoError(t, json.Unmarshal(value.([]byte), &raw))
	assert.Empty(t, raw)
}
