package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatusInfo(t *testing.T) {
	info := GetStatusInfo(ReferenceHomeTest, StatusSampleCollected)
	assert.NotNil(t, info)
	assert.Equal(t, "Sample Collected", info.LabelEn)

	info = GetStatusInfo(ReferenceProductOrder, StatusOutForDelivery)
	assert.NotNil(t, info)
	assert.Equal(t, "Out for Delivery", info.LabelEn)

	assert.Nil(t, GetStatusInfo(ReferenceProductOrder, "no_such_status"))
	// sample collection only exists on home tests
	assert.Nil(t, GetStatusInfo(ReferenceProductOrder, StatusSampleCollected))
}

func TestOrderedStatuses(t *testing.T) {
	homeTest := OrderedStatuses(ReferenceHomeTest)
	assert.Equal(t, StatusOrderCreated, homeTest[0])
	assert.Equal(t, StatusCompleted, homeTest[len(homeTest)-1])
	assert.NotContains(t, homeTest, StatusCancelled)

	order := OrderedStatuses(ReferenceProductOrder)
	assert.Contains(t, order, StatusOutForDelivery)
	assert.NotContains(t, order, StatusCancelled)
}

func TestStatusCatalogIncludesTerminalStatuses(t *testing.T) {
	catalog := StatusCatalog(ReferenceProductOrder)
	keys := make([]string, len(catalog))
	for i, info := range catalog {
		keys[i] = info.Key
	}
	assert.Contains(t, keys, StatusCancelled)
	assert.Contains(t, keys, StatusReturned)
	assert.Contains(t, keys, StatusRefunded)

	catalog = StatusCatalog(ReferenceHomeTest)
	keys = keys[:0]
	for _, info := range catalog {
		keys = append(keys, info.Key)
	}
	assert.Contains(t, keys, StatusRescheduled)
}
