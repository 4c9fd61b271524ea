package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeForSlotType(t *testing.T) {
	online := 150.0
	home := 300.0
	provider := &Provider{
		ConsultationFee:       100,
		OnlineConsultationFee: &online,
		HomeVisitFee:          &home,
	}

	assert.Equal(t, 100.0, provider.FeeForSlotType(SlotTypeClinic))
	assert.Equal(t, 150.0, provider.FeeForSlotType(SlotTypeOnline))
	assert.Equal(t, 300.0, provider.FeeForSlotType(SlotTypeHome))
}

func TestFeeForSlotTypeFallsBack(t *testing.T) {
	provider := &Provider{ConsultationFee: 100}
	assert.Equal(t, 100.0, provider.FeeForSlotType(SlotTypeOnline))
	assert.Equal(t, 100.0, provider.FeeForSlotType(SlotTypeHome))

	// a zero fee counts as unset
	zero := 0.0
	provider.OnlineConsultationFee = &zero
	assert.Equal(t, 100.0, provider.FeeForSlotType(SlotTypeOnline))
}

func TestHasOpenReception(t *testing.T) {
	assert.True(t, (&Provider{ReceptionType: ReceptionOpen}).HasOpenReception())
	assert.False(t, (&Provider{ReceptionType: ReceptionLimited}).HasOpenReception())
}
