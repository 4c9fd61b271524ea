package timeofday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tod, err := Parse("09:05")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60+5), tod)

	tod, err = Parse("00:00")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), tod)

	tod, err = Parse("23:59")
	assert.NoError(t, err)
	assert.Equal(t, TimeOfDay(23*60+59), tod)

	_, err = Parse("9:00am")
	assert.Error(t, err)

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestAddRollsOverMinutes(t *testing.T) {
	tod, _ := Parse("09:45")
	assert.Equal(t, "10:15", tod.Add(30).String())

	tod, _ = Parse("10:40")
	assert.Equal(t, "11:25", tod.Add(45).String())
}

func TestBefore(t *testing.T) {
	a, _ := Parse("09:00")
	b, _ := Parse("09:30")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestString(t *testing.T) {
	tod, _ := Parse("07:05")
	assert.Equal(t, "07:05", tod.String())
}
