package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/City").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Nowhere/City"))
}

func TestFormat(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	brt := time.FixedZone("BRT", -3*60*60)

	assert.Equal(t, "01/01/2025 07:00", Format(start, brt))
}
