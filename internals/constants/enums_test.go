package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPaymentStatus(t *testing.T) {
	for _, s := range PaymentStatuses {
		assert.True(t, IsValidPaymentStatus(s), s)
	}
	assert.False(t, IsValidPaymentStatus("Paid"))
	assert.False(t, IsValidPaymentStatus("lunas")) // case-sensitive
	assert.False(t, IsValidPaymentStatus(""))
}

func TestIsValidAttendanceStatus(t *testing.T) {
	for _, s := range AttendanceStatuses {
		assert.True(t, IsValidAttendanceStatus(s), s)
	}
	assert.False(t, IsValidAttendanceStatus("Hadir"))
	assert.False(t, IsValidAttendanceStatus("success"))
	assert.False(t, IsValidAttendanceStatus(""))
}

func TestIsValidInstrument(t *testing.T) {
	assert.True(t, IsValidInstrument("Piano"))
	assert.True(t, IsValidInstrument("Biola"))
	assert.False(t, IsValidInstrument("Harpa"))
	assert.False(t, IsValidInstrument("piano"))
}

func TestIsValidDuration(t *testing.T) {
	assert.True(t, IsValidDuration(30))
	assert.True(t, IsValidDuration(45))
	assert.True(t, IsValidDuration(60))
	assert.False(t, IsValidDuration(0))
	assert.False(t, IsValidDuration(90))
}
