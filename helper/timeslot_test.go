package helper

import (
	"testing"

	"rank_manager/model"

	"github.com/stretchr/testify/assert"
)

var testSlots = []model.TimeSlot{
	{Label: "Ca 7g Sáng", Start: "07:00"},
	{Label: "Ca 2g Chiều", Start: "14:00"},
	{Label: "Ca 10g Tối", Start: "22:00"},
}

func TestStartTimeOf(t *testing.T) {
	assert.Equal(t, "07:00", StartTimeOf(testSlots, "Ca 7g Sáng"))
	assert.Equal(t, "22:00", StartTimeOf(testSlots, "Ca 10g Tối"))
	assert.Equal(t, "00:00", StartTimeOf(testSlots, "Ca lạ"))
}

func TestEndTimeOf(t *testing.T) {
	assert.Equal(t, "10:00", EndTimeOf(testSlots, "Ca 7g Sáng", 3))
	// ca tối quay vòng qua nửa đêm
	assert.Equal(t, "01:00", EndTimeOf(testSlots, "Ca 10g Tối", 3))
	assert.Equal(t, "00:00", EndTimeOf(testSlots, "Ca 10g Tối", 2))
}

func TestParseHour(t *testing.T) {
	assert.Equal(t, 14, ParseHour("14:00"))
	assert.Equal(t, 0, ParseHour("bậy bạ"))
}
