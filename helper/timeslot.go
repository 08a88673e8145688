package helper

import (
	"fmt"
	"strconv"
	"strings"

	"rank_manager/model"
)

// StartTimeOf tra giờ bắt đầu "HH:MM" theo nhãn ca, không thấy trả "00:00"
func StartTimeOf(slots []model.TimeSlot, label string) string {
	for _, ts := range slots {
		if ts.Label == label {
			return ts.Start
		}
	}
	return "00:00"
}

// EndTimeOf cộng thời lượng (giờ) vào giờ bắt đầu của ca, quay vòng qua nửa đêm
func EndTimeOf(slots []model.TimeSlot, label string, duration int) string {
	startHour := ParseHour(StartTimeOf(slots, label))
	endHour := (startHour + duration) % 24
	return fmt.Sprintf("%02d:00", endHour)
}

func ParseHour(timeStr string) int {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0
	}
	hour, _ := strconv.Atoi(parts[0])
	return hour
}
