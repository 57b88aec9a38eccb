package status

import (
	"fmt"
	"time"
)

// FormatUptime renders whole hours and minutes, e.g. "3h 42m". Seconds are truncated.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int64(d / time.Hour)
	minutes := int64((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
