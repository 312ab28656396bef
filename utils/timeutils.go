package utils

import (
	"time"
)

// DisplayTimeLayout is the rider-facing timestamp format, e.g.
// "2024-05-27 08:15:30 PM". Existing users expect this exact form.
const DisplayTimeLayout = "2006-01-02 03:04:05 PM"

// DisplayTimeFromUnixSeconds converts a Unix timestamp to the rider-facing
// form in the local system time zone.
func DisplayTimeFromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).Format(DisplayTimeLayout)
}

// UnixSecondsFromDisplayTime parses a rider-facing timestamp back to Unix
// seconds, interpreting it in the local system time zone.
func UnixSecondsFromDisplayTime(s string) (int64, error) {
	t, err := time.ParseInLocation(DisplayTimeLayout, s, time.Local)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
