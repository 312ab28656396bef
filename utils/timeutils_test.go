package utils_test

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"transit-assistant/utils"
)

func TestDisplayTimeRoundTrip(t *testing.T) {
	is := is.New(t)

	for _, sec := range []int64{0, 1716854130, 1700000000, 2000000000} {
		display := utils.DisplayTimeFromUnixSeconds(sec)
		back, err := utils.UnixSecondsFromDisplayTime(display)
		is.NoErr(err)
		is.Equal(back, sec) // recovers the timestamp to the second
	}
}

func TestDisplayTimeShape(t *testing.T) {
	is := is.New(t)

	display := utils.DisplayTimeFromUnixSeconds(1716854130)
	// "2024-05-27 08:15:30 PM" shaped: date, 12-hour clock, AM/PM suffix.
	is.Equal(len(display), len("2006-01-02 03:04:05 PM"))
	is.True(strings.HasSuffix(display, "AM") || strings.HasSuffix(display, "PM"))
}

func TestUnixSecondsFromDisplayTime_Malformed(t *testing.T) {
	is := is.New(t)

	_, err := utils.UnixSecondsFromDisplayTime("not a timestamp")
	is.True(err != nil)
}

func TestHaversineKM(t *testing.T) {
	is := is.New(t)

	is.Equal(utils.HaversineKM(44.64, -63.57, 44.64, -63.57), 0.0)

	// Halifax ferry terminal to Dartmouth side is roughly a kilometer.
	d := utils.HaversineKM(44.6476, -63.5728, 44.6654, -63.5669)
	is.True(d > 1.5 && d < 2.5)

	// Symmetric.
	is.Equal(utils.HaversineKM(44.64, -63.57, 44.65, -63.58), utils.HaversineKM(44.65, -63.58, 44.64, -63.57))
}
