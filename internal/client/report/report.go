// Package report computes the user-activity figures shown on the login
// report screen. Everything here is a pure function of its input.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sunvoyage/portal/internal/client/models"
)

// ZeroTotalTime is the marker displayed for a user with no recorded
// intervals at all.
const ZeroTotalTime = "0000-00-00 00:00:00"

// UnknownTotalTime is displayed for a user whose only interval is still
// open: no duration can be computed yet, and showing zero would be wrong.
const UnknownTotalTime = "Unknown"

// Summary is the aggregate of one user's login/logout history.
type Summary struct {
	TotalTime string
	Online    bool
}

// Aggregate sums the closed intervals of one user's history and derives the
// online flag. Open intervals contribute nothing to the sum but mark the
// user online. Durations come from each interval's own "HH:MM:SS" field;
// components are summed independently and then carried (seconds to minutes
// at 60, minutes to hours at 60).
func Aggregate(intervals []models.SessionInterval) Summary {
	if len(intervals) == 0 {
		return Summary{TotalTime: ZeroTotalTime, Online: false}
	}

	online := false
	for _, iv := range intervals {
		if iv.Open() {
			online = true
			break
		}
	}

	if len(intervals) == 1 && intervals[0].Open() {
		return Summary{TotalTime: UnknownTotalTime, Online: true}
	}

	var hours, minutes, seconds int
	for _, iv := range intervals {
		if iv.Open() {
			continue
		}
		h, m, s := splitDuration(iv.TimeDifference)
		hours += h
		minutes += m
		seconds += s
	}

	minutes += seconds / 60
	seconds %= 60
	hours += minutes / 60
	minutes %= 60

	return Summary{
		TotalTime: fmt.Sprintf("%02d hrs %02d min %02d sec", hours, minutes, seconds),
		Online:    online,
	}
}

// splitDuration parses an "HH:MM:SS" string; malformed components count as
// zero rather than failing the whole report row.
func splitDuration(d string) (h, m, s int) {
	parts := strings.Split(d, ":")
	if len(parts) != 3 {
		return 0, 0, 0
	}
	h, _ = strconv.Atoi(parts[0])
	m, _ = strconv.Atoi(parts[1])
	s, _ = strconv.Atoi(parts[2])
	return h, m, s
}
