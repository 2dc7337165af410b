// Package countdown computes the time left until an event and drives the
// once-per-second refresh used by countdown displays.
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour

	// weekDays is compared against the Days component, not total hours.
	weekDays = 7
)

// PastLabel is shown once the event instant has been reached.
const PastLabel = "Event has passed"

// Mode tells a display which units to render.
type Mode string

const (
	ModePast Mode = "past"
	// ModeHMS renders TotalHours:Minutes:Seconds.
	ModeHMS Mode = "hms"
	// ModeDHM renders Days, Hours, Minutes; seconds are omitted.
	ModeDHM Mode = "dhm"
)

// Remaining is the breakdown of the time left until a target instant.
type Remaining struct {
	Days           int64 `json:"days"`
	Hours          int64 `json:"hours"`
	Minutes        int64 `json:"minutes"`
	Seconds        int64 `json:"seconds"`
	TotalHours     int64 `json:"total_hours"`
	IsLessThanWeek bool  `json:"is_less_than_week"`
	IsPast         bool  `json:"is_past"`
}

// Compute returns the time left from now until target.
// A target at or before now yields IsPast with every number zeroed.
func Compute(target, now time.Time) Remaining {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return Remaining{IsLessThanWeek: true, IsPast: true}
	}
	days := diff / msPerDay
	return Remaining{
		Days:           days,
		Hours:          (diff / msPerHour) % 24,
		Minutes:        (diff / msPerMinute) % 60,
		Seconds:        (diff / msPerSecond) % 60,
		TotalHours:     diff / msPerHour,
		IsLessThanWeek: days < weekDays,
	}
}

// Mode reports how r should be displayed.
func (r Remaining) Mode() Mode {
	switch {
	case r.IsPast:
		return ModePast
	case r.IsLessThanWeek:
		return ModeHMS
	default:
		return ModeDHM
	}
}

// String formats r as "HH:MM:SS" under a week, "Nd HHh MMm" otherwise.
func (r Remaining) String() string {
	switch r.Mode() {
	case ModePast:
		return PastLabel
	case ModeHMS:
		return fmt.Sprintf("%02d:%02d:%02d", r.TotalHours, r.Minutes, r.Seconds)
	default:
		return fmt.Sprintf("%dd %02dh %02dm", r.Days, r.Hours, r.Minutes)
	}
}
