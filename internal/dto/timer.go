package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/VihaFernando/TickTocker/internal/countdown"
)

const (
	layoutDate          = "2006-01-02"
	layoutLocalDateTime = "2006-01-02T15:04"
)

// EventDate parses event_date from JSON as RFC3339, a zone-less local
// datetime ("2006-01-02T15:04[:05]", as sent by datetime-local inputs) or a
// date ("2006-01-02", start of that day). Zone-less values are resolved with
// the request's tz_offset_minutes, UTC when absent.
type EventDate struct {
	t        time.Time
	set      bool
	zoneless bool
}

func (d *EventDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("event_date: must be a string")
	}
	*d = EventDate{}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*d = EventDate{t: parsed, set: true}
			return nil
		}
	}
	for _, layout := range []string{"2006-01-02T15:04:05", layoutLocalDateTime, layoutDate} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*d = EventDate{t: parsed, set: true, zoneless: true}
			return nil
		}
	}
	return fmt.Errorf("event_date: use RFC3339, YYYY-MM-DDTHH:MM or YYYY-MM-DD")
}

// Instant returns the absolute instant, or the zero time when no date was sent.
// offsetMinutes follows JavaScript's Date.getTimezoneOffset: UTC minus local.
func (d EventDate) Instant(offsetMinutes *int) time.Time {
	if !d.set {
		return time.Time{}
	}
	if d.zoneless && offsetMinutes != nil {
		return d.t.Add(time.Duration(*offsetMinutes) * time.Minute).UTC()
	}
	return d.t.UTC()
}

// TimerRequest is the JSON body for creating or editing a timer.
type TimerRequest struct {
	EventName string    `json:"event_name" binding:"max=500"`
	EventDate EventDate `json:"event_date" swaggertype:"string" example:"2026-12-31T23:59:00Z"`
	// TZOffsetMinutes is Date.getTimezoneOffset() of the client; only used for zone-less dates.
	TZOffsetMinutes *int `json:"tz_offset_minutes" binding:"omitempty,min=-840,max=840"`
}

// RemainingResponse is the countdown as of the response time.
type RemainingResponse struct {
	countdown.Remaining
	Mode    countdown.Mode `json:"mode"`
	Display string         `json:"display"`
}

// NewRemainingResponse computes the countdown for target at now.
func NewRemainingResponse(target, now time.Time) RemainingResponse {
	r := countdown.Compute(target, now)
	return RemainingResponse{Remaining: r, Mode: r.Mode(), Display: r.String()}
}

type TimerResponse struct {
	ID            string            `json:"id"`
	EventName     string            `json:"event_name"`
	EventDate     time.Time         `json:"event_date"`
	IsMainDisplay bool              `json:"is_main_display"`
	ShareID       string            `json:"share_id"`
	ShareURL      string            `json:"share_url"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Remaining     RemainingResponse `json:"remaining"`
}

type ListTimersResponse struct {
	Items []TimerResponse `json:"items"`
}

// MainTimerResponse carries the main timer; Timer is null when there is none.
type MainTimerResponse struct {
	Timer *TimerResponse `json:"timer"`
}

// PublicTimerResponse is all an anonymous share-link visitor receives.
type PublicTimerResponse struct {
	EventName string            `json:"event_name"`
	EventDate time.Time         `json:"event_date"`
	ShareID   string            `json:"share_id"`
	Remaining RemainingResponse `json:"remaining"`
}
