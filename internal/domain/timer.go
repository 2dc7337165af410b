package domain

import (
	"time"

	"github.com/google/uuid"
)

// Timer is a named countdown owned by one user.
// At most one timer per owner has IsMainDisplay set.
type Timer struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	EventName     string    `json:"event_name"`
	EventDate     time.Time `json:"event_date"`
	IsMainDisplay bool      `json:"is_main_display"`
	ShareID       uuid.UUID `json:"share_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicTimer is what an anonymous visitor of a share link may see.
type PublicTimer struct {
	EventName string    `json:"event_name"`
	EventDate time.Time `json:"event_date"`
	ShareID   uuid.UUID `json:"share_id"`
}

// Public strips everything but the shareable fields.
func (t Timer) Public() PublicTimer {
	return PublicTimer{EventName: t.EventName, EventDate: t.EventDate, ShareID: t.ShareID}
}
