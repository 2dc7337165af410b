package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	dom "github.com/VihaFernando/TickTocker/internal/domain"
	"github.com/VihaFernando/TickTocker/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SelectMain picks the timer to show prominently: the one flagged main,
// otherwise the soonest timer still in the future. Past timers are never a
// fallback, so the result is nil when nothing qualifies.
func SelectMain(timers []dom.Timer, now time.Time) *dom.Timer {
	var flagged, upcoming *dom.Timer
	for i := range timers {
		t := &timers[i]
		if t.IsMainDisplay {
			if flagged == nil || lessID(t.ID, flagged.ID) {
				flagged = t
			}
			continue
		}
		if !t.EventDate.After(now) {
			continue
		}
		if upcoming == nil || t.EventDate.Before(upcoming.EventDate) ||
			(t.EventDate.Equal(upcoming.EventDate) && lessID(t.ID, upcoming.ID)) {
			upcoming = t
		}
	}
	if flagged != nil {
		out := *flagged
		return &out
	}
	if upcoming != nil {
		out := *upcoming
		return &out
	}
	return nil
}

func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// SetMain makes timerID the owner's only main timer. Clearing and setting
// happen in one owner-locked transaction, so readers never see zero or two
// main timers and concurrent calls settle on the last commit.
func (s *TimerService) SetMain(ctx context.Context, ownerID, timerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrUnauthenticated
	}
	err := s.repo.InOwnerTx(ctx, ownerID, func(tx repo.TimerStore) error {
		if _, err := tx.Get(ctx, ownerID, timerID); err != nil {
			return err
		}
		if err := tx.ClearMain(ctx, ownerID); err != nil {
			return err
		}
		return tx.SetMain(ctx, ownerID, timerID)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFoundOrForbidden
		}
		return storageErr("set main", err)
	}
	s.invalidateOwner(ctx, ownerID)
	return nil
}
