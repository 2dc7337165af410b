package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/VihaFernando/TickTocker/internal/cache"
	dom "github.com/VihaFernando/TickTocker/internal/domain"
	"github.com/VihaFernando/TickTocker/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const maxEventNameLen = 120

// TimerService owns the timer lifecycle. Every owner-scoped call takes the
// owner id explicitly; uuid.Nil means no session.
type TimerService struct {
	repo  repo.TimerRepo
	cache *cache.TimerCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewTimerService creates a TimerService. If c is nil, caching is disabled.
func NewTimerService(r repo.TimerRepo, c *cache.TimerCache) *TimerService {
	return &TimerService{repo: r, cache: c, now: time.Now}
}

// Now is the instant the service compares event dates against.
func (s *TimerService) Now() time.Time {
	return s.now().UTC()
}

// Create stores a new timer. The owner's first timer becomes the main one;
// the count and the insert share one owner-locked transaction.
func (s *TimerService) Create(ctx context.Context, ownerID uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	if ownerID == uuid.Nil {
		return dom.Timer{}, ErrUnauthenticated
	}
	name, err := validateTimer(name, date)
	if err != nil {
		return dom.Timer{}, err
	}

	var created dom.Timer
	err = s.repo.InOwnerTx(ctx, ownerID, func(tx repo.TimerStore) error {
		n, err := tx.Count(ctx, ownerID)
		if err != nil {
			return err
		}
		created, err = tx.Insert(ctx, dom.Timer{
			ID:            uuid.New(),
			OwnerID:       ownerID,
			EventName:     name,
			EventDate:     date.UTC(),
			IsMainDisplay: n == 0,
			ShareID:       uuid.New(),
		})
		return err
	})
	if err != nil {
		return dom.Timer{}, storageErr("create timer", err)
	}
	s.invalidateOwner(ctx, ownerID)
	return created, nil
}

// List returns the owner's timers, soonest event first.
//
// The cache version is read before the store. Concurrent callers at the same
// version share one load, and a load that raced a write is not cached, so a
// call that starts after a write returns never sees the previous list.
func (s *TimerService) List(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	ver, ok := s.listVersion(ctx, ownerID)
	if !ok {
		list, err := s.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, storageErr("list timers", err)
		}
		return list, nil
	}
	v, err, _ := s.sf.Do("list:"+ownerID.String()+":"+strconv.FormatInt(ver, 10), func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, ownerID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetList(ctx, ownerID, ver, list); err != nil && !errors.Is(err, cache.ErrStale) {
			log.Printf("timer cache: set list %s: %v", ownerID, err)
		}
		return list, nil
	})
	if err != nil {
		return nil, storageErr("list timers", err)
	}
	return v.([]dom.Timer), nil
}

// GetMain returns the owner's main timer as chosen by SelectMain, or nil.
func (s *TimerService) GetMain(ctx context.Context, ownerID uuid.UUID) (*dom.Timer, error) {
	list, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return SelectMain(list, s.Now()), nil
}

// Get returns one of the owner's timers.
func (s *TimerService) Get(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	if ownerID == uuid.Nil {
		return dom.Timer{}, ErrUnauthenticated
	}
	t, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return dom.Timer{}, mapLookupErr("get timer", err)
	}
	return t, nil
}

// Update overwrites name and date. The main flag is left alone.
func (s *TimerService) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	if ownerID == uuid.Nil {
		return dom.Timer{}, ErrUnauthenticated
	}
	name, err := validateTimer(name, date)
	if err != nil {
		return dom.Timer{}, err
	}
	t, err := s.repo.Update(ctx, ownerID, id, name, date.UTC())
	if err != nil {
		return dom.Timer{}, mapLookupErr("update timer", err)
	}
	s.invalidateOwner(ctx, ownerID)
	s.invalidateShared(ctx, t.ShareID)
	return t, nil
}

// Delete removes the timer for good. If it was the main timer no other
// timer is promoted; GetMain falls back to the soonest upcoming one.
func (s *TimerService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if ownerID == uuid.Nil {
		return ErrUnauthenticated
	}
	t, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return mapLookupErr("delete timer", err)
	}
	s.invalidateOwner(ctx, ownerID)
	s.invalidateShared(ctx, t.ShareID)
	return nil
}

// GetByShareID serves share links. No session needed; only public fields leave.
// Caching follows List: a load that raced an update or delete is not stored.
func (s *TimerService) GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.PublicTimer, error) {
	ver, ok := s.sharedVersion(ctx, shareID)
	if !ok {
		t, err := s.repo.GetByShareID(ctx, shareID)
		if err != nil {
			return dom.PublicTimer{}, mapLookupErr("get shared timer", err)
		}
		return t.Public(), nil
	}
	v, err, _ := s.sf.Do("share:"+shareID.String()+":"+strconv.FormatInt(ver, 10), func() (interface{}, error) {
		if pt, err := s.cache.GetShared(ctx, shareID); err == nil && pt != nil {
			return *pt, nil
		}
		t, err := s.repo.GetByShareID(ctx, shareID)
		if err != nil {
			return nil, err
		}
		pt := t.Public()
		if err := s.cache.SetShared(ctx, ver, pt); err != nil && !errors.Is(err, cache.ErrStale) {
			log.Printf("timer cache: set share %s: %v", shareID, err)
		}
		return pt, nil
	})
	if err != nil {
		return dom.PublicTimer{}, mapLookupErr("get shared timer", err)
	}
	return v.(dom.PublicTimer), nil
}

// listVersion reports the owner's cache version; ok is false when the cache
// is disabled or unreachable, in which case nothing is cached.
func (s *TimerService) listVersion(ctx context.Context, ownerID uuid.UUID) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	ver, err := s.cache.ListVersion(ctx, ownerID)
	if err != nil {
		log.Printf("timer cache: list version %s: %v", ownerID, err)
		return 0, false
	}
	return ver, true
}

func (s *TimerService) sharedVersion(ctx context.Context, shareID uuid.UUID) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	ver, err := s.cache.SharedVersion(ctx, shareID)
	if err != nil {
		log.Printf("timer cache: share version %s: %v", shareID, err)
		return 0, false
	}
	return ver, true
}

func validateTimer(name string, date time.Time) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || date.IsZero() {
		return "", validationErr("event name and date are required")
	}
	if len([]rune(name)) > maxEventNameLen {
		return "", validationErr("event name is too long")
	}
	return name, nil
}

func mapLookupErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFoundOrForbidden
	}
	return storageErr(op, err)
}

func (s *TimerService) invalidateOwner(ctx context.Context, ownerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOwner(ctx, ownerID); err != nil {
		log.Printf("timer cache: invalidate owner %s: %v", ownerID, err)
	}
}

func (s *TimerService) invalidateShared(ctx context.Context, shareID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateShared(ctx, shareID); err != nil {
		log.Printf("timer cache: invalidate share %s: %v", shareID, err)
	}
}
