package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/VihaFernando/TickTocker/internal/domain"
	"github.com/VihaFernando/TickTocker/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTimers is a mutex-guarded repo.TimerRepo. InOwnerTx holds the lock
// for the whole callback, which is enough for handler-level tests.
type fakeTimers struct {
	mu     sync.Mutex
	timers map[uuid.UUID]dom.Timer
}

var _ repo.TimerRepo = (*fakeTimers)(nil)

func newFakeTimers() *fakeTimers {
	return &fakeTimers{timers: make(map[uuid.UUID]dom.Timer)}
}

func (f *fakeTimers) InOwnerTx(_ context.Context, _ uuid.UUID, fn func(repo.TimerStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(fakeStore{f.timers})
}

func (f *fakeTimers) locked() fakeStore {
	f.mu.Lock()
	return fakeStore{f.timers}
}

func (f *fakeTimers) Insert(ctx context.Context, t dom.Timer) (dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.Insert(ctx, t)
}

func (f *fakeTimers) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.Count(ctx, ownerID)
}

func (f *fakeTimers) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.ListByOwner(ctx, ownerID)
}

func (f *fakeTimers) Get(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.Get(ctx, ownerID, id)
}

func (f *fakeTimers) GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.GetByShareID(ctx, shareID)
}

func (f *fakeTimers) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.Update(ctx, ownerID, id, name, date)
}

func (f *fakeTimers) Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	s := f.locked()
	defer f.mu.Unlock()
	return s.Delete(ctx, ownerID, id)
}

func (f *fakeTimers) ClearMain(ctx context.Context, ownerID uuid.UUID) error {
	s := f.locked()
	defer f.mu.Unlock()
	return s.ClearMain(ctx, ownerID)
}

func (f *fakeTimers) SetMain(ctx context.Context, ownerID, id uuid.UUID) error {
	s := f.locked()
	defer f.mu.Unlock()
	return s.SetMain(ctx, ownerID, id)
}

type fakeStore struct {
	data map[uuid.UUID]dom.Timer
}

func (s fakeStore) Insert(_ context.Context, t dom.Timer) (dom.Timer, error) {
	now := time.Now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	s.data[t.ID] = t
	return t, nil
}

func (s fakeStore) Count(_ context.Context, ownerID uuid.UUID) (int, error) {
	n := 0
	for _, t := range s.data {
		if t.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s fakeStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	list := make([]dom.Timer, 0)
	for _, t := range s.data {
		if t.OwnerID == ownerID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EventDate.Before(list[j].EventDate) })
	return list, nil
}

func (s fakeStore) Get(_ context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	t, ok := s.data[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Timer{}, pgx.ErrNoRows
	}
	return t, nil
}

func (s fakeStore) GetByShareID(_ context.Context, shareID uuid.UUID) (dom.Timer, error) {
	for _, t := range s.data {
		if t.ShareID == shareID {
			return t, nil
		}
	}
	return dom.Timer{}, pgx.ErrNoRows
}

func (s fakeStore) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return dom.Timer{}, err
	}
	t.EventName, t.EventDate, t.UpdatedAt = name, date, time.Now().UTC()
	s.data[id] = t
	return t, nil
}

func (s fakeStore) Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return dom.Timer{}, err
	}
	delete(s.data, id)
	return t, nil
}

func (s fakeStore) ClearMain(_ context.Context, ownerID uuid.UUID) error {
	for id, t := range s.data {
		if t.OwnerID == ownerID {
			t.IsMainDisplay = false
			s.data[id] = t
		}
	}
	return nil
}

func (s fakeStore) SetMain(ctx context.Context, ownerID, id uuid.UUID) error {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	t.IsMainDisplay = true
	s.data[id] = t
	return nil
}

// fakeUsers is an in-memory repo.UserRepo with a unique email.
type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]dom.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uuid.UUID]dom.User)}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) Create(_ context.Context, u dom.User) (dom.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	u.CreatedAt = time.Now().UTC()
	f.users[u.ID] = u
	return u, nil
}
