package service

import (
	"context"
	"sync"
	"time"

	dom "github.com/VihaFernando/TickTocker/internal/domain"
	"github.com/VihaFernando/TickTocker/internal/repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memRepo is an in-memory repo.TimerRepo. One mutex serializes every call,
// and InOwnerTx works on a copy that replaces the live map only on success,
// so readers see committed states only.
type memRepo struct {
	mu     sync.Mutex
	timers map[uuid.UUID]dom.Timer
	now    func() time.Time
	failOn map[string]error

	maxMains int
}

var _ repo.TimerRepo = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		timers: make(map[uuid.UUID]dom.Timer),
		now:    time.Now,
		failOn: make(map[string]error),
	}
}

func (r *memRepo) store(data map[uuid.UUID]dom.Timer) *memStore {
	return &memStore{data: data, now: r.now, failOn: r.failOn}
}

func (r *memRepo) InOwnerTx(ctx context.Context, ownerID uuid.UUID, fn func(repo.TimerStore) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn["tx"]; err != nil {
		return err
	}
	work := make(map[uuid.UUID]dom.Timer, len(r.timers))
	for k, v := range r.timers {
		work[k] = v
	}
	if err := fn(r.store(work)); err != nil {
		return err
	}
	r.timers = work
	r.recordMains()
	return nil
}

func (r *memRepo) recordMains() {
	perOwner := make(map[uuid.UUID]int)
	for _, t := range r.timers {
		if t.IsMainDisplay {
			perOwner[t.OwnerID]++
			if perOwner[t.OwnerID] > r.maxMains {
				r.maxMains = perOwner[t.OwnerID]
			}
		}
	}
}

func (r *memRepo) snapshot() map[uuid.UUID]dom.Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[uuid.UUID]dom.Timer, len(r.timers))
	for k, v := range r.timers {
		out[k] = v
	}
	return out
}

func (r *memRepo) mainsOf(ownerID uuid.UUID) []uuid.UUID {
	var ids []uuid.UUID
	for _, t := range r.snapshot() {
		if t.OwnerID == ownerID && t.IsMainDisplay {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (r *memRepo) Insert(ctx context.Context, t dom.Timer) (dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, err := r.store(r.timers).Insert(ctx, t)
	r.recordMains()
	return out, err
}

func (r *memRepo) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).Count(ctx, ownerID)
}

func (r *memRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).ListByOwner(ctx, ownerID)
}

func (r *memRepo) Get(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).Get(ctx, ownerID, id)
}

func (r *memRepo) GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).GetByShareID(ctx, shareID)
}

func (r *memRepo) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).Update(ctx, ownerID, id, name, date)
}

func (r *memRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).Delete(ctx, ownerID, id)
}

func (r *memRepo) ClearMain(ctx context.Context, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store(r.timers).ClearMain(ctx, ownerID)
}

func (r *memRepo) SetMain(ctx context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	err := r.store(r.timers).SetMain(ctx, ownerID, id)
	r.recordMains()
	return err
}

// memStore applies operations to one map. It enforces the one-main-per-owner
// unique index the way Postgres would.
type memStore struct {
	data   map[uuid.UUID]dom.Timer
	now    func() time.Time
	failOn map[string]error
}

func (s *memStore) hasOtherMain(ownerID, except uuid.UUID) bool {
	for _, t := range s.data {
		if t.OwnerID == ownerID && t.IsMainDisplay && t.ID != except {
			return true
		}
	}
	return false
}

func uniqueMainViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "timers_one_main_per_owner"}
}

func (s *memStore) Insert(_ context.Context, t dom.Timer) (dom.Timer, error) {
	if err := s.failOn["insert"]; err != nil {
		return dom.Timer{}, err
	}
	if t.IsMainDisplay && s.hasOtherMain(t.OwnerID, t.ID) {
		return dom.Timer{}, uniqueMainViolation()
	}
	now := s.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now
	s.data[t.ID] = t
	return t, nil
}

func (s *memStore) Count(_ context.Context, ownerID uuid.UUID) (int, error) {
	n := 0
	for _, t := range s.data {
		if t.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *memStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	if err := s.failOn["list"]; err != nil {
		return nil, err
	}
	list := make([]dom.Timer, 0)
	for _, t := range s.data {
		if t.OwnerID == ownerID {
			list = append(list, t)
		}
	}
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && timerBefore(list[j], list[j-1]); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list, nil
}

func timerBefore(a, b dom.Timer) bool {
	if !a.EventDate.Equal(b.EventDate) {
		return a.EventDate.Before(b.EventDate)
	}
	return lessID(a.ID, b.ID)
}

func (s *memStore) Get(_ context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	t, ok := s.data[id]
	if !ok || t.OwnerID != ownerID {
		return dom.Timer{}, pgx.ErrNoRows
	}
	return t, nil
}

func (s *memStore) GetByShareID(_ context.Context, shareID uuid.UUID) (dom.Timer, error) {
	for _, t := range s.data {
		if t.ShareID == shareID {
			return t, nil
		}
	}
	return dom.Timer{}, pgx.ErrNoRows
}

func (s *memStore) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return dom.Timer{}, err
	}
	t.EventName = name
	t.EventDate = date
	t.UpdatedAt = s.now().UTC()
	s.data[id] = t
	return t, nil
}

func (s *memStore) Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return dom.Timer{}, err
	}
	delete(s.data, id)
	return t, nil
}

func (s *memStore) ClearMain(_ context.Context, ownerID uuid.UUID) error {
	for id, t := range s.data {
		if t.OwnerID == ownerID && t.IsMainDisplay {
			t.IsMainDisplay = false
			t.UpdatedAt = s.now().UTC()
			s.data[id] = t
		}
	}
	return nil
}

func (s *memStore) SetMain(ctx context.Context, ownerID, id uuid.UUID) error {
	t, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if s.hasOtherMain(ownerID, id) {
		return uniqueMainViolation()
	}
	t.IsMainDisplay = true
	t.UpdatedAt = s.now().UTC()
	s.data[id] = t
	return nil
}

// gatedRepo pauses one armed read after it has loaded from the store, so a
// test can commit a write while that read is still in flight.
type gatedRepo struct {
	*memRepo
	mu    sync.Mutex
	gates map[string]*readGate
}

type readGate struct {
	loaded  chan struct{}
	release chan struct{}
}

func newGatedRepo(r *memRepo) *gatedRepo {
	return &gatedRepo{memRepo: r, gates: make(map[string]*readGate)}
}

// arm makes the next op read ("list" or "share") wait for release.
func (g *gatedRepo) arm(op string) *readGate {
	gt := &readGate{loaded: make(chan struct{}), release: make(chan struct{})}
	g.mu.Lock()
	g.gates[op] = gt
	g.mu.Unlock()
	return gt
}

func (g *gatedRepo) pause(op string) {
	g.mu.Lock()
	gt := g.gates[op]
	delete(g.gates, op)
	g.mu.Unlock()
	if gt != nil {
		close(gt.loaded)
		<-gt.release
	}
}

func (g *gatedRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	list, err := g.memRepo.ListByOwner(ctx, ownerID)
	g.pause("list")
	return list, err
}

func (g *gatedRepo) GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.Timer, error) {
	t, err := g.memRepo.GetByShareID(ctx, shareID)
	g.pause("share")
	return t, err
}
