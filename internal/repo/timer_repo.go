package repo

import (
	"context"
	"fmt"
	"time"

	dom "github.com/VihaFernando/TickTocker/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TimerStore is the owner-scoped timer persistence. Lookups that miss
// (unknown id or another owner's id) return pgx.ErrNoRows.
type TimerStore interface {
	Insert(ctx context.Context, t dom.Timer) (dom.Timer, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error)
	GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.Timer, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error)
	ClearMain(ctx context.Context, ownerID uuid.UUID) error
	SetMain(ctx context.Context, ownerID, id uuid.UUID) error
}

// TimerRepo is a TimerStore that can run several calls as one unit.
type TimerRepo interface {
	TimerStore
	// InOwnerTx runs fn in a single transaction that holds the owner's lock
	// until commit. Other InOwnerTx calls for the same owner wait for it.
	InOwnerTx(ctx context.Context, ownerID uuid.UUID, fn func(TimerStore) error) error
}

const timerColumns = `id, user_id, event_name, event_date, is_main_display, share_id, created_at, updated_at`

const lockOwnerSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// PGTimerRepo implements TimerRepo with Postgres.
type PGTimerRepo struct {
	pgTimerStore
	db DB
}

// NewPGTimerRepo returns a new PGTimerRepo.
func NewPGTimerRepo(db DB) *PGTimerRepo {
	return &PGTimerRepo{pgTimerStore: pgTimerStore{q: db}, db: db}
}

func (r *PGTimerRepo) InOwnerTx(ctx context.Context, ownerID uuid.UUID, fn func(TimerStore) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.Exec(ctx, lockOwnerSQL, ownerID.String()); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("lock owner: %w", err)
	}
	if err := fn(&pgTimerStore{q: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type pgTimerStore struct {
	q Querier
}

func (s *pgTimerStore) Insert(ctx context.Context, t dom.Timer) (dom.Timer, error) {
	query := `
		INSERT INTO timers (id, user_id, event_name, event_date, is_main_display, share_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + timerColumns
	return scanTimer(s.q.QueryRow(ctx, query,
		t.ID, t.OwnerID, t.EventName, t.EventDate.UTC(), t.IsMainDisplay, t.ShareID,
	))
}

func (s *pgTimerStore) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	err := s.q.QueryRow(ctx, `SELECT COUNT(*) FROM timers WHERE user_id = $1`, ownerID).Scan(&n)
	return n, err
}

func (s *pgTimerStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	query := `SELECT ` + timerColumns + `
		FROM timers WHERE user_id = $1
		ORDER BY event_date ASC, id ASC`
	rows, err := s.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]dom.Timer, 0)
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (s *pgTimerStore) Get(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	query := `SELECT ` + timerColumns + ` FROM timers WHERE id = $1 AND user_id = $2`
	return scanTimer(s.q.QueryRow(ctx, query, id, ownerID))
}

func (s *pgTimerStore) GetByShareID(ctx context.Context, shareID uuid.UUID) (dom.Timer, error) {
	query := `SELECT ` + timerColumns + ` FROM timers WHERE share_id = $1`
	return scanTimer(s.q.QueryRow(ctx, query, shareID))
}

func (s *pgTimerStore) Update(ctx context.Context, ownerID, id uuid.UUID, name string, date time.Time) (dom.Timer, error) {
	query := `
		UPDATE timers SET event_name = $3, event_date = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + timerColumns
	return scanTimer(s.q.QueryRow(ctx, query, id, ownerID, name, date.UTC()))
}

func (s *pgTimerStore) Delete(ctx context.Context, ownerID, id uuid.UUID) (dom.Timer, error) {
	query := `DELETE FROM timers WHERE id = $1 AND user_id = $2 RETURNING ` + timerColumns
	return scanTimer(s.q.QueryRow(ctx, query, id, ownerID))
}

func (s *pgTimerStore) ClearMain(ctx context.Context, ownerID uuid.UUID) error {
	_, err := s.q.Exec(ctx,
		`UPDATE timers SET is_main_display = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_main_display`,
		ownerID)
	return err
}

func (s *pgTimerStore) SetMain(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE timers SET is_main_display = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTimer(row pgx.Row) (dom.Timer, error) {
	var t dom.Timer
	err := row.Scan(&t.ID, &t.OwnerID, &t.EventName, &t.EventDate, &t.IsMainDisplay,
		&t.ShareID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return dom.Timer{}, err
	}
	t.EventDate = t.EventDate.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
