package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dom "github.com/VihaFernando/TickTocker/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyList      = "timer:list:"
	keyListVer   = "timer:listver:"
	keyShared    = "timer:share:"
	keySharedVer = "timer:sharever:"

	// versionTTL outlives any in-flight read by a wide margin.
	versionTTL = 24 * time.Hour
)

// ErrStale reports a set skipped because the entry was invalidated after the
// caller read its version.
var ErrStale = errors.New("cache: entry invalidated during read")

// TimerCache caches owner timer lists and shared timers in Redis.
type TimerCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTimerCache returns a new TimerCache.
func NewTimerCache(rdb *redis.Client, ttl time.Duration) *TimerCache {
	return &TimerCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for owner or nil on a miss.
func (c *TimerCache) GetList(ctx context.Context, ownerID uuid.UUID) ([]dom.Timer, error) {
	var list []dom.Timer
	ok, err := c.get(ctx, keyList+ownerID.String(), &list)
	if err != nil || !ok {
		return nil, err
	}
	if list == nil {
		list = []dom.Timer{}
	}
	return list, nil
}

// ListVersion returns the generation of the owner's list. Read it before
// loading from the store and hand it to SetList.
func (c *TimerCache) ListVersion(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	return c.version(ctx, keyListVer+ownerID.String())
}

// SetList stores the owner's list if no invalidation happened since ver was read.
func (c *TimerCache) SetList(ctx context.Context, ownerID uuid.UUID, ver int64, list []dom.Timer) error {
	if list == nil {
		list = []dom.Timer{}
	}
	return c.setAt(ctx, keyListVer+ownerID.String(), keyList+ownerID.String(), ver, list)
}

// InvalidateOwner drops the owner's cached list and bumps its version.
func (c *TimerCache) InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error {
	return c.bump(ctx, keyListVer+ownerID.String(), keyList+ownerID.String())
}

// GetShared returns the cached public view or nil on a miss.
func (c *TimerCache) GetShared(ctx context.Context, shareID uuid.UUID) (*dom.PublicTimer, error) {
	var pt dom.PublicTimer
	ok, err := c.get(ctx, keyShared+shareID.String(), &pt)
	if err != nil || !ok {
		return nil, err
	}
	return &pt, nil
}

// SharedVersion returns the generation of a share entry.
func (c *TimerCache) SharedVersion(ctx context.Context, shareID uuid.UUID) (int64, error) {
	return c.version(ctx, keySharedVer+shareID.String())
}

// SetShared stores a public view if no invalidation happened since ver was read.
func (c *TimerCache) SetShared(ctx context.Context, ver int64, pt dom.PublicTimer) error {
	return c.setAt(ctx, keySharedVer+pt.ShareID.String(), keyShared+pt.ShareID.String(), ver, pt)
}

// InvalidateShared drops a cached public view and bumps its version.
func (c *TimerCache) InvalidateShared(ctx context.Context, shareID uuid.UUID) error {
	return c.bump(ctx, keySharedVer+shareID.String(), keyShared+shareID.String())
}

func (c *TimerCache) version(ctx context.Context, verKey string) (int64, error) {
	v, err := c.rdb.Get(ctx, verKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return v, err
}

// bump invalidates key. The version moves in the same MULTI as the delete.
func (c *TimerCache) bump(ctx context.Context, verKey, key string) error {
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, verKey)
		p.Expire(ctx, verKey, versionTTL)
		p.Del(ctx, key)
		return nil
	})
	return err
}

// setAt writes v under key only while verKey still holds ver. WATCH aborts
// the write if a bump lands between the check and EXEC.
func (c *TimerCache) setAt(ctx context.Context, verKey, key string, ver int64, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, verKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != ver {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, b, c.ttl)
			return nil
		})
		return err
	}, verKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

func (c *TimerCache) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, err
	}
	return true, nil
}
