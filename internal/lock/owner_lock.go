package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/campusmind/guidance-scheduler/internal/httperr"
)

// OwnerLocker serializes schedule writes per counselor. The resolver only
// answers against the snapshot it is given, so two concurrent requests
// validated against stale snapshots could both be accepted; holding this
// lock across list-resolve-persist closes that window on a single redis.
type OwnerLocker struct {
	rdb *redis.Client
	ttl time.Duration
}

const (
	lockRetryInterval = 50 * time.Millisecond
	lockMaxRetries    = 40
)

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

func NewOwnerLocker(rdb *redis.Client) *OwnerLocker {
	return &OwnerLocker{
		rdb: rdb,
		ttl: 5 * time.Second,
	}
}

// WithOwnerLock runs fn while holding the counselor's lock. With no redis
// configured it degrades to running fn directly; single-process
// deployments then rely on database constraints alone.
func (l *OwnerLocker) WithOwnerLock(ctx context.Context, ownerID uint, fn func() error) error {
	if l == nil || l.rdb == nil {
		return fn()
	}

	key := fmt.Sprintf("sched:lock:owner:%d", ownerID)
	token := uuid.NewString()

	acquired := false
	for i := 0; i < lockMaxRetries; i++ {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			acquired = true
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	if !acquired {
		return httperr.ErrBusiness("schedule_busy")
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
	}()

	return fn()
}
