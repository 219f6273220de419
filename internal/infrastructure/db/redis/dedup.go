package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// dedupTTL bounds how long an idempotency key blocks resubmission. Past it, a
// retry creates a fresh donation rather than being rejected.
const dedupTTL = 24 * time.Hour

// DedupChecker provides donation idempotency checks backed by Redis.
// Key format: donation:<user_id>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this key has already been used by the user.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID, key string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this key has been consumed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID, key string) error {
	return d.client.Set(ctx, d.key(userID, key), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID, key string) string {
	return fmt.Sprintf("donation:%s:%s", userID, key)
}
