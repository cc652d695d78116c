package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultClaimTTL = 10 * time.Second

// releaseScript deletes the claim only when it still holds our token, so an
// expired claim re-acquired by another instance is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// UsernameClaims reserves usernames for the duration of a create request.
// Key format: user:claim:<username>
type UsernameClaims struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUsernameClaims wraps client. A non-positive ttl falls back to 10s.
func NewUsernameClaims(client *redis.Client, ttl time.Duration) *UsernameClaims {
	if ttl <= 0 {
		ttl = defaultClaimTTL
	}
	return &UsernameClaims{client: client, ttl: ttl}
}

// Claim tries to reserve username. ok is false when another request holds
// it. The returned token identifies this reservation and must be passed to
// Release.
func (c *UsernameClaims) Claim(ctx context.Context, username string) (token string, ok bool, err error) {
	token = uuid.NewString()
	ok, err = c.client.SetNX(ctx, c.key(username), token, c.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("claim username: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release drops the reservation if it is still held under token.
func (c *UsernameClaims) Release(ctx context.Context, username, token string) error {
	if err := releaseScript.Run(ctx, c.client, []string{c.key(username)}, token).Err(); err != nil {
		return fmt.Errorf("release username: %w", err)
	}
	return nil
}

func (c *UsernameClaims) key(username string) string {
	return "user:claim:" + username
}
