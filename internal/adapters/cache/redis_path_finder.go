package cache

import (
	"context"
	"errors"
	"fmt"
	"gold-route-service/internal/domain"
	"gold-route-service/internal/platform/obs"
	"gold-route-service/internal/ports"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sentinel value cached for pairs with no route, so negative lookups do
// not recompute on every request.
const noRouteMarker = "!"

// RedisPathFinder is a read-through cache over another PathFinder.
// Entries are keyed per problem and node pair; the cache is best-effort,
// so any Redis failure falls through to the inner finder.
type RedisPathFinder struct {
	Client *redis.Client
	Inner  ports.PathFinder
	TTL    time.Duration
}

func NewRedisPathFinder(client *redis.Client, inner ports.PathFinder, ttl time.Duration) *RedisPathFinder {
	return &RedisPathFinder{Client: client, Inner: inner, TTL: ttl}
}

func pathKey(prob *domain.Problem, from, to int) string {
	return fmt.Sprintf("spath:%s:%d:%d", prob.ID, from, to)
}

func (c *RedisPathFinder) ShortestPath(ctx context.Context, prob *domain.Problem, from, to int) (_ []int, err error) {
	defer obs.Time(ctx, "path.cache.ShortestPath")(&err)

	if c.Client == nil {
		return nil, errors.New("path cache: client is nil")
	}

	key := pathKey(prob, from, to)

	cached, getErr := c.Client.Get(ctx, key).Result()
	switch {
	case getErr == nil:
		if cached == noRouteMarker {
			return nil, fmt.Errorf("shortest path %d -> %d: %w", from, to, ports.ErrNoRoute)
		}
		path, decErr := decodePath(cached)
		if decErr == nil {
			return path, nil
		}
		log.Printf("path cache: decode key=%s err=%v", key, decErr)
	case errors.Is(getErr, redis.Nil):
		// cache miss
	default:
		log.Printf("path cache: get key=%s err=%v", key, getErr)
	}

	path, err := c.Inner.ShortestPath(ctx, prob, from, to)
	if err != nil {
		if errors.Is(err, ports.ErrNoRoute) {
			c.store(ctx, key, noRouteMarker)
		}
		return nil, err
	}

	c.store(ctx, key, encodePath(path))
	return path, nil
}

// store writes best-effort: a failed cache write only costs a recompute.
func (c *RedisPathFinder) store(ctx context.Context, key, value string) {
	if err := c.Client.Set(ctx, key, value, c.TTL).Err(); err != nil {
		log.Printf("path cache: set key=%s err=%v", key, err)
	}
}

func encodePath(path []int) string {
	parts := make([]string, len(path))
	for i, n := range path {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodePath(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("empty cached path")
	}
	parts := strings.Split(s, ",")
	path := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad cached node %q: %w", p, err)
		}
		path[i] = n
	}
	return path, nil
}
