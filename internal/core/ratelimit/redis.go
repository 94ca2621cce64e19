package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// slidingWindowScript implements a two-bucket sliding window approximation.
// The current fixed bucket is counted in full and the previous bucket is
// weighted by how much of it still falls inside the trailing window. The
// whole read/compute/write cycle runs as one Lua script, so the quota holds
// across any number of service instances without in-process locking, and
// window arithmetic uses Redis server time so instance clocks can't skew it.
//
// KEYS[1] = base key for the identity
// ARGV[1] = quota, ARGV[2] = window length in milliseconds
// Returns 1 if admitted, 0 if rejected.
var slidingWindowScript = redis.NewScript(`
local t = redis.call("TIME")
local now = t[1] * 1000 + math.floor(t[2] / 1000)
local window = tonumber(ARGV[2])
local quota = tonumber(ARGV[1])

local bucket = math.floor(now / window)
local cur_key = KEYS[1] .. ":" .. bucket
local prev_key = KEYS[1] .. ":" .. (bucket - 1)

local cur = tonumber(redis.call("GET", cur_key) or "0")
local prev = tonumber(redis.call("GET", prev_key) or "0")

local weight = 1 - ((now % window) / window)
if cur + prev * weight >= quota then
	return 0
end

redis.call("INCR", cur_key)
redis.call("PEXPIRE", cur_key, window * 2)
return 1
`)

// RedisLimiter enforces the write quota against a shared Redis counter
// store, so the limit holds cluster-wide.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
}

// NewRedisLimiter creates a limiter on the given client.
// prefix namespaces the counter keys so the Redis instance can be shared
// with other applications; "chirper:ratelimit" is used if empty.
func NewRedisLimiter(client *redis.Client, cfg Config, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = "chirper:ratelimit"
	}
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		prefix: prefix,
	}
}

// TryAcquire checks and records one attempt for key.
func (l *RedisLimiter) TryAcquire(ctx context.Context, key string) (bool, error) {
	keys := []string{l.prefix + ":" + key}
	args := []interface{}{l.cfg.Limit, l.cfg.Window.Milliseconds()}

	admitted, err := slidingWindowScript.Run(ctx, l.client, keys, args...).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}
	return admitted == 1, nil
}
