package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"biolink-server/internal/clients/redis"
	"biolink-server/internal/observability"
)

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service rate limits public intake endpoints with a fixed one-minute window.
// Redis backs the counters when available; otherwise an in-process fallback
// keeps single-instance deployments protected.
type Service struct {
	redis  *redis.Client
	logger *observability.Logger
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*localWindow
}

type localWindow struct {
	count   int
	resetAt time.Time
}

func NewService(redisClient *redis.Client, logger *observability.Logger) *Service {
	return &Service{
		redis:   redisClient,
		logger:  logger,
		now:     time.Now,
		windows: make(map[string]*localWindow),
	}
}

// Check counts one request against the key and reports whether it is allowed
func (s *Service) Check(ctx context.Context, key string, limit int) (Result, error) {
	if s.redis != nil && s.redis.IsEnabled() {
		result, err := s.checkRedis(ctx, key, limit)
		if err != nil {
			s.logger.InfoWithError(ctx, "redis rate limit check failed, using local fallback", err)
			return s.checkLocal(key, limit), nil
		}
		return result, nil
	}
	return s.checkLocal(key, limit), nil
}

func (s *Service) checkRedis(ctx context.Context, key string, limit int) (Result, error) {
	now := s.now()
	windowStart := now.Truncate(time.Minute)
	resetAt := windowStart.Add(time.Minute)
	redisKey := fmt.Sprintf("rl:%s:%d", key, windowStart.Unix())

	count, err := s.redis.IncrWithExpiry(ctx, redisKey, 2*time.Minute)
	if err != nil {
		return Result{}, err
	}

	if int(count) > limit {
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count),
		ResetAt:   resetAt,
	}, nil
}

func (s *Service) checkLocal(key string, limit int) Result {
	now := s.now()
	windowStart := now.Truncate(time.Minute)
	resetAt := windowStart.Add(time.Minute)

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &localWindow{resetAt: resetAt}
		s.windows[key] = w
	}
	w.count++

	// Opportunistic cleanup keeps the map bounded between restarts.
	if len(s.windows) > 10000 {
		for k, win := range s.windows {
			if !now.Before(win.resetAt) {
				delete(s.windows, k)
			}
		}
	}

	if w.count > limit {
		retryAfter := w.resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      w.resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - w.count,
		ResetAt:   w.resetAt,
	}
}
