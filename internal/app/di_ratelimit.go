package app

import (
	"fmt"

	ratelimitRepository "github.com/allisson/burnbox/internal/ratelimit/repository"
	ratelimitService "github.com/allisson/burnbox/internal/ratelimit/service"
)

// CounterRepository returns the rate limit counter repository for the active
// store driver. Counters live in the same store as the secrets.
func (c *Container) CounterRepository() (ratelimitService.CounterRepository, error) {
	var err error
	c.counterRepositoryInit.Do(func() {
		c.counterRepository, err = c.initCounterRepository()
		if err != nil {
			c.initErrors["counterRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["counterRepository"]; exists {
		return nil, storedErr
	}
	return c.counterRepository, nil
}

// RateLimiter returns the fixed-window rate limiter.
func (c *Container) RateLimiter() (ratelimitService.RateLimiter, error) {
	var err error
	c.rateLimiterInit.Do(func() {
		c.rateLimiter, err = c.initRateLimiter()
		if err != nil {
			c.initErrors["rateLimiter"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["rateLimiter"]; exists {
		return nil, storedErr
	}
	return c.rateLimiter, nil
}

// initCounterRepository creates the counter repository instance.
func (c *Container) initCounterRepository() (ratelimitService.CounterRepository, error) {
	switch c.config.StoreDriver {
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for counter repository: %w", err)
		}
		return ratelimitRepository.NewPostgreSQLCounterRepository(db), nil

	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for counter repository: %w", err)
		}
		return ratelimitRepository.NewMySQLCounterRepository(db), nil

	case "redis":
		client, err := c.RedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis client for counter repository: %w", err)
		}
		return ratelimitRepository.NewRedisCounterRepository(client), nil

	case "memory":
		return ratelimitRepository.NewMemoryCounterRepository(memoryCleanupInterval), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}

// initRateLimiter creates the rate limiter with its counter store.
func (c *Container) initRateLimiter() (ratelimitService.RateLimiter, error) {
	counterRepository, err := c.CounterRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get counter repository for rate limiter: %w", err)
	}

	return ratelimitService.NewLimiter(counterRepository), nil
}
