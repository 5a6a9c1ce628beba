package app

import (
	"fmt"

	secretsHTTP "github.com/allisson/burnbox/internal/secrets/http"
	secretsRepository "github.com/allisson/burnbox/internal/secrets/repository"
	secretsUsecase "github.com/allisson/burnbox/internal/secrets/usecase"
)

// SecretRepository returns the secret repository for the active store driver.
func (c *Container) SecretRepository() (secretsUsecase.SecretRepository, error) {
	var err error
	c.secretRepositoryInit.Do(func() {
		c.secretRepository, err = c.initSecretRepository()
		if err != nil {
			c.initErrors["secretRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretRepository"]; exists {
		return nil, storedErr
	}
	return c.secretRepository, nil
}

// SecretUseCase returns the secret use case.
func (c *Container) SecretUseCase() (secretsUsecase.SecretUseCase, error) {
	var err error
	c.secretUseCaseInit.Do(func() {
		c.secretUseCase, err = c.initSecretUseCase()
		if err != nil {
			c.initErrors["secretUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretUseCase"]; exists {
		return nil, storedErr
	}
	return c.secretUseCase, nil
}

// initSecretRepository creates the secret repository instance.
func (c *Container) initSecretRepository() (secretsUsecase.SecretRepository, error) {
	switch c.config.StoreDriver {
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secret repository: %w", err)
		}
		return secretsRepository.NewPostgreSQLSecretRepository(db), nil

	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secret repository: %w", err)
		}
		return secretsRepository.NewMySQLSecretRepository(db), nil

	case "redis":
		client, err := c.RedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis client for secret repository: %w", err)
		}
		return secretsRepository.NewRedisSecretRepository(client), nil

	case "memory":
		return secretsRepository.NewMemorySecretRepository(memoryCleanupInterval), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}

// initSecretUseCase creates the secret use case with all its dependencies.
// The metrics decorator is always applied; with metrics disabled it wraps a
// no-op recorder.
func (c *Container) initSecretUseCase() (secretsUsecase.SecretUseCase, error) {
	secretRepository, err := c.SecretRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret repository for secret use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for secret use case: %w", err)
	}

	useCase := secretsUsecase.NewSecretUseCase(secretRepository, c.config.SecretTTL)
	return secretsUsecase.NewSecretUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSecretHandler creates the HTTP handler for secret exchange.
func (c *Container) initSecretHandler() (*secretsHTTP.SecretHandler, error) {
	secretUseCase, err := c.SecretUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret use case for secret handler: %w", err)
	}

	return secretsHTTP.NewSecretHandler(secretUseCase, c.Logger()), nil
}
