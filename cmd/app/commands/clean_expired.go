package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	ratelimitService "github.com/allisson/burnbox/internal/ratelimit/service"
	secretsUseCase "github.com/allisson/burnbox/internal/secrets/usecase"
)

// RunCleanExpired deletes expired secrets and stale rate-limit counters.
// Both sweeps run concurrently. On the redis driver the store evicts by
// native TTL and the reported counts are zero.
//
// Requirements: the store must be migrated and accessible.
func RunCleanExpired(
	ctx context.Context,
	secretUseCase secretsUseCase.SecretUseCase,
	rateLimiter ratelimitService.RateLimiter,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("cleaning expired data")

	var secretCount, counterCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := secretUseCase.CleanupExpired(gctx)
		if err != nil {
			return fmt.Errorf("failed to cleanup expired secrets: %w", err)
		}
		secretCount = count
		return nil
	})
	g.Go(func() error {
		count, err := rateLimiter.CleanupStale(gctx)
		if err != nil {
			return fmt.Errorf("failed to cleanup stale rate counters: %w", err)
		}
		counterCount = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if format == "json" {
		outputCleanExpiredJSON(writer, secretCount, counterCount)
	} else {
		outputCleanExpiredText(writer, secretCount, counterCount)
	}

	logger.Info("cleanup completed",
		slog.Int64("expired_secrets", secretCount),
		slog.Int64("stale_rate_counters", counterCount),
	)

	return nil
}

// outputCleanExpiredText outputs the result in human-readable text format.
func outputCleanExpiredText(writer io.Writer, secretCount, counterCount int64) {
	fmt.Fprintf(writer, "Deleted %d expired secret(s) and %d stale rate counter(s)\n", secretCount, counterCount)
}

// outputCleanExpiredJSON outputs the result in JSON format for machine consumption.
func outputCleanExpiredJSON(writer io.Writer, secretCount, counterCount int64) {
	result := map[string]interface{}{
		"expired_secrets":     secretCount,
		"stale_rate_counters": counterCount,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(writer, string(jsonBytes))
}
