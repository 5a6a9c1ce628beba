// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/burnbox/internal/app"
	"github.com/allisson/burnbox/internal/exchange"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// parseAlgorithm converts an algorithm string to exchange.Algorithm.
// Returns an error if the algorithm string is invalid.
func parseAlgorithm(algorithmStr string) (exchange.Algorithm, error) {
	switch algorithmStr {
	case "aes-gcm":
		return exchange.AESGCM, nil
	case "chacha20-poly1305":
		return exchange.ChaCha20, nil
	default:
		return "", fmt.Errorf(
			"invalid algorithm: %s (valid options: aes-gcm, chacha20-poly1305)",
			algorithmStr,
		)
	}
}

// buildShareLink composes the one-time link: the identifier as the path and
// the key as the URL fragment, which browsers and HTTP clients never send.
func buildShareLink(linkBase, id, keyText string) string {
	return strings.TrimSuffix(linkBase, "/") + "/" + id + "#" + keyText
}
