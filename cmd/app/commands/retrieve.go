package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/allisson/burnbox/internal/client"
	"github.com/allisson/burnbox/internal/exchange"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// RunRetrieve fetches a shared secret and opens the envelope locally. The
// target is a share link, an "id#key" pair, or a bare identifier combined
// with the --key flag. Retrieval consumes the secret: a second call for the
// same identifier reports not found.
func RunRetrieve(
	ctx context.Context,
	apiClient *client.Client,
	writer io.Writer,
	target string,
	keyText string,
	algorithmStr string,
	format string,
) error {
	algorithm, err := parseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	id, keyText, err := splitShareTarget(target, keyText)
	if err != nil {
		return err
	}

	key, err := exchange.ImportKey(keyText)
	if err != nil {
		return fmt.Errorf("invalid decryption key: %w", err)
	}
	defer exchange.Zero(key)

	codec, err := exchange.New(key, algorithm)
	if err != nil {
		return err
	}

	retrieved, err := apiClient.Retrieve(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return errors.New("secret not found: it may have expired or already been retrieved")
		}
		return fmt.Errorf("failed to retrieve secret: %w", err)
	}

	envelope, err := exchange.DecodeText(retrieved.EncryptedData)
	if err != nil {
		return fmt.Errorf("malformed envelope: %w", err)
	}

	plaintext, err := codec.Decrypt(envelope)
	if err != nil {
		return fmt.Errorf("failed to decrypt secret: %w", err)
	}
	defer exchange.Zero(plaintext)

	if format == "json" {
		return outputRetrieveJSON(writer, plaintext, retrieved.CreatedTime())
	}

	_, err = writer.Write(plaintext)
	return err
}

// splitShareTarget extracts the identifier and key from a share link, an
// "id#key" pair, or a bare identifier plus an explicit key. The explicit
// key wins when both are present.
func splitShareTarget(target, keyText string) (string, string, error) {
	if target == "" {
		return "", "", errors.New("missing argument: pass a share link or a secret identifier")
	}

	id := target
	if before, after, found := strings.Cut(target, "#"); found {
		id = before
		if keyText == "" {
			keyText = after
		}
	}
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}

	if err := secretsDomain.ValidateID(id); err != nil {
		return "", "", fmt.Errorf("invalid secret identifier: %w", err)
	}
	if keyText == "" {
		return "", "", errors.New("missing decryption key: pass the full link or --key")
	}

	return id, keyText, nil
}

// outputRetrieveJSON outputs the secret in JSON format for machine consumption.
func outputRetrieveJSON(writer io.Writer, plaintext []byte, createdAt time.Time) error {
	result := map[string]interface{}{
		"plaintext":  string(plaintext),
		"created_at": createdAt.Format(time.RFC3339),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
