package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/allisson/burnbox/internal/client"
	"github.com/allisson/burnbox/internal/exchange"
	"github.com/allisson/burnbox/internal/password"
	secretsDomain "github.com/allisson/burnbox/internal/secrets/domain"
)

// RunShare seals a secret locally and uploads the envelope. The key is
// generated here, printed as the link fragment, and never sent anywhere:
// the server only stores the opaque envelope. In generate mode the secret
// is a synthesized password, reported in the output so the caller keeps a
// copy of what was shared.
func RunShare(
	ctx context.Context,
	apiClient *client.Client,
	ioTuple IOTuple,
	generate bool,
	policy password.Policy,
	algorithmStr string,
	linkBase string,
	format string,
) error {
	algorithm, err := parseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	plaintext, generated, err := resolvePlaintext(ioTuple.Reader, generate, policy)
	if err != nil {
		return err
	}
	defer exchange.Zero(plaintext)

	key, err := exchange.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer exchange.Zero(key)

	codec, err := exchange.New(key, algorithm)
	if err != nil {
		return err
	}

	envelope, err := codec.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret: %w", err)
	}

	encoded := exchange.EncodeText(envelope)
	if len(encoded) > secretsDomain.MaxEnvelopeChars {
		return fmt.Errorf(
			"secret is too large: the sealed envelope is %d characters, the limit is %d",
			len(encoded), secretsDomain.MaxEnvelopeChars,
		)
	}

	shared, err := apiClient.Share(ctx, encoded)
	if err != nil {
		return fmt.Errorf("failed to share secret: %w", err)
	}

	keyText, err := exchange.ExportKey(key)
	if err != nil {
		return err
	}

	link := buildShareLink(linkBase, shared.ID, keyText)

	if format == "json" {
		return outputShareJSON(ioTuple.Writer, shared.ID, keyText, link, generated)
	}

	outputShareText(ioTuple.Writer, shared.ID, keyText, link, generated)
	return nil
}

// resolvePlaintext returns the secret bytes to seal. In generate mode it
// synthesizes a password under policy and reports it back so the output can
// show it; otherwise it reads the reader to EOF, dropping one trailing
// newline so piped input round-trips cleanly.
func resolvePlaintext(reader io.Reader, generate bool, policy password.Policy) ([]byte, string, error) {
	if generate {
		generated, err := password.Generate(policy)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate password: %w", err)
		}
		return []byte(generated), generated, nil
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read secret input: %w", err)
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	if len(data) == 0 {
		return nil, "", fmt.Errorf("no secret provided: pass --file, --generate or pipe data on stdin")
	}

	return data, "", nil
}

// outputShareText outputs the link and its parts in human-readable text format.
func outputShareText(writer io.Writer, id, keyText, link, generated string) {
	if generated != "" {
		fmt.Fprintf(writer, "Password: %s\n", generated)
	}
	fmt.Fprintf(writer, "Link: %s\n", link)
	fmt.Fprintf(writer, "ID: %s\n", id)
	fmt.Fprintf(writer, "Key: %s\n", keyText)
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "The link opens the secret exactly once. The part after '#' is the")
	fmt.Fprintln(writer, "decryption key; it stays in the URL fragment and never reaches the server.")
}

// outputShareJSON outputs the link and its parts in JSON format for machine
// consumption.
func outputShareJSON(writer io.Writer, id, keyText, link, generated string) error {
	result := map[string]interface{}{
		"id":   id,
		"key":  keyText,
		"link": link,
	}
	if generated != "" {
		result["password"] = generated
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
