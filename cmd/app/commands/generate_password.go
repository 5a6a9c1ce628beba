package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/allisson/burnbox/internal/password"
)

// RunGeneratePassword synthesizes a password honoring the given policy and
// reports its strength assessment. Runs entirely locally.
func RunGeneratePassword(writer io.Writer, policy password.Policy, format string) error {
	generated, err := password.Generate(policy)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	strength := password.Assess(generated)

	if format == "json" {
		return outputGeneratePasswordJSON(writer, generated, strength)
	}

	outputGeneratePasswordText(writer, generated, strength)
	return nil
}

// outputGeneratePasswordText outputs the password and assessment in
// human-readable text format.
func outputGeneratePasswordText(writer io.Writer, generated string, strength password.Strength) {
	fmt.Fprintf(writer, "Password: %s\n", generated)
	fmt.Fprintf(writer, "Strength: %s (score %d/4)\n", strength.Label, strength.Score)
	for _, item := range strength.Feedback {
		fmt.Fprintf(writer, "  - %s\n", item)
	}
}

// outputGeneratePasswordJSON outputs the password and assessment in JSON
// format for machine consumption.
func outputGeneratePasswordJSON(writer io.Writer, generated string, strength password.Strength) error {
	result := map[string]interface{}{
		"password": generated,
		"strength": strength,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
