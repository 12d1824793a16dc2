package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/qaforge/qaforge/internal/schema"
)

// stdinPath selects standard input as the document source.
const stdinPath = "-"

// ErrEnvelopeInvalid is returned when a metrics document violates the schema.
var ErrEnvelopeInvalid = errors.New("metrics envelope does not match the schema")

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <metrics.json|->",
		Short: "Validate a metrics document against the envelope schema",
		Long: `Validate checks a produced metrics.json against the envelope schema the
dashboard UI consumes.

Examples:
  qaforge validate target/site/qa-dashboard/metrics.json
  qaforge validate - < metrics.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func runValidate(out io.Writer, inputPath string) error {
	document, label, readErr := readDocument(inputPath)
	if readErr != nil {
		return readErr
	}

	result, validateErr := schema.ValidateEnvelope(document)
	if validateErr != nil {
		return validateErr
	}

	if result.Valid() {
		color.New(color.FgGreen).Fprintf(out, "metrics envelope is valid (%s)\n", label)

		return nil
	}

	color.New(color.FgRed).Fprintf(out, "metrics envelope is invalid (%s)\n", label)

	for _, desc := range result.Errors() {
		fmt.Fprintf(out, "  - %s\n", desc)
	}

	return ErrEnvelopeInvalid
}

func readDocument(inputPath string) (document []byte, label string, err error) {
	if inputPath == stdinPath {
		document, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return document, "stdin", nil
	}

	document, err = os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", inputPath, err)
	}

	return document, inputPath, nil
}
