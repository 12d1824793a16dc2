// Package sink writes the rendered outputs to their destinations: the job
// summary, the badge directory, and the dashboard directory.
package sink

import (
	"fmt"
	"io"
	"os"
)

// filePerm is the mode for files written by the sinks.
const filePerm = 0o644

// dirPerm is the mode for directories created by the sinks.
const dirPerm = 0o750

// WriteSummary appends the summary text to path, the running job-summary log.
// When path is empty the text goes to fallback instead, for local runs.
func WriteSummary(path, text string, fallback io.Writer) error {
	if path == "" {
		_, printErr := fmt.Fprint(fallback, text)
		if printErr != nil {
			return fmt.Errorf("print summary: %w", printErr)
		}

		return nil
	}

	handle, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if openErr != nil {
		return fmt.Errorf("open summary sink: %w", openErr)
	}
	defer handle.Close()

	_, writeErr := handle.WriteString(text)
	if writeErr != nil {
		return fmt.Errorf("append summary: %w", writeErr)
	}

	return nil
}
