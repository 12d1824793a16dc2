package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/qaforge/qaforge/internal/render"
)

// WriteBadges writes each badge payload as an individual JSON file into dir,
// creating the directory first. Any error is reported to the caller so badge
// generation can be skipped with a warning; it is never fatal to the run.
func WriteBadges(dir string, badges map[string]render.Badge) error {
	mkdirErr := os.MkdirAll(dir, dirPerm)
	if mkdirErr != nil {
		return fmt.Errorf("create badge directory %s: %w", dir, mkdirErr)
	}

	names := make([]string, 0, len(badges))
	for name := range badges {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		payload, marshalErr := json.Marshal(badges[name])
		if marshalErr != nil {
			return fmt.Errorf("marshal badge %s: %w", name, marshalErr)
		}

		writeErr := os.WriteFile(filepath.Join(dir, name), payload, filePerm)
		if writeErr != nil {
			return fmt.Errorf("write badge %s: %w", name, writeErr)
		}
	}

	return nil
}
