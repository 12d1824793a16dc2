package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/qaforge/qaforge/internal/config"
	"github.com/qaforge/qaforge/internal/model"
	"github.com/qaforge/qaforge/internal/render"
)

// metricsFileName is the envelope document name inside the dashboard dir.
const metricsFileName = "metrics.json"

// fallbackPageName is the chart page written when no bundle is available.
const fallbackPageName = "index.html"

// WriteDashboard populates the dashboard output directory: the prebuilt UI
// bundle (or a generated fallback page), the metrics envelope, and the serve
// helper script.
//
// When a bundle exists the dashboard directory is destructively replaced so
// stale content from a previous run never sits alongside a fresh metrics
// document.
func WriteDashboard(cfg config.DashboardConfig, envelope render.Envelope, m model.Metrics) error {
	bundleErr := placeBundle(cfg, envelope, m)
	if bundleErr != nil {
		return bundleErr
	}

	payload, marshalErr := json.MarshalIndent(envelope, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("marshal metrics envelope: %w", marshalErr)
	}

	writeErr := os.WriteFile(filepath.Join(cfg.Dir, metricsFileName), payload, filePerm)
	if writeErr != nil {
		return fmt.Errorf("write metrics envelope: %w", writeErr)
	}

	return copyHelper(cfg)
}

func placeBundle(cfg config.DashboardConfig, envelope render.Envelope, m model.Metrics) error {
	if bundleInfo, statErr := os.Stat(cfg.BundleDir); statErr == nil && bundleInfo.IsDir() {
		if removeErr := os.RemoveAll(cfg.Dir); removeErr != nil {
			return fmt.Errorf("clear dashboard directory: %w", removeErr)
		}

		if copyErr := copyTree(cfg.BundleDir, cfg.Dir); copyErr != nil {
			return fmt.Errorf("copy dashboard bundle: %w", copyErr)
		}

		return nil
	}

	mkdirErr := os.MkdirAll(cfg.Dir, dirPerm)
	if mkdirErr != nil {
		return fmt.Errorf("create dashboard directory: %w", mkdirErr)
	}

	page, createErr := os.Create(filepath.Join(cfg.Dir, fallbackPageName))
	if createErr != nil {
		return fmt.Errorf("create fallback page: %w", createErr)
	}
	defer page.Close()

	return render.FallbackDashboard(page, envelope.Run, m)
}

// copyHelper copies the dashboard serve script next to the dashboard
// directory when one is present; its absence is not an error.
func copyHelper(cfg config.DashboardConfig) error {
	if cfg.Helper == "" {
		return nil
	}

	source, openErr := os.Open(cfg.Helper)
	if openErr != nil {
		return nil
	}
	defer source.Close()

	destPath := filepath.Join(filepath.Dir(cfg.Dir), filepath.Base(cfg.Helper))

	dest, createErr := os.Create(destPath)
	if createErr != nil {
		return fmt.Errorf("copy dashboard helper: %w", createErr)
	}
	defer dest.Close()

	if _, copyErr := io.Copy(dest, source); copyErr != nil {
		return fmt.Errorf("copy dashboard helper: %w", copyErr)
	}

	return nil
}

func copyTree(sourceRoot, destRoot string) error {
	return filepath.WalkDir(sourceRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(sourceRoot, path)
		if relErr != nil {
			return relErr
		}

		destPath := filepath.Join(destRoot, rel)

		if entry.IsDir() {
			return os.MkdirAll(destPath, dirPerm)
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		return os.WriteFile(destPath, data, filePerm)
	})
}
