// Package aggregate orchestrates one aggregation run: read the raw reports,
// normalize them, and fan the model out to every output surface.
//
// Nothing in the run is fatal. Loaders contain their own failures, and a
// broken output sink degrades that one surface with a warning while the rest
// of the pipeline proceeds.
package aggregate

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/qaforge/qaforge/internal/config"
	"github.com/qaforge/qaforge/internal/model"
	"github.com/qaforge/qaforge/internal/render"
	"github.com/qaforge/qaforge/internal/report"
	"github.com/qaforge/qaforge/internal/sink"
)

// Options carries per-run knobs that are not configuration.
type Options struct {
	// Console receives the summary when no summary sink is configured,
	// and progress notes.
	Console io.Writer

	// Now supplies the envelope timestamp; nil means time.Now.
	Now func() time.Time
}

// Result exposes what the run computed, for callers and tests.
type Result struct {
	Bundle   *report.Bundle
	Metrics  model.Metrics
	Envelope render.Envelope
}

// Run executes the pipeline against cfg. The returned error covers only the
// dashboard sink; per-report absence and badge problems are recorded facts,
// never failures.
func Run(cfg *config.Config, options Options) (Result, error) {
	now := options.Now
	if now == nil {
		now = time.Now
	}

	if options.Console == nil {
		options.Console = os.Stdout
	}

	bundle := report.Collect(cfg.Target)
	metrics := model.Normalize(bundle)

	run := render.RunMetadata{
		Repo:     cfg.Run.Repository,
		Workflow: cfg.Run.Workflow,
		OS:       cfg.Run.OS,
		JDK:      cfg.Run.JDK,
		Branch:   cfg.Run.Branch,
		Commit:   cfg.Run.Commit,
		Author:   cfg.Run.Author,
	}
	envelope := render.NewEnvelope(run, metrics, now())

	writeSummary(cfg, metrics, options.Console)
	writeBadges(cfg, metrics)

	dashboardErr := sink.WriteDashboard(cfg.Dashboard, envelope, metrics)

	return Result{Bundle: bundle, Metrics: metrics, Envelope: envelope}, dashboardErr
}

// writeSummary appends the Markdown block to the job summary when one is
// configured, and renders a terminal table otherwise.
func writeSummary(cfg *config.Config, metrics model.Metrics, console io.Writer) {
	if cfg.Summary.Path != "" {
		text := render.MarkdownSummary(cfg.Matrix.OS, cfg.Matrix.Java, metrics)

		appendErr := sink.WriteSummary(cfg.Summary.Path, text, console)
		if appendErr != nil {
			slog.Default().Warn("summary sink unavailable", "path", cfg.Summary.Path, "error", appendErr)
		}

		return
	}

	text := render.ConsoleSummary(cfg.Matrix.OS, cfg.Matrix.Java, metrics) + "\n"

	_ = sink.WriteSummary("", text, console)
}

func writeBadges(cfg *config.Config, metrics model.Metrics) {
	if !cfg.Badges.Enabled {
		return
	}

	badgeErr := sink.WriteBadges(cfg.Badges.Dir, render.BadgeFiles(metrics))
	if badgeErr != nil {
		slog.Default().Warn("skipping badge generation", "dir", cfg.Badges.Dir, "error", badgeErr)

		return
	}

	slog.Default().Info("updated badge JSON", "dir", cfg.Badges.Dir)
}
