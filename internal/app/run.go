package app

import (
	"context"
	"fmt"

	"github.com/vk/zcheck/internal/ctxlog"
	"github.com/vk/zcheck/internal/decision"
)

// Run opens the configured target, classifies its first byte and writes the
// outcome line. An *OpenError is returned when the file cannot be acquired;
// nothing is written in that case.
func (a *App) Run(ctx context.Context) (decision.Outcome, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "path", a.config.TargetPath)

	f, err := a.open(a.config.TargetPath)
	if err != nil {
		logger.Debug("Target could not be opened.", "path", a.config.TargetPath, "error", err)
		return decision.Lose, &OpenError{Path: a.config.TargetPath, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("Closing target failed.", "path", a.config.TargetPath, "error", cerr)
		}
	}()

	first := decision.ReadFirst(f)
	outcome := decision.Classify(first)
	logger.Debug("First byte classified.", "value", first, "outcome", outcome)

	if _, err := fmt.Fprintln(a.outW, outcome.Message()); err != nil {
		return outcome, fmt.Errorf("failed to report outcome: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return outcome, nil
}
