package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/processor"
	"github.com/nguyentantai21042004/condense/internal/watcher"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if deps.Config.Paths.Input == "" {
		return fmt.Errorf("paths.input must be set to watch an inbox")
	}

	w, err := newInbox(deps)
	if err != nil {
		return err
	}
	defer w.Stop()

	deps.Logger.Info(deps.Ctx, "Output: %s", deps.Config.Paths.Output)
	deps.Logger.Info(deps.Ctx, "Press Ctrl+C to stop")

	if err := w.Start(deps.Ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}
	return nil
}

// newInbox wires the processor to a watcher on paths.input.
func newInbox(deps *Dependencies) (watcher.Watcher, error) {
	cfg := deps.Config
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	proc := processor.New(cfg, deps.Summarizer, deps.Logger)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, deps.Logger, cfg.Performance.MaxConcurrent)
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return w, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
