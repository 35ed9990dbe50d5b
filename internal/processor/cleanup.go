package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// moveToProcessing moves a document from the inbox to the processing folder
func (p *implProcessor) moveToProcessing(ctx context.Context, docPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Processing, 0755); err != nil {
		return "", fmt.Errorf("create processing dir: %w", err)
	}

	destPath, err := p.freePath(p.cfg.Paths.Processing, filepath.Base(docPath))
	if err != nil {
		return "", err
	}

	p.logger.Debug(ctx, "Moving to processing folder: %s -> %s", docPath, destPath)

	if err := os.Rename(docPath, destPath); err != nil {
		return "", fmt.Errorf("move to processing: %w", err)
	}

	return destPath, nil
}

// moveToArchived moves a processed document to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, docPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath, err := p.freePath(p.cfg.Paths.Archived, filepath.Base(docPath))
	if err != nil {
		return err
	}

	p.logger.Debug(ctx, "Archiving: %s -> %s", docPath, destPath)

	if err := os.Rename(docPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}

// freePath returns dir/name, or dir/name-<timestamp>[-n].ext when that is
// already taken, so earlier documents are never overwritten.
func (p *implProcessor) freePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	stamp := p.now().Format("20060102-150405")

	for i := 0; i < 1000; i++ {
		candidate := name
		switch {
		case i == 1:
			candidate = stem + "-" + stamp + ext
		case i > 1:
			candidate = fmt.Sprintf("%s-%s-%d%s", stem, stamp, i, ext)
		}

		path := filepath.Join(dir, candidate)
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("check %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("no free name for %s in %s", name, dir)
}
