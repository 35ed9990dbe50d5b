package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nguyentantai21042004/condense/internal/model"
)

// Process moves the document out of the inbox, summarizes it with the
// configured defaults, writes the summary files and archives the source.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting document: %s", docPath)

	// Step 1: Claim the file so a second event for it is a no-op
	workPath, err := p.moveToProcessing(ctx, docPath)
	if err != nil {
		return fmt.Errorf("claim document: %w", err)
	}

	// Step 2: Read the text
	content, err := os.ReadFile(workPath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(content) {
		return fmt.Errorf("%w: %s is not UTF-8 text", model.ErrInvalidParameter, filepath.Base(workPath))
	}

	// Step 3: Summarize
	summary, err := p.summarizer.Summarize(ctx, model.Request{
		Method:     p.method,
		Percentage: p.cfg.Summary.DefaultPercentage,
		Text:       string(content),
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 4: Write outputs
	name := strings.TrimSuffix(filepath.Base(workPath), filepath.Ext(workPath))
	outputs, err := p.writeOutputs(ctx, name, summary)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 5: Move source to archived folder
	if err := p.moveToArchived(ctx, workPath); err != nil {
		p.logger.Warn(ctx, "Failed to move document to archived folder: %v", err)
	}

	p.logger.Info(ctx, "[DONE] %s -> %s (%s)", filepath.Base(docPath), strings.Join(outputs, ", "), time.Since(startTime).Round(time.Millisecond))
	return nil
}

func (p *implProcessor) writeOutputs(ctx context.Context, name, summary string) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	generated := p.now().Format("2006-01-02 15:04")
	meta := fmt.Sprintf("%s summary, %d%% of the original", p.method, p.cfg.Summary.DefaultPercentage)

	md := fmt.Sprintf("# %s\n\n_%s · %s_\n\n%s\n", name, generated, meta, strings.TrimSpace(summary))
	mdPath := filepath.Join(p.cfg.Paths.Output, name+".summary.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", mdPath, err)
	}
	outputs := []string{mdPath}

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, name+".summary.docx")
		if err := summaryToDocx(name, generated+" · "+meta, summary, docxPath); err != nil {
			return nil, fmt.Errorf("write %s: %w", docxPath, err)
		}
		outputs = append(outputs, docxPath)
	}

	p.logger.Debug(ctx, "Wrote %d output files for %s", len(outputs), name)
	return outputs, nil
}
