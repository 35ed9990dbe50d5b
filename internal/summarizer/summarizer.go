package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/condense/internal/abstractive"
	"github.com/nguyentantai21042004/condense/internal/model"
)

// Summarize checks method and percentage before looking at the text, so a
// bad parameter is reported even for an empty document.
func (s *implSummarizer) Summarize(ctx context.Context, req model.Request) (string, error) {
	method, err := model.ParseMethod(string(req.Method))
	if err != nil {
		return "", err
	}
	if err := model.ValidatePercentage(req.Percentage); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Text) == "" {
		return "", model.ErrEmptyInput
	}

	start := time.Now()
	var summary string
	switch method {
	case model.MethodExtractive:
		summary, err = s.extractive.Summarize(ctx, req.Text, req.Percentage)
	case model.MethodAbstractive:
		summary, err = s.summarizeAbstractive(ctx, req.Text, req.Percentage)
	}
	if err != nil {
		return "", fmt.Errorf("%s summary: %w", method, err)
	}

	s.logger.Info(ctx, "Summarized %d chars -> %d chars (%s, %d%%) in %s",
		len(req.Text), len(summary), method, req.Percentage, time.Since(start).Round(time.Millisecond))
	return summary, nil
}

func (s *implSummarizer) summarizeAbstractive(ctx context.Context, text string, percentage int) (string, error) {
	if s.abstractive == nil {
		return "", fmt.Errorf("%w: no backend configured", model.ErrBackendUnavailable)
	}

	clean := abstractive.PrepareText(text)
	target := abstractive.TargetWords(clean, percentage, s.minWords)
	s.logger.Debug(ctx, "Abstractive summary via %s, target %d words", s.abstractive.Name(), target)

	return s.abstractive.Summarize(ctx, clean, target)
}

// Rank exposes the extractive scores for inspection.
func (s *implSummarizer) Rank(ctx context.Context, text string, percentage int) ([]model.RankedSentence, error) {
	return s.extractive.Rank(ctx, text, percentage)
}
