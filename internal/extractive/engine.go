// Package extractive implements the extractive summarizer: sentences are
// scored by their total TF-IDF cosine similarity to the rest of the document
// and the top scorers are returned in document order.
package extractive

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/model"
)

// Engine runs Segmenter -> Normalizer -> Score -> Select. It keeps no state
// between calls and is safe for concurrent use.
type Engine struct {
	segmenter  *Segmenter
	normalizer *Normalizer
	logger     logger.Logger
}

// New creates an Engine over an already loaded language bundle.
func New(bundle *language.Bundle, log logger.Logger) *Engine {
	return NewWith(bundle, bundle, log)
}

// NewWith creates an Engine from separate boundary and stopword sources.
func NewWith(splitter SentenceSplitter, stopwords StopwordSet, log logger.Logger) *Engine {
	return &Engine{
		segmenter:  NewSegmenter(splitter),
		normalizer: NewNormalizer(stopwords),
		logger:     log,
	}
}

// Summarize returns the space-joined top sentences of text. The percentage is
// validated before any work is done.
func (e *Engine) Summarize(ctx context.Context, text string, percentage int) (string, error) {
	if err := model.ValidatePercentage(percentage); err != nil {
		return "", err
	}

	sentences, _, scores, err := e.analyze(ctx, text)
	if err != nil {
		return "", err
	}

	summary := Select(sentences, scores, percentage)
	e.logger.Debug(ctx, "Extractive summary: %d of %d sentences at %d%%", len(summary), len(sentences), percentage)
	return strings.Join(summary, " "), nil
}

// Rank returns every sentence with its clean form, score and whether it
// would be selected at the given percentage.
func (e *Engine) Rank(ctx context.Context, text string, percentage int) ([]model.RankedSentence, error) {
	if err := model.ValidatePercentage(percentage); err != nil {
		return nil, err
	}

	sentences, clean, scores, err := e.analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	ranked := make([]model.RankedSentence, len(sentences))
	for i := range sentences {
		ranked[i] = model.RankedSentence{
			Index:    i,
			Original: sentences[i],
			Clean:    clean[i],
			Score:    scores[i],
		}
	}
	for _, i := range TopIndices(scores, SentenceCount(len(sentences), percentage)) {
		ranked[i].Selected = true
	}
	return ranked, nil
}

// analyze segments, normalizes and scores text. Index i of every returned
// slice refers to the same sentence.
func (e *Engine) analyze(ctx context.Context, text string) (sentences, clean []string, scores []float64, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil, nil, model.ErrEmptyInput
	}

	sentences = e.segmenter.Segment(text)
	if len(sentences) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no sentences found", model.ErrEmptyInput)
	}

	clean = make([]string, len(sentences))
	for i, s := range sentences {
		clean[i] = e.normalizer.Normalize(s)
	}

	scores = Score(clean)
	e.logger.Debug(ctx, "Scored %d sentences", len(sentences))
	return sentences, clean, scores, nil
}
