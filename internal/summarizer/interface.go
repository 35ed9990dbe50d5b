package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/condense/internal/model"
)

// Summarizer validates a request and routes it to the extractive engine or
// the abstractive backend.
type Summarizer interface {
	Summarize(ctx context.Context, req model.Request) (string, error)
	Rank(ctx context.Context, text string, percentage int) ([]model.RankedSentence, error)
}
