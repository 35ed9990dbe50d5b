package abstractive

import "context"

// Backend produces a generated summary of roughly targetWords words.
type Backend interface {
	Summarize(ctx context.Context, text string, targetWords int) (string, error)
	Name() string
}
