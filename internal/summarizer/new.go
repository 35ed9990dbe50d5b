package summarizer

import (
	"github.com/nguyentantai21042004/condense/internal/abstractive"
	"github.com/nguyentantai21042004/condense/internal/extractive"
	"github.com/nguyentantai21042004/condense/internal/logger"
)

type implSummarizer struct {
	extractive  *extractive.Engine
	abstractive abstractive.Backend
	minWords    int
	logger      logger.Logger
}

// New creates a Summarizer. backend may be nil, in which case abstractive
// requests fail with model.ErrBackendUnavailable.
func New(engine *extractive.Engine, backend abstractive.Backend, minWords int, log logger.Logger) Summarizer {
	return &implSummarizer{
		extractive:  engine,
		abstractive: backend,
		minWords:    minWords,
		logger:      log,
	}
}
