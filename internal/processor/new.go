package processor

import (
	"time"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/model"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	logger     logger.Logger
	method     model.Method
	now        func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		logger:     log,
		method:     model.Method(cfg.Summary.DefaultMethod),
		now:        time.Now,
	}
}
