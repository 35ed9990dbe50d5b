package abstractive

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/model"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

// New creates the Backend selected by cfg.Backend. The "none" backend is
// returned as nil so callers can report abstractive requests as unavailable.
func New(cfg config.AbstractiveConfig, exec executor.Executor, log logger.Logger) (Backend, error) {
	switch cfg.Backend {
	case config.BackendNone, "":
		return nil, nil
	case config.BackendGemini:
		return NewGemini(cfg.APIKeys, cfg.Model, cfg.RequestsPerSecond, log), nil
	case config.BackendCommand:
		return &commandBackend{
			executor: exec,
			command:  cfg.Command,
			args:     cfg.CommandArgs,
			timeout:  cfg.Timeout,
			logger:   log,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", model.ErrBackendUnavailable, cfg.Backend)
	}
}

// NewGemini creates a Gemini backend that rotates through apiKeys and sends
// at most rps requests per second.
func NewGemini(apiKeys []string, modelName string, rps float64, log logger.Logger) Backend {
	return newGemini(apiKeys, modelName, rps, log, newGeminiClient)
}

func newGemini(apiKeys []string, modelName string, rps float64, log logger.Logger, factory generatorFactory) *geminiBackend {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &geminiBackend{
		apiKeys:   apiKeys,
		model:     modelName,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    log,
		newClient: factory,
		clients:   make(map[string]generator),
	}
}
