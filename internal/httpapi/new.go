package httpapi

import (
	"net/http"

	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

// New builds the API router wrapped in request ID, logging, CORS and panic
// recovery middleware.
func New(cfg config.ServerConfig, sum summarizer.Summarizer, log logger.Logger) http.Handler {
	handler := &Handler{
		summarizer:   sum,
		logger:       log,
		maxBodyBytes: cfg.MaxBodyBytes,
	}

	mux := http.NewServeMux()
	RegisterRoutes(mux, handler)

	var h http.Handler = mux
	h = withRecover(log, h)
	h = withCORS(cfg.CORSOrigins, h)
	h = withLogging(log, h)
	h = withRequestID(h)
	return h
}
