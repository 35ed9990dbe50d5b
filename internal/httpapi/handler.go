package httpapi

import (
	"net/http"

	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
)

// Handler serves the summarization API.
type Handler struct {
	summarizer   summarizer.Summarizer
	logger       logger.Logger
	maxBodyBytes int64
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn(ctx, "Rejected summarize request: %v", err)
		HandleError(w, err)
		return
	}

	summary, err := h.summarizer.Summarize(ctx, req)
	if err != nil {
		h.logger.Error(ctx, "Summarize failed: %v", err)
		HandleError(w, err)
		return
	}

	if err := JSONResponse(w, http.StatusOK, map[string]string{"summary": summary}); err != nil {
		h.logger.Error(ctx, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("GET /health", handler.HandleHealth)
}
