package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/logger"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"github.com/RuvinSL/seo-analyzer/services/analyzer/core"
)

// AnalyzerHandler handles analysis requests
type AnalyzerHandler struct {
	analyzer interfaces.Analyzer
	logger   interfaces.Logger
}

func NewAnalyzerHandler(analyzer interfaces.Analyzer, logger interfaces.Logger) *AnalyzerHandler {
	return &AnalyzerHandler{
		analyzer: analyzer,
		logger:   logger,
	}
}

func (h *AnalyzerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.WithContext(ctx, h.logger)

	var req models.AnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("Failed to parse request", "error", err)
		sendError(w, log, "Invalid request format", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		sendError(w, log, "URL is required", http.StatusBadRequest)
		return
	}

	log.Info("Processing analysis request",
		"url", req.URL,
		"strategy", req.Strategy,
		"external_audit", req.ExternalAuditData != nil,
	)

	resp, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidURL) {
			log.Warn("Rejected analysis request", "url", req.URL, "error", err)
			sendError(w, log, "Invalid URL", http.StatusBadRequest)
			return
		}

		log.Error("Analysis failed", "url", req.URL, "error", err)
		sendError(w, log, "Analysis failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, resp)
}
