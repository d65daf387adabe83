package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/logger"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"github.com/RuvinSL/seo-analyzer/services/analyzer/core"
)

// SiteTools is implemented by core.SiteTools
type SiteTools interface {
	ListSitemap(ctx context.Context, rawURL string) ([]string, error)
	ScanLinks(ctx context.Context, rawURL string) ([]string, error)
	CheckLink(ctx context.Context, rawURL string) (models.LinkStatus, error)
}

// ToolsHandler serves the copilot, the content generator and the site tools
type ToolsHandler struct {
	enricher interfaces.Enricher
	tools    SiteTools
	logger   interfaces.Logger
}

func NewToolsHandler(enricher interfaces.Enricher, tools SiteTools, logger interfaces.Logger) *ToolsHandler {
	return &ToolsHandler{
		enricher: enricher,
		tools:    tools,
		logger:   logger,
	}
}

type urlRequest struct {
	URL string `json:"url"`
}

type sitemapResponse struct {
	URLs []string `json:"urls"`
}

type scanLinksResponse struct {
	Links []string `json:"links"`
}

type checkLinkResponse struct {
	URL        string    `json:"url"`
	Accessible bool      `json:"accessible"`
	StatusCode int       `json:"status_code"`
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

func (h *ToolsHandler) Copilot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context(), h.logger)

	var req models.CopilotRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, log, "Invalid request format", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		sendError(w, log, "Message is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, log, http.StatusOK, h.enricher.Reply(r.Context(), req))
}

func (h *ToolsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context(), h.logger)

	var req models.GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, log, "Invalid request format", http.StatusBadRequest)
		return
	}

	resp, err := h.enricher.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrUnsupportedType) {
			sendError(w, log, "Unsupported type", http.StatusBadRequest)
			return
		}
		log.Error("Content generation failed", "type", req.Type, "error", err)
		sendError(w, log, "Generation failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, resp)
}

func (h *ToolsHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context(), h.logger)

	target, ok := h.readURL(w, r, log)
	if !ok {
		return
	}

	urls, err := h.tools.ListSitemap(r.Context(), target)
	if err != nil {
		h.toolError(w, log, "sitemap", target, err)
		return
	}
	writeJSON(w, log, http.StatusOK, sitemapResponse{URLs: urls})
}

func (h *ToolsHandler) ScanLinks(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context(), h.logger)

	target, ok := h.readURL(w, r, log)
	if !ok {
		return
	}

	links, err := h.tools.ScanLinks(r.Context(), target)
	if err != nil {
		h.toolError(w, log, "scan-links", target, err)
		return
	}
	writeJSON(w, log, http.StatusOK, scanLinksResponse{Links: links})
}

func (h *ToolsHandler) CheckLink(w http.ResponseWriter, r *http.Request) {
	log := logger.WithContext(r.Context(), h.logger)

	target, ok := h.readURL(w, r, log)
	if !ok {
		return
	}

	status, err := h.tools.CheckLink(r.Context(), target)
	if err != nil {
		h.toolError(w, log, "check-link", target, err)
		return
	}
	writeJSON(w, log, http.StatusOK, checkLinkResponse{
		URL:        status.Link.URL,
		Accessible: status.Accessible,
		StatusCode: status.StatusCode,
		Error:      status.Error,
		CheckedAt:  status.CheckedAt,
	})
}

func (h *ToolsHandler) readURL(w http.ResponseWriter, r *http.Request, log interfaces.Logger) (string, bool) {
	var req urlRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, log, "Invalid request format", http.StatusBadRequest)
		return "", false
	}
	if strings.TrimSpace(req.URL) == "" {
		sendError(w, log, "URL is required", http.StatusBadRequest)
		return "", false
	}
	return req.URL, true
}

func (h *ToolsHandler) toolError(w http.ResponseWriter, log interfaces.Logger, tool, target string, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidURL):
		sendError(w, log, "Invalid URL", http.StatusBadRequest)
	case errors.Is(err, core.ErrUpstream):
		log.Warn("Site tool could not reach target", "tool", tool, "url", target, "error", err)
		sendError(w, log, "Target site unreachable", http.StatusBadGateway)
	default:
		log.Error("Site tool failed", "tool", tool, "url", target, "error", err)
		sendError(w, log, "Tool failed", http.StatusInternalServerError)
	}
}
