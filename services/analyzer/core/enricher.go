package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

const (
	fallbackInsight      = "Competitors likely utilize advanced schema markup."
	localScanSummary     = "Scan based on local analysis."
	fallbackCopilotReply = "I can't reach the AI cloud right now, but I recommend checking the 'Action Plan' tab for a step-by-step guide to improve your site!"

	maxPromptContent  = 500
	maxTitleLength    = 60
	maxDescriptionLen = 155
	maxHeadingLength  = 70
	generateTypeTitle = "title"
	generateTypeDesc  = "description"
	generateTypeH1    = "h1"
)

// TextEnricher asks a text generator for natural-language output and falls
// back to rule-based text whenever the generator is missing or fails
type TextEnricher struct {
	generator interfaces.TextGenerator
	logger    interfaces.Logger
	metrics   interfaces.MetricsCollector
	timeout   time.Duration
}

// NewTextEnricher accepts a nil generator; every call then uses the fallback
func NewTextEnricher(generator interfaces.TextGenerator, logger interfaces.Logger, metrics interfaces.MetricsCollector, timeout time.Duration) *TextEnricher {
	return &TextEnricher{
		generator: generator,
		logger:    logger,
		metrics:   metrics,
		timeout:   timeout,
	}
}

func (e *TextEnricher) generate(ctx context.Context, prompt string) (string, error) {
	if e.generator == nil {
		return "", ErrNoAPIKey
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.generator.GenerateText(ctx, prompt)
}

func (e *TextEnricher) record(source string) {
	e.metrics.RecordEnrichment(source)
}

// Summarize implements interfaces.Enricher
func (e *TextEnricher) Summarize(ctx context.Context, result *models.AnalysisResult) models.Summary {
	prompt := fmt.Sprintf(
		`Act as SEO Expert. Summarize this score: SEO %d, Perf %d. Site: %s. Return JSON { "summary": "...", "insight": "..." }`,
		result.Scores.SEO, result.Scores.Performance, result.Meta.Title,
	)

	text, err := e.generate(ctx, prompt)
	if err == nil {
		var parsed struct {
			Summary string `json:"summary"`
			Insight string `json:"insight"`
		}
		if err = json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err == nil && parsed.Summary != "" {
			e.record(models.SourceModel)
			return models.Summary{
				Summary:           parsed.Summary,
				CompetitorInsight: parsed.Insight,
				Source:            models.SourceModel,
			}
		}
		if err == nil {
			err = errors.New("model reply carried no summary")
		}
	}

	e.logger.Warn("Summary generation failed, using fallback", "url", result.URL, "error", err)
	e.record(models.SourceFallback)
	return models.Summary{
		Summary:           fallbackSummary(result),
		CompetitorInsight: fallbackInsight,
		Source:            models.SourceFallback,
	}
}

func fallbackSummary(result *models.AnalysisResult) string {
	if result.AuditSource != models.AuditSourceExternal {
		return localScanSummary
	}
	avg := float64(result.Scores.SEO+result.Scores.Performance) / 2
	switch {
	case avg > 90:
		return "Excellent performance."
	case avg > 70:
		return "Good performance."
	default:
		return "Improvements needed."
	}
}

// stripCodeFences removes markdown json fences from a model reply
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Reply implements interfaces.Enricher
func (e *TextEnricher) Reply(ctx context.Context, req models.CopilotRequest) models.CopilotResponse {
	text, err := e.generate(ctx, copilotPrompt(req))
	if err == nil && strings.TrimSpace(text) != "" {
		e.record(models.SourceModel)
		return models.CopilotResponse{Reply: text, Source: models.SourceModel}
	}

	e.logger.Warn("Copilot reply failed, using fallback", "domain", req.SiteData.Domain, "error", err)
	e.record(models.SourceFallback)
	return models.CopilotResponse{Reply: copilotFallback(req), Source: models.SourceFallback}
}

func copilotPrompt(req models.CopilotRequest) string {
	site := req.SiteData
	title, description, keyword := "Missing", "Missing", models.Unknown
	if data := siteResult(site); data != nil {
		if data.Meta.Title != "" {
			title = data.Meta.Title
		}
		if data.Meta.Description != "" {
			description = data.Meta.Description
		}
		if len(data.Keywords) > 0 {
			keyword = data.Keywords[0].Word
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are SEO Copilot, an expert SEO consultant for the website %q.\n\n", site.Domain)
	b.WriteString("SITE METRICS:\n")
	fmt.Fprintf(&b, "- SEO Score: %d/100\n", site.Score)
	fmt.Fprintf(&b, "- Title: %s\n", title)
	fmt.Fprintf(&b, "- Description: %s\n", description)
	fmt.Fprintf(&b, "- Critical Issues: %d found\n", site.Issues)
	fmt.Fprintf(&b, "- Top Keyword: %s\n\n", keyword)
	fmt.Fprintf(&b, "USER QUESTION: %q\n\n", req.Message)
	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("- Keep answers short, punchy, and actionable.\n")
	b.WriteString("- Use the site metrics above to give specific advice.\n")
	return b.String()
}

func siteResult(site models.SiteContext) *models.AnalysisResult {
	if site.AIAnalysis == nil {
		return nil
	}
	return site.AIAnalysis.Data
}

// copilotFallback answers from a keyword table, first match wins
func copilotFallback(req models.CopilotRequest) string {
	msg := strings.ToLower(req.Message)
	data := siteResult(req.SiteData)

	switch {
	case containsAny(msg, "slow", "speed", "yavas", "hız"):
		images, perf := 0, models.NotAvailable
		if data != nil {
			images = data.ImageStats.Total
			perf = strconv.Itoa(data.Scores.Performance)
		}
		return fmt.Sprintf("Your site speed depends heavily on images. You have %d images. Your current performance score is %s. Try compressing images and using next-gen formats like WebP.", images, perf)
	case containsAny(msg, "score", "puan"):
		return fmt.Sprintf("Your SEO Score is %d/100. To improve it, focus on fixing Critical errors first!", req.SiteData.Score)
	case containsAny(msg, "title", "başlık"):
		title := "Missing"
		if data != nil && data.Meta.Title != "" {
			title = data.Meta.Title
		}
		return fmt.Sprintf("Your current title is %q. Make sure it contains your main keyword and is between 50-60 characters.", title)
	default:
		return fallbackCopilotReply
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Generate implements interfaces.Enricher. Only an unknown type is an error.
func (e *TextEnricher) Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResponse, error) {
	content := truncateRunes(collapseSpace(req.Content), maxPromptContent)

	var prompt string
	switch req.Type {
	case generateTypeTitle:
		prompt = fmt.Sprintf("Write a perfect SEO Title (max 60 chars) for a page with this content: %q. Current title: %q. Return ONLY the title text.", content, req.Current)
	case generateTypeDesc:
		prompt = fmt.Sprintf("Write a compelling SEO Meta Description (140-160 chars) for a page with this content: %q. It must be catchy and include keywords. Return ONLY the description text.", content)
	case generateTypeH1:
		prompt = fmt.Sprintf("Write a single, powerful H1 heading for this content: %q. Return ONLY the heading text.", content)
	default:
		return models.GenerateResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedType, req.Type)
	}

	text, err := e.generate(ctx, prompt)
	if text = strings.TrimSpace(strings.ReplaceAll(text, `"`, "")); err == nil && text != "" {
		e.record(models.SourceModel)
		return models.GenerateResponse{Result: text, Source: models.SourceModel}, nil
	}

	e.logger.Warn("Content generation failed, using fallback", "type", req.Type, "error", err)
	e.record(models.SourceFallback)
	return models.GenerateResponse{Result: generateFallback(req), Source: models.SourceFallback}, nil
}

func generateFallback(req models.GenerateRequest) string {
	content := collapseSpace(req.Content)
	switch req.Type {
	case generateTypeTitle:
		if current := collapseSpace(req.Current); current != "" {
			return current
		}
		return truncateWords(content, maxTitleLength)
	case generateTypeDesc:
		return truncateRunes(content, maxDescriptionLen)
	default:
		first := ""
		if s := sentences(content); len(s) > 0 {
			first = s[0]
		}
		return truncateRunes(first, maxHeadingLength)
	}
}

// truncateWords cuts s to at most n runes without splitting a word,
// unless the first word alone is longer than n
func truncateWords(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	cut := truncateRunes(s, n)
	if i := strings.LastIndex(cut, " "); i > 0 {
		return cut[:i]
	}
	return cut
}

var _ interfaces.Enricher = (*TextEnricher)(nil)
