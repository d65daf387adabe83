package core

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	minVisibleText  = 50
	minKeywordLen   = 4
	maxKeywords     = 10
	maxSampleLength = 150
)

// Subtrees that never contribute visible text
var hiddenElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Svg:      true,
	atom.Noscript: true,
	atom.Iframe:   true,
	atom.Link:     true,
	atom.Meta:     true,
	atom.Template: true,
}

// Elements whose boundaries separate words. Inline markup joins its text
// with the neighbouring text, so "foo<b>bar</b>" reads as one word.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Td: true, atom.Th: true, atom.Tr: true, atom.Ul: true, atom.Option: true,
	atom.Button: true, atom.Label: true,
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

var positiveWords = map[string]bool{
	"best": true, "top": true, "great": true, "excellent": true, "amazing": true, "good": true,
	"fast": true, "secure": true, "quality": true, "expert": true, "love": true, "perfect": true,
}

var negativeWords = map[string]bool{
	"bad": true, "slow": true, "worst": true, "error": true, "fail": true, "poor": true,
	"hate": true, "difficult": true, "hard": true, "weak": true, "risk": true,
}

// visibleText concatenates the text nodes under <body>, skipping hidden
// subtrees. Block boundaries become spaces and whitespace is collapsed.
func visibleText(doc *goquery.Document) string {
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hiddenElements[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		block := n.Type == html.ElementNode && blockElements[n.DataAtom]
		if block {
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte(' ')
		}
	}
	for _, n := range root.Nodes {
		walk(n)
	}
	return collapseSpace(b.String())
}

// contentText is the text keywords and readability run on. Client-rendered
// shells have almost no markup text, so description and title stand in for
// it. This is an approximation, not a measurement.
func contentText(visible string, meta models.PageMeta) string {
	if utf8.RuneCountInString(visible) >= minVisibleText {
		return visible
	}
	seed := strings.TrimSpace(meta.Description + " " + meta.Title)
	if seed == "" {
		return visible
	}
	return strings.TrimSpace(strings.Repeat(seed+" ", 3))
}

// tokenize lower-cases text, strips punctuation and splits on whitespace
func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))
	return strings.Fields(cleaned)
}

// keywordTokens drops tokens of three runes or fewer
func keywordTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if utf8.RuneCountInString(t) >= minKeywordLen {
			out = append(out, t)
		}
	}
	return out
}

// topKeywords counts tokens and returns the most frequent ones. Ties keep
// first-occurrence order.
func topKeywords(tokens []string) []models.Keyword {
	if len(tokens) == 0 {
		return []models.Keyword{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	total := float64(len(tokens))
	keywords := make([]models.Keyword, 0, len(order))
	for _, w := range order {
		keywords = append(keywords, models.Keyword{
			Word:    w,
			Count:   counts[w],
			Density: math.Round(float64(counts[w])/total*1000) / 10,
		})
	}
	return keywords
}

// sentences splits text on terminal punctuation and drops empty segments
func sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readability is the Flesch Reading Ease score with syllables estimated as
// non-whitespace characters / 3
func readability(text string, words int) int {
	if words == 0 {
		return 50
	}

	sentenceCount := len(sentences(text))
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	nonSpace := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			nonSpace++
		}
	}
	syllables := float64(nonSpace) / 3

	score := 206.835 -
		1.015*(float64(words)/float64(sentenceCount)) -
		84.6*(syllables/float64(words))
	if math.IsNaN(score) {
		return 50
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func sentiment(tokens []string) models.Sentiment {
	score := 0
	for _, t := range tokens {
		switch {
		case positiveWords[t]:
			score++
		case negativeWords[t]:
			score--
		}
	}

	tone := models.ToneNeutral
	if score > 5 {
		tone = models.TonePositive
	} else if score < -2 {
		tone = models.ToneNegative
	}

	return models.Sentiment{Score: score, Tone: tone, WordsSeen: len(tokens)}
}

// sampleSentence picks the middle sentence of longer texts, e.g. for
// duplicate-content lookups
func sampleSentence(text string) string {
	s := sentences(text)
	if len(s) <= 5 {
		return ""
	}
	return truncateRunes(s[len(s)/2], maxSampleLength)
}

func textToHTMLRatio(text, rawHTML string) int {
	htmlLen := utf8.RuneCountInString(rawHTML)
	if htmlLen == 0 {
		return 0
	}
	return int(math.Round(float64(utf8.RuneCountInString(text)) / float64(htmlLen) * 100))
}

func extractContent(doc *goquery.Document, rawHTML string, meta models.PageMeta) (models.ContentStats, []models.Keyword) {
	visible := visibleText(doc)
	text := contentText(visible, meta)

	tokens := tokenize(text)
	filtered := keywordTokens(tokens)

	stats := models.ContentStats{
		WordCount:       len(tokens),
		TextToHTMLRatio: textToHTMLRatio(visible, rawHTML),
		Readability:     readability(text, len(filtered)),
		Sentiment:       sentiment(tokens),
		SampleSentence:  sampleSentence(text),
	}
	return stats, topKeywords(filtered)
}
