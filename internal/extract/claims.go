package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/veracitylab/veracity/internal/model"
)

const (
	minSentenceLen = 15
	maxClaims      = 8
	maxKeywords    = 5
)

// signalPattern is one claim-signal heuristic
type signalPattern struct {
	name    string
	pattern *regexp.Regexp
}

// categoryRule bumps confidence and assigns a topic when its keywords appear
type categoryRule struct {
	category model.ClaimCategory
	boost    float64
	keywords []string
}

// ClaimExtractor flags sentences that look like verifiable factual assertions
type ClaimExtractor struct {
	signals    []signalPattern
	categories []categoryRule
	stopWords  map[string]bool
}

// NewClaimExtractor creates a claim extractor with the built-in heuristics
func NewClaimExtractor() *ClaimExtractor {
	compile := func(name, expr string) signalPattern {
		return signalPattern{name: name, pattern: regexp.MustCompile(expr)}
	}

	return &ClaimExtractor{
		signals: []signalPattern{
			compile("statistical", `(?i)\b\d+(\.\d+)?\s*(%|percent\b|times\b|million\b|billion\b)`),
			compile("authority", `(?i)\b(scientists?|doctors?|experts?|researchers?|studies)\s+(say|claim|confirm|prove|show|found|agree)\b`),
			compile("medical", `(?i)\b(causes?|cures?|prevents?|treats?|leads to|results in)\b`),
			compile("conspiratorial", `(?i)(they don't want you to know|cover.?up|the truth about|secret(ly)?|hidden agenda|mainstream media won't)`),
			compile("urgency", `(?i)\b(breaking|urgent|warning|alert|share (this )?before)\b`),
			compile("comparative", `(?i)\b(more|less|higher|lower|worse|better|bigger|smaller)\s+than\b|\bthe (most|least|worst|best)\b`),
		},
		categories: []categoryRule{
			{model.CategoryHealth, 0.2, []string{"health", "vaccine", "virus", "disease", "medicine", "covid", "cancer", "treatment"}},
			{model.CategoryEnvironment, 0.15, []string{"climate", "environment", "warming", "pollution", "emissions"}},
			{model.CategoryPolitical, 0.1, []string{"election", "political", "government", "president", "vote", "congress"}},
			{model.CategoryEconomic, 0.1, []string{"economy", "inflation", "market", "unemployment", "recession", "taxes"}},
		},
		stopWords: map[string]bool{
			"this": true, "that": true, "with": true, "from": true, "have": true,
			"will": true, "been": true, "they": true, "their": true, "there": true,
			"what": true, "when": true, "which": true, "about": true, "more": true,
			"than": true, "were": true, "your": true, "because": true,
		},
	}
}

// Extract returns up to 8 claims, highest confidence first. A sentence must
// match at least one claim signal and clear confidence 0.6 after category
// boosts to qualify. Pure function, no error conditions: input with no
// qualifying sentences yields an empty slice.
func (e *ClaimExtractor) Extract(text string) []model.Claim {
	sentences := splitSentences(text)

	var claims []model.Claim
	for _, sentence := range sentences {
		matched := 0
		for _, sig := range e.signals {
			if sig.pattern.MatchString(sentence) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		confidence := 0.6 + 0.1*float64(matched-1)
		category := model.CategoryGeneral

		lower := strings.ToLower(sentence)
		for _, rule := range e.categories {
			if containsAny(lower, rule.keywords) {
				category = rule.category
				confidence += rule.boost
				break
			}
		}

		// Strict threshold: a single-signal sentence with no category
		// keyword sits exactly at 0.6 and is dropped.
		if confidence <= 0.6 {
			continue
		}
		if confidence > 1.0 {
			confidence = 1.0
		}

		claims = append(claims, model.Claim{
			Text:       sentence,
			Category:   category,
			Confidence: confidence,
			Keywords:   e.extractKeywords(sentence),
		})
	}

	// Rank by confidence before the cap. Stable sort preserves document
	// order among equally confident claims.
	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].Confidence > claims[j].Confidence
	})
	if len(claims) > maxClaims {
		claims = claims[:maxClaims]
	}

	return claims
}

// extractKeywords returns the first 5 significant words of the sentence
func (e *ClaimExtractor) extractKeywords(sentence string) []string {
	var keywords []string
	for _, word := range strings.Fields(sentence) {
		word = strings.ToLower(strings.Trim(word, `.,!?;:"'()[]`))
		if len(word) <= 3 || e.stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// splitSentences splits text on sentence terminators, discarding fragments
// shorter than 15 characters
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if utf8.RuneCountInString(sentence) >= minSentenceLen {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	return sentences
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
