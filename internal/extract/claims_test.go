package extract

import (
	"strings"
	"testing"

	"github.com/veracitylab/veracity/internal/model"
)

func TestSplitSentences_MinLengthCountsRunes(t *testing.T) {
	// 13 runes but 24 bytes: a byte count would wrongly keep this fragment
	short := "Это неправда!"
	long := "Вакцина вызывает рак по данным исследования."

	sentences := splitSentences(short + " " + long)
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1: %v", len(sentences), sentences)
	}
	if sentences[0] != long {
		t.Errorf("kept %q, want the long sentence only", sentences[0])
	}
}

func TestClaimExtractor_BasicExtraction(t *testing.T) {
	extractor := NewClaimExtractor()

	text := `Scientists say the new vaccine prevents 95% of infections.
	Climate emissions are higher than at any point in recorded history.
	Hello world.`

	claims := extractor.Extract(text)

	if len(claims) < 2 {
		t.Fatalf("Expected at least 2 claims, got %d", len(claims))
	}

	foundHealth := false
	foundEnvironment := false
	for _, claim := range claims {
		if claim.Category == model.CategoryHealth {
			foundHealth = true
			if claim.Confidence <= 0.6 {
				t.Errorf("Expected health claim confidence > 0.6, got %.2f", claim.Confidence)
			}
		}
		if claim.Category == model.CategoryEnvironment {
			foundEnvironment = true
		}
	}

	if !foundHealth {
		t.Error("Expected a health claim")
	}
	if !foundEnvironment {
		t.Error("Expected an environment claim")
	}
}

func TestClaimExtractor_ShortFragmentsDiscarded(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("Yes. No. Maybe so. Ok!")
	if len(claims) != 0 {
		t.Errorf("Expected no claims from short fragments, got %d", len(claims))
	}
}

func TestClaimExtractor_SingleSignalWithoutCategoryDropped(t *testing.T) {
	extractor := NewClaimExtractor()

	// One signal (statistical), no category keyword: sits exactly at 0.6
	claims := extractor.Extract("The old bridge spans exactly 40 percent further today.")
	for _, c := range claims {
		if c.Confidence <= 0.6 {
			t.Errorf("Kept claim with confidence %.2f <= 0.6: %q", c.Confidence, c.Text)
		}
	}
}

func TestClaimExtractor_ConfidenceStacks(t *testing.T) {
	extractor := NewClaimExtractor()

	// statistical + authority + medical signals plus health keyword
	claims := extractor.Extract("Doctors confirm this treatment cures 90% of cancer cases.")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}

	claim := claims[0]
	if claim.Category != model.CategoryHealth {
		t.Errorf("Expected health category, got %s", claim.Category)
	}
	// 0.6 base + 0.1 + 0.1 extra signals + 0.2 health boost
	if claim.Confidence < 0.99 {
		t.Errorf("Expected stacked confidence near 1.0, got %.2f", claim.Confidence)
	}
}

func TestClaimExtractor_CapAndRanking(t *testing.T) {
	extractor := NewClaimExtractor()

	var sb strings.Builder
	// Ten qualifying sentences with mixed confidence
	for i := 0; i < 5; i++ {
		sb.WriteString("Experts claim the vaccine prevents most virus infections in adults. ")
		sb.WriteString("Inflation is higher than 10 percent across many market sectors this winter. ")
	}

	claims := extractor.Extract(sb.String())
	if len(claims) > 8 {
		t.Errorf("Expected at most 8 claims, got %d", len(claims))
	}
	for i := 1; i < len(claims); i++ {
		if claims[i].Confidence > claims[i-1].Confidence {
			t.Errorf("Claims not ranked by confidence: %.2f before %.2f",
				claims[i-1].Confidence, claims[i].Confidence)
		}
	}
}

func TestClaimExtractor_Keywords(t *testing.T) {
	extractor := NewClaimExtractor()

	claims := extractor.Extract("Researchers found that climate warming causes stronger storms every single year.")
	if len(claims) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(claims))
	}

	kw := claims[0].Keywords
	if len(kw) == 0 || len(kw) > 5 {
		t.Fatalf("Expected 1-5 keywords, got %v", kw)
	}
	for _, w := range kw {
		if len(w) <= 3 {
			t.Errorf("Keyword %q too short", w)
		}
		if w != strings.ToLower(w) {
			t.Errorf("Keyword %q not lowercased", w)
		}
	}
	if kw[0] != "researchers" {
		t.Errorf("Expected first keyword 'researchers', got %q", kw[0])
	}
}

func TestClaimExtractor_EmptyInput(t *testing.T) {
	extractor := NewClaimExtractor()

	if claims := extractor.Extract(""); len(claims) != 0 {
		t.Errorf("Expected no claims from empty input, got %d", len(claims))
	}
}
