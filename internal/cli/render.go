package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/veracitylab/veracity/internal/model"
)

// renderReport prints the console summary and optionally writes the full
// JSON report to jsonPath
func renderReport(report *model.Report, jsonPath string) error {
	if jsonPath != "" {
		if err := writeJSONReport(report, jsonPath); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", jsonPath)
	}
	printSummary(report)
	return nil
}

func writeJSONReport(report *model.Report, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func printSummary(report *model.Report) {
	fmt.Println()
	fmt.Println("=== Credibility Report ===")
	if report.SourceURL != "" {
		fmt.Printf("URL:            %s\n", report.SourceURL)
	}
	fmt.Printf("Overall score:  %d/100 (%s)\n",
		report.OverallCredibility.Score, scoreLabel(report.OverallCredibility.Score))
	fmt.Printf("Coverage:       %s\n", report.OverallCredibility.FactorsCovered)
	fmt.Printf("Claims found:   %d\n", len(report.Claims))

	if sc := report.SourceCredibility; len(sc.Domains) > 0 {
		fmt.Printf("Sources:        %d analyzed, %d trusted, %d suspicious\n",
			len(sc.Domains), len(sc.TrustedSources), len(sc.SuspiciousSources))
	}

	for i, claim := range report.Claims {
		fmt.Printf("\n[%d] %s\n", i+1, truncate(claim.Text, 100))
		fmt.Printf("    category=%s confidence=%.2f\n", claim.Category, claim.Confidence)
		if i < len(report.FactCheckResults) {
			for _, result := range report.FactCheckResults[i] {
				fmt.Printf("    %-10s %s\n", result.Rating, truncate(result.Summary, 90))
			}
		}
	}

	if len(report.Corrections) > 0 {
		fmt.Println("\nCorrections:")
		for _, c := range report.Corrections {
			fmt.Printf("  - %s (%s)\n", c.Correction, c.Source)
		}
	}

	if report.Explanation != nil && report.Explanation.Text != "" {
		fmt.Println("\nExplanation:")
		fmt.Println(indent(report.Explanation.Text, "  "))
	}
	fmt.Println()
}

func scoreLabel(score int) string {
	switch {
	case score >= 80:
		return "highly credible"
	case score >= 60:
		return "credible"
	case score >= 40:
		return "questionable"
	default:
		return "low credibility"
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
