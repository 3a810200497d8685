package insights

import (
	"regexp"
	"strings"
)

// Model output for nutrition highlights tends to arrive wrapped in
// marketing phrasing ("Excellent source of protein"). These patterns
// strip it down to the bare nutrients.
var (
	leadingBuzz   = regexp.MustCompile(`(?i)^(very |extremely |excellent |good |great |high |low |rich )+`)
	inPatterns    = regexp.MustCompile(`(?i)(high in|rich in|source of|packed with|loaded with)\s*`)
	trailingWords = regexp.MustCompile(`(?i)\s*(source|rich|content)$`)
	sourceSuffix  = regexp.MustCompile(`(?i)(\w+)\s+source`)
	separators    = regexp.MustCompile(`,\s*|\s+and\s+`)
)

// ParseNutritionHighlight extracts the plain nutrient names from a
// free-text highlight, e.g. "Packed with protein and iron" becomes
// ["protein", "iron"].
func ParseNutritionHighlight(highlight string) []string {
	if highlight == "" {
		return nil
	}

	cleaned := leadingBuzz.ReplaceAllString(highlight, "")
	cleaned = inPatterns.ReplaceAllString(cleaned, "")
	cleaned = trailingWords.ReplaceAllString(cleaned, "")
	cleaned = sourceSuffix.ReplaceAllString(cleaned, "$1")

	var nutrients []string
	for _, part := range separators.Split(cleaned, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			nutrients = append(nutrients, part)
		}
	}
	return nutrients
}
