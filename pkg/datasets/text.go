package datasets

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slug converts a display name to a lowercase identifier-safe form.
func Slug(value string) string {
	slug := strings.ToLower(slugPattern.ReplaceAllString(value, "-"))
	return strings.Trim(slug, "-")
}

// NormalizeText trims and lowercases a value for case-insensitive matching.
func NormalizeText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// SplitComma splits an inline comma-separated list, dropping empty items.
func SplitComma(value string) []string {
	return splitAndTrim(value, ",")
}

// SplitLines splits a multi-line list, dropping empty lines.
func SplitLines(value string) []string {
	return splitAndTrim(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
}

func splitAndTrim(value, sep string) []string {
	parts := strings.Split(value, sep)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
