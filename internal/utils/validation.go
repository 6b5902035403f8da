package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Metric columns are snake_case CSV header names
	validMetricPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// MaxTopN bounds ranking requests; the dashboard slider never exceeds 50, but
// API consumers get some headroom.
const MaxTopN = 500

// ValidateMetricName validates that a metric column name is safe and within reasonable limits
func ValidateMetricName(metric string) error {
	if metric == "" {
		return errors.New("metric cannot be empty")
	}

	if len(metric) > 64 {
		return errors.New("metric too long (max 64 characters)")
	}

	if !validMetricPattern.MatchString(metric) {
		return errors.New("metric contains invalid characters")
	}

	return nil
}

// ValidateTopN validates ranking truncation bounds
func ValidateTopN(topN int) error {
	if topN < 1 {
		return errors.New("topN must be at least 1")
	}

	if topN > MaxTopN {
		return errors.New("topN too large (max 500)")
	}

	return nil
}

// ValidateCountyName validates a county name selection value
func ValidateCountyName(county string) error {
	if county == "" {
		return errors.New("county cannot be empty")
	}

	if len(county) > 100 {
		return errors.New("county too long (max 100 characters)")
	}

	if htmlTagPattern.MatchString(county) {
		return errors.New("county contains invalid characters")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
