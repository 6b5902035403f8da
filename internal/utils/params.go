package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseIntParam retrieves an int value from the provided URL query parameters.
// If the key is absent, defaultValue is returned. An unparseable value returns
// defaultValue and updates the fieldErrors map.
func ParseIntParam(params url.Values, key string, defaultValue int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return defaultValue, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultValue, fieldErrors
	}
	return n, fieldErrors
}

// ParseStringParam retrieves a string value from the URL query parameters,
// falling back to defaultValue when the key is absent or empty.
func ParseStringParam(params url.Values, key, defaultValue string) string {
	val := strings.TrimSpace(params.Get(key))
	if val == "" {
		return defaultValue
	}
	return val
}

// ParseListParam retrieves a comma-separated list value from the URL query
// parameters. Each element is sanitized and trimmed; empty elements are
// dropped. An absent key yields a nil slice.
func ParseListParam(params url.Values, key string) []string {
	raw := params.Get(key)
	if raw == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		clean := SanitizeInput(part)
		if clean != "" {
			values = append(values, clean)
		}
	}
	return values
}
