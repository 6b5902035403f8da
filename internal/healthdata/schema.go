package healthdata

import (
	"fmt"
	"strings"
)

// IdentityResolution describes how the sub-county identity column was located
// in the source header.
type IdentityResolution struct {
	// Source is the header name the column was found under.
	Source string
	// Renamed reports whether the column was found via the fallback
	// heuristic and renamed to IdentityColumn, rather than matched exactly.
	Renamed bool
}

// resolveIdentityColumn locates the sub-county identity column in the header.
// An exact IdentityColumn match wins. Otherwise any column whose name contains
// "area" or "sub" (case-insensitive) is a candidate: exactly one candidate is
// accepted and renamed; more than one is surfaced as ambiguous rather than
// silently picking the first; none is a not-found error.
func resolveIdentityColumn(header []string) (IdentityResolution, error) {
	for _, name := range header {
		if name == IdentityColumn {
			return IdentityResolution{Source: name}, nil
		}
	}

	var candidates []string
	for _, name := range header {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "area") || strings.Contains(lower, "sub") {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
		return IdentityResolution{}, fmt.Errorf("%w: header %v", ErrIdentityColumnNotFound, header)
	case 1:
		return IdentityResolution{Source: candidates[0], Renamed: true}, nil
	default:
		return IdentityResolution{}, fmt.Errorf("%w: candidates %v", ErrAmbiguousIdentityColumn, candidates)
	}
}
