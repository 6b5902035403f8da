package healthdata

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnknownCounty is the sentinel county assigned to sub-counties that are not
// present in the county map. Unmapped areas are not an error; they are bucketed
// under this value and included in all aggregates.
const UnknownCounty = "Unknown"

//go:embed county_map.yaml
var countyMapYAML []byte

// LoadCountyMap parses the embedded sub-county to county assignment document.
func LoadCountyMap() (map[string]string, error) {
	m := make(map[string]string)
	if err := yaml.Unmarshal(countyMapYAML, &m); err != nil {
		return nil, fmt.Errorf("parsing county map: %w", err)
	}
	return m, nil
}

// Resolver maps raw sub-county area names to county names via an immutable
// lookup table built once at process start.
type Resolver struct {
	counties map[string]string
}

// NewResolver builds a Resolver over the given assignment map. The map is
// copied, so later mutation of the argument does not affect the Resolver.
func NewResolver(counties map[string]string) *Resolver {
	m := make(map[string]string, len(counties))
	for subCounty, county := range counties {
		m[strings.ToUpper(strings.TrimSpace(subCounty))] = county
	}
	return &Resolver{counties: m}
}

// Resolve returns the county for the given sub-county area name, or
// UnknownCounty if the name is not in the map. Lookup is case-insensitive.
// Resolve never fails.
func (r *Resolver) Resolve(areaName string) string {
	county, ok := r.counties[strings.ToUpper(strings.TrimSpace(areaName))]
	if !ok {
		return UnknownCounty
	}
	return county
}

// Counties returns the sorted distinct county names present in the map.
func (r *Resolver) Counties() []string {
	seen := make(map[string]bool, len(r.counties))
	var names []string
	for _, county := range r.counties {
		if !seen[county] {
			seen[county] = true
			names = append(names, county)
		}
	}
	sort.Strings(names)
	return names
}
