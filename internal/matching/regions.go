package matching

import "strings"

// Region is a coarse bucket of place names used as a proximity fallback.
type Region struct {
	Name   string
	Places []string // lowercase; matched by substring
}

// DefaultRegions is the fixed north/south partition.
var DefaultRegions = []Region{
	{Name: "northern", Places: []string{"manchester", "leeds", "liverpool", "birmingham"}},
	{Name: "southern", Places: []string{"london", "brighton", "bristol"}},
}

// sameArea reports case-insensitive substring containment in either direction.
// An empty location never matches.
func sameArea(a, b string) bool {
	a, b = strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func (r Region) contains(location string) bool {
	loc := strings.ToLower(location)
	for _, p := range r.Places {
		if strings.Contains(loc, p) {
			return true
		}
	}
	return false
}

func sameRegion(regions []Region, a, b string) bool {
	for _, r := range regions {
		if r.contains(a) && r.contains(b) {
			return true
		}
	}
	return false
}
