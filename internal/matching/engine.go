// Package matching scores and ranks members against each other.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blkout/hub/internal/models"
)

const (
	interestWeight     = 40.0
	proximityWeight    = 30.0
	nearbyWeight       = 15.0
	contributionWeight = 20.0
	contributionCeil   = 5.0
	maxReasons         = 3
)

// Engine computes compatibility between members. It holds no mutable state.
type Engine struct {
	regions []Region
}

// NewEngine creates an engine. A nil region table uses DefaultRegions.
func NewEngine(regions []Region) *Engine {
	if regions == nil {
		regions = DefaultRegions
	}
	return &Engine{regions: regions}
}

// Score returns the weighted compatibility of a and b in [0,100].
func (e *Engine) Score(a, b models.Member) int {
	var score float64

	shared := SharedInterests(a.Interests, b.Interests)
	denom := max(len(dedupe(a.Interests)), len(dedupe(b.Interests)), 1)
	score += float64(len(shared)) / float64(denom) * interestWeight

	switch {
	case sameArea(a.Location, b.Location):
		score += proximityWeight
	case sameRegion(e.regions, a.Location, b.Location):
		score += nearbyWeight
	}

	avg := float64(len(a.Contributions)+len(b.Contributions)) / 2
	score += math.Min(avg/contributionCeil, 1) * contributionWeight

	switch d := ageDiff(a, b); {
	case d <= 3:
		score += 10
	case d <= 7:
		score += 5
	}

	return int(math.Round(score))
}

// Reasons returns up to three connection reasons in priority order.
func (e *Engine) Reasons(a, b models.Member) []string {
	reasons := make([]string, 0, maxReasons)
	if shared := SharedInterests(a.Interests, b.Interests); len(shared) > 0 {
		reasons = append(reasons, fmt.Sprintf("Both passionate about %s", strings.Join(shared, " and ")))
	}
	if sameArea(a.Location, b.Location) {
		reasons = append(reasons, "Same local area - could meet up in person")
	}
	if len(a.Contributions) > 2 && len(b.Contributions) > 2 {
		reasons = append(reasons, "Both active contributors to the community")
	}
	if ageDiff(a, b) <= 5 {
		reasons = append(reasons, "Similar life stage and experiences")
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// Match builds the result for one candidate.
func (e *Engine) Match(target, candidate models.Member) models.MatchResult {
	return models.MatchResult{
		TargetID:           target.ID,
		Member:             candidate,
		CompatibilityScore: e.Score(target, candidate),
		SharedInterests:    SharedInterests(target.Interests, candidate.Interests),
		ReasonsToConnect:   e.Reasons(target, candidate),
	}
}

// FindMatches ranks every other member of pool against targetID, best first.
// Equal scores keep pool order.
func (e *Engine) FindMatches(targetID string, pool []models.Member) ([]models.MatchResult, error) {
	idx := -1
	for i := range pool {
		if pool[i].ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrMemberNotFound, targetID)
	}
	target := pool[idx]

	results := make([]models.MatchResult, 0, len(pool)-1)
	for _, m := range pool {
		if m.ID == target.ID {
			continue
		}
		results = append(results, e.Match(target, m))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CompatibilityScore > results[j].CompatibilityScore
	})
	return results, nil
}

// SharedInterests returns the interests of a also held by b, in a's order.
func SharedInterests(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, s := range b {
		in[s] = struct{}{}
	}
	shared := []string{}
	for _, s := range dedupe(a) {
		if _, ok := in[s]; ok {
			shared = append(shared, s)
		}
	}
	return shared
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func ageDiff(a, b models.Member) int {
	d := a.Age - b.Age
	if d < 0 {
		return -d
	}
	return d
}
