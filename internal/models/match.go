package models

// MatchResult is a derived compatibility result between a target member and a candidate.
// Recomputed on every query; never stored.
type MatchResult struct {
	TargetID           string   `json:"target_id"`
	Member             Member   `json:"member"`
	CompatibilityScore int      `json:"compatibility_score"`
	SharedInterests    []string `json:"shared_interests"`
	ReasonsToConnect   []string `json:"reasons_to_connect"`
}
