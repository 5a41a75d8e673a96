package models

import "time"

// AwardSummary is the flattened award view embedded in a challenge response.
// It exists to break the award→redeemable→challenge reference cycle: only
// plain award fields cross the boundary, never the owning graph.
type AwardSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stock       int32  `json:"stock"`
	Image       string `json:"image_url"`
}

// ChallengeResource is the external read model for a challenge. Awards is nil
// (JSON null) when the challenge has no redeemable links, distinguishing "no
// links" from an empty list.
type ChallengeResource struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image_url"`
	Phrase      string         `json:"phrase"`
	Tips        []string       `json:"tips"`
	Duration    time.Time      `json:"duration"`
	Goals       []string       `json:"goals"`
	ModuleName  string         `json:"module_name"`
	Awards      []AwardSummary `json:"awards"`
}

// ModuleChallengesResource is one search aggregate: a module together with
// the challenges of it that matched the query.
type ModuleChallengesResource struct {
	ModuleName      string              `json:"module_name"`
	Description     string              `json:"description"`
	Image           string              `json:"image_url"`
	Challenges      []ChallengeResource `json:"challenges"`
	TotalChallenges int                 `json:"total_challenges"`
}
