package models

import "time"

// Challenge is a time-bounded wellness task. Name and Duration are immutable
// after creation; ModuleName is mutable (a challenge can be reassigned to a
// different module) but never empty.
type Challenge struct {
	Name        string    `db:"name" json:"name"`
	ModuleName  string    `db:"module_name" json:"module_name"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image_url"`
	Phrase      string    `db:"phrase" json:"phrase"`
	Tips        []string  `db:"tips" json:"tips"`
	Goals       []string  `db:"goals" json:"goals"`
	Duration    time.Time `db:"duration" json:"duration"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ChallengeWithModule is a search row: a challenge joined with its owning
// module. Module is nil when the module reference cannot be resolved
// (orphaned data) and such rows are filtered out by the search service.
type ChallengeWithModule struct {
	Challenge Challenge
	Module    *Module
}

// ParticipationState is the per (challenge, user) state. A user holds at most
// one state per challenge at any time.
type ParticipationState string

const (
	StateRegistered ParticipationState = "registered"
	StateConfirmed  ParticipationState = "confirmed"
)

// Participant is one roster entry of a challenge.
type Participant struct {
	ChallengeName string             `db:"challenge_name" json:"challenge_name"`
	UserID        string             `db:"user_id" json:"user_id"`
	State         ParticipationState `db:"state" json:"state"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`
}
