package models

import "time"

// Module is a named grouping that exclusively owns a set of challenges.
// Deleting a module cascades to its challenges and their redeemable links.
type Module struct {
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ModuleResource is the external read model for a module.
type ModuleResource struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image_url"`
}
