package models

import "time"

// Award is a redeemable prize with a finite stock count. Stock is stored and
// surfaced but never decremented here; no redemption-consumption flow exists.
type Award struct {
	ID          uint64    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Stock       int32     `db:"stock"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// AwardResource is the external read model for an award.
type AwardResource struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Stock       int32  `json:"stock"`
	Image       string `json:"image_url"`
}
