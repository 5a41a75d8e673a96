package models

import (
	"fmt"
	"time"
)

// RedeemableKey is the composite identity of a redeemable link. It has
// structural equality and is the only key redeemables are addressed by.
type RedeemableKey struct {
	ChallengeName string
	AwardID       uint64
}

func (k RedeemableKey) String() string {
	return fmt.Sprintf("%s/%d", k.ChallengeName, k.AwardID)
}

// Redeemable links exactly one challenge to exactly one award. LimitDays is
// the number of days after challenge completion during which the award may be
// claimed.
type Redeemable struct {
	Key       RedeemableKey
	LimitDays int32     `db:"limit_days"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RedeemableResource is the external read model for a redeemable link.
type RedeemableResource struct {
	ChallengeName string `json:"challenge_name"`
	AwardID       uint64 `json:"award_id"`
	LimitDays     int32  `json:"limit_days"`
}
