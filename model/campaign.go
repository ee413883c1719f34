package model

import (
	"time"
)

// Address identifies an account, either a caller or a token
type Address string

// Campaign ...
type Campaign struct {
	ID      int64   `db:"id"`
	Creator Address `db:"creator"`
	Token   Address `db:"token"`

	Goal    Amount `db:"goal"`
	Pledged Amount `db:"pledged"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	Claimed   bool `db:"claimed"`
	Cancelled bool `db:"cancelled"`

	CreatedAt time.Time `db:"created_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// Finalized returns true when campaign was claimed or cancelled
func (c Campaign) Finalized() bool {
	return c.Claimed || c.Cancelled
}

// IsActiveAt reports whether pledging is open, in range [start_time, end_time)
func (c Campaign) IsActiveAt(now time.Time) bool {
	if c.Finalized() {
		return false
	}
	return !now.Before(c.StartTime) && now.Before(c.EndTime)
}

// HasEndedAt ...
func (c Campaign) HasEndedAt(now time.Time) bool {
	return !now.Before(c.EndTime)
}

// GoalMet ...
func (c Campaign) GoalMet() bool {
	return !c.Pledged.LessThan(c.Goal)
}
