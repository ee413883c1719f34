package model

// Pledge ...
type Pledge struct {
	CampaignID int64   `db:"campaign_id"`
	Pledger    Address `db:"pledger"`
	Amount     Amount  `db:"amount"`
}
