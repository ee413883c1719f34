package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

//go:generate moq -out campaign_mocks.go . Campaign

// Campaign ...
type Campaign interface {
	NextCampaignID(ctx context.Context) (int64, error)
	InsertCampaign(ctx context.Context, campaign model.Campaign) error

	GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error)
	LockCampaign(ctx context.Context, id int64) (model.NullCampaign, error)
	UpdateCampaign(ctx context.Context, campaign model.Campaign) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// NextCampaignID returns the current value of the counter and increments it
func (c *campaignImpl) NextCampaignID(ctx context.Context) (int64, error) {
	tx := GetTx(ctx)

	var id int64
	err := tx.GetContext(ctx, &id, `SELECT next_id FROM campaign_counter WHERE id = 1 FOR UPDATE`)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE campaign_counter SET next_id = next_id + 1 WHERE id = 1`)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, creator, token, goal, pledged,
	start_time, end_time, claimed, cancelled, created_at
) VALUES (
	:id, :creator, :token, :goal, :pledged,
	:start_time, :end_time, :claimed, :cancelled, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

const selectCampaignQuery = `
SELECT id, creator, token, goal, pledged,
	start_time, end_time, claimed, cancelled, created_at
FROM campaign
WHERE id = ?
`

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	return getCampaign(ctx, GetReadonly(ctx), selectCampaignQuery, id)
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	return getCampaign(ctx, GetTx(ctx), selectCampaignQuery+"FOR UPDATE", id)
}

func getCampaign(ctx context.Context, db Readonly, query string, id int64) (model.NullCampaign, error) {
	var campaign model.Campaign
	err := db.GetContext(ctx, &campaign, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaign,
	}, nil
}

// UpdateCampaign writes the mutable fields
func (c *campaignImpl) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
UPDATE campaign SET
	pledged = :pledged,
	claimed = :claimed,
	cancelled = :cancelled
WHERE id = :id
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}
