package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

// Pledge ...
type Pledge interface {
	// GetPledge returns a zero amount pledge when the pledger never pledged
	GetPledge(ctx context.Context, campaignID int64, pledger model.Address) (model.Pledge, error)
	LockPledge(ctx context.Context, campaignID int64, pledger model.Address) (model.Pledge, error)
	UpsertPledge(ctx context.Context, pledge model.Pledge) error

	ListPledges(ctx context.Context, campaignID int64) ([]model.Pledge, error)
	ZeroPledges(ctx context.Context, campaignID int64) error
}

type pledgeImpl struct {
}

// NewPledge ...
func NewPledge() Pledge {
	return &pledgeImpl{}
}

const selectPledgeQuery = `
SELECT campaign_id, pledger, amount
FROM pledge
WHERE campaign_id = ? AND pledger = ?
`

// GetPledge ...
func (p *pledgeImpl) GetPledge(
	ctx context.Context, campaignID int64, pledger model.Address,
) (model.Pledge, error) {
	return getPledge(ctx, GetReadonly(ctx), selectPledgeQuery, campaignID, pledger)
}

// LockPledge ...
func (p *pledgeImpl) LockPledge(
	ctx context.Context, campaignID int64, pledger model.Address,
) (model.Pledge, error) {
	return getPledge(ctx, GetTx(ctx), selectPledgeQuery+"FOR UPDATE", campaignID, pledger)
}

func getPledge(
	ctx context.Context, db Readonly, query string, campaignID int64, pledger model.Address,
) (model.Pledge, error) {
	var pledge model.Pledge
	err := db.GetContext(ctx, &pledge, query, campaignID, pledger)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Pledge{
			CampaignID: campaignID,
			Pledger:    pledger,
		}, nil
	}
	return pledge, err
}

// UpsertPledge ...
func (p *pledgeImpl) UpsertPledge(ctx context.Context, pledge model.Pledge) error {
	query := `
INSERT INTO pledge (campaign_id, pledger, amount)
VALUES (:campaign_id, :pledger, :amount)
ON DUPLICATE KEY UPDATE amount = VALUES(amount)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, pledge)
	return err
}

// ListPledges ...
func (p *pledgeImpl) ListPledges(ctx context.Context, campaignID int64) ([]model.Pledge, error) {
	query := `
SELECT campaign_id, pledger, amount
FROM pledge
WHERE campaign_id = ?
ORDER BY pledger
`
	var result []model.Pledge
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// ZeroPledges ...
func (p *pledgeImpl) ZeroPledges(ctx context.Context, campaignID int64) error {
	query := `UPDATE pledge SET amount = '0' WHERE campaign_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID)
	return err
}
