package repository

import (
	"context"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

// Event ...
type Event interface {
	// InsertEvent appends the event with the next seq of its campaign
	InsertEvent(ctx context.Context, event model.Event) error
	ListEvents(ctx context.Context, campaignID int64) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvent ...
func (e *eventImpl) InsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO campaign_event (campaign_id, seq, type, actor, amount, created_at)
SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
FROM campaign_event
WHERE campaign_id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query,
		event.CampaignID, event.Type, event.Actor, event.Amount, event.CreatedAt,
		event.CampaignID,
	)
	return err
}

// ListEvents ...
func (e *eventImpl) ListEvents(ctx context.Context, campaignID int64) ([]model.Event, error) {
	query := `
SELECT id, campaign_id, seq, type, actor, amount, created_at
FROM campaign_event
WHERE campaign_id = ?
ORDER BY seq
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}
