package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newCampaign(id int64) model.Campaign {
	start := time.Date(2022, 5, 7, 10, 0, 0, 0, time.UTC)
	return model.Campaign{
		ID:        id,
		Creator:   "creator01",
		Token:     "token01",
		Goal:      model.NewAmount(100),
		StartTime: start,
		EndTime:   start.Add(24 * time.Hour),
	}
}

func insertCampaign(t *testing.T, s *Store) int64 {
	var id int64
	err := s.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = s.NextCampaignID(ctx)
		if err != nil {
			return err
		}
		return s.InsertCampaign(ctx, newCampaign(id))
	})
	assert.Equal(t, nil, err)
	return id
}

func TestStore_Campaign_Sequential_IDs(t *testing.T) {
	s := New()

	assert.Equal(t, int64(0), insertCampaign(t, s))
	assert.Equal(t, int64(1), insertCampaign(t, s))

	result, err := s.GetCampaign(newContext(), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, int64(1), result.Campaign.ID)

	result, err = s.GetCampaign(newContext(), 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, result)

	result, err = s.GetCampaign(newContext(), -1)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)
}

func TestStore_Insert_Non_Sequential(t *testing.T) {
	s := New()
	err := s.Transact(newContext(), func(ctx context.Context) error {
		return s.InsertCampaign(ctx, newCampaign(5))
	})
	assert.Equal(t, ErrNonSequentialID, err)
}

func TestStore_Transact_Rollback(t *testing.T) {
	s := New()
	insertCampaign(t, s)

	errTest := errors.New("test error")
	err := s.Transact(newContext(), func(ctx context.Context) error {
		c, _ := s.LockCampaign(ctx, 0)
		c.Campaign.Pledged = model.NewAmount(30)
		_ = s.UpdateCampaign(ctx, c.Campaign)
		_ = s.UpsertPledge(ctx, model.Pledge{CampaignID: 0, Pledger: "p01", Amount: model.NewAmount(30)})

		inside, _ := s.GetCampaign(ctx, 0)
		assert.Equal(t, "30", inside.Campaign.Pledged.String())
		return errTest
	})
	assert.Equal(t, errTest, err)

	result, _ := s.GetCampaign(newContext(), 0)
	assert.Equal(t, "0", result.Campaign.Pledged.String())

	pledge, _ := s.GetPledge(newContext(), 0, "p01")
	assert.Equal(t, true, pledge.Amount.IsZero())

	// counter also rolled back
	err = s.Transact(newContext(), func(ctx context.Context) error {
		_, _ = s.NextCampaignID(ctx)
		return errTest
	})
	assert.Equal(t, errTest, err)
	assert.Equal(t, int64(1), insertCampaign(t, s))
}

func TestStore_Transact_Nested(t *testing.T) {
	s := New()
	insertCampaign(t, s)

	errInner := errors.New("inner error")
	err := s.Transact(newContext(), func(ctx context.Context) error {
		_ = s.UpsertPledge(ctx, model.Pledge{CampaignID: 0, Pledger: "p01", Amount: model.NewAmount(10)})

		err := s.Transact(ctx, func(ctx context.Context) error {
			_ = s.UpsertPledge(ctx, model.Pledge{CampaignID: 0, Pledger: "p02", Amount: model.NewAmount(20)})
			return errInner
		})
		assert.Equal(t, errInner, err)

		return s.Transact(ctx, func(ctx context.Context) error {
			p, _ := s.LockPledge(ctx, 0, "p01")
			assert.Equal(t, "10", p.Amount.String())
			return s.UpsertPledge(ctx, model.Pledge{CampaignID: 0, Pledger: "p03", Amount: model.NewAmount(30)})
		})
	})
	assert.Equal(t, nil, err)

	pledges, err := s.ListPledges(newContext(), 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(pledges))
	assert.Equal(t, model.Address("p01"), pledges[0].Pledger)
	assert.Equal(t, "10", pledges[0].Amount.String())
	assert.Equal(t, model.Address("p03"), pledges[1].Pledger)
	assert.Equal(t, "30", pledges[1].Amount.String())
}

func TestStore_ZeroPledges(t *testing.T) {
	s := New()
	err := s.Transact(newContext(), func(ctx context.Context) error {
		_ = s.UpsertPledge(ctx, model.Pledge{CampaignID: 0, Pledger: "p01", Amount: model.NewAmount(10)})
		_ = s.UpsertPledge(ctx, model.Pledge{CampaignID: 1, Pledger: "p01", Amount: model.NewAmount(20)})
		return s.ZeroPledges(ctx, 0)
	})
	assert.Equal(t, nil, err)

	p, _ := s.GetPledge(newContext(), 0, "p01")
	assert.Equal(t, "0", p.Amount.String())
	p, _ = s.GetPledge(newContext(), 1, "p01")
	assert.Equal(t, "20", p.Amount.String())
}

func TestStore_Events(t *testing.T) {
	s := New()
	err := s.Transact(newContext(), func(ctx context.Context) error {
		_ = s.InsertEvent(ctx, model.Event{CampaignID: 0, Type: model.EventTypeLaunch})
		_ = s.InsertEvent(ctx, model.Event{CampaignID: 1, Type: model.EventTypeLaunch})
		return s.InsertEvent(ctx, model.Event{CampaignID: 0, Type: model.EventTypePledge})
	})
	assert.Equal(t, nil, err)

	events, err := s.ListEvents(newContext(), 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, uint64(1), events[0].ID)
	assert.Equal(t, uint32(1), events[0].Seq)
	assert.Equal(t, uint64(3), events[1].ID)
	assert.Equal(t, uint32(2), events[1].Seq)
	assert.Equal(t, model.EventTypePledge, events[1].Type)
}

func TestStore_LockCampaign_Without_Tx_Panics(t *testing.T) {
	s := New()
	assert.PanicsWithValue(t, "Not found transaction", func() {
		_, _ = s.LockCampaign(newContext(), 0)
	})
}
