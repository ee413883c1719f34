//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type repoTest struct {
	tc       *integration.TestCase
	provider Provider
}

func newRepoTest() *repoTest {
	tc := integration.NewTestCase()
	tc.Reset()
	return &repoTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
	}
}

func TestCampaign(t *testing.T) {
	tc := newRepoTest()
	repo := NewCampaign()

	ctx := tc.provider.Readonly(newContext())

	// Get 1
	result, err := repo.GetCampaign(ctx, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, result)

	campaign01 := model.Campaign{
		Creator:   "creator01",
		Token:     "token01",
		Goal:      model.MustAmount("340282366920938463463374607431768211456"),
		StartTime: newTime("2022-05-07T10:00:00Z"),
		EndTime:   newTime("2022-05-14T10:00:00Z"),
		CreatedAt: newTime("2022-05-01T10:00:00Z"),
	}

	// Insert
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		id, err := repo.NextCampaignID(ctx)
		if err != nil {
			return err
		}
		campaign01.ID = id
		return repo.InsertCampaign(ctx, campaign01)
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), campaign01.ID)

	// Get 2
	result, err = repo.GetCampaign(ctx, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, model.Address("creator01"), result.Campaign.Creator)
	assert.Equal(t, "340282366920938463463374607431768211456", result.Campaign.Goal.String())
	assert.Equal(t, "0", result.Campaign.Pledged.String())
	assert.True(t, campaign01.StartTime.Equal(result.Campaign.StartTime))
	assert.True(t, campaign01.EndTime.Equal(result.Campaign.EndTime))

	// Lock & Update
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		locked, err := repo.LockCampaign(ctx, 0)
		if err != nil {
			return err
		}
		c := locked.Campaign
		c.Pledged = model.NewAmount(70)
		c.Claimed = true
		return repo.UpdateCampaign(ctx, c)
	})
	assert.Equal(t, nil, err)

	result, err = repo.GetCampaign(ctx, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, "70", result.Campaign.Pledged.String())
	assert.Equal(t, true, result.Campaign.Claimed)
	assert.Equal(t, false, result.Campaign.Cancelled)

	// Next ID
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		id, err := repo.NextCampaignID(ctx)
		assert.Equal(t, int64(1), id)
		return err
	})
	assert.Equal(t, nil, err)
}

func TestPledge_And_Event(t *testing.T) {
	tc := newRepoTest()
	pledgeRepo := NewPledge()
	eventRepo := NewEvent()

	ctx := tc.provider.Readonly(newContext())

	pledge, err := pledgeRepo.GetPledge(ctx, 3, "pledger01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.Pledge{CampaignID: 3, Pledger: "pledger01"}, pledge)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := pledgeRepo.UpsertPledge(ctx, model.Pledge{
			CampaignID: 3, Pledger: "pledger01", Amount: model.NewAmount(50),
		}); err != nil {
			return err
		}
		if err := pledgeRepo.UpsertPledge(ctx, model.Pledge{
			CampaignID: 3, Pledger: "pledger02", Amount: model.NewAmount(20),
		}); err != nil {
			return err
		}
		if err := pledgeRepo.UpsertPledge(ctx, model.Pledge{
			CampaignID: 3, Pledger: "pledger01", Amount: model.NewAmount(80),
		}); err != nil {
			return err
		}

		for _, typ := range []model.EventType{model.EventTypePledge, model.EventTypeUnpledge} {
			if err := eventRepo.InsertEvent(ctx, model.Event{
				CampaignID: 3,
				Type:       typ,
				Actor:      "pledger01",
				Amount:     model.NewAmount(5),
				CreatedAt:  newTime("2022-05-08T10:00:00Z"),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	pledges, err := pledgeRepo.ListPledges(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(pledges))
	assert.Equal(t, "80", pledges[0].Amount.String())
	assert.Equal(t, "20", pledges[1].Amount.String())

	events, err := eventRepo.ListEvents(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, uint32(1), events[0].Seq)
	assert.Equal(t, model.EventTypePledge, events[0].Type)
	assert.Equal(t, uint32(2), events[1].Seq)
	assert.Equal(t, model.EventTypeUnpledge, events[1].Type)

	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return pledgeRepo.ZeroPledges(ctx, 3)
	})
	assert.Equal(t, nil, err)

	pledge, err = pledgeRepo.GetPledge(ctx, 3, "pledger01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, pledge.Amount.IsZero())
}

func TestCampaign_Microsecond_Times_Round_Trip(t *testing.T) {
	tc := newRepoTest()
	repo := NewCampaign()

	startTime := newTime("2022-05-07T10:00:00Z").Add(123456 * time.Microsecond)
	endTime := newTime("2022-05-14T10:00:00Z").Add(999999 * time.Microsecond)

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		id, err := repo.NextCampaignID(ctx)
		if err != nil {
			return err
		}
		return repo.InsertCampaign(ctx, model.Campaign{
			ID:        id,
			Creator:   "creator01",
			Token:     "token01",
			Goal:      model.NewAmount(10),
			StartTime: startTime,
			EndTime:   endTime,
			CreatedAt: startTime,
		})
	})
	assert.Equal(t, nil, err)

	result, err := repo.GetCampaign(tc.provider.Readonly(newContext()), 0)
	assert.Equal(t, nil, err)
	assert.True(t, startTime.Equal(result.Campaign.StartTime))
	assert.True(t, endTime.Equal(result.Campaign.EndTime))
}
