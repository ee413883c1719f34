// Package memstore is an in-memory implementation of the repository interfaces.
//
// The outermost transaction holds a store-wide lock and works on a copy of the
// committed state, which replaces the committed state on success. A transaction
// started with a context already carrying one is nested: it works on a copy of
// its parent's state and is merged back only on success.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/repository"
)

type pledgeKey struct {
	campaignID int64
	pledger    model.Address
}

type state struct {
	nextCampaignID int64
	campaigns      []model.Campaign
	pledges        map[pledgeKey]model.Amount
	events         []model.Event
}

func newState() *state {
	return &state{
		pledges: map[pledgeKey]model.Amount{},
	}
}

func (s *state) clone() *state {
	pledges := make(map[pledgeKey]model.Amount, len(s.pledges))
	for k, v := range s.pledges {
		pledges[k] = v
	}
	return &state{
		nextCampaignID: s.nextCampaignID,
		campaigns:      append([]model.Campaign(nil), s.campaigns...),
		pledges:        pledges,
		events:         append([]model.Event(nil), s.events...),
	}
}

type txKey struct{}

type txValue struct {
	st *state
}

// Store ...
type Store struct {
	mu        sync.Mutex
	committed *state
}

var _ repository.Provider = &Store{}
var _ repository.Campaign = &Store{}
var _ repository.Pledge = &Store{}
var _ repository.Event = &Store{}

// New ...
func New() *Store {
	return &Store{
		committed: newState(),
	}
}

// Transact ...
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if parent, ok := ctx.Value(txKey{}).(*txValue); ok {
		child := &txValue{st: parent.st.clone()}
		if err := fn(context.WithValue(ctx, txKey{}, child)); err != nil {
			return err
		}
		parent.st = child.st
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txValue{st: s.committed.clone()}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	s.committed = tx.st
	return nil
}

// Readonly ...
func (s *Store) Readonly(ctx context.Context) context.Context {
	return ctx
}

func (s *Store) view(ctx context.Context, fn func(st *state)) {
	if tx, ok := ctx.Value(txKey{}).(*txValue); ok {
		fn(tx.st)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.committed)
}

func getTx(ctx context.Context) *state {
	tx, ok := ctx.Value(txKey{}).(*txValue)
	if !ok {
		panic("Not found transaction")
	}
	return tx.st
}

// NextCampaignID ...
func (s *Store) NextCampaignID(ctx context.Context) (int64, error) {
	st := getTx(ctx)
	id := st.nextCampaignID
	st.nextCampaignID++
	return id, nil
}

// InsertCampaign ...
func (s *Store) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	st := getTx(ctx)
	if campaign.ID != int64(len(st.campaigns)) {
		return ErrNonSequentialID
	}
	st.campaigns = append(st.campaigns, campaign)
	return nil
}

// GetCampaign ...
func (s *Store) GetCampaign(ctx context.Context, id int64) (result model.NullCampaign, err error) {
	s.view(ctx, func(st *state) {
		result = st.getCampaign(id)
	})
	return result, nil
}

// LockCampaign ...
func (s *Store) LockCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	return getTx(ctx).getCampaign(id), nil
}

func (s *state) getCampaign(id int64) model.NullCampaign {
	if id < 0 || id >= int64(len(s.campaigns)) {
		return model.NullCampaign{}
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: s.campaigns[id],
	}
}

// UpdateCampaign ...
func (s *Store) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	st := getTx(ctx)
	if campaign.ID < 0 || campaign.ID >= int64(len(st.campaigns)) {
		return nil
	}
	c := &st.campaigns[campaign.ID]
	c.Pledged = campaign.Pledged
	c.Claimed = campaign.Claimed
	c.Cancelled = campaign.Cancelled
	return nil
}

// GetPledge ...
func (s *Store) GetPledge(
	ctx context.Context, campaignID int64, pledger model.Address,
) (result model.Pledge, err error) {
	s.view(ctx, func(st *state) {
		result = st.getPledge(campaignID, pledger)
	})
	return result, nil
}

// LockPledge ...
func (s *Store) LockPledge(
	ctx context.Context, campaignID int64, pledger model.Address,
) (model.Pledge, error) {
	return getTx(ctx).getPledge(campaignID, pledger), nil
}

func (s *state) getPledge(campaignID int64, pledger model.Address) model.Pledge {
	return model.Pledge{
		CampaignID: campaignID,
		Pledger:    pledger,
		Amount:     s.pledges[pledgeKey{campaignID: campaignID, pledger: pledger}],
	}
}

// UpsertPledge ...
func (s *Store) UpsertPledge(ctx context.Context, pledge model.Pledge) error {
	st := getTx(ctx)
	st.pledges[pledgeKey{campaignID: pledge.CampaignID, pledger: pledge.Pledger}] = pledge.Amount
	return nil
}

// ListPledges returns pledges ordered by pledger
func (s *Store) ListPledges(ctx context.Context, campaignID int64) (result []model.Pledge, err error) {
	s.view(ctx, func(st *state) {
		for k, amount := range st.pledges {
			if k.campaignID != campaignID {
				continue
			}
			result = append(result, model.Pledge{
				CampaignID: campaignID,
				Pledger:    k.pledger,
				Amount:     amount,
			})
		}
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].Pledger < result[j].Pledger
	})
	return result, nil
}

// ZeroPledges ...
func (s *Store) ZeroPledges(ctx context.Context, campaignID int64) error {
	st := getTx(ctx)
	for k := range st.pledges {
		if k.campaignID == campaignID {
			st.pledges[k] = model.Amount{}
		}
	}
	return nil
}

// InsertEvent ...
func (s *Store) InsertEvent(ctx context.Context, event model.Event) error {
	st := getTx(ctx)

	seq := uint32(0)
	for _, e := range st.events {
		if e.CampaignID == event.CampaignID && e.Seq > seq {
			seq = e.Seq
		}
	}

	event.ID = uint64(len(st.events)) + 1
	event.Seq = seq + 1
	st.events = append(st.events, event)
	return nil
}

// ListEvents ...
func (s *Store) ListEvents(ctx context.Context, campaignID int64) (result []model.Event, err error) {
	s.view(ctx, func(st *state) {
		for _, e := range st.events {
			if e.CampaignID == campaignID {
				result = append(result, e)
			}
		}
	})
	return result, nil
}
