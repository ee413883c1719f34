package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/repository/memstore"
	"github.com/QuangTung97/crowdfund-ledger/token"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	creator   model.Address = "creator"
	pledger01 model.Address = "pledger01"
	pledger02 model.Address = "pledger02"
	pledger03 model.Address = "pledger03"

	ledgerAddress model.Address = "ledger"
	tokenAddress  model.Address = "token01"
)

var (
	baseTime  = time.Date(2022, 5, 7, 10, 0, 0, 0, time.UTC)
	startTime = baseTime.Add(1 * time.Hour)
	endTime   = baseTime.Add(25 * time.Hour)
)

func newContext() context.Context {
	return context.Background()
}

type serviceTest struct {
	store  *memstore.Store
	tokens *token.MemoryRegistry
	erc20  *token.Ledger

	metrics *Metrics

	now time.Time
	svc *Service
}

func newServiceTest(options ...Option) *serviceTest {
	st := &serviceTest{
		store:   memstore.New(),
		tokens:  token.NewMemoryRegistry(ledgerAddress),
		erc20:   token.NewLedger(),
		metrics: NewMetrics(prometheus.NewRegistry()),
		now:     baseTime,
	}
	st.tokens.Add(tokenAddress, st.erc20)

	opts := []Option{
		WithClock(func() time.Time { return st.now }),
		WithMetrics(st.metrics),
	}
	opts = append(opts, options...)

	st.svc = NewService(st.store, st.store, st.store, st.store, st.tokens, ledgerAddress, opts...)
	return st
}

func (st *serviceTest) fund(t *testing.T, pledger model.Address, amount uint64) {
	t.Helper()
	require.NoError(t, st.erc20.Mint(pledger, model.NewAmount(amount)))
	st.erc20.Approve(pledger, ledgerAddress, model.NewAmount(amount))
}

func (st *serviceTest) launch(t *testing.T, goal uint64) int64 {
	t.Helper()
	id, err := st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(goal),
		StartTime: startTime,
		EndTime:   endTime,
		Token:     tokenAddress,
	})
	require.NoError(t, err)
	return id
}

func (st *serviceTest) balance(account model.Address) string {
	return st.erc20.Balance(account).String()
}

func (st *serviceTest) getCampaign(t *testing.T, id int64) model.Campaign {
	t.Helper()
	campaign, err := st.svc.GetCampaign(newContext(), id)
	require.NoError(t, err)
	return campaign
}

func (st *serviceTest) assertConservation(t *testing.T, id int64) {
	t.Helper()

	pledges, err := st.store.ListPledges(newContext(), id)
	require.NoError(t, err)

	var sum model.Amount
	for _, p := range pledges {
		sum, err = sum.Add(p.Amount)
		require.NoError(t, err)
	}
	assert.Equal(t, st.getCampaign(t, id).Pledged.String(), sum.String())
}

func TestLaunch_Sequential_IDs(t *testing.T) {
	st := newServiceTest()

	assert.Equal(t, int64(0), st.launch(t, 100))
	assert.Equal(t, int64(1), st.launch(t, 100))

	for _, id := range []int64{0, 1} {
		c := st.getCampaign(t, id)
		assert.Equal(t, id, c.ID)
		assert.Equal(t, creator, c.Creator)
		assert.Equal(t, tokenAddress, c.Token)
		assert.Equal(t, "100", c.Goal.String())
		assert.Equal(t, "0", c.Pledged.String())
		assert.Equal(t, startTime, c.StartTime)
		assert.Equal(t, endTime, c.EndTime)
		assert.Equal(t, false, c.Claimed)
		assert.Equal(t, false, c.Cancelled)
	}
}

func TestLaunch_Invalid_Window(t *testing.T) {
	st := newServiceTest()

	_, err := st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(100),
		StartTime: startTime,
		EndTime:   startTime,
		Token:     tokenAddress,
	})
	assert.Equal(t, ErrInvalidWindow, err)

	_, err = st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(100),
		StartTime: endTime,
		EndTime:   startTime,
		Token:     tokenAddress,
	})
	assert.Equal(t, ErrInvalidWindow, err)

	_, err = st.svc.GetCampaign(newContext(), 0)
	assert.Equal(t, ErrNotFound, err)

	// ids are not consumed by failed launches
	assert.Equal(t, int64(0), st.launch(t, 100))
}

func TestLaunch_Truncates_Times_To_Microseconds(t *testing.T) {
	st := newServiceTest()
	st.now = baseTime.Add(1500 * time.Nanosecond)

	id, err := st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(100),
		StartTime: startTime.Add(2999 * time.Nanosecond),
		EndTime:   endTime.Add(999 * time.Nanosecond),
		Token:     tokenAddress,
	})
	require.NoError(t, err)

	c := st.getCampaign(t, id)
	assert.Equal(t, startTime.Add(2*time.Microsecond), c.StartTime)
	assert.Equal(t, endTime, c.EndTime)
	assert.Equal(t, baseTime.Add(time.Microsecond), c.CreatedAt)

	events, err := st.svc.ListEvents(newContext(), id)
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(time.Microsecond), events[0].CreatedAt)

	// the stored end time is the boundary
	st.fund(t, pledger01, 10)
	st.now = endTime.Add(500 * time.Nanosecond)
	assert.Equal(t, ErrCampaignNotActive, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(1)))

	_, err = st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(100),
		StartTime: startTime.Add(100 * time.Nanosecond),
		EndTime:   startTime.Add(900 * time.Nanosecond),
		Token:     tokenAddress,
	})
	assert.Equal(t, ErrInvalidWindow, err)
}

func TestGetCampaign_Not_Found(t *testing.T) {
	st := newServiceTest()
	st.launch(t, 100)

	_, err := st.svc.GetCampaign(newContext(), 1)
	assert.Equal(t, ErrNotFound, err)

	_, err = st.svc.GetCampaign(newContext(), -1)
	assert.Equal(t, ErrNotFound, err)
}

func TestCancel(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 100)

	err := st.svc.Cancel(newContext(), pledger01, id)
	assert.Equal(t, ErrNotCreator, err)
	assert.Equal(t, false, st.getCampaign(t, id).Cancelled)

	err = st.svc.Cancel(newContext(), creator, id)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, st.getCampaign(t, id).Cancelled)

	err = st.svc.Cancel(newContext(), creator, id)
	assert.Equal(t, ErrAlreadyFinalized, err)

	_, err = st.svc.GetCampaign(newContext(), id)
	assert.Equal(t, nil, err)
}

func TestCancel_At_Start_Time(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 100)

	st.now = startTime
	err := st.svc.Cancel(newContext(), creator, id)
	assert.Equal(t, ErrAlreadyStarted, err)

	st.now = startTime.Add(-time.Nanosecond)
	err = st.svc.Cancel(newContext(), creator, id)
	assert.Equal(t, nil, err)
}

func TestCancel_Not_Found(t *testing.T) {
	st := newServiceTest()
	err := st.svc.Cancel(newContext(), creator, 0)
	assert.Equal(t, ErrNotFound, err)
}

func TestCancelled_Campaign_Rejects_Everything(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 0)

	require.NoError(t, st.svc.Cancel(newContext(), creator, id))

	st.now = startTime
	assert.Equal(t, ErrCampaignNotActive, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(10)))
	assert.Equal(t, ErrCampaignNotActive, st.svc.Unpledge(newContext(), pledger01, id, model.NewAmount(10)))

	st.now = endTime
	assert.Equal(t, ErrAlreadyFinalized, st.svc.Claim(newContext(), creator, id))
	assert.Equal(t, ErrAlreadyFinalized, st.svc.Refund(newContext(), pledger01, id))
	assert.Equal(t, ErrAlreadyFinalized, st.svc.Cancel(newContext(), creator, id))

	c := st.getCampaign(t, id)
	assert.Equal(t, true, c.Cancelled)
	assert.Equal(t, false, c.Claimed)
	assert.Equal(t, "100", st.balance(pledger01))
}

func TestPledge(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	err := st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100))
	assert.Equal(t, nil, err)

	assert.Equal(t, "100", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "0", st.balance(pledger01))
	assert.Equal(t, "100", st.balance(ledgerAddress))

	pledge, err := st.svc.GetPledge(newContext(), id, pledger01)
	assert.Equal(t, nil, err)
	assert.Equal(t, "100", pledge.Amount.String())
}

func TestPledge_Time_Window(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime.Add(-time.Second)
	assert.Equal(t, ErrCampaignNotActive, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(10)))

	// start time is inclusive
	st.now = startTime
	assert.Equal(t, nil, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(10)))

	st.now = endTime.Add(-time.Nanosecond)
	assert.Equal(t, nil, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(10)))

	// end time is exclusive
	st.now = endTime
	assert.Equal(t, ErrCampaignNotActive, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(10)))

	assert.Equal(t, "20", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "80", st.balance(pledger01))
}

func TestPledge_Zero_Amount(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 100)

	st.now = startTime
	assert.Equal(t, ErrInvalidAmount, st.svc.Pledge(newContext(), pledger01, id, model.Amount{}))
	assert.Equal(t, ErrInvalidAmount, st.svc.Unpledge(newContext(), pledger01, id, model.Amount{}))
}

func TestPledge_Not_Found(t *testing.T) {
	st := newServiceTest()
	st.now = startTime
	assert.Equal(t, ErrNotFound, st.svc.Pledge(newContext(), pledger01, 0, model.NewAmount(1)))
}

func TestPledge_Transfer_Failed(t *testing.T) {
	st := newServiceTest()
	require.NoError(t, st.erc20.Mint(pledger01, model.NewAmount(100)))
	id := st.launch(t, 100)

	st.now = startTime
	err := st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(50))
	assert.True(t, errors.Is(err, ErrTransferFailed))
	assert.True(t, errors.Is(err, token.ErrInsufficientAllowance))

	assert.Equal(t, "0", st.getCampaign(t, id).Pledged.String())
	pledge, err := st.svc.GetPledge(newContext(), id, pledger01)
	assert.Equal(t, nil, err)
	assert.Equal(t, "0", pledge.Amount.String())
	assert.Equal(t, "100", st.balance(pledger01))

	events, err := st.svc.ListEvents(newContext(), id)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(events))
}

func TestPledge_Unknown_Token(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)

	id, err := st.svc.Launch(newContext(), creator, LaunchInput{
		Goal:      model.NewAmount(100),
		StartTime: startTime,
		EndTime:   endTime,
		Token:     "token-unknown",
	})
	require.NoError(t, err)

	st.now = startTime
	err = st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(50))
	assert.True(t, errors.Is(err, ErrTransferFailed))
	assert.True(t, errors.Is(err, token.ErrUnknownToken))
}

func TestUnpledge(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100)))

	err := st.svc.Unpledge(newContext(), pledger01, id, model.NewAmount(50))
	assert.Equal(t, nil, err)

	assert.Equal(t, "50", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "50", st.balance(pledger01))
	assert.Equal(t, "50", st.balance(ledgerAddress))
	st.assertConservation(t, id)
}

func TestUnpledge_More_Than_Pledged(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(50)))

	err := st.svc.Unpledge(newContext(), pledger01, id, model.NewAmount(100))
	assert.Equal(t, ErrInsufficientPledge, err)

	assert.Equal(t, "50", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "50", st.balance(pledger01))
	assert.Equal(t, "50", st.balance(ledgerAddress))

	// other pledgers' funds are not reachable
	err = st.svc.Unpledge(newContext(), pledger02, id, model.NewAmount(1))
	assert.Equal(t, ErrInsufficientPledge, err)
}

func TestUnpledge_Outside_Window(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(50)))

	st.now = endTime
	err := st.svc.Unpledge(newContext(), pledger01, id, model.NewAmount(10))
	assert.Equal(t, ErrCampaignNotActive, err)
	assert.Equal(t, "50", st.balance(ledgerAddress))
}

func TestClaim(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100)))

	st.now = endTime
	err := st.svc.Claim(newContext(), creator, id)
	assert.Equal(t, nil, err)

	assert.Equal(t, "100", st.balance(creator))
	assert.Equal(t, "0", st.balance(ledgerAddress))

	c := st.getCampaign(t, id)
	assert.Equal(t, "0", c.Pledged.String())
	assert.Equal(t, true, c.Claimed)
	assert.Equal(t, false, c.Cancelled)
	st.assertConservation(t, id)

	// second claim does not transfer again
	err = st.svc.Claim(newContext(), creator, id)
	assert.Equal(t, ErrAlreadyFinalized, err)
	assert.Equal(t, "100", st.balance(creator))

	err = st.svc.Refund(newContext(), pledger01, id)
	assert.Equal(t, ErrAlreadyFinalized, err)
	assert.Equal(t, "0", st.balance(pledger01))
}

func TestClaim_Before_End(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100)))

	st.now = endTime.Add(-time.Nanosecond)
	assert.Equal(t, ErrNotEnded, st.svc.Claim(newContext(), creator, id))
	assert.Equal(t, ErrNotEnded, st.svc.Refund(newContext(), pledger01, id))
	assert.Equal(t, "100", st.balance(ledgerAddress))
}

func TestClaim_Not_Creator(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100)))

	st.now = endTime
	assert.Equal(t, ErrNotCreator, st.svc.Claim(newContext(), pledger01, id))
	assert.Equal(t, false, st.getCampaign(t, id).Claimed)
	assert.Equal(t, "100", st.balance(ledgerAddress))
}

func TestClaim_Zero_Goal_Without_Pledges(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 0)

	st.now = endTime
	assert.Equal(t, nil, st.svc.Claim(newContext(), creator, id))
	assert.Equal(t, true, st.getCampaign(t, id).Claimed)
	assert.Equal(t, "0", st.balance(creator))
}

func TestRefund(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(50)))
	assert.Equal(t, "50", st.balance(ledgerAddress))
	assert.Equal(t, "50", st.balance(pledger01))

	st.now = endTime
	assert.Equal(t, ErrGoalNotMet, st.svc.Claim(newContext(), creator, id))

	err := st.svc.Refund(newContext(), pledger01, id)
	assert.Equal(t, nil, err)

	assert.Equal(t, "0", st.balance(ledgerAddress))
	assert.Equal(t, "100", st.balance(pledger01))
	assert.Equal(t, "0", st.getCampaign(t, id).Pledged.String())
	st.assertConservation(t, id)

	err = st.svc.Refund(newContext(), pledger01, id)
	assert.Equal(t, ErrNothingToRefund, err)
	assert.Equal(t, "100", st.balance(pledger01))

	c := st.getCampaign(t, id)
	assert.Equal(t, false, c.Claimed)
	assert.Equal(t, false, c.Cancelled)
}

func TestRefund_Goal_Met(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(100)))

	st.now = endTime
	assert.Equal(t, ErrGoalMet, st.svc.Refund(newContext(), pledger01, id))
	assert.Equal(t, "100", st.balance(ledgerAddress))
}

func TestRefund_Never_Pledged(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 100)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(30)))

	st.now = endTime
	assert.Equal(t, ErrNothingToRefund, st.svc.Refund(newContext(), pledger02, id))
	assert.Equal(t, "30", st.getCampaign(t, id).Pledged.String())
}

func TestConservation_Many_Pledgers(t *testing.T) {
	st := newServiceTest()
	for _, p := range []model.Address{pledger01, pledger02, pledger03} {
		st.fund(t, p, 1000)
	}
	id := st.launch(t, 500)
	other := st.launch(t, 500)

	type step struct {
		pledger  model.Address
		campaign int64
		pledge   bool
		amount   uint64
		err      error
	}
	steps := []step{
		{pledger: pledger01, campaign: id, pledge: true, amount: 100},
		{pledger: pledger02, campaign: id, pledge: true, amount: 250},
		{pledger: pledger03, campaign: other, pledge: true, amount: 70},
		{pledger: pledger01, campaign: id, pledge: false, amount: 40},
		{pledger: pledger02, campaign: id, pledge: false, amount: 251, err: ErrInsufficientPledge},
		{pledger: pledger03, campaign: id, pledge: false, amount: 1, err: ErrInsufficientPledge},
		{pledger: pledger03, campaign: id, pledge: true, amount: 300},
		{pledger: pledger01, campaign: id, pledge: false, amount: 60},
		{pledger: pledger02, campaign: other, pledge: true, amount: 5},
		{pledger: pledger03, campaign: id, pledge: false, amount: 300},
	}

	st.now = startTime
	for i, s := range steps {
		var err error
		if s.pledge {
			err = st.svc.Pledge(newContext(), s.pledger, s.campaign, model.NewAmount(s.amount))
		} else {
			err = st.svc.Unpledge(newContext(), s.pledger, s.campaign, model.NewAmount(s.amount))
		}
		assert.Equal(t, s.err, err, fmt.Sprintf("step %d", i))

		st.assertConservation(t, id)
		st.assertConservation(t, other)

		total, err := st.getCampaign(t, id).Pledged.Add(st.getCampaign(t, other).Pledged)
		require.NoError(t, err)
		assert.Equal(t, total.String(), st.balance(ledgerAddress))
	}

	assert.Equal(t, "250", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "75", st.getCampaign(t, other).Pledged.String())
}

func TestPledge_Concurrent(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 1000)

	pledgers := make([]model.Address, 0, 8)
	for i := 0; i < 8; i++ {
		p := model.Address(fmt.Sprintf("pledger%02d", i))
		st.fund(t, p, 100)
		pledgers = append(pledgers, p)
	}

	st.now = startTime

	var wg sync.WaitGroup
	for _, p := range pledgers {
		wg.Add(1)
		go func(p model.Address) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				assert.Equal(t, nil, st.svc.Pledge(newContext(), p, id, model.NewAmount(10)))
			}
			assert.Equal(t, nil, st.svc.Unpledge(newContext(), p, id, model.NewAmount(25)))
		}(p)
	}
	wg.Wait()

	assert.Equal(t, "600", st.getCampaign(t, id).Pledged.String())
	assert.Equal(t, "600", st.balance(ledgerAddress))
	st.assertConservation(t, id)
}

func TestListEvents(t *testing.T) {
	st := newServiceTest()
	st.fund(t, pledger01, 100)
	id := st.launch(t, 10)

	st.now = startTime
	require.NoError(t, st.svc.Pledge(newContext(), pledger01, id, model.NewAmount(30)))
	require.NoError(t, st.svc.Unpledge(newContext(), pledger01, id, model.NewAmount(5)))
	st.now = endTime
	require.NoError(t, st.svc.Claim(newContext(), creator, id))

	events, err := st.svc.ListEvents(newContext(), id)
	assert.Equal(t, nil, err)

	var types []model.EventType
	var amounts []string
	for i, e := range events {
		assert.Equal(t, uint32(i+1), e.Seq)
		types = append(types, e.Type)
		amounts = append(amounts, e.Amount.String())
	}
	assert.Equal(t, []model.EventType{
		model.EventTypeLaunch,
		model.EventTypePledge,
		model.EventTypeUnpledge,
		model.EventTypeClaim,
	}, types)
	assert.Equal(t, []string{"10", "30", "5", "25"}, amounts)
	assert.Equal(t, creator, events[3].Actor)
	assert.Equal(t, endTime, events[3].CreatedAt)

	_, err = st.svc.ListEvents(newContext(), 7)
	assert.Equal(t, ErrNotFound, err)
}

func TestGetPledge(t *testing.T) {
	st := newServiceTest()
	id := st.launch(t, 10)

	pledge, err := st.svc.GetPledge(newContext(), id, pledger01)
	assert.Equal(t, nil, err)
	assert.Equal(t, id, pledge.CampaignID)
	assert.Equal(t, pledger01, pledge.Pledger)
	assert.Equal(t, true, pledge.Amount.IsZero())

	_, err = st.svc.GetPledge(newContext(), 3, pledger01)
	assert.Equal(t, ErrNotFound, err)
}
