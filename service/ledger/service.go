package ledger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/pkg/lease"
	"github.com/QuangTung97/crowdfund-ledger/pkg/otellib"
	"github.com/QuangTung97/crowdfund-ledger/repository"
	"github.com/QuangTung97/crowdfund-ledger/token"
	"go.uber.org/zap"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Launch(ctx context.Context, caller model.Address, input LaunchInput) (int64, error)
	Cancel(ctx context.Context, caller model.Address, campaignID int64) error
	Pledge(ctx context.Context, caller model.Address, campaignID int64, amount model.Amount) error
	Unpledge(ctx context.Context, caller model.Address, campaignID int64, amount model.Amount) error
	Claim(ctx context.Context, caller model.Address, campaignID int64) error
	Refund(ctx context.Context, caller model.Address, campaignID int64) error

	GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	GetPledge(ctx context.Context, campaignID int64, pledger model.Address) (model.Pledge, error)
	ListEvents(ctx context.Context, campaignID int64) ([]model.Event, error)
}

// LaunchInput ...
type LaunchInput struct {
	Goal      model.Amount
	StartTime time.Time
	EndTime   time.Time
	Token     model.Address
}

const (
	operationLaunch   = "launch"
	operationCancel   = "cancel"
	operationPledge   = "pledge"
	operationUnpledge = "unpledge"
	operationClaim    = "claim"
	operationRefund   = "refund"
)

type serviceOptions struct {
	now     func() time.Time
	cache   Cache
	metrics *Metrics
}

// Option ...
type Option func(opts *serviceOptions)

// WithClock sets the source of the current time
func WithClock(now func() time.Time) Option {
	return func(opts *serviceOptions) {
		opts.now = now
	}
}

// WithCache enables caching of campaigns for GetCampaign
func WithCache(cache Cache) Option {
	return func(opts *serviceOptions) {
		if cache == nil {
			return
		}
		opts.cache = cache
	}
}

// WithMetrics ...
func WithMetrics(metrics *Metrics) Option {
	return func(opts *serviceOptions) {
		opts.metrics = metrics
	}
}

// Service is the campaign ledger.
// Every mutating operation runs in a single transaction and locks its campaign first.
// Funds only leave the ledger account after the ledger state already reflects the withdrawal.
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	pledgeRepo   repository.Pledge
	eventRepo    repository.Event

	tokens        token.Registry
	ledgerAddress model.Address

	opts serviceOptions
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	pledgeRepo repository.Pledge,
	eventRepo repository.Event,
	tokens token.Registry,
	ledgerAddress model.Address,
	options ...Option,
) *Service {
	opts := serviceOptions{
		now:   time.Now,
		cache: nopCache{},
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		pledgeRepo:   pledgeRepo,
		eventRepo:    eventRepo,

		tokens:        tokens,
		ledgerAddress: ledgerAddress,

		opts: opts,
	}
}

func (s *Service) observe(ctx context.Context, operation string, err error) {
	s.opts.metrics.observe(operation, err)
	if err != nil && ErrorKind(err) == errorKindInternal {
		otellib.Extract(ctx).Error("ledger operation failed",
			zap.String("operation", operation), zap.Error(err))
	}
}

func (s *Service) runInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return fn(withinTransaction(ctx))
	})
}

// transact runs fn in a transaction then drops the cached campaign.
// Delete also revokes the lease of a reader that loaded the campaign before the commit.
func (s *Service) transact(ctx context.Context, campaignID int64, fn func(ctx context.Context) error) error {
	err := s.runInTransaction(ctx, fn)
	if cacheErr := s.opts.cache.Delete(ctx, campaignCacheKey(campaignID)); cacheErr != nil {
		otellib.Extract(ctx).Warn("delete cached campaign", zap.Error(cacheErr))
	}
	return err
}

func (s *Service) lockCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	nullCampaign, err := s.campaignRepo.LockCampaign(ctx, campaignID)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, ErrNotFound
	}
	return nullCampaign.Campaign, nil
}

func (s *Service) tokenOf(ctx context.Context, campaign model.Campaign) (token.Service, error) {
	tok, err := s.tokens.Token(ctx, campaign.Token)
	if err != nil {
		return nil, newTransferError(err)
	}
	return tok, nil
}

func (s *Service) appendEvent(
	ctx context.Context, campaignID int64, eventType model.EventType, actor model.Address, amount model.Amount,
) error {
	return s.eventRepo.InsertEvent(ctx, model.Event{
		CampaignID: campaignID,
		Type:       eventType,
		Actor:      actor,
		Amount:     amount,
		CreatedAt:  s.opts.now().Truncate(time.Microsecond),
	})
}

// Launch creates a campaign owned by caller and returns its id
func (s *Service) Launch(ctx context.Context, caller model.Address, input LaunchInput) (id int64, err error) {
	defer func() { s.observe(ctx, operationLaunch, err) }()

	// stored with microsecond precision
	startTime := input.StartTime.Truncate(time.Microsecond)
	endTime := input.EndTime.Truncate(time.Microsecond)
	if !startTime.Before(endTime) {
		return 0, ErrInvalidWindow
	}

	err = s.runInTransaction(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.campaignRepo.NextCampaignID(ctx)
		if err != nil {
			return err
		}

		err = s.campaignRepo.InsertCampaign(ctx, model.Campaign{
			ID:      id,
			Creator: caller,
			Token:   input.Token,

			Goal: input.Goal,

			StartTime: startTime,
			EndTime:   endTime,

			CreatedAt: s.opts.now().Truncate(time.Microsecond),
		})
		if err != nil {
			return err
		}

		return s.appendEvent(ctx, id, model.EventTypeLaunch, caller, input.Goal)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Cancel a campaign before it starts, creator only
func (s *Service) Cancel(ctx context.Context, caller model.Address, campaignID int64) (err error) {
	defer func() { s.observe(ctx, operationCancel, err) }()

	return s.transact(ctx, campaignID, func(ctx context.Context) error {
		campaign, err := s.lockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}

		if campaign.Creator != caller {
			return ErrNotCreator
		}
		if campaign.Finalized() {
			return ErrAlreadyFinalized
		}
		if !s.opts.now().Before(campaign.StartTime) {
			return ErrAlreadyStarted
		}

		campaign.Cancelled = true
		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		return s.appendEvent(ctx, campaignID, model.EventTypeCancel, caller, model.Amount{})
	})
}

// Pledge records amount for caller then moves it from caller into the ledger account
func (s *Service) Pledge(
	ctx context.Context, caller model.Address, campaignID int64, amount model.Amount,
) (err error) {
	defer func() { s.observe(ctx, operationPledge, err) }()

	if amount.IsZero() {
		return ErrInvalidAmount
	}

	return s.transact(ctx, campaignID, func(ctx context.Context) error {
		campaign, err := s.lockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if !campaign.IsActiveAt(s.opts.now()) {
			return ErrCampaignNotActive
		}

		pledge, err := s.pledgeRepo.LockPledge(ctx, campaignID, caller)
		if err != nil {
			return err
		}

		campaign.Pledged, err = campaign.Pledged.Add(amount)
		if err != nil {
			return err
		}
		pledge.Amount, err = pledge.Amount.Add(amount)
		if err != nil {
			return err
		}

		tok, err := s.tokenOf(ctx, campaign)
		if err != nil {
			return err
		}

		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if err := s.pledgeRepo.UpsertPledge(ctx, pledge); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, campaignID, model.EventTypePledge, caller, amount); err != nil {
			return err
		}

		// the token may call back into the ledger, the pledge is already recorded
		if err := tok.TransferFrom(ctx, caller, s.ledgerAddress, amount); err != nil {
			return newTransferError(err)
		}
		return nil
	})
}

// Unpledge withdraws part of the caller's pledge while the campaign is active
func (s *Service) Unpledge(
	ctx context.Context, caller model.Address, campaignID int64, amount model.Amount,
) (err error) {
	defer func() { s.observe(ctx, operationUnpledge, err) }()

	if amount.IsZero() {
		return ErrInvalidAmount
	}

	return s.transact(ctx, campaignID, func(ctx context.Context) error {
		campaign, err := s.lockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if !campaign.IsActiveAt(s.opts.now()) {
			return ErrCampaignNotActive
		}

		pledge, err := s.pledgeRepo.LockPledge(ctx, campaignID, caller)
		if err != nil {
			return err
		}
		remaining, err := pledge.Amount.Sub(amount)
		if err != nil {
			return ErrInsufficientPledge
		}

		tok, err := s.tokenOf(ctx, campaign)
		if err != nil {
			return err
		}

		campaign.Pledged, err = campaign.Pledged.Sub(amount)
		if err != nil {
			return err
		}
		pledge.Amount = remaining

		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if err := s.pledgeRepo.UpsertPledge(ctx, pledge); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, campaignID, model.EventTypeUnpledge, caller, amount); err != nil {
			return err
		}

		if err := tok.Transfer(ctx, caller, amount); err != nil {
			return newTransferError(err)
		}
		return nil
	})
}

// Claim sends all pledged funds to the creator once the campaign ended with its goal met
func (s *Service) Claim(ctx context.Context, caller model.Address, campaignID int64) (err error) {
	defer func() { s.observe(ctx, operationClaim, err) }()

	return s.transact(ctx, campaignID, func(ctx context.Context) error {
		campaign, err := s.lockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}

		if campaign.Creator != caller {
			return ErrNotCreator
		}
		if campaign.Finalized() {
			return ErrAlreadyFinalized
		}
		if !campaign.HasEndedAt(s.opts.now()) {
			return ErrNotEnded
		}
		if !campaign.GoalMet() {
			return ErrGoalNotMet
		}

		tok, err := s.tokenOf(ctx, campaign)
		if err != nil {
			return err
		}

		amount := campaign.Pledged
		campaign.Claimed = true
		campaign.Pledged = model.Amount{}

		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if err := s.pledgeRepo.ZeroPledges(ctx, campaignID); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, campaignID, model.EventTypeClaim, caller, amount); err != nil {
			return err
		}

		if amount.IsZero() {
			return nil
		}
		if err := tok.Transfer(ctx, campaign.Creator, amount); err != nil {
			return newTransferError(err)
		}
		return nil
	})
}

// Refund returns the caller's whole pledge once the campaign ended without meeting its goal
func (s *Service) Refund(ctx context.Context, caller model.Address, campaignID int64) (err error) {
	defer func() { s.observe(ctx, operationRefund, err) }()

	return s.transact(ctx, campaignID, func(ctx context.Context) error {
		campaign, err := s.lockCampaign(ctx, campaignID)
		if err != nil {
			return err
		}

		if campaign.Finalized() {
			return ErrAlreadyFinalized
		}
		if !campaign.HasEndedAt(s.opts.now()) {
			return ErrNotEnded
		}
		if campaign.GoalMet() {
			return ErrGoalMet
		}

		pledge, err := s.pledgeRepo.LockPledge(ctx, campaignID, caller)
		if err != nil {
			return err
		}
		if pledge.Amount.IsZero() {
			return ErrNothingToRefund
		}

		tok, err := s.tokenOf(ctx, campaign)
		if err != nil {
			return err
		}

		amount := pledge.Amount
		pledge.Amount = model.Amount{}
		campaign.Pledged, err = campaign.Pledged.Sub(amount)
		if err != nil {
			return err
		}

		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if err := s.pledgeRepo.UpsertPledge(ctx, pledge); err != nil {
			return err
		}
		if err := s.appendEvent(ctx, campaignID, model.EventTypeRefund, caller, amount); err != nil {
			return err
		}

		if err := tok.Transfer(ctx, caller, amount); err != nil {
			return newTransferError(err)
		}
		return nil
	})
}

// GetCampaign returns ErrNotFound for ids never assigned.
// Reads inside a transaction bypass the cache.
func (s *Service) GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	if isInTransaction(ctx) {
		return s.getCampaign(ctx, campaignID)
	}

	key := campaignCacheKey(campaignID)

	output, err := s.opts.cache.LeaseGet(ctx, key)
	if err != nil {
		otellib.Extract(ctx).Warn("lease get cached campaign", zap.Error(err))
		return s.getCampaign(ctx, campaignID)
	}

	if output.Type == lease.GetTypeOK {
		var campaign model.Campaign
		if err := json.Unmarshal(output.Data, &campaign); err == nil {
			return campaign, nil
		}
		otellib.Extract(ctx).Warn("decode cached campaign", zap.String("key", key))
	}

	campaign, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return model.Campaign{}, err
	}
	if output.Type != lease.GetTypeGranted {
		return campaign, nil
	}

	data, err := json.Marshal(campaign)
	if err != nil {
		return model.Campaign{}, err
	}
	if err := s.opts.cache.LeaseSet(ctx, key, data, output.LeaseID); err != nil {
		otellib.Extract(ctx).Warn("lease set cached campaign", zap.Error(err))
	}
	return campaign, nil
}

func (s *Service) getCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	nullCampaign, err := s.campaignRepo.GetCampaign(s.provider.Readonly(ctx), campaignID)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, ErrNotFound
	}
	return nullCampaign.Campaign, nil
}

// GetPledge returns a zero amount pledge for a pledger who never pledged
func (s *Service) GetPledge(
	ctx context.Context, campaignID int64, pledger model.Address,
) (model.Pledge, error) {
	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return model.Pledge{}, err
	}
	return s.pledgeRepo.GetPledge(s.provider.Readonly(ctx), campaignID, pledger)
}

// ListEvents returns the events of a campaign in order
func (s *Service) ListEvents(ctx context.Context, campaignID int64) ([]model.Event, error) {
	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListEvents(s.provider.Readonly(ctx), campaignID)
}
