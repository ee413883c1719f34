package ledger

import (
	"errors"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

// ErrInvalidWindow when start time is not before end time
var ErrInvalidWindow = errors.New("start time must be before end time")

// ErrInvalidAmount when amount is zero
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrNotFound ...
var ErrNotFound = errors.New("campaign not found")

// ErrNotCreator ...
var ErrNotCreator = errors.New("caller is not the campaign creator")

// ErrAlreadyStarted ...
var ErrAlreadyStarted = errors.New("campaign already started")

// ErrCampaignNotActive when outside [start_time, end_time) or finalized
var ErrCampaignNotActive = errors.New("campaign not active")

// ErrNotEnded ...
var ErrNotEnded = errors.New("campaign not ended")

// ErrAlreadyFinalized when campaign was claimed or cancelled
var ErrAlreadyFinalized = errors.New("campaign already finalized")

// ErrGoalMet ...
var ErrGoalMet = errors.New("campaign goal met")

// ErrGoalNotMet ...
var ErrGoalNotMet = errors.New("campaign goal not met")

// ErrInsufficientPledge ...
var ErrInsufficientPledge = errors.New("insufficient pledge")

// ErrNothingToRefund ...
var ErrNothingToRefund = errors.New("nothing to refund")

// ErrTransferFailed matches every error returned when the token rejects a transfer
var ErrTransferFailed = errors.New("transfer failed")

type transferError struct {
	err error
}

func newTransferError(err error) error {
	return &transferError{err: err}
}

func (e *transferError) Error() string {
	return ErrTransferFailed.Error() + ": " + e.err.Error()
}

func (e *transferError) Unwrap() error {
	return e.err
}

func (e *transferError) Is(target error) bool {
	return target == ErrTransferFailed
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{err: ErrInvalidWindow, kind: "invalid_window"},
	{err: ErrInvalidAmount, kind: "invalid_amount"},
	{err: ErrNotFound, kind: "not_found"},
	{err: ErrNotCreator, kind: "not_creator"},
	{err: ErrAlreadyStarted, kind: "already_started"},
	{err: ErrCampaignNotActive, kind: "campaign_not_active"},
	{err: ErrNotEnded, kind: "not_ended"},
	{err: ErrAlreadyFinalized, kind: "already_finalized"},
	{err: ErrGoalMet, kind: "goal_met"},
	{err: ErrGoalNotMet, kind: "goal_not_met"},
	{err: ErrInsufficientPledge, kind: "insufficient_pledge"},
	{err: ErrNothingToRefund, kind: "nothing_to_refund"},
	{err: ErrTransferFailed, kind: "transfer_failed"},
	{err: model.ErrAmountOverflow, kind: "amount_overflow"},
}

const (
	errorKindOK       = "ok"
	errorKindInternal = "internal"
)

// ErrorKind returns a stable name of a ledger error, "internal" for unexpected ones
func ErrorKind(err error) string {
	if err == nil {
		return errorKindOK
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return errorKindInternal
}
