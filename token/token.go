// Package token describes the external fungible-token ledger the crowdfund
// ledger moves funds through, and provides an in-memory implementation.
package token

import (
	"context"
	"errors"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

//go:generate moq -out token_mocks.go . Service Registry

// Service is a token ledger seen from a fixed caller account
type Service interface {
	// TransferFrom moves amount from the from account to the to account,
	// spending the allowance that from granted the caller
	TransferFrom(ctx context.Context, from model.Address, to model.Address, amount model.Amount) error

	// Transfer moves amount from the caller account to the to account
	Transfer(ctx context.Context, to model.Address, amount model.Amount) error

	BalanceOf(ctx context.Context, account model.Address) (model.Amount, error)
}

// Registry resolves a token address to a Service bound to the ledger account
type Registry interface {
	Token(ctx context.Context, token model.Address) (Service, error)
}

// ErrUnknownToken ...
var ErrUnknownToken = errors.New("unknown token")

// ErrInsufficientBalance ...
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInsufficientAllowance ...
var ErrInsufficientAllowance = errors.New("insufficient allowance")

// ErrZeroAddress ...
var ErrZeroAddress = errors.New("transfer to zero address")
