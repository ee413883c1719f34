package token

import (
	"context"
	"sync"

	"github.com/QuangTung97/crowdfund-ledger/model"
)

// Ledger is an in-memory ERC-20 style token:
// sum of balances always equals the total supply
type Ledger struct {
	mu sync.Mutex

	totalSupply model.Amount
	balances    map[model.Address]model.Amount
	allowances  map[model.Address]map[model.Address]model.Amount
}

// NewLedger ...
func NewLedger() *Ledger {
	return &Ledger{
		balances:   map[model.Address]model.Amount{},
		allowances: map[model.Address]map[model.Address]model.Amount{},
	}
}

// Mint ...
func (l *Ledger) Mint(to model.Address, amount model.Amount) error {
	if to == "" {
		return ErrZeroAddress
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	supply, err := l.totalSupply.Add(amount)
	if err != nil {
		return err
	}
	balance, err := l.balances[to].Add(amount)
	if err != nil {
		return err
	}

	l.totalSupply = supply
	l.balances[to] = balance
	return nil
}

// Approve sets the amount spender can move out of owner account
func (l *Ledger) Approve(owner model.Address, spender model.Address, amount model.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.allowances[owner]
	if !ok {
		m = map[model.Address]model.Amount{}
		l.allowances[owner] = m
	}
	m[spender] = amount
}

// Allowance ...
func (l *Ledger) Allowance(owner model.Address, spender model.Address) model.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.allowances[owner][spender]
}

// Balance ...
func (l *Ledger) Balance(account model.Address) model.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[account]
}

// TotalSupply ...
func (l *Ledger) TotalSupply() model.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.totalSupply
}

func (l *Ledger) transfer(from model.Address, to model.Address, amount model.Amount) error {
	if to == "" {
		return ErrZeroAddress
	}

	fromBalance, err := l.balances[from].Sub(amount)
	if err != nil {
		return ErrInsufficientBalance
	}
	l.balances[from] = fromBalance

	// cannot overflow: the sum of balances is bounded by the total supply
	toBalance, _ := l.balances[to].Add(amount)
	l.balances[to] = toBalance
	return nil
}

func (l *Ledger) transferFrom(
	spender model.Address, from model.Address, to model.Address, amount model.Amount,
) error {
	allowance, err := l.allowances[from][spender].Sub(amount)
	if err != nil {
		return ErrInsufficientAllowance
	}

	if err := l.transfer(from, to, amount); err != nil {
		return err
	}
	if m, ok := l.allowances[from]; ok {
		m[spender] = allowance
	}
	return nil
}

// As returns the Service view of the ledger for the caller account
func (l *Ledger) As(caller model.Address) Service {
	return &account{
		ledger: l,
		caller: caller,
	}
}

type account struct {
	ledger *Ledger
	caller model.Address
}

func (a *account) TransferFrom(
	_ context.Context, from model.Address, to model.Address, amount model.Amount,
) error {
	a.ledger.mu.Lock()
	defer a.ledger.mu.Unlock()

	return a.ledger.transferFrom(a.caller, from, to, amount)
}

func (a *account) Transfer(_ context.Context, to model.Address, amount model.Amount) error {
	a.ledger.mu.Lock()
	defer a.ledger.mu.Unlock()

	return a.ledger.transfer(a.caller, to, amount)
}

func (a *account) BalanceOf(_ context.Context, acc model.Address) (model.Amount, error) {
	return a.ledger.Balance(acc), nil
}

// MemoryRegistry holds in-memory tokens by address
type MemoryRegistry struct {
	caller model.Address

	mu     sync.RWMutex
	tokens map[model.Address]*Ledger
}

var _ Registry = &MemoryRegistry{}

// NewMemoryRegistry returns a registry whose tokens act on behalf of caller
func NewMemoryRegistry(caller model.Address) *MemoryRegistry {
	return &MemoryRegistry{
		caller: caller,
		tokens: map[model.Address]*Ledger{},
	}
}

// Add registers a token, replacing any previous token at the same address
func (r *MemoryRegistry) Add(address model.Address, l *Ledger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[address] = l
}

// Ledger ...
func (r *MemoryRegistry) Ledger(address model.Address) (*Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.tokens[address]
	return l, ok
}

// Token ...
func (r *MemoryRegistry) Token(_ context.Context, address model.Address) (Service, error) {
	l, ok := r.Ledger(address)
	if !ok {
		return nil, ErrUnknownToken
	}
	return l.As(r.caller), nil
}
