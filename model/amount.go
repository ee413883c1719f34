package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrAmountOverflow when result exceeds MaxAmount
var ErrAmountOverflow = errors.New("amount overflow")

// ErrAmountUnderflow when result is negative
var ErrAmountUnderflow = errors.New("amount underflow")

// ErrInvalidAmount when the value is not an unsigned 256-bit integer
var ErrInvalidAmount = errors.New("invalid amount")

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// Amount is an unsigned 256-bit integer quantity of tokens.
// The zero value is zero.
type Amount struct {
	d decimal.Decimal
}

// MaxAmount = 2^256 - 1
var MaxAmount = Amount{d: decimal.NewFromBigInt(maxUint256, 0)}

// NewAmount ...
func NewAmount(n uint64) Amount {
	return Amount{d: decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)}
}

// AmountFromBigInt ...
func AmountFromBigInt(b *big.Int) (Amount, error) {
	if b.Sign() < 0 || b.Cmp(maxUint256) > 0 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{d: decimal.NewFromBigInt(new(big.Int).Set(b), 0)}, nil
}

// AmountFromString parses a base 10 integer
func AmountFromString(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return AmountFromBigInt(b)
}

// MustAmount ...
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromHalves builds an amount from its low and high 128-bit halves
func AmountFromHalves(low, high *big.Int) (Amount, error) {
	if low.Sign() < 0 || low.Cmp(maxUint128) > 0 {
		return Amount{}, fmt.Errorf("%w: low half out of range", ErrInvalidAmount)
	}
	if high.Sign() < 0 || high.Cmp(maxUint128) > 0 {
		return Amount{}, fmt.Errorf("%w: high half out of range", ErrInvalidAmount)
	}
	b := new(big.Int).Lsh(high, 128)
	b.Or(b, low)
	return Amount{d: decimal.NewFromBigInt(b, 0)}, nil
}

// Halves returns the low and high 128-bit halves
func (a Amount) Halves() (low *big.Int, high *big.Int) {
	b := a.BigInt()
	low = new(big.Int).And(b, maxUint128)
	high = new(big.Int).Rsh(b, 128)
	return low, high
}

// BigInt ...
func (a Amount) BigInt() *big.Int {
	return a.d.BigInt()
}

// Add returns a + o, fails instead of wrapping around
func (a Amount) Add(o Amount) (Amount, error) {
	sum := a.d.Add(o.d)
	if sum.BigInt().Cmp(maxUint256) > 0 {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{d: sum}, nil
}

// Sub returns a - o, fails when o > a
func (a Amount) Sub(o Amount) (Amount, error) {
	if a.d.LessThan(o.d) {
		return Amount{}, ErrAmountUnderflow
	}
	return Amount{d: a.d.Sub(o.d)}, nil
}

// Cmp ...
func (a Amount) Cmp(o Amount) int {
	return a.d.Cmp(o.d)
}

// Equal ...
func (a Amount) Equal(o Amount) bool {
	return a.d.Equal(o.d)
}

// LessThan ...
func (a Amount) LessThan(o Amount) bool {
	return a.d.LessThan(o.d)
}

// IsZero ...
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// String ...
func (a Amount) String() string {
	return a.d.String()
}

// MarshalJSON encodes the amount as a decimal string
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts a decimal string
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Scan implements sql.Scanner
func (a *Amount) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	if !d.Equal(d.Truncate(0)) {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, d.String())
	}
	v, err := AmountFromBigInt(d.BigInt())
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}
