package model

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount_Zero_Value(t *testing.T) {
	var a Amount
	assert.Equal(t, true, a.IsZero())
	assert.Equal(t, "0", a.String())

	sum, err := a.Add(NewAmount(5))
	assert.Equal(t, nil, err)
	assert.Equal(t, "5", sum.String())
}

func TestAmount_Add_Sub(t *testing.T) {
	a := NewAmount(100)

	sum, err := a.Add(NewAmount(50))
	assert.Equal(t, nil, err)
	assert.Equal(t, "150", sum.String())

	diff, err := sum.Sub(NewAmount(150))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, diff.IsZero())

	_, err = a.Sub(NewAmount(101))
	assert.Equal(t, ErrAmountUnderflow, err)
}

func TestAmount_Add_Overflow(t *testing.T) {
	_, err := MaxAmount.Add(NewAmount(1))
	assert.Equal(t, ErrAmountOverflow, err)

	sum, err := MaxAmount.Add(Amount{})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, sum.Equal(MaxAmount))
}

func TestAmount_Beyond_Uint64(t *testing.T) {
	a := MustAmount("18446744073709551615") // max uint64
	sum, err := a.Add(NewAmount(1))
	assert.Equal(t, nil, err)
	assert.Equal(t, "18446744073709551616", sum.String())
}

func TestAmountFromString_Invalid(t *testing.T) {
	_, err := AmountFromString("-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AmountFromString("1.5")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = AmountFromString("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	tooBig := new(big.Int).Add(MaxAmount.BigInt(), big.NewInt(1))
	_, err = AmountFromString(tooBig.String())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_Halves(t *testing.T) {
	a, err := AmountFromHalves(big.NewInt(100), big.NewInt(0))
	assert.Equal(t, nil, err)
	assert.Equal(t, "100", a.String())

	a, err = AmountFromHalves(big.NewInt(7), big.NewInt(1))
	assert.Equal(t, nil, err)
	expected := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(7))
	assert.Equal(t, expected.String(), a.String())

	low, high := a.Halves()
	assert.Equal(t, "7", low.String())
	assert.Equal(t, "1", high.String())

	low, high = MaxAmount.Halves()
	assert.Equal(t, maxUint128.String(), low.String())
	assert.Equal(t, maxUint128.String(), high.String())

	_, err = AmountFromHalves(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_JSON(t *testing.T) {
	type wrapper struct {
		Amount Amount `json:"amount"`
	}

	data, err := json.Marshal(wrapper{Amount: MustAmount("123456789012345678901234567890")})
	assert.Equal(t, nil, err)
	assert.Equal(t, `{"amount":"123456789012345678901234567890"}`, string(data))

	var w wrapper
	err = json.Unmarshal(data, &w)
	assert.Equal(t, nil, err)
	assert.Equal(t, "123456789012345678901234567890", w.Amount.String())

	err = json.Unmarshal([]byte(`{"amount":"-3"}`), &w)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_Scan_Value(t *testing.T) {
	var a Amount
	err := a.Scan([]byte("340282366920938463463374607431768211456"))
	assert.Equal(t, nil, err)
	assert.Equal(t, "340282366920938463463374607431768211456", a.String())

	v, err := a.Value()
	assert.Equal(t, nil, err)
	assert.Equal(t, "340282366920938463463374607431768211456", v)

	err = a.Scan("12.5")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
