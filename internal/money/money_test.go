package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundsToCent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10.00€"},
		{10.123, "10.12€"},
		{10.125, "10.13€"},
		{-10.125, "-10.13€"},
		{0.005, "0.01€"},
		{-0.004, "0.00€"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.in).String(), "New(%v)", tt.in)
	}
}

func TestParse(t *testing.T) {
	m, err := Parse("12.505")
	require.NoError(t, err)
	assert.Equal(t, "12.51€", m.String())

	_, err = Parse("twelve")
	require.Error(t, err)
}

func TestArithmeticStaysRounded(t *testing.T) {
	a := New(10)
	b := New(3)

	assert.True(t, a.Add(b).Equal(New(13)))
	assert.True(t, a.Sub(b).Equal(New(7)))
	assert.True(t, a.Neg().Equal(New(-10)))
	assert.True(t, a.Div(3).Equal(New(3.33)))
	assert.True(t, a.MulInt(3).Equal(New(30)))
}

func TestDivPerCent(t *testing.T) {
	tests := []struct {
		amount float64
		n      int64
		want   string
	}{
		{9, 3, "3.00€"},
		{10, 3, "3.33€"},
		{20, 3, "6.67€"},
		{125, 3, "41.67€"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.amount).Div(tt.n).String(), "%v/%d", tt.amount, tt.n)
	}
}

func TestDivideInto(t *testing.T) {
	tests := []struct {
		amount float64
		n      int
		want   []string
	}{
		{9, 3, []string{"3.00€", "3.00€", "3.00€"}},
		{10, 3, []string{"3.34€", "3.33€", "3.33€"}},
		{20, 3, []string{"6.66€", "6.67€", "6.67€"}},
		{125, 3, []string{"41.66€", "41.67€", "41.67€"}},
		{0.01, 2, []string{"0.01€", "0.00€"}},
		{100, 1, []string{"100.00€"}},
	}
	for _, tt := range tests {
		parts, err := New(tt.amount).DivideInto(tt.n)
		require.NoError(t, err)
		require.Len(t, parts, tt.n)

		got := make([]string, len(parts))
		sum := Zero()
		for i, p := range parts {
			got[i] = p.String()
			sum = sum.Add(p)
		}
		assert.Equal(t, tt.want, got, "DivideInto(%v, %d)", tt.amount, tt.n)
		assert.True(t, sum.Equal(New(tt.amount)), "parts must sum back to %v, got %s", tt.amount, sum)
	}
}

func TestDivideIntoZeroParts(t *testing.T) {
	_, err := New(10).DivideInto(0)
	require.ErrorIs(t, err, ErrInvalidSplit)
}

func TestSignedString(t *testing.T) {
	assert.Equal(t, "+3.50€", New(3.5).SignedString())
	assert.Equal(t, "-41.67€", New(-41.67).SignedString())
	assert.Equal(t, "+0.00€", Zero().SignedString())
}

func TestComparisons(t *testing.T) {
	assert.True(t, New(10).Equal(New(10.001)))
	assert.True(t, Zero().IsZero())
	assert.True(t, New(-1).IsNegative())
	assert.True(t, New(1).IsPositive())
	assert.Equal(t, -1, New(1).Cmp(New(2)))
}
