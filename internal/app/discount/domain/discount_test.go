package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

var (
	windowStart = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
)

func terms(kind Type, value int64) Terms {
	return Terms{
		Type:      kind,
		Value:     decimal.NewFromInt(value),
		StartDate: windowStart,
		EndDate:   windowEnd,
		IsActive:  true,
	}
}

func TestNewDiscount_Validation(t *testing.T) {
	_, err := NewDiscount("d-1", nil, terms("bogus", 10), windowStart)
	assert.ErrorIs(t, err, ErrInvalidDiscountType)

	bad := terms(TypeFixed, 5)
	bad.EndDate = bad.StartDate.Add(-time.Second)
	_, err = NewDiscount("d-1", nil, bad, windowStart)
	assert.ErrorIs(t, err, ErrInvalidDiscountPeriod)

	sameDay := terms(TypeFixed, 5)
	sameDay.EndDate = sameDay.StartDate
	_, err = NewDiscount("d-1", nil, sameDay, windowStart)
	assert.NoError(t, err)
}

func TestDiscount_IsActiveAt(t *testing.T) {
	d, err := NewDiscount("d-1", nil, terms(TypePercentage, 10), windowStart)
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", windowStart.Add(-time.Nanosecond), false},
		{"at start", windowStart, true},
		{"inside", windowStart.Add(48 * time.Hour), true},
		{"at end", windowEnd, true},
		{"after window", windowEnd.Add(time.Nanosecond), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsActiveAt(tt.at))
		})
	}

	inactive := terms(TypePercentage, 10)
	inactive.IsActive = false
	require.NoError(t, d.Revise(inactive, windowStart))
	assert.False(t, d.IsActiveAt(windowStart.Add(time.Hour)))
}

func TestDiscount_Apply(t *testing.T) {
	pct, _ := NewDiscount("d-1", nil, terms(TypePercentage, 25), windowStart)
	fixed, _ := NewDiscount("d-2", nil, terms(TypeFixed, 3), windowStart)
	huge, _ := NewDiscount("d-3", nil, terms(TypeFixed, 500), windowStart)

	price := money.FromInt(20)

	assert.Equal(t, "15.00", pct.Apply(price).String())
	assert.Equal(t, "17.00", fixed.Apply(price).String())
	assert.True(t, huge.Apply(price).IsZero())
}

func TestEffectivePrice_FirstActiveWins(t *testing.T) {
	expired := terms(TypeFixed, 1)
	expired.EndDate = windowStart.Add(time.Hour)
	old, _ := NewDiscount("old", nil, expired, windowStart)
	newest, _ := NewDiscount("new", nil, terms(TypePercentage, 50), windowStart)
	second, _ := NewDiscount("second", nil, terms(TypeFixed, 2), windowStart)

	now := windowStart.Add(72 * time.Hour)
	price := money.FromInt(10)

	assert.Equal(t, "5.00", EffectivePrice(price, []*Discount{old, newest, second}, now).String())
	assert.Equal(t, "10.00", EffectivePrice(price, []*Discount{old}, now).String())
	assert.Equal(t, "10.00", EffectivePrice(price, nil, now).String())
}
