package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodDay, ParsePeriod("day"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("fortnight"))
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2026, 3, 31, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period Period
		want   time.Time
	}{
		{PeriodDay, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)},
		{PeriodWeek, time.Date(2026, 3, 24, 15, 30, 0, 0, time.UTC)},
		// AddDate normalizes Feb 31 to Mar 3.
		{PeriodMonth, time.Date(2026, 3, 3, 15, 30, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.WindowStart(now))
		})
	}
}

func TestDayAndMonthStart_UseUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	now := time.Date(2026, 4, 1, 5, 0, 0, 0, tokyo) // 2026-03-31 20:00 UTC

	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), DayStart(now))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), MonthStart(now))
}

func TestRank(t *testing.T) {
	name := "Coffee"
	price := money.FromFloat(2.5)

	got := Rank([]ProductSales{
		{ProductID: "p-1", Name: &name, Price: &price, TotalQuantity: 4, OrderCount: 2},
		{ProductID: "gone", TotalQuantity: 3, OrderCount: 1},
	})

	assert.Equal(t, []TopProduct{
		{ProductID: "p-1", ProductName: "Coffee", TotalQuantity: 4, OrderCount: 2, Revenue: 10},
		{ProductID: "gone", ProductName: "Unknown", TotalQuantity: 3, OrderCount: 1, Revenue: 0},
	}, got)
}
