package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompute(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		elapsed      time.Duration
		rate         string
		cap          string
		wantHours    string
		wantBillable string
		wantPay      string
	}{
		{
			name:         "capped full day",
			elapsed:      10 * time.Hour,
			rate:         "20.00",
			cap:          "8",
			wantHours:    "10.00",
			wantBillable: "8",
			wantPay:      "160.00",
		},
		{
			name:         "under the cap",
			elapsed:      4*time.Hour + 30*time.Minute,
			rate:         "15.50",
			cap:          "6",
			wantHours:    "4.50",
			wantBillable: "4.50",
			wantPay:      "69.75",
		},
		{
			name:         "exactly at the cap",
			elapsed:      6 * time.Hour,
			rate:         "12.00",
			cap:          "6.00",
			wantHours:    "6.00",
			wantBillable: "6.00",
			wantPay:      "72.00",
		},
		{
			name:         "zero elapsed",
			elapsed:      0,
			rate:         "25.00",
			cap:          "8.00",
			wantHours:    "0.00",
			wantBillable: "0.00",
			wantPay:      "0.00",
		},
		{
			name:         "twenty minutes rounds to 0.33",
			elapsed:      20 * time.Minute,
			rate:         "30.00",
			cap:          "8.00",
			wantHours:    "0.33",
			wantBillable: "0.33",
			wantPay:      "9.90",
		},
		{
			name:         "fractional cents round to 2 places",
			elapsed:      1*time.Hour + 30*time.Minute,
			rate:         "10.33",
			cap:          "8.00",
			wantHours:    "1.50",
			wantBillable: "1.50",
			wantPay:      "15.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, billable, pay := Compute(base, base.Add(tt.elapsed), dec(tt.rate), dec(tt.cap))
			assert.True(t, hours.Equal(dec(tt.wantHours)), "hours = %s, want %s", hours, tt.wantHours)
			assert.True(t, billable.Equal(dec(tt.wantBillable)), "billable = %s, want %s", billable, tt.wantBillable)
			assert.True(t, pay.Equal(dec(tt.wantPay)), "pay = %s, want %s", pay, tt.wantPay)
		})
	}
}

func TestHoursClampsNegativeSpans(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	hours := Hours(base, base.Add(-2*time.Hour))
	assert.True(t, hours.IsZero(), "hours = %s, want 0", hours)
}

func TestHoursIgnoresWallClockZones(t *testing.T) {
	// The same two instants expressed in different zones span the same hours.
	nairobi, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(3 * time.Hour)
	assert.True(t, Hours(in.In(nairobi), out).Equal(dec("3.00")))
}

func TestPayUsesRoundedHours(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	// 7h59m58s rounds to 8.00 hours, so pay derives from 8.00 exactly.
	_, billable, pay := Compute(base, base.Add(8*time.Hour-2*time.Second), dec("20.00"), dec("8.00"))
	assert.True(t, billable.Equal(dec("8.00")), "billable = %s", billable)
	assert.True(t, pay.Equal(dec("160.00")), "pay = %s", pay)
}

func TestBillableNeverExceedsCap(t *testing.T) {
	for _, h := range []string{"0", "3.99", "7.99", "8.00", "8.01", "24.00"} {
		billable := Billable(dec(h), dec("8.00"))
		assert.True(t, billable.LessThanOrEqual(dec("8.00")), "billable(%s) = %s", h, billable)
	}
}
