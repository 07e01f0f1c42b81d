// Package payroll holds the pay arithmetic applied at checkout. Everything is
// fixed-point decimal; binary floats never touch money or hours.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Derived quantities round to two places: cents for pay, 36-second
// granularity for hours.
const places = 2

var msPerHour = decimal.NewFromInt(3_600_000)

// Hours converts the wall-clock span between two instants to decimal hours.
// Absolute instants only; no timezone or DST correction. Negative spans
// (clock skew) clamp to zero.
func Hours(checkIn, checkOut time.Time) decimal.Decimal {
	elapsed := checkOut.Sub(checkIn)
	if elapsed < 0 {
		elapsed = 0
	}
	return decimal.NewFromInt(elapsed.Milliseconds()).Div(msPerHour).Round(places)
}

// Billable caps worked hours at the teacher's per-session maximum.
func Billable(hoursWorked, maxBillableHours decimal.Decimal) decimal.Decimal {
	return decimal.Min(hoursWorked, maxBillableHours)
}

// Pay is billable hours at the hourly rate.
func Pay(billableHours, hourlyRate decimal.Decimal) decimal.Decimal {
	return billableHours.Mul(hourlyRate).Round(places)
}

// Compute derives the three checkout quantities from a session's bounds and
// the teacher's billing parameters.
func Compute(checkIn, checkOut time.Time, hourlyRate, maxBillableHours decimal.Decimal) (hoursWorked, billableHours, pay decimal.Decimal) {
	hoursWorked = Hours(checkIn, checkOut)
	billableHours = Billable(hoursWorked, maxBillableHours)
	pay = Pay(billableHours, hourlyRate)
	return hoursWorked, billableHours, pay
}
