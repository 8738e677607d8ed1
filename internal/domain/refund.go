package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type refundTier struct {
	minHours int64
	rate     decimal.Decimal
}

// Ordered from the longest notice period down.
var refundTiers = []refundTier{
	{minHours: 24, rate: decimal.NewFromInt(1)},
	{minHours: 12, rate: decimal.RequireFromString("0.75")},
	{minHours: 2, rate: decimal.RequireFromString("0.5")},
	{minHours: 0, rate: decimal.RequireFromString("0.25")},
}

// ComputeRefund returns the part of paid that is given back when a
// reservation is released hoursUntilStart whole hours before its slot.
func ComputeRefund(paid decimal.Decimal, hoursUntilStart int64) decimal.Decimal {
	for _, tier := range refundTiers {
		if hoursUntilStart >= tier.minHours {
			return paid.Mul(tier.rate)
		}
	}
	return decimal.Zero
}

// HoursUntil counts the whole hours from now to start, rounding down.
// A start 30 minutes in the past yields -1.
func HoursUntil(now, start time.Time) int64 {
	d := start.Sub(now)
	hours := int64(d / time.Hour)
	if d < 0 && d%time.Hour != 0 {
		hours--
	}
	return hours
}
