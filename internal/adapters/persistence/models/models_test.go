package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDonorEligibleAt(t *testing.T) {
	date := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
		return &v
	}
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		lastDonation *time.Time
		now          time.Time
		eligible     bool
	}{
		{
			name:         "no recorded donation",
			lastDonation: nil,
			now:          now,
			eligible:     true,
		},
		{
			name:         "donated last week",
			lastDonation: date(2025, time.March, 8),
			now:          now,
			eligible:     false,
		},
		{
			name:         "exactly two calendar months ago",
			lastDonation: date(2025, time.January, 15),
			now:          now,
			eligible:     true,
		},
		{
			name:         "one day short of two months",
			lastDonation: date(2025, time.January, 16),
			now:          now,
			eligible:     false,
		},
		{
			name:         "well past two months",
			lastDonation: date(2024, time.June, 1),
			now:          now,
			eligible:     true,
		},
		{
			// Aug 31 minus two months normalizes to Jul 1, not Jun 30:
			// calendar-month arithmetic, not a fixed-day window.
			name:         "month-end rollover boundary",
			lastDonation: date(2025, time.July, 1),
			now:          time.Date(2025, time.August, 31, 12, 0, 0, 0, time.UTC),
			eligible:     true,
		},
		{
			name:         "month-end rollover one day inside",
			lastDonation: date(2025, time.July, 2),
			now:          time.Date(2025, time.August, 31, 12, 0, 0, 0, time.UTC),
			eligible:     false,
		},
		{
			name:         "year underflow",
			lastDonation: date(2024, time.November, 10),
			now:          time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC),
			eligible:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donor := &Donor{LastDonation: tt.lastDonation}
			assert.Equal(t, tt.eligible, donor.EligibleAt(tt.now))
		})
	}
}

func TestIsValidRequestStatus(t *testing.T) {
	assert.True(t, IsValidRequestStatus(RequestStatusPending))
	assert.True(t, IsValidRequestStatus(RequestStatusCompleted))
	assert.True(t, IsValidRequestStatus(RequestStatusCancelled))
	assert.False(t, IsValidRequestStatus(""))
	assert.False(t, IsValidRequestStatus("done"))
	assert.False(t, IsValidRequestStatus("PENDING"))
}
