package accommodationdomain

import (
	"testing"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestNewStay(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
	}{
		{name: "one night", checkIn: date(2026, 3, 10), checkOut: date(2026, 3, 11)},
		{name: "same day", checkIn: date(2026, 3, 10), checkOut: date(2026, 3, 10), wantErr: true},
		{name: "same day different hours", checkIn: date(2026, 3, 10).Add(2 * time.Hour), checkOut: date(2026, 3, 10).Add(20 * time.Hour), wantErr: true},
		{name: "reversed", checkIn: date(2026, 3, 12), checkOut: date(2026, 3, 10), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := NewStay(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date(2026, 3, 10), stay.CheckIn)
		})
	}
}

func TestStay_Active(t *testing.T) {
	stay, err := NewStay(date(2026, 3, 10), date(2026, 3, 12))
	require.NoError(t, err)

	assert.True(t, stay.Active(date(2026, 3, 1)))
	assert.True(t, stay.Active(date(2026, 3, 12).Add(23*time.Hour)))
	assert.False(t, stay.Active(date(2026, 3, 13)))
}

func TestStatus(t *testing.T) {
	room := "B-204"
	blank := "  "
	assert.Equal(t, StatusAssigned, Status(&room))
	assert.Equal(t, StatusPending, Status(&blank))
	assert.Equal(t, StatusPending, Status(nil))
}

func TestParseStatusFilter(t *testing.T) {
	got, err := ParseStatusFilter("Assigned")
	require.NoError(t, err)
	assert.Equal(t, StatusAssigned, got)

	got, err = ParseStatusFilter("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseStatusFilter("checked-out")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Statistics{}, Summarize(nil))
	assert.Equal(t, Statistics{
		TotalRequests:   3,
		AssignedRooms:   1,
		PendingRequests: 2,
		OccupancyRate:   33.33,
	}, Summarize([]string{StatusAssigned, StatusPending, StatusPending}))
}
