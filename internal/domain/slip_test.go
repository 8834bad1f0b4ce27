package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"
)

func TestSlipRevenue_ManualSlipRoundsUpHours(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	completed := created.Add(90 * time.Minute)

	revenue := SlipRevenue(nil, null.Float{}, created, completed, 50)

	assert.Equal(t, 100.0, revenue)
}

func TestSlipRevenue_BookingPrice(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	revenue := SlipRevenue(nil, null.FloatFrom(250), created, created.Add(5*time.Hour), 50)

	assert.Equal(t, 250.0, revenue)
}

func TestSlipRevenue_OverrideWins(t *testing.T) {
	created := time.Now()
	override := 75.5

	revenue := SlipRevenue(&override, null.FloatFrom(250), created, created.Add(time.Hour), 50)

	assert.Equal(t, 75.5, revenue)
}

func TestSlipRevenue_ZeroOverrideFallsBack(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	zero := 0.0

	revenue := SlipRevenue(&zero, null.Float{}, created, created.Add(2*time.Hour+time.Minute), 40)

	assert.Equal(t, 120.0, revenue)
}

func TestSlipRevenue_ClockSkew(t *testing.T) {
	created := time.Now()

	revenue := SlipRevenue(nil, null.Float{}, created, created.Add(-time.Minute), 50)

	assert.Equal(t, 0.0, revenue)
}

func TestSlipStatus_Terminal(t *testing.T) {
	assert.False(t, SlipStatusActive.Terminal())
	assert.True(t, SlipStatusCompleted.Terminal())
	assert.True(t, SlipStatusExpired.Terminal())
	assert.True(t, SlipStatusUsed.Terminal())
	assert.False(t, SlipStatus("LOST").Valid())
}

func TestCreateSlipInput_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		in        CreateSlipInput
		wantHours int
		wantErr   bool
	}{
		{name: "booking flow untouched", in: CreateSlipInput{BookingID: "b1"}, wantHours: 0},
		{name: "default hours", in: CreateSlipInput{ParkingSpotID: "s1"}, wantHours: DefaultSlipValidHours},
		{name: "explicit hours", in: CreateSlipInput{ParkingSpotID: "s1", ValidHours: 3}, wantHours: 3},
		{name: "negative hours", in: CreateSlipInput{ParkingSpotID: "s1", ValidHours: -1}, wantErr: true},
		{name: "too many hours", in: CreateSlipInput{ParkingSpotID: "s1", ValidHours: MaxSlipValidHours + 1}, wantErr: true},
		{name: "no target", in: CreateSlipInput{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, tt.in.ValidHours)
		})
	}
}

func TestErrCapacityNotConfigured_IsCapacityExceeded(t *testing.T) {
	assert.ErrorIs(t, ErrCapacityNotConfigured, ErrCapacityExceeded)
}
