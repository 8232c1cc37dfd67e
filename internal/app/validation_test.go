package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

func TestValidateDateRange(t *testing.T) {
	cases := []struct {
		name      string
		in, out   string
		wantErr   bool
		wantInput bool
		nights    int
	}{
		{name: "two nights", in: "2024-01-01", out: "2024-01-03", nights: 2},
		{name: "one night across year", in: "2023-12-31", out: "2024-01-01", nights: 1},
		{name: "same day", in: "2024-01-01", out: "2024-01-01", wantErr: true, wantInput: true},
		{name: "reversed", in: "2024-01-05", out: "2024-01-01", wantErr: true, wantInput: true},
		{name: "malformed check-in", in: "01/05/2024", out: "2024-01-06", wantErr: true},
		{name: "malformed check-out", in: "2024-01-05", out: "2024-13-01", wantErr: true},
		{name: "empty", in: "", out: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := app.ValidateDateRange(tc.in, tc.out)
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tc.nights, stay.Nights())
				assert.True(t, stay.CheckOut.After(stay.CheckIn))
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantInput, domain.IsInputError(err))
			if tc.wantInput {
				assert.ErrorIs(t, err, domain.ErrInvalidDateOrder)
			}
		})
	}
}

func TestParseLoyaltyStatus(t *testing.T) {
	ok := map[string]domain.LoyaltyStatus{
		"Gold":   domain.LoyaltyGold,
		"gold":   domain.LoyaltyGold,
		"SILVER": domain.LoyaltySilver,
		"sIlVeR": domain.LoyaltySilver,
		"none":   domain.LoyaltyNone,
	}
	for raw, want := range ok {
		got, err := app.ParseLoyaltyStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	for _, raw := range []string{"", "Bronze", "g old", "golden"} {
		_, err := app.ParseLoyaltyStatus(raw)
		require.ErrorIs(t, err, domain.ErrInvalidLoyaltyStatus, raw)
		assert.True(t, domain.IsInputError(err), raw)
	}
}

func TestParseRating(t *testing.T) {
	for _, raw := range []string{"1", "3", "5"} {
		_, err := app.ParseRating(raw)
		assert.NoError(t, err, raw)
	}

	for _, raw := range []string{"0", "6", "-1"} {
		_, err := app.ParseRating(raw)
		require.ErrorIs(t, err, domain.ErrRatingOutOfRange, raw)
		assert.True(t, domain.IsInputError(err), raw)
	}

	_, err := app.ParseRating("five")
	require.Error(t, err)
	assert.False(t, domain.IsInputError(err))
}
