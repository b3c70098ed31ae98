package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateISIN(t *testing.T) {
	tests := []struct {
		name    string
		isin    string
		wantErr bool
	}{
		{"gb_fund_valid", "GB00B03MLX29", false},
		{"us_valid", "US0378331005", false},
		{"au_valid", "AU0000XVGZA3", false},
		{"ie_ucits_valid", "IE00B4L5Y983", false},
		{"bad_check_digit", "GB00B03MLX28", true},
		{"too_short", "GB00B03MLX2", true},
		{"too_long", "GB00B03MLX290", true},
		{"lowercase_prefix", "gb00B03MLX29", true},
		{"digit_prefix", "G000B03MLX29", true},
		{"letter_check_digit", "GB00B03MLX2X", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateISIN(tt.isin)
			if tt.wantErr {
				assert.Error(t, err, "ValidateISIN(%q) should return error", tt.isin)
			} else {
				require.NoError(t, err, "ValidateISIN(%q) should not return error", tt.isin)
			}
		})
	}
}

func TestValidateISIN_CheckDigitErrorMessage(t *testing.T) {
	err := ValidateISIN("US0378331004")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check digit")
}
