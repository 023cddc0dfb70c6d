package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "", want: StatusInUse},
		{input: "In Use", want: StatusInUse},
		{input: "in storage", want: StatusInStorage},
		{input: "UNDER_REPAIR", want: StatusUnderRepair},
		{input: "end of life", want: StatusEndOfLife},
		{input: "End Of Life", want: StatusEndOfLife},
		{input: "Disposed", want: StatusDisposed},
		{input: "Lost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestStatus_IsValidRequiresCanonicalForm(t *testing.T) {
	assert.True(t, StatusEndOfLife.IsValid())
	assert.False(t, Status("end of life").IsValid())
	assert.False(t, Status("Lost").IsValid())
}

func TestNewAsset(t *testing.T) {
	tests := []struct {
		name       string
		companyID  uint
		details    Details
		wantErr    string
		wantSerial *string
		wantStatus Status
	}{
		{
			name:       "defaults status",
			companyID:  1,
			details:    Details{AssetName: "ThinkPad", SerialNumber: strPtr(" SN-1 ")},
			wantSerial: strPtr("SN-1"),
			wantStatus: StatusInUse,
		},
		{
			name:       "blank serial becomes null",
			companyID:  1,
			details:    Details{AssetName: "Switch", SerialNumber: strPtr("  "), Status: StatusBroken},
			wantStatus: StatusBroken,
		},
		{name: "missing company", details: Details{AssetName: "x"}, wantErr: "company_id is required"},
		{name: "missing name", companyID: 1, details: Details{AssetName: " "}, wantErr: "asset_name is required"},
		{name: "invalid status", companyID: 1, details: Details{AssetName: "x", Status: "Lost"}, wantErr: "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAsset(tt.companyID, tt.details)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSerial, a.Details().SerialNumber)
			assert.Equal(t, tt.wantStatus, a.Details().Status)
		})
	}
}

func TestReplace_KeepsOldDetailsOnError(t *testing.T) {
	a, err := NewAsset(1, Details{AssetName: "Router"})
	require.NoError(t, err)

	assert.Error(t, a.Replace(Details{AssetName: ""}))
	assert.Equal(t, "Router", a.Details().AssetName)
}
