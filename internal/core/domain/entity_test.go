package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/core/domain"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name: "valid object",
			data: `{"id": 1, "name": "PLA"}`,
		},
		{
			name:    "invalid json",
			data:    `{"id": `,
			wantErr: true,
		},
		{
			name:    "array instead of object",
			data:    `[1, 2, 3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := domain.ParseFields([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fields)
		})
	}
}

func TestFilamentFromFields(t *testing.T) {
	fields := map[string]any{
		"id":        int64(7),
		"vendor_id": int64(3),
		"material":  "PETG",
		"vendor": map[string]any{
			"id":   int64(3),
			"name": "Prusament",
		},
	}

	f := domain.FilamentFromFields(fields)

	assert.Equal(t, int64(7), f.ID)
	assert.Equal(t, int64(3), f.VendorID)
	assert.Equal(t, "PETG", f.Material)

	// The embedded vendor is lifted out of the payload into the typed
	// pointer; templates see it under the "vendor" key again later.
	require.NotNil(t, f.Vendor)
	assert.Equal(t, int64(3), f.Vendor.ID)
	assert.NotContains(t, f.Fields, "vendor")
}

func TestSpoolFromFields(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		fields := map[string]any{
			"id":           int64(10),
			"filament_id":  int64(7),
			"archived":     true,
			"spool_weight": 215.5,
			"last_used":    "2026-08-30T10:00:00Z",
			"filament": map[string]any{
				"id":       int64(7),
				"material": "PLA",
			},
		}

		s := domain.SpoolFromFields(fields)

		assert.Equal(t, int64(10), s.ID)
		assert.Equal(t, int64(7), s.FilamentID)
		assert.True(t, s.Archived)
		assert.True(t, s.HasWeight)
		assert.InDelta(t, 215.5, s.Weight, 0.001)
		assert.Equal(t, "2026-08-30T10:00:00Z", s.LastUsed)
		require.NotNil(t, s.Filament)
		assert.Equal(t, int64(7), s.Filament.ID)
		assert.NotContains(t, s.Fields, "filament")
	})

	t.Run("sparse record", func(t *testing.T) {
		s := domain.SpoolFromFields(map[string]any{"id": int64(11)})

		assert.Equal(t, int64(11), s.ID)
		assert.False(t, s.Archived)
		assert.False(t, s.HasWeight)
		assert.Empty(t, s.LastUsed)
		assert.Nil(t, s.Filament)
	})
}

func TestEffectiveWeight(t *testing.T) {
	withWeight := &domain.Spool{Weight: 100, HasWeight: true}
	assert.InDelta(t, 100.0, withWeight.EffectiveWeight(), 0.001)

	// Absent weight sorts last under a min, so it must be +Inf.
	withoutWeight := &domain.Spool{}
	assert.True(t, math.IsInf(withoutWeight.EffectiveWeight(), 1))
}
