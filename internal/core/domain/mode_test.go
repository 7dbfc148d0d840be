package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/core/domain"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Mode
		wantErr bool
	}{
		{name: "default", input: "", want: domain.ModeDefault},
		{name: "all", input: "all", want: domain.ModeAll},
		{name: "least-left", input: "least-left", want: domain.ModeLeastLeft},
		{name: "most-recent", input: "most-recent", want: domain.ModeMostRecent},
		{name: "unknown", input: "newest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func weighted(id int64, weight float64) *domain.Spool {
	return &domain.Spool{ID: id, Weight: weight, HasWeight: true}
}

func used(id int64, lastUsed string) *domain.Spool {
	return &domain.Spool{ID: id, LastUsed: lastUsed}
}

func TestSelectLeastLeft(t *testing.T) {
	tests := []struct {
		name   string
		spools []*domain.Spool
		wantID int64
	}{
		{
			name:   "smallest weight wins",
			spools: []*domain.Spool{weighted(1, 500), weighted(2, 120), weighted(3, 300)},
			wantID: 2,
		},
		{
			name:   "absent weight sorts last",
			spools: []*domain.Spool{{ID: 1}, weighted(2, 900)},
			wantID: 2,
		},
		{
			name:   "tie breaks toward smallest id",
			spools: []*domain.Spool{weighted(5, 100), weighted(2, 100), weighted(9, 100)},
			wantID: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantID, domain.SelectLeastLeft(tt.spools).ID)
		})
	}
}

func TestSelectMostRecent(t *testing.T) {
	tests := []struct {
		name   string
		spools []*domain.Spool
		wantID int64
	}{
		{
			name:   "latest timestamp wins",
			spools: []*domain.Spool{used(1, "2026-01-01"), used(2, "2026-06-01"), used(3, "2026-03-01")},
			wantID: 2,
		},
		{
			name:   "never used sorts below any timestamp",
			spools: []*domain.Spool{used(9, ""), used(2, "2020-01-01")},
			wantID: 2,
		},
		{
			name:   "equal timestamps break toward smallest id",
			spools: []*domain.Spool{used(5, "2026-06-01"), used(2, "2026-06-01")},
			wantID: 2,
		},
		{
			name:   "all never used picks largest id",
			spools: []*domain.Spool{used(5, ""), used(2, ""), used(9, "")},
			wantID: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantID, domain.SelectMostRecent(tt.spools).ID)
		})
	}
}

func TestSlicerSuffixes(t *testing.T) {
	tests := []struct {
		slicer  string
		want    []string
		wantErr bool
	}{
		{slicer: "slic3r", want: []string{"ini"}},
		{slicer: "superslicer", want: []string{"ini"}},
		{slicer: "prusaslicer", want: []string{"ini"}},
		{slicer: "orcaslicer", want: []string{"json", "info"}},
		{slicer: "cura", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.slicer, func(t *testing.T) {
			got, err := domain.SlicerSuffixes(tt.slicer)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnsupportedSlicer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
