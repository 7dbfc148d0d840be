package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/core/domain"
)

func vendor(id int64) *domain.Vendor {
	return &domain.Vendor{ID: id, Fields: map[string]any{"id": id}}
}

func filament(id, vendorID int64) *domain.Filament {
	return &domain.Filament{
		ID:       id,
		VendorID: vendorID,
		Fields:   map[string]any{"id": id},
	}
}

func spool(id, filamentID int64) *domain.Spool {
	return &domain.Spool{
		ID:         id,
		FilamentID: filamentID,
		Fields:     map[string]any{"id": id},
	}
}

func TestGraphEmbedsVendorOnFilamentInsert(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertVendor(vendor(3))

	g.UpsertFilament(filament(7, 3))

	f := g.Filament(7)
	require.NotNil(t, f)
	require.NotNil(t, f.Vendor)
	assert.Equal(t, int64(3), f.Vendor.ID)
}

func TestGraphUnresolvableForeignKeysStayNil(t *testing.T) {
	g := domain.NewGraph()

	g.UpsertFilament(filament(7, 99))
	g.UpsertSpool(spool(10, 88))

	assert.Nil(t, g.Filament(7).Vendor)
	assert.Nil(t, g.Spool(10).Filament)
}

func TestGraphEmbedsFilamentOnSpoolInsert(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertVendor(vendor(3))
	g.UpsertFilament(filament(7, 3))

	g.UpsertSpool(spool(10, 7))

	s := g.Spool(10)
	require.NotNil(t, s.Filament)
	assert.Equal(t, int64(7), s.Filament.ID)
	assert.Equal(t, int64(3), s.Filament.Vendor.ID)
}

func TestGraphReplacedFilamentLeavesStaleEmbedding(t *testing.T) {
	g := domain.NewGraph()
	old := filament(7, 0)
	g.UpsertFilament(old)
	g.UpsertSpool(spool(10, 7))

	// Replacing the filament wholesale must not re-point existing spools;
	// the reconciler does that explicitly during its cascade.
	g.UpsertFilament(filament(7, 0))

	assert.Same(t, old, g.Spool(10).Filament)
}

func TestGraphInPlaceVendorMutationIsVisible(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertFilament(filament(7, 0))
	g.UpsertSpool(spool(10, 7))

	v := vendor(3)
	g.Filament(7).Vendor = v

	assert.Same(t, v, g.Spool(10).Filament.Vendor)
}

func TestGraphRemoveSpool(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertSpool(spool(10, 0))

	removed, ok := g.RemoveSpool(10)
	require.True(t, ok)
	assert.Equal(t, int64(10), removed.ID)

	_, ok = g.RemoveSpool(10)
	assert.False(t, ok)
}

func TestActiveSpoolsForSkipsArchived(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertFilament(filament(7, 0))

	live := spool(10, 7)
	archived := spool(11, 7)
	archived.Archived = true
	g.UpsertSpool(live)
	g.UpsertSpool(archived)

	active := g.ActiveSpoolsFor(7)
	require.Len(t, active, 1)
	assert.Equal(t, int64(10), active[0].ID)
}

func TestHasActiveSpoolsBootstrapWindow(t *testing.T) {
	g := domain.NewGraph()
	g.UpsertFilament(filament(7, 0))

	// Before the snapshot an empty spool cache counts as active.
	assert.True(t, g.HasActiveSpools(7))

	// After the snapshot the check is literal.
	g.MarkSnapshotLoaded()
	assert.False(t, g.HasActiveSpools(7))

	g.UpsertSpool(spool(10, 7))
	assert.True(t, g.HasActiveSpools(7))

	g.RemoveSpool(10)
	assert.False(t, g.HasActiveSpools(7))
}
