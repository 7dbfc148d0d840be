package domain

// Graph is the in-memory entity graph cache. It owns the latest snapshot of
// every vendor, filament, and spool, and denormalizes foreign keys at
// insertion time so every reader sees a consistent embedded view.
//
// Pointer embedding mirrors the remote model's reference semantics:
// replacing a filament wholesale leaves existing spools pointing at the old
// copy until the reconciler re-embeds them, while mutating a filament's
// Vendor field in place is immediately visible through every spool that
// embeds that filament.
//
// Graph is not safe for concurrent use; the reconciler owns it exclusively.
type Graph struct {
	vendors   map[int64]*Vendor
	filaments map[int64]*Filament
	spools    map[int64]*Spool

	// snapshotLoaded flips once the initial snapshot has been applied.
	// Before that point an empty spool map is treated as "has active
	// spools" so the first materialization is permissive.
	snapshotLoaded bool
}

// NewGraph creates an empty entity graph cache.
func NewGraph() *Graph {
	return &Graph{
		vendors:   make(map[int64]*Vendor),
		filaments: make(map[int64]*Filament),
		spools:    make(map[int64]*Spool),
	}
}

// UpsertVendor stores the vendor, replacing any previous version.
func (g *Graph) UpsertVendor(v *Vendor) {
	g.vendors[v.ID] = v
}

// UpsertFilament stores the filament, resolving its vendor from the cache
// when the record arrived without an embedded one. Unresolvable foreign
// keys leave the embedded field nil; that is never an error.
func (g *Graph) UpsertFilament(f *Filament) {
	if f.Vendor == nil && f.VendorID != 0 {
		f.Vendor = g.vendors[f.VendorID]
	}
	g.filaments[f.ID] = f
}

// UpsertSpool stores the spool, resolving its filament from the cache when
// the record arrived without an embedded one. An embedded filament carried
// by the record is kept as-is; whether it is also promoted into the
// filament cache is the caller's decision (the snapshot loader does, the
// event path does not).
func (g *Graph) UpsertSpool(s *Spool) {
	if s.Filament == nil && s.FilamentID != 0 {
		s.Filament = g.filaments[s.FilamentID]
	}
	g.spools[s.ID] = s
}

// Resolve fills in the spool's embedded filament from the cache if missing.
func (g *Graph) Resolve(s *Spool) {
	if s.Filament == nil && s.FilamentID != 0 {
		s.Filament = g.filaments[s.FilamentID]
	}
}

// RemoveVendor deletes the vendor entry. Filaments embedding it keep their
// stale copy; there is deliberately no cascade on delete.
func (g *Graph) RemoveVendor(id int64) {
	delete(g.vendors, id)
}

// RemoveFilament deletes the filament entry only. Spool-level
// reconciliation owns the file lifecycle.
func (g *Graph) RemoveFilament(id int64) {
	delete(g.filaments, id)
}

// RemoveSpool deletes the spool entry and returns the removed copy, if any.
func (g *Graph) RemoveSpool(id int64) (*Spool, bool) {
	s, ok := g.spools[id]
	if ok {
		delete(g.spools, id)
	}
	return s, ok
}

// Vendor returns the cached vendor for the id, or nil.
func (g *Graph) Vendor(id int64) *Vendor { return g.vendors[id] }

// Filament returns the cached filament for the id, or nil.
func (g *Graph) Filament(id int64) *Filament { return g.filaments[id] }

// Spool returns the cached spool for the id, or nil.
func (g *Graph) Spool(id int64) *Spool { return g.spools[id] }

// Filaments iterates over all cached filaments.
func (g *Graph) Filaments(yield func(*Filament) bool) {
	for _, f := range g.filaments {
		if !yield(f) {
			return
		}
	}
}

// Spools iterates over all cached spools.
func (g *Graph) Spools(yield func(*Spool) bool) {
	for _, s := range g.spools {
		if !yield(s) {
			return
		}
	}
}

// ActiveSpoolsFor returns all non-archived spools whose embedded filament
// matches the given id.
func (g *Graph) ActiveSpoolsFor(filamentID int64) []*Spool {
	var out []*Spool
	for _, s := range g.spools {
		if s.Archived {
			continue
		}
		if s.Filament != nil && s.Filament.ID == filamentID {
			out = append(out, s)
		}
	}
	return out
}

// HasActiveSpools reports whether the filament has at least one
// non-archived spool. Before the initial snapshot an empty spool cache
// counts as active, so the first-run materialization is never suppressed.
func (g *Graph) HasActiveSpools(filamentID int64) bool {
	if !g.snapshotLoaded && len(g.spools) == 0 {
		return true
	}
	for _, s := range g.spools {
		if s.Archived {
			continue
		}
		if s.Filament != nil && s.Filament.ID == filamentID {
			return true
		}
	}
	return false
}

// MarkSnapshotLoaded records that the initial snapshot has been applied,
// ending the permissive bootstrap window used by HasActiveSpools.
func (g *Graph) MarkSnapshotLoaded() {
	g.snapshotLoaded = true
}

// SpoolCount returns the number of cached spools.
func (g *Graph) SpoolCount() int { return len(g.spools) }
