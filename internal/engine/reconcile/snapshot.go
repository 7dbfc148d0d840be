package reconcile

import (
	"context"
	"fmt"

	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
)

// LoadSnapshot populates the entity graph from a full inventory fetch.
// Embedded parents carried by spool records are promoted into the filament
// cache so later lookups resolve against the freshest denormalized view.
func (r *Reconciler) LoadSnapshot(ctx context.Context, inv ports.Inventory) error {
	vendors, err := inv.Vendors(ctx)
	if err != nil {
		return err
	}
	for _, v := range vendors {
		r.graph.UpsertVendor(v)
	}
	r.log.Info(fmt.Sprintf("loaded %d vendors", len(vendors)))

	filaments, err := inv.Filaments(ctx)
	if err != nil {
		return err
	}
	for _, f := range filaments {
		r.graph.UpsertFilament(f)
	}
	r.log.Info(fmt.Sprintf("loaded %d filaments", len(filaments)))

	spools, err := inv.Spools(ctx)
	if err != nil {
		return err
	}
	for _, s := range spools {
		if s.Filament != nil {
			r.graph.UpsertFilament(s.Filament)
		}
		r.graph.UpsertSpool(s)
	}
	r.log.Info(fmt.Sprintf("loaded %d spools", len(spools)))

	r.graph.MarkSnapshotLoaded()
	return nil
}

// MaterializeAll runs the output mapping policy over the whole entity
// graph and writes every selected output record. With rerender set, each
// subject goes through the release-then-write cycle instead of a plain
// write — used after a template reload, when filenames may have moved.
func (r *Reconciler) MaterializeAll(rerender bool) error {
	emit := r.outputs.Write
	if rerender {
		emit = func(sub domain.Subject) error {
			if err := r.outputs.Release(sub, true); err != nil {
				return err
			}
			return r.outputs.Write(sub)
		}
	}

	switch r.mode {
	case domain.ModeAll:
		return r.materializePerSpool(emit)
	case domain.ModeLeastLeft, domain.ModeMostRecent:
		return r.materializeSelected(emit)
	default:
		return r.materializeDefault(emit)
	}
}

// materializeDefault emits one output per filament that has at least one
// non-archived spool.
func (r *Reconciler) materializeDefault(emit func(domain.Subject) error) error {
	withSpools := make(map[int64]struct{})
	r.graph.Spools(func(s *domain.Spool) bool {
		if !s.Archived && s.Filament != nil {
			withSpools[s.Filament.ID] = struct{}{}
		}
		return true
	})

	for id := range withSpools {
		filament := r.graph.Filament(id)
		if filament == nil {
			continue
		}
		for _, sub := range r.outputs.Subjects(filament, nil) {
			if err := emit(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// materializePerSpool emits one output per non-archived spool.
func (r *Reconciler) materializePerSpool(emit func(domain.Subject) error) error {
	var err error
	r.graph.Spools(func(s *domain.Spool) bool {
		if s.Archived {
			return true
		}
		if s.Filament == nil {
			r.log.Debug(fmt.Sprintf("spool %d has no resolvable filament, skipping", s.ID))
			return true
		}
		for _, sub := range r.outputs.Subjects(s.Filament, s) {
			if err = emit(sub); err != nil {
				return false
			}
		}
		return true
	})
	return err
}

// materializeSelected emits one output per filament, bound to the winning
// spool under the active selection mode.
func (r *Reconciler) materializeSelected(emit func(domain.Subject) error) error {
	groups := make(map[int64][]*domain.Spool)
	r.graph.Spools(func(s *domain.Spool) bool {
		if !s.Archived && s.Filament != nil {
			groups[s.Filament.ID] = append(groups[s.Filament.ID], s)
		}
		return true
	})

	selector := r.mode.Selector()
	for _, spools := range groups {
		winner := selector(spools)
		for _, sub := range r.outputs.Subjects(winner.Filament, winner) {
			if err := emit(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// DeleteAll removes every generated file for the configured suffixes; the
// bulk bootstrap path behind --delete-all and the clean command.
func (r *Reconciler) DeleteAll() error {
	return r.outputs.DeleteAll()
}
