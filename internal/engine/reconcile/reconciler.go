package reconcile

import (
	"fmt"

	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
)

// Reconciler is the event-driven state machine. It owns the entity graph
// cache and the output cache exclusively; events must be handed to it one
// at a time, in delivery order.
type Reconciler struct {
	graph   *domain.Graph
	outputs *Outputs
	mode    domain.Mode
	log     ports.Logger
}

// New creates a reconciler around an entity graph and an output cache.
func New(graph *domain.Graph, outputs *Outputs, mode domain.Mode, log ports.Logger) *Reconciler {
	return &Reconciler{
		graph:   graph,
		outputs: outputs,
		mode:    mode,
		log:     log,
	}
}

// Graph exposes the entity graph cache for the snapshot loader and tests.
func (r *Reconciler) Graph() *domain.Graph { return r.graph }

// HandleEvent applies one push event: it mutates the entity graph and
// re-evaluates every output record the event could have affected,
// including cascades. Unknown resources and types are logged and dropped;
// any other error propagates so the event-loop owner can decide whether to
// resume or terminate.
func (r *Reconciler) HandleEvent(ev domain.Event) error {
	switch ev.Resource {
	case domain.ResourceVendor:
		return r.handleVendor(ev)
	case domain.ResourceFilament:
		return r.handleFilament(ev)
	case domain.ResourceSpool:
		return r.handleSpool(ev)
	default:
		r.log.Warn(fmt.Sprintf("dropping event for unknown resource %q", ev.Resource))
		return nil
	}
}

func (r *Reconciler) handleVendor(ev domain.Event) error {
	vendor := domain.VendorFromFields(ev.Payload)

	switch ev.Type {
	case domain.EventAdded:
		r.graph.UpsertVendor(vendor)
	case domain.EventUpdated:
		r.graph.UpsertVendor(vendor)
		return r.cascadeVendor(vendor)
	case domain.EventDeleted:
		// Map entry only. Filaments keep their stale embedded copy; there
		// is deliberately no cascade on vendor delete.
		r.graph.RemoveVendor(vendor.ID)
	default:
		r.log.Warn(fmt.Sprintf("dropping vendor event with unknown type %q", ev.Type))
	}
	return nil
}

// cascadeVendor re-embeds the updated vendor into every filament that
// references it, then routes each affected non-archived spool through
// spool reconciliation so renames ripple all the way down to the files.
func (r *Reconciler) cascadeVendor(vendor *domain.Vendor) error {
	var err error
	r.graph.Filaments(func(f *domain.Filament) bool {
		if f.Vendor == nil || f.Vendor.ID != vendor.ID {
			return true
		}
		f.Vendor = vendor
		r.graph.Spools(func(s *domain.Spool) bool {
			if s.Filament == nil || s.Filament.ID != f.ID {
				return true
			}
			s.Filament = f
			if !s.Archived {
				if err = r.reconcileSpool(s); err != nil {
					return false
				}
			}
			return true
		})
		return err == nil
	})
	return err
}

func (r *Reconciler) handleFilament(ev domain.Event) error {
	filament := domain.FilamentFromFields(ev.Payload)

	switch ev.Type {
	case domain.EventAdded:
		// A filament alone never yields a file; outputs appear once a
		// spool referencing it does.
		r.graph.UpsertFilament(filament)
	case domain.EventUpdated:
		r.graph.UpsertFilament(filament)
		var err error
		r.graph.Spools(func(s *domain.Spool) bool {
			if s.Filament == nil || s.Filament.ID != filament.ID {
				return true
			}
			s.Filament = filament
			if !s.Archived {
				if err = r.reconcileSpool(s); err != nil {
					return false
				}
			}
			return true
		})
		return err
	case domain.EventDeleted:
		// Map entry only; spool-level reconciliation owns file lifecycle.
		r.graph.RemoveFilament(filament.ID)
	default:
		r.log.Warn(fmt.Sprintf("dropping filament event with unknown type %q", ev.Type))
	}
	return nil
}

func (r *Reconciler) handleSpool(ev domain.Event) error {
	spool := domain.SpoolFromFields(ev.Payload)

	switch ev.Type {
	case domain.EventAdded:
		if spool.ID != 0 {
			r.graph.UpsertSpool(spool)
		} else {
			r.graph.Resolve(spool)
		}
		return r.reconcileSpool(spool)

	case domain.EventUpdated:
		var oldFilament *domain.Filament
		if old := r.graph.Spool(spool.ID); old != nil {
			oldFilament = old.Filament
		}
		if spool.ID != 0 {
			r.graph.UpsertSpool(spool)
		} else {
			r.graph.Resolve(spool)
		}

		if err := r.releaseReparented(oldFilament, spool); err != nil {
			return err
		}
		return r.reconcileSpool(spool)

	case domain.EventDeleted:
		if old, ok := r.graph.RemoveSpool(spool.ID); ok && old.Filament != nil {
			// Reconcile the stale in-memory copy once more so its
			// contribution to the output can be released.
			return r.reconcileSpool(old)
		}
		return nil

	default:
		r.log.Debug(fmt.Sprintf("dropping spool event with unknown type %q", ev.Type))
		return nil
	}
}

// releaseReparented handles a spool moving from filament A to filament B
// in default mode: if A has no remaining non-archived spools, its output
// is deleted before the updated spool is reconciled under B.
func (r *Reconciler) releaseReparented(oldFilament *domain.Filament, spool *domain.Spool) error {
	if r.mode != domain.ModeDefault {
		return nil
	}
	if oldFilament == nil || spool.Filament == nil || oldFilament.ID == spool.Filament.ID {
		return nil
	}
	if len(r.graph.ActiveSpoolsFor(oldFilament.ID)) > 0 {
		return nil
	}
	for _, sub := range r.outputs.Subjects(oldFilament, nil) {
		if err := r.outputs.Release(sub, false); err != nil {
			return err
		}
	}
	return nil
}

// reconcileSpool is the shared reconciliation path invoked from all three
// spool-event branches and from the vendor/filament cascades. It re-runs
// the output mapping policy for everything the spool could affect.
func (r *Reconciler) reconcileSpool(spool *domain.Spool) error {
	r.graph.Resolve(spool)
	filament := spool.Filament
	if filament == nil {
		return nil
	}

	switch r.mode {
	case domain.ModeAll:
		if !spool.Archived {
			return r.rewrite(filament, spool)
		}
		return r.drop(filament, spool)

	case domain.ModeLeastLeft, domain.ModeMostRecent:
		candidates := r.graph.ActiveSpoolsFor(filament.ID)
		if len(candidates) == 0 {
			return r.drop(filament, nil)
		}
		winner := r.mode.Selector()(candidates)
		return r.rewrite(winner.Filament, winner)

	default:
		if r.graph.HasActiveSpools(filament.ID) {
			return r.rewrite(filament, nil)
		}
		return r.drop(filament, nil)
	}
}

// rewrite runs the delete-then-write-else-skip cycle for every suffix ×
// variant expansion of the subject.
func (r *Reconciler) rewrite(f *domain.Filament, s *domain.Spool) error {
	for _, sub := range r.outputs.Subjects(f, s) {
		if err := r.outputs.Release(sub, true); err != nil {
			return err
		}
		if err := r.outputs.Write(sub); err != nil {
			return err
		}
	}
	return nil
}

// drop releases every suffix × variant expansion of the subject.
func (r *Reconciler) drop(f *domain.Filament, s *domain.Spool) error {
	for _, sub := range r.outputs.Subjects(f, s) {
		if err := r.outputs.Release(sub, false); err != nil {
			return err
		}
	}
	return nil
}
