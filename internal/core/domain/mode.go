package domain

import "go.trai.ch/zerr"

// Mode controls whether outputs are one-per-filament or one-per-spool, and
// which spool wins when one-per-filament must pick among several.
type Mode string

const (
	// ModeDefault emits one output per filament that has at least one
	// non-archived spool.
	ModeDefault Mode = ""
	// ModeAll emits one output per non-archived spool.
	ModeAll Mode = "all"
	// ModeLeastLeft emits one output per filament, bound to the spool with
	// the least filament left.
	ModeLeastLeft Mode = "least-left"
	// ModeMostRecent emits one output per filament, bound to the most
	// recently used spool.
	ModeMostRecent Mode = "most-recent"
)

// ParseMode validates a per-spool mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDefault, ModeAll, ModeLeastLeft, ModeMostRecent:
		return Mode(s), nil
	default:
		return ModeDefault, zerr.With(zerr.Wrap(ErrInvalidMode, "failed to parse mode"), "mode", s)
	}
}

// PerSpool reports whether the mode binds each output to a specific spool.
func (m Mode) PerSpool() bool { return m != ModeDefault }

// Selector returns the winning-spool selector for selected-spool modes,
// or nil for the other modes.
func (m Mode) Selector() func([]*Spool) *Spool {
	switch m {
	case ModeLeastLeft:
		return SelectLeastLeft
	case ModeMostRecent:
		return SelectMostRecent
	default:
		return nil
	}
}

// SelectLeastLeft picks the spool with the smallest spool_weight, treating
// an absent weight as +Inf. Ties break toward the smallest spool id.
func SelectLeastLeft(spools []*Spool) *Spool {
	best := spools[0]
	for _, s := range spools[1:] {
		bw, sw := best.EffectiveWeight(), s.EffectiveWeight()
		if sw < bw || (sw == bw && s.ID < best.ID) {
			best = s
		}
	}
	return best
}

// SelectMostRecent picks the spool with the largest last_used timestamp.
// An absent timestamp sorts below every present one. Ties between equal
// timestamps break toward the smallest spool id — note the asymmetry with
// SelectLeastLeft: there the id is a secondary ascending key under a min,
// here it is negated under a max. Spools without a timestamp instead
// compare by raw id, so among only-unused spools the largest id wins.
func SelectMostRecent(spools []*Spool) *Spool {
	best := spools[0]
	for _, s := range spools[1:] {
		bt, bid := mostRecentKey(best)
		st, sid := mostRecentKey(s)
		if st > bt || (st == bt && sid > bid) {
			best = s
		}
	}
	return best
}

func mostRecentKey(s *Spool) (string, int64) {
	if s.LastUsed == "" {
		return "", s.ID
	}
	return s.LastUsed, -s.ID
}

// Slicer targets.
const (
	SlicerOrca   = "orcaslicer"
	SlicerPrusa  = "prusaslicer"
	SlicerSlic3r = "slic3r"
	SlicerSuper  = "superslicer"
)

// SlicerSuffixes returns the config file suffixes for the slicer.
func SlicerSuffixes(slicer string) ([]string, error) {
	switch slicer {
	case SlicerSlic3r, SlicerSuper, SlicerPrusa:
		return []string{"ini"}, nil
	case SlicerOrca:
		return []string{"json", "info"}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrUnsupportedSlicer, "failed to resolve slicer suffixes"), "slicer", slicer)
	}
}
