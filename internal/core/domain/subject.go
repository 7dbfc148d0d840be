package domain

import "strconv"

// Subject is the logical unit one output record represents: a filament, or
// a filament bound to a specific spool, expanded for one suffix × variant
// combination.
type Subject struct {
	Filament *Filament
	// Spool is the bound spool; nil for per-filament subjects.
	Spool   *Spool
	Suffix  string
	Variant string
}

// keyBase is the spool- or filament-derived part shared by both cache keys.
// The spool form is only used in per-spool "all" mode, and only when the
// bound spool actually has an id.
func (s Subject) keyBase(mode Mode) string {
	if mode == ModeAll && s.Spool != nil && s.Spool.ID != 0 {
		return "spool-" + strconv.FormatInt(s.Spool.ID, 10)
	}
	return strconv.FormatInt(s.Filament.ID, 10)
}

// FilenameKey identifies the subject's filename cache entry. It is
// suffix-qualified because one filament can emit files of several suffixes.
func (s Subject) FilenameKey(mode Mode) string {
	return s.keyBase(mode) + "-" + s.Suffix
}

// ContentKey identifies the subject's content cache entry. It omits the
// suffix.
func (s Subject) ContentKey(mode Mode) string {
	return s.keyBase(mode)
}
