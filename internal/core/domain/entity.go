// Package domain contains the entity model, the entity graph cache, and the
// output selection policy for spoolsync.
package domain

import (
	"math"

	"github.com/ohler55/ojg/oj"
	"go.trai.ch/zerr"
)

// Vendor is an immutable snapshot of a vendor record. The Fields map holds
// the full payload as received, so templates can reach every attribute.
type Vendor struct {
	ID     int64
	Fields map[string]any
}

// Filament is an immutable snapshot of a filament record. Vendor is the
// denormalized parent, embedded at insertion time; nil when the foreign key
// could not be resolved.
type Filament struct {
	ID       int64
	VendorID int64
	Material string
	Vendor   *Vendor
	Fields   map[string]any
}

// Spool is an immutable snapshot of a spool record. Filament is the
// denormalized parent, embedded at insertion time; nil when the foreign key
// could not be resolved.
type Spool struct {
	ID         int64
	FilamentID int64
	Archived   bool
	// Weight is the spool_weight attribute; HasWeight distinguishes an
	// absent value from zero.
	Weight    float64
	HasWeight bool
	// LastUsed is the last_used timestamp as received (RFC 3339 strings
	// compare correctly as plain strings). Empty when absent.
	LastUsed string
	Filament *Filament
	Fields   map[string]any
}

// ParseFields parses a raw JSON object into a field map.
func ParseFields(data []byte) (map[string]any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, zerr.Wrap(err, ErrMalformedPayload.Error())
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, zerr.Wrap(ErrMalformedPayload, "payload is not a JSON object")
	}
	return fields, nil
}

// VendorFromFields builds a Vendor from a parsed payload.
func VendorFromFields(fields map[string]any) *Vendor {
	return &Vendor{
		ID:     asID(fields["id"]),
		Fields: fields,
	}
}

// FilamentFromFields builds a Filament from a parsed payload. An embedded
// vendor object is lifted out of the field map into the typed pointer.
func FilamentFromFields(fields map[string]any) *Filament {
	f := &Filament{
		ID:       asID(fields["id"]),
		VendorID: asID(fields["vendor_id"]),
		Fields:   fields,
	}
	if m, ok := fields["material"].(string); ok {
		f.Material = m
	}
	if nested, ok := fields["vendor"].(map[string]any); ok {
		f.Vendor = VendorFromFields(nested)
		delete(fields, "vendor")
	}
	return f
}

// SpoolFromFields builds a Spool from a parsed payload. An embedded filament
// object is lifted out of the field map into the typed pointer.
func SpoolFromFields(fields map[string]any) *Spool {
	s := &Spool{
		ID:         asID(fields["id"]),
		FilamentID: asID(fields["filament_id"]),
		Fields:     fields,
	}
	if b, ok := fields["archived"].(bool); ok {
		s.Archived = b
	}
	if w, ok := asNumber(fields["spool_weight"]); ok {
		s.Weight = w
		s.HasWeight = true
	}
	if lu, ok := fields["last_used"].(string); ok {
		s.LastUsed = lu
	}
	if nested, ok := fields["filament"].(map[string]any); ok {
		s.Filament = FilamentFromFields(nested)
		delete(fields, "filament")
	}
	return s
}

// EffectiveWeight returns the spool weight for ordering purposes, treating
// an absent value as +Inf so such spools sort last in least-left mode.
func (s *Spool) EffectiveWeight() float64 {
	if !s.HasWeight {
		return math.Inf(1)
	}
	return s.Weight
}

// asID coerces a parsed JSON value to an entity id. Records without an id
// (or with a non-numeric one) yield zero.
func asID(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case int:
		return int64(n)
	default:
		return 0
	}
}

// asNumber coerces a parsed JSON value to a float64, reporting presence.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
