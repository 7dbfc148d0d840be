package domain

import "go.trai.ch/zerr"

// Resource names the entity type an event refers to.
type Resource string

// Resources delivered by the event stream.
const (
	ResourceVendor   Resource = "vendor"
	ResourceFilament Resource = "filament"
	ResourceSpool    Resource = "spool"
)

// EventType names the kind of change an event carries.
type EventType string

// Event types delivered by the event stream.
const (
	EventAdded   EventType = "added"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event is one validated push notification from the inventory source.
// Payload is the raw entity object; the reconciler decides how to type it
// based on Resource.
type Event struct {
	Resource Resource
	Type     EventType
	Payload  map[string]any
}

// ParseEvent decodes a raw event frame. Unknown resources are rejected
// here; unknown types are left for the reconciler to log and drop, since
// they need the resource context for a useful message.
func ParseEvent(data []byte) (Event, error) {
	fields, err := ParseFields(data)
	if err != nil {
		return Event{}, err
	}

	resource, _ := fields["resource"].(string)
	switch Resource(resource) {
	case ResourceVendor, ResourceFilament, ResourceSpool:
	default:
		return Event{}, zerr.With(zerr.Wrap(ErrUnknownResource, "failed to parse event"), "resource", resource)
	}

	typ, _ := fields["type"].(string)
	payload, ok := fields["payload"].(map[string]any)
	if !ok {
		return Event{}, zerr.Wrap(ErrMalformedPayload, "event has no payload")
	}

	return Event{
		Resource: Resource(resource),
		Type:     EventType(typ),
		Payload:  payload,
	}, nil
}
