package ports

import (
	"context"

	"go.bittr.nu/spoolsync/internal/core/domain"
)

// Inventory fetches full entity snapshots from the remote source. Retry
// and backoff on transport errors are the implementation's concern; a
// returned error means its own retries are already exhausted.
//
//go:generate mockgen -source=inventory.go -destination=mocks/mock_inventory.go -package=mocks
type Inventory interface {
	Vendors(ctx context.Context) ([]*domain.Vendor, error)
	Filaments(ctx context.Context) ([]*domain.Filament, error)
	Spools(ctx context.Context) ([]*domain.Spool, error)
}

// EventSource delivers the ordered push-event stream. Reconnection and
// backoff are the implementation's concern; the consumer only sees
// validated, parsed events.
type EventSource interface {
	// Listen blocks, invoking emit for each event in delivery order until
	// ctx is done. emit may block; the source must not deliver the next
	// event before emit returns.
	Listen(ctx context.Context, emit func(domain.Event)) error
}
