package spoolman

import (
	"context"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const reconnectDelay = 5 * time.Second

// Stream implements ports.EventSource over the Spoolman websocket API.
// Events are emitted inline from the read loop, so delivery order is the
// wire order and the consumer's handler naturally serializes processing.
type Stream struct {
	url    string
	log    ports.Logger
	dialer *websocket.Dialer

	// delay between reconnect attempts; a field so tests can shrink it.
	delay time.Duration
}

var _ ports.EventSource = (*Stream)(nil)

// NewStream creates an event stream for the Spoolman installation at the
// given HTTP base URL.
func NewStream(baseURL string, log ports.Logger) *Stream {
	// http://host → ws://host, https://host → wss://host.
	wsURL := "ws" + strings.TrimPrefix(strings.TrimSuffix(baseURL, "/"), "http") + "/api/v1/"
	return &Stream{
		url:    wsURL,
		log:    log,
		dialer: websocket.DefaultDialer,
		delay:  reconnectDelay,
	}
}

// Listen connects and consumes event frames until ctx is done, redialing
// after a delay on connection errors. Malformed frames are logged and
// dropped; emit is invoked for each valid event, one at a time.
func (s *Stream) Listen(ctx context.Context, emit func(domain.Event)) error {
	for {
		conn, resp, err := s.dialer.DialContext(ctx, s.url, nil)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Error(zerr.Wrap(err, "failed to connect to "+s.url))
			if !s.sleep(ctx) {
				return ctx.Err()
			}
			continue
		}

		s.log.Info("connected, waiting for updates: " + s.url)
		err = s.consume(ctx, conn, emit)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Error(zerr.Wrap(err, "event stream interrupted"))
		if !s.sleep(ctx) {
			return ctx.Err()
		}
	}
}

// consume reads frames from one connection until it fails or ctx is done.
func (s *Stream) consume(ctx context.Context, conn *websocket.Conn, emit func(domain.Event)) error {
	// ReadMessage has no context support; closing the connection is the
	// documented way to unblock it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		s.log.Debug("event frame: " + string(data))

		ev, err := domain.ParseEvent(data)
		if err != nil {
			s.log.Error(zerr.Wrap(err, "dropping event"))
			continue
		}
		emit(ev)
	}
}

// sleep waits out the reconnect delay; false means ctx ended first.
func (s *Stream) sleep(ctx context.Context) bool {
	select {
	case <-time.After(s.delay):
		return true
	case <-ctx.Done():
		return false
	}
}
