// export_test.go exports private hooks for white-box testing.
package spoolman

import "time"

// SetReconnectDelay shortens the redial pause in stream tests.
func SetReconnectDelay(s *Stream, d time.Duration) {
	s.delay = d
}

// StreamURL exposes the derived websocket URL.
func StreamURL(s *Stream) string {
	return s.url
}
