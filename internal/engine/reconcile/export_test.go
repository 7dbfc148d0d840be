// export_test.go exports private hooks for white-box testing.
package reconcile

import "time"

// SetNow pins the output cache's clock for deterministic sm2s timestamps.
func SetNow(o *Outputs, now func() time.Time) {
	o.now = now
}
