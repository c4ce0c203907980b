// Package format renders values for human-readable diagnostics.
package format

import (
	"fmt"
	"time"
)

// Duration renders an elapsed time with an auto-scaled unit.
//
// Below one millisecond it prints microseconds, below one second it prints
// milliseconds, otherwise seconds. Always two decimals.
func Duration(d time.Duration) string {
	seconds := d.Seconds()
	switch {
	case seconds < 1e-3:
		return fmt.Sprintf("%.2fµs", seconds*1e6)
	case seconds < 1:
		return fmt.Sprintf("%.2fms", seconds*1e3)
	default:
		return fmt.Sprintf("%.2fs", seconds)
	}
}
