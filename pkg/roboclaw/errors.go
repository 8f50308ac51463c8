// pkg/roboclaw/errors.go
package roboclaw

import (
	"errors"
	"fmt"
)

// ErrCommFailure wraps every way the line can fail: read timeouts, bad ack
// bytes, short or oversized replies, and checksum mismatches, each after the
// retry budget is spent. It is recoverable; callers decide whether to retry
// at a higher level.
var ErrCommFailure = errors.New("communication failure")

// ArgumentError reports a value outside its protocol range: a device address
// off the multi-drop bus, or a scaled argument that cannot be represented in
// its wire field. It is a caller contract violation, reported before any
// bytes are written and never retried.
type ArgumentError struct {
	Cmd      string
	Field    string
	Value    float64
	Min, Max float64
}

func (e *ArgumentError) Error() string {
	if e.Cmd == "" {
		return fmt.Sprintf("%s %g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("%s: %s %g out of range [%g, %g]", e.Cmd, e.Field, e.Value, e.Min, e.Max)
}

func commErr(cmd Cmd, attempts int, last error) error {
	return fmt.Errorf("%s: %w after %d attempts: %v", cmd, ErrCommFailure, attempts, last)
}

// Internal per-attempt failures. They only ever surface wrapped by commErr.
var (
	errReadTimeout = errors.New("read timeout")
	errBadChecksum = errors.New("checksum mismatch")
)
