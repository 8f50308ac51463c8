// pkg/roboclaw/stream.go
package roboclaw

// Stream is the duplex byte-stream capability the transport drives. It is
// borrow-scoped: the transport brackets every send/await cycle with Acquire
// and Release, so an implementation may bind the underlying resource lazily
// (open a serial port on first borrow) without partial frames interleaving
// on a shared half-duplex line.
//
// Read timeouts belong to the stream, not to this layer: ReadN and ReadUntil
// return whatever arrived before the stream's own deadline, and a short
// result is the timeout signal, not an error. Errors are reserved for the
// resource itself failing (unplugged port, closed stream).
type Stream interface {
	// Acquire borrows the stream for one request/response cycle.
	Acquire() error
	// Release returns the borrow. Called exactly once per successful
	// Acquire, on every exit path.
	Release() error
	// Write sends the full frame.
	Write(p []byte) error
	// ReadN reads up to n bytes, returning early on the stream timeout.
	ReadN(n int) ([]byte, error)
	// ReadUntil reads until delim (inclusive) or the stream timeout.
	ReadUntil(delim byte) ([]byte, error)
	// Close releases the underlying resource for good.
	Close() error
}
