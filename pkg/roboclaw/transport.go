// pkg/roboclaw/transport.go
package roboclaw

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// transport owns the serial resource for one session and drives the bounded
// retry discipline. A mutex serializes cycles so frames from one session
// never overlap on the line; serializing across sessions that share a port
// is the caller's concern.
type transport struct {
	mu      sync.Mutex
	stream  Stream
	retries int
	packet  bool
	logger  *zap.Logger
}

func newTransport(stream Stream, retries int, packet bool, logger *zap.Logger) *transport {
	return &transport{
		stream:  stream,
		retries: retries,
		packet:  packet,
		logger:  logger,
	}
}

// sendAwait writes frame and reads one reply per shape, retrying the whole
// write+read up to the retry budget. A timeout, short read, bad ack byte,
// length mismatch or checksum mismatch each burn one attempt. There is no
// flush or resynchronization between attempts; a desynchronized reply is
// expected to fail the next attempt's checksum check instead.
func (t *transport) sendAwait(cmd Cmd, frame []byte, shape replyShape) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.stream.Acquire(); err != nil {
		return nil, fmt.Errorf("%s: %w: acquiring stream: %v", cmd, ErrCommFailure, err)
	}
	defer t.stream.Release()

	var lastErr error
	for attempt := 1; attempt <= t.retries; attempt++ {
		if err := t.stream.Write(frame); err != nil {
			lastErr = err
			continue
		}
		payload, err := t.readReply(shape)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		t.logger.Debug("attempt failed",
			zap.String("command", cmd.String()),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	t.logger.Warn("retries exhausted",
		zap.String("command", cmd.String()),
		zap.Int("attempts", t.retries),
		zap.Error(lastErr),
	)
	return nil, commErr(cmd, t.retries, lastErr)
}

func (t *transport) readReply(shape replyShape) ([]byte, error) {
	switch shape.kind {
	case replyAck:
		return nil, t.readAck(shape.ok)
	case replyText:
		return t.readText()
	default:
		return t.readFixed(shape.width())
	}
}

// readAck reads the single acknowledgment byte a write command returns.
func (t *transport) readAck(want byte) error {
	b, err := t.stream.ReadN(1)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return errReadTimeout
	}
	if b[0] != want {
		return fmt.Errorf("ack byte 0x%02X, want 0x%02X", b[0], want)
	}
	return nil
}

// readFixed reads an exact-width reply plus, in packet mode, the checksum
// suffix, and returns the payload with the suffix stripped.
func (t *transport) readFixed(width int) ([]byte, error) {
	n := width
	if t.packet {
		n += 2
	}
	b, err := t.stream.ReadN(n)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: short reply %d of %d bytes", errReadTimeout, len(b), n)
	}
	if !t.packet {
		return b, nil
	}
	payload, ok := ValidateChecksum(b)
	if !ok {
		return nil, errBadChecksum
	}
	return payload, nil
}

// readText reads a variable-length ASCII reply terminated by line feed and
// null. In packet mode the checksum trails the terminator and covers
// everything before itself, terminator included.
func (t *transport) readText() ([]byte, error) {
	line, err := t.stream.ReadUntil('\n')
	if err != nil {
		return nil, err
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		return nil, errReadTimeout
	}
	tailLen := 1 // null terminator
	if t.packet {
		tailLen += 2
	}
	tail, err := t.stream.ReadN(tailLen)
	if err != nil {
		return nil, err
	}
	if len(tail) != tailLen {
		return nil, fmt.Errorf("%w: truncated terminator", errReadTimeout)
	}
	full := append(line, tail...)
	if !t.packet {
		return full, nil
	}
	payload, ok := ValidateChecksum(full)
	if !ok {
		return nil, errBadChecksum
	}
	return payload, nil
}
