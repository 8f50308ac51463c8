package roboclaw

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptStream replays a canned byte sequence per attempt and records every
// interaction with the transport.
type scriptStream struct {
	replies  [][]byte // one entry consumed per Write
	pending  []byte
	writes   [][]byte
	acquires int
	releases int
	closed   bool
}

func (s *scriptStream) Acquire() error {
	s.acquires++
	return nil
}

func (s *scriptStream) Release() error {
	s.releases++
	return nil
}

func (s *scriptStream) Write(p []byte) error {
	frame := make([]byte, len(p))
	copy(frame, p)
	s.writes = append(s.writes, frame)
	if len(s.replies) > 0 {
		s.pending = s.replies[0]
		s.replies = s.replies[1:]
	} else {
		s.pending = nil
	}
	return nil
}

func (s *scriptStream) ReadN(n int) ([]byte, error) {
	if n > len(s.pending) {
		n = len(s.pending)
	}
	out := s.pending[:n]
	s.pending = s.pending[n:]
	return out, nil
}

func (s *scriptStream) ReadUntil(delim byte) ([]byte, error) {
	for i, b := range s.pending {
		if b == delim {
			out := s.pending[:i+1]
			s.pending = s.pending[i+1:]
			return out, nil
		}
	}
	out := s.pending
	s.pending = nil
	return out, nil
}

func (s *scriptStream) Close() error {
	s.closed = true
	return nil
}

func newTestTransport(s *scriptStream, retries int) *transport {
	return newTransport(s, retries, true, zap.NewNop())
}

func TestSendAwaitAck(t *testing.T) {
	stream := &scriptStream{replies: [][]byte{{0xFF}}}
	tr := newTestTransport(stream, 3)

	payload, err := tr.sendAwait(CmdM1Forward, []byte{0x80, 0x00, 0x20, 0xAA, 0xBB}, ackShape)
	require.NoError(t, err)
	require.Nil(t, payload)
	require.Len(t, stream.writes, 1)
	require.Equal(t, 1, stream.acquires)
	require.Equal(t, 1, stream.releases)
}

func TestSendAwaitRetriesExhausted(t *testing.T) {
	// Device never answers. Every attempt must rewrite the frame, and the
	// failure must surface as a communication failure after exactly the
	// configured number of attempts.
	stream := &scriptStream{}
	tr := newTestTransport(stream, 3)

	_, err := tr.sendAwait(CmdM1Forward, []byte{0x80, 0x00, 0x20, 0xAA, 0xBB}, ackShape)
	require.ErrorIs(t, err, ErrCommFailure)
	require.Len(t, stream.writes, 3)
	require.Equal(t, 1, stream.acquires)
	require.Equal(t, 1, stream.releases)
}

func TestSendAwaitWrongAckBurnsAttempt(t *testing.T) {
	// A garbage ack byte on the first attempt, then the real one.
	stream := &scriptStream{replies: [][]byte{{0x00}, {0xFF}}}
	tr := newTestTransport(stream, 3)

	_, err := tr.sendAwait(CmdM1Forward, []byte{0x80, 0x00, 0x20, 0xAA, 0xBB}, ackShape)
	require.NoError(t, err)
	require.Len(t, stream.writes, 2)
}

func TestSendAwaitEEPROMAckByte(t *testing.T) {
	// EEPROM writes acknowledge with 0xAA; the blanket 0xFF is a failure.
	stream := &scriptStream{replies: [][]byte{{0xFF}, {0xAA}}}
	tr := newTestTransport(stream, 3)

	_, err := tr.sendAwait(CmdWriteEEPROM, []byte{0x80, 253, 0x00, 0x00, 0x01, 0xAA, 0xBB}, eepromShape)
	require.NoError(t, err)
	require.Len(t, stream.writes, 2)
}

func TestSendAwaitFixedReply(t *testing.T) {
	reply := appendChecksum([]byte{0x01, 0x02})
	stream := &scriptStream{replies: [][]byte{reply}}
	tr := newTestTransport(stream, 3)

	payload, err := tr.sendAwait(CmdReadBuffers, []byte{0x80, 47, 0xAA, 0xBB}, fixedShape(argU8, argU8))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, payload)
}

func TestSendAwaitBadChecksumRetried(t *testing.T) {
	good := appendChecksum([]byte{0x01, 0x02})
	bad := make([]byte, len(good))
	copy(bad, good)
	bad[len(bad)-1] ^= 0xFF

	stream := &scriptStream{replies: [][]byte{bad, good}}
	tr := newTestTransport(stream, 3)

	payload, err := tr.sendAwait(CmdReadBuffers, []byte{0x80, 47, 0xAA, 0xBB}, fixedShape(argU8, argU8))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, payload)
	require.Len(t, stream.writes, 2)
}

func TestSendAwaitShortReplyExhausts(t *testing.T) {
	// Replies one byte short of the expected width on every attempt.
	short := [][]byte{{0x01}, {0x01}, {0x01}}
	stream := &scriptStream{replies: short}
	tr := newTestTransport(stream, 3)

	_, err := tr.sendAwait(CmdReadBuffers, []byte{0x80, 47, 0xAA, 0xBB}, fixedShape(argU8, argU8))
	require.ErrorIs(t, err, ErrCommFailure)
	require.Len(t, stream.writes, 3)
}

func TestSendAwaitTextReply(t *testing.T) {
	body := append([]byte("RoboClaw 10.2A v4.1.11\n"), 0)
	stream := &scriptStream{replies: [][]byte{appendChecksum(body)}}
	tr := newTestTransport(stream, 3)

	payload, err := tr.sendAwait(CmdReadVersion, []byte{0x80, 21, 0xAA, 0xBB}, textShape)
	require.NoError(t, err)
	require.Equal(t, body, payload)
	require.Equal(t, "RoboClaw 10.2A v4.1.11", decodeVersion(payload))
}

func TestSendAwaitTextReplyBadChecksum(t *testing.T) {
	body := append([]byte("RoboClaw 10.2A v4.1.11\n"), 0)
	frame := appendChecksum(body)
	frame[len(frame)-1] ^= 0x01
	stream := &scriptStream{replies: [][]byte{frame, frame, frame}}
	tr := newTestTransport(stream, 3)

	_, err := tr.sendAwait(CmdReadVersion, []byte{0x80, 21, 0xAA, 0xBB}, textShape)
	require.ErrorIs(t, err, ErrCommFailure)
	require.Len(t, stream.writes, 3)
}

func TestSendAwaitSimpleSerialFixedReply(t *testing.T) {
	// No checksum suffix on replies in simple serial mode.
	stream := &scriptStream{replies: [][]byte{{0x01, 0x02}}}
	tr := newTransport(stream, 3, false, zap.NewNop())

	payload, err := tr.sendAwait(CmdReadBuffers, []byte{47}, fixedShape(argU8, argU8))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, payload)
}
