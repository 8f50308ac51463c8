// cmd/roboclawctl/main_test.go
package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/UChicago-Robotics/roboclaw/internal/config"
	"github.com/UChicago-Robotics/roboclaw/pkg/roboclaw"
)

// ackStream acknowledges every frame and records what was written.
type ackStream struct {
	writes [][]byte
	ack    []byte
}

func (s *ackStream) Acquire() error { return nil }
func (s *ackStream) Release() error { return nil }
func (s *ackStream) Close() error   { return nil }

func (s *ackStream) Write(p []byte) error {
	frame := make([]byte, len(p))
	copy(frame, p)
	s.writes = append(s.writes, frame)
	s.ack = []byte{0xFF}
	return nil
}

func (s *ackStream) ReadN(n int) ([]byte, error) {
	if n > len(s.ack) {
		n = len(s.ack)
	}
	out := s.ack[:n]
	s.ack = s.ack[n:]
	return out, nil
}

func (s *ackStream) ReadUntil(delim byte) ([]byte, error) { return nil, nil }

func TestControllerOptionsPacketSerial(t *testing.T) {
	stream := &ackStream{}
	cfg := &config.ControllerConfig{Address: 0x80, Retries: 3, PacketSerial: true}

	ctl, err := roboclaw.New(stream, controllerOptions(cfg, zap.NewNop())...)
	require.NoError(t, err)
	require.NoError(t, ctl.ForwardM1(32))

	// Packet-serial frames carry the address byte and a checksum suffix.
	require.Len(t, stream.writes, 1)
	frame := stream.writes[0]
	require.Len(t, frame, 5)
	require.Equal(t, byte(0x80), frame[0])
}

func TestControllerOptionsSimpleSerial(t *testing.T) {
	stream := &ackStream{}
	cfg := &config.ControllerConfig{Address: 0x80, Retries: 3, PacketSerial: false}

	ctl, err := roboclaw.New(stream, controllerOptions(cfg, zap.NewNop())...)
	require.NoError(t, err)
	require.NoError(t, ctl.ForwardM1(32))

	// Simple serial drops both the address byte and the checksum.
	require.Len(t, stream.writes, 1)
	require.Equal(t, []byte{0x00, 0x20}, stream.writes[0])
}
