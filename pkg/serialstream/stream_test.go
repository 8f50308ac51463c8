package serialstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRequiresPort(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)
}

func TestNewAppliesDefaults(t *testing.T) {
	s, err := New(Config{Port: "/dev/ttyACM0"}, nil)
	require.NoError(t, err)
	require.Equal(t, 38400, s.config.BaudRate)
	require.Equal(t, 8, s.config.DataBits)
	require.Equal(t, 1, s.config.StopBits)
	require.Equal(t, 100*time.Millisecond, s.config.ReadTimeout)
}

func TestNewKeepsExplicitConfig(t *testing.T) {
	s, err := New(Config{
		Port:        "/dev/ttyUSB0",
		BaudRate:    115200,
		DataBits:    7,
		StopBits:    2,
		Parity:      "even",
		ReadTimeout: time.Second,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 115200, s.config.BaudRate)
	require.Equal(t, 7, s.config.DataBits)
	require.Equal(t, 2, s.config.StopBits)
	require.Equal(t, time.Second, s.config.ReadTimeout)
}

func TestOperationsRequireOpenPort(t *testing.T) {
	s, err := New(Config{Port: "/dev/ttyACM0"}, nil)
	require.NoError(t, err)

	require.Error(t, s.Write([]byte{0x80}))
	_, err = s.ReadN(1)
	require.Error(t, err)
	_, err = s.ReadUntil('\n')
	require.Error(t, err)

	// Closing a never-opened stream is a no-op.
	require.NoError(t, s.Close())
}
