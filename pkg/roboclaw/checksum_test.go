package roboclaw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksumKnownVector(t *testing.T) {
	// CRC-16/XMODEM check value for the standard nine-digit input.
	require.Equal(t, uint16(0x31C3), Checksum([]byte("123456789")))
}

func TestChecksumEmpty(t *testing.T) {
	require.Equal(t, uint16(0), Checksum(nil))
}

func TestValidateChecksumRoundTrip(t *testing.T) {
	frame := appendChecksum([]byte{0x80, 0x00, 0x20})
	require.Len(t, frame, 5)

	payload, ok := ValidateChecksum(frame)
	require.True(t, ok)
	require.Equal(t, []byte{0x80, 0x00, 0x20}, payload)
}

func TestValidateChecksumDetectsCorruption(t *testing.T) {
	frame := appendChecksum([]byte{0x80, 0x15, 0x01, 0x02, 0x03})
	for i := range frame {
		corrupt := make([]byte, len(frame))
		copy(corrupt, frame)
		corrupt[i] ^= 0x01

		_, ok := ValidateChecksum(corrupt)
		require.False(t, ok, "flipped bit in byte %d went undetected", i)
	}
}

func TestValidateChecksumTooShort(t *testing.T) {
	_, ok := ValidateChecksum([]byte{0x31})
	require.False(t, ok)
	_, ok = ValidateChecksum(nil)
	require.False(t, ok)
}
