package roboclaw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFramePacketSerial(t *testing.T) {
	frame, err := encodeFrame(0x80, CmdM1Forward, true, 32)
	require.NoError(t, err)

	sum := Checksum([]byte{0x80, 0x00, 0x20})
	require.Equal(t, []byte{0x80, 0x00, 0x20, byte(sum >> 8), byte(sum)}, frame)
}

func TestEncodeFrameSimpleSerial(t *testing.T) {
	// Simple serial drops both the address byte and the checksum suffix.
	frame, err := encodeFrame(0x80, CmdM1Forward, false, 32)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x20}, frame)
}

func TestEncodeFrameArgWidths(t *testing.T) {
	// A mixed-width schema: per-motor u32 accels, s32 speeds, u32 distances
	// and a trailing u8 buffer flag.
	frame, err := encodeFrame(0x81, CmdMixedSp2AclDist, true,
		500, -1, 2, 0x01020304, 5, 0x05060708, 1)
	require.NoError(t, err)

	want := []byte{
		0x81, 51,
		0x00, 0x00, 0x01, 0xF4, // accel
		0xFF, 0xFF, 0xFF, 0xFF, // speed1 = -1
		0x00, 0x00, 0x00, 0x02, // distance1
		0x01, 0x02, 0x03, 0x04,
		0x00, 0x00, 0x00, 0x05,
		0x05, 0x06, 0x07, 0x08,
		0x01,
	}
	require.Equal(t, want, frame[:len(frame)-2])

	payload, ok := ValidateChecksum(frame)
	require.True(t, ok)
	require.Equal(t, want, payload)
}

func TestEncodeFrameRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		cmd  Cmd
		vals []int64
	}{
		{"u8 too large", CmdM1Forward, []int64{128}},
		{"u8 negative", CmdM1Forward, []int64{-1}},
		{"s16 too large", CmdM1Duty, []int64{40000}},
		{"s16 too small", CmdM1Duty, []int64{-40000}},
		{"s32 below range", CmdM1Speed, []int64{-(1 << 40)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeFrame(0x80, tc.cmd, true, tc.vals...)
			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
		})
	}
}

func TestEncodeFrameArgCount(t *testing.T) {
	_, err := encodeFrame(0x80, CmdM1Forward, true)
	require.Error(t, err)
	_, err = encodeFrame(0x80, CmdM1Forward, true, 1, 2)
	require.Error(t, err)
}

func TestDecodeFieldsSignedness(t *testing.T) {
	fields, err := decodeFields(
		[]byte{0xFF, 0xFF, 0xFF, 0xFE, 0xFF, 0xFF, 0xFF, 0xFD},
		[]argKind{argU8, argS8, argS16, argS32},
	)
	require.NoError(t, err)
	require.Equal(t, []int64{255, -1, -2, -3}, fields)
}

func TestDecodeFieldsWidthMismatch(t *testing.T) {
	_, err := decodeFields([]byte{0x01, 0x02}, []argKind{argU32})
	require.Error(t, err)
}

func TestDecodeVersion(t *testing.T) {
	require.Equal(t, "USB Roboclaw 2x7a v4.1.34",
		decodeVersion([]byte("USB Roboclaw 2x7a v4.1.34\n\x00")))
	require.Equal(t, "", decodeVersion([]byte{'\n', 0}))
	require.Equal(t, "", decodeVersion(nil))
}
