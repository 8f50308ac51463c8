package roboclaw

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderReadAndSet(t *testing.T) {
	dev := newFakeDevice(0x80)
	dev.enc1 = 4294967200 // near the wrap point
	dev.enc1St = EncoderBackward
	ctl := newTestController(t, dev)

	count, status, err := ctl.ReadEncoderM1()
	require.NoError(t, err)
	require.Equal(t, uint32(4294967200), count)
	require.Equal(t, EncoderBackward, status)

	require.NoError(t, ctl.SetEncoderM2(120000))
	count, _, err = ctl.ReadEncoderM2()
	require.NoError(t, err)
	require.Equal(t, uint32(120000), count)
}

func TestResetEncoders(t *testing.T) {
	dev := newFakeDevice(0x80)
	dev.enc1, dev.enc2 = 500, 900
	ctl := newTestController(t, dev)

	require.NoError(t, ctl.ResetEncoders())
	c1, _, err := ctl.ReadEncoderM1()
	require.NoError(t, err)
	c2, _, err := ctl.ReadEncoderM2()
	require.NoError(t, err)
	require.Zero(t, c1)
	require.Zero(t, c2)
}

func TestBatteryVoltages(t *testing.T) {
	dev := newFakeDevice(0x80)
	dev.mainMV = 243 // 24.3V in tenths
	dev.logicMV = 49
	ctl := newTestController(t, dev)

	main, err := ctl.ReadMainBatteryVoltage()
	require.NoError(t, err)
	require.InDelta(t, 24.3, main, 1e-9)

	logic, err := ctl.ReadLogicBatteryVoltage()
	require.NoError(t, err)
	require.InDelta(t, 4.9, logic, 1e-9)
}

func TestReadTemp(t *testing.T) {
	dev := newFakeDevice(0x80)
	dev.tempC = 315
	ctl := newTestController(t, dev)

	temp, err := ctl.ReadTemp()
	require.NoError(t, err)
	require.InDelta(t, 31.5, temp, 1e-9)
}
