// pkg/roboclaw/telemetry.go
package roboclaw

// Encoder status bits returned alongside counter reads.
const (
	EncoderUnderflow uint8 = 0x01 // counter underflowed, cleared on read
	EncoderBackward  uint8 = 0x02 // direction bit, 1 = backward
	EncoderOverflow  uint8 = 0x04 // counter overflowed, cleared on read
)

// Unit status bits returned by ReadStatus.
const (
	StatusNormal           uint8 = 0x00
	StatusM1OverCurrent    uint8 = 0x01
	StatusM2OverCurrent    uint8 = 0x02
	StatusEStop            uint8 = 0x04
	StatusTempError        uint8 = 0x08
	StatusTemp2Error       uint8 = 0x10
	StatusMainBattHighErr  uint8 = 0x20
	StatusLogicBattHighErr uint8 = 0x40
	StatusLogicBattLowErr  uint8 = 0x80
)

// VersionUnknown is returned when the firmware version could not be read.
const VersionUnknown = "Unknown. Read command failed"

// ReadVersion queries the firmware identification string, e.g.
// "USB Roboclaw 2x7a v4.1.34". On failure it returns VersionUnknown along
// with the communication error, so pollers always have a printable value.
func (c *Controller) ReadVersion() (string, error) {
	frame, err := encodeFrame(c.address, CmdReadVersion, c.packet)
	if err != nil {
		return VersionUnknown, err
	}
	payload, err := c.transport.sendAwait(CmdReadVersion, frame, textShape)
	if err != nil {
		return VersionUnknown, err
	}
	return decodeVersion(payload), nil
}

// ReadEncoderM1 reads the motor 1 encoder counter and its status byte.
// Quadrature counters wrap in [0, 4294967295]; absolute encoders map the
// 0-5.1V input to [0, 4095].
func (c *Controller) ReadEncoderM1() (count uint32, status uint8, err error) {
	fields, err := c.query(CmdReadEncM1)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ReadEncoderM2 reads the motor 2 encoder counter and its status byte.
func (c *Controller) ReadEncoderM2() (count uint32, status uint8, err error) {
	fields, err := c.query(CmdReadEncM2)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ReadSpeedM1 reads the filtered motor 1 speed in pulses per second; the
// status byte is the direction (0 forward, 1 backward).
func (c *Controller) ReadSpeedM1() (speed uint32, direction uint8, err error) {
	fields, err := c.query(CmdReadSpeedM1)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ReadSpeedM2 reads the filtered motor 2 speed in pulses per second.
func (c *Controller) ReadSpeedM2() (speed uint32, direction uint8, err error) {
	fields, err := c.query(CmdReadSpeedM2)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ReadRawSpeedM1 reads the unfiltered motor 1 pulse count from the last
// 1/300th second window, scaled to counts per second.
func (c *Controller) ReadRawSpeedM1() (speed uint32, direction uint8, err error) {
	fields, err := c.query(CmdReadRawSpeedM1)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ReadRawSpeedM2 reads the unfiltered motor 2 speed window.
func (c *Controller) ReadRawSpeedM2() (speed uint32, direction uint8, err error) {
	fields, err := c.query(CmdReadRawSpeedM2)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint8(fields[1]), nil
}

// ResetEncoders zeroes both quadrature counters.
func (c *Controller) ResetEncoders() error {
	return c.exec(CmdResetEncoders)
}

// SetEncoderM1 loads the motor 1 counter register, typically for homing.
func (c *Controller) SetEncoderM1(count uint32) error {
	return c.exec(CmdSetEncM1, int64(count))
}

// SetEncoderM2 loads the motor 2 counter register.
func (c *Controller) SetEncoderM2(count uint32) error {
	return c.exec(CmdSetEncM2, int64(count))
}

// ReadMainBatteryVoltage reads the B+/B- terminal voltage in volts. The
// device reports tenths of a volt.
func (c *Controller) ReadMainBatteryVoltage() (float64, error) {
	fields, err := c.query(CmdReadMainBattery)
	if err != nil {
		return 0, err
	}
	return float64(fields[0]) / 10, nil
}

// ReadLogicBatteryVoltage reads the LB+/LB- terminal voltage in volts.
func (c *Controller) ReadLogicBatteryVoltage() (float64, error) {
	fields, err := c.query(CmdReadLogicBattery)
	if err != nil {
		return 0, err
	}
	return float64(fields[0]) / 10, nil
}

// ReadBufferLengths reads the pending command count of each motor FIFO.
// BufferEmpty (0x80) means idle/finished, BufferExecuting (0) means the last
// command sent is running, 1-0x3F is the queued count.
func (c *Controller) ReadBufferLengths() (m1, m2 uint8, err error) {
	fields, err := c.query(CmdReadBuffers)
	if err != nil {
		return 0, 0, err
	}
	return uint8(fields[0]), uint8(fields[1]), nil
}

// ReadPWMs reads the live PWM output per channel, ±32767 = ±100% duty.
func (c *Controller) ReadPWMs() (m1, m2 int16, err error) {
	fields, err := c.query(CmdReadPWMs)
	if err != nil {
		return 0, 0, err
	}
	return int16(fields[0]), int16(fields[1]), nil
}

// ReadCurrents reads the motor current draw in 10mA units.
func (c *Controller) ReadCurrents() (m1, m2 int16, err error) {
	fields, err := c.query(CmdReadCurrents)
	if err != nil {
		return 0, 0, err
	}
	return int16(fields[0]), int16(fields[1]), nil
}

// ReadTemp reads the board temperature in degrees C. The device reports
// tenths of a degree.
func (c *Controller) ReadTemp() (float64, error) {
	fields, err := c.query(CmdReadTemp)
	if err != nil {
		return 0, err
	}
	return float64(fields[0]) / 10, nil
}

// ReadTemp2 reads the second sensor on units that have one.
func (c *Controller) ReadTemp2() (float64, error) {
	fields, err := c.query(CmdReadTemp2)
	if err != nil {
		return 0, err
	}
	return float64(fields[0]) / 10, nil
}

// ReadStatus reads the unit status bits, 0 = normal.
func (c *Controller) ReadStatus() (uint8, error) {
	fields, err := c.query(CmdReadStatus)
	if err != nil {
		return 0, err
	}
	return uint8(fields[0]), nil
}
