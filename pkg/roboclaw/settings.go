// pkg/roboclaw/settings.go
package roboclaw

// Config register bit masks for SetConfig/ReadConfig.
const (
	ConfigRCMode           uint16 = 0x0000
	ConfigAnalogMode       uint16 = 0x0001
	ConfigSimpleSerialMode uint16 = 0x0002
	ConfigPacketSerialMode uint16 = 0x0003
	ConfigBatteryAuto      uint16 = 0x0004
	ConfigMixing           uint16 = 0x0020
	ConfigExponential      uint16 = 0x0040
	ConfigMCU              uint16 = 0x0080
	ConfigFlipSwitch       uint16 = 0x0100
	ConfigSlaveMode        uint16 = 0x0800
	ConfigRelayMode        uint16 = 0x1000
	ConfigSwapEncoders     uint16 = 0x2000
	ConfigSwapButtons      uint16 = 0x4000
	ConfigMultiUnitMode    uint16 = 0x8000
)

// PWM drive modes for SetPWMMode.
const (
	PWMLockedAntiphase uint8 = 0
	PWMSignMagnitude   uint8 = 1
)

// Compatibility voltage cutoffs (commands 2, 3, 26, 27). The device accepts
// 6-34V; the packed byte is round(v/5+6) for minimums and round(v/5.12) for
// maximums, matching the driver the firmware was qualified against.

// SetMinVoltageMainBattery sets the main battery cutoff below which the
// motors stop, volts in [6, 34].
func (c *Controller) SetMinVoltageMainBattery(volts float64) error {
	v, err := scaled(CmdSetMinMainVolt, "volts", volts, 6, 34, packMinVolts)
	if err != nil {
		return err
	}
	return c.exec(CmdSetMinMainVolt, v)
}

// SetMaxVoltageMainBattery sets the main battery ceiling; above it the unit
// hard-brakes until the voltage drops. Volts in [6, 34].
func (c *Controller) SetMaxVoltageMainBattery(volts float64) error {
	v, err := scaled(CmdSetMaxMainVolt, "volts", volts, 6, 34, packMaxVolts)
	if err != nil {
		return err
	}
	return c.exec(CmdSetMaxMainVolt, v)
}

// SetMinVoltageLogicBattery sets the logic battery cutoff, volts in [6, 34].
// Prefer SetLogicVoltages on current firmware.
func (c *Controller) SetMinVoltageLogicBattery(volts float64) error {
	v, err := scaled(CmdSetMinLogicVolt, "volts", volts, 6, 34, packMinVolts)
	if err != nil {
		return err
	}
	return c.exec(CmdSetMinLogicVolt, v)
}

// SetMaxVoltageLogicBattery sets the logic battery ceiling, volts in [6, 34].
// Prefer SetLogicVoltages on current firmware.
func (c *Controller) SetMaxVoltageLogicBattery(volts float64) error {
	v, err := scaled(CmdSetMaxLogicVolt, "volts", volts, 6, 34, packMaxVolts)
	if err != nil {
		return err
	}
	return c.exec(CmdSetMaxLogicVolt, v)
}

func packMinVolts(v float64) float64 { return v/5 + 6 }
func packMaxVolts(v float64) float64 { return v / 5.12 }

// Exact inverses of the packed compat bytes, for callers interpreting raw
// register dumps.
func unpackMinVolts(b uint8) float64 { return (float64(b) - 6) * 5 }
func unpackMaxVolts(b uint8) float64 { return float64(b) * 5.12 }

// SetMainVoltages sets both main battery cutoffs in one frame; the wire
// carries tenths of a volt.
func (c *Controller) SetMainVoltages(min, max float64) error {
	lo, err := scaled(CmdSetMainVoltages, "min", min, 0, 6553.5, packTenths)
	if err != nil {
		return err
	}
	hi, err := scaled(CmdSetMainVoltages, "max", max, 0, 6553.5, packTenths)
	if err != nil {
		return err
	}
	return c.exec(CmdSetMainVoltages, lo, hi)
}

// SetLogicVoltages sets both logic battery cutoffs in one frame.
func (c *Controller) SetLogicVoltages(min, max float64) error {
	lo, err := scaled(CmdSetLogicVoltages, "min", min, 0, 6553.5, packTenths)
	if err != nil {
		return err
	}
	hi, err := scaled(CmdSetLogicVoltages, "max", max, 0, 6553.5, packTenths)
	if err != nil {
		return err
	}
	return c.exec(CmdSetLogicVoltages, lo, hi)
}

func packTenths(v float64) float64 { return v * 10 }

// ReadMinMaxMainVoltages reads back the main battery cutoffs in volts.
func (c *Controller) ReadMinMaxMainVoltages() (min, max float64, err error) {
	fields, err := c.query(CmdReadMainVoltages)
	if err != nil {
		return 0, 0, err
	}
	return float64(fields[0]) / 10, float64(fields[1]) / 10, nil
}

// ReadMinMaxLogicVoltages reads back the logic battery cutoffs in volts.
func (c *Controller) ReadMinMaxLogicVoltages() (min, max float64, err error) {
	fields, err := c.query(CmdReadLogicVoltSet)
	if err != nil {
		return 0, 0, err
	}
	return float64(fields[0]) / 10, float64(fields[1]) / 10, nil
}

// SetM1MaxCurrent sets the motor 1 current limit in 10mA units. The minimum
// slot of the register pair is always written as zero.
func (c *Controller) SetM1MaxCurrent(limit uint32) error {
	return c.exec(CmdSetM1MaxCurrent, int64(limit), 0)
}

// SetM2MaxCurrent sets the motor 2 current limit in 10mA units.
func (c *Controller) SetM2MaxCurrent(limit uint32) error {
	return c.exec(CmdSetM2MaxCurrent, int64(limit), 0)
}

// ReadM1MaxCurrent reads the motor 1 current limit pair in 10mA units;
// the minimum is always zero on current firmware.
func (c *Controller) ReadM1MaxCurrent() (max, min uint32, err error) {
	fields, err := c.query(CmdReadM1MaxCurrent)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint32(fields[1]), nil
}

// ReadM2MaxCurrent reads the motor 2 current limit pair in 10mA units.
func (c *Controller) ReadM2MaxCurrent() (max, min uint32, err error) {
	fields, err := c.query(CmdReadM2MaxCurrent)
	if err != nil {
		return 0, 0, err
	}
	return uint32(fields[0]), uint32(fields[1]), nil
}

// SetM1DefaultAccel sets the ramp used by duty commands and the RC/analog
// input modes for motor 1.
func (c *Controller) SetM1DefaultAccel(accel uint32) error {
	return c.exec(CmdSetM1DefaultAccl, int64(accel))
}

// SetM2DefaultAccel sets the default ramp for motor 2.
func (c *Controller) SetM2DefaultAccel(accel uint32) error {
	return c.exec(CmdSetM2DefaultAccl, int64(accel))
}

// SetPinFunctions assigns modes to the S3, S4 and S5 pins (e-stop flavors,
// voltage clamp, homing inputs).
func (c *Controller) SetPinFunctions(s3, s4, s5 uint8) error {
	return c.exec(CmdSetPinFunctions, int64(s3), int64(s4), int64(s5))
}

// ReadPinFunctions reads back the S3, S4 and S5 pin modes.
func (c *Controller) ReadPinFunctions() (s3, s4, s5 uint8, err error) {
	fields, err := c.query(CmdReadPinFunctions)
	if err != nil {
		return 0, 0, 0, err
	}
	return uint8(fields[0]), uint8(fields[1]), uint8(fields[2]), nil
}

// SetDeadband sets the RC/analog control deadband in tenths of a percent,
// 0-250.
func (c *Controller) SetDeadband(reverse, forward uint8) error {
	return c.exec(CmdSetDeadband, int64(reverse), int64(forward))
}

// ReadDeadband reads back the deadband settings.
func (c *Controller) ReadDeadband() (reverse, forward uint8, err error) {
	fields, err := c.query(CmdReadDeadband)
	if err != nil {
		return 0, 0, err
	}
	return uint8(fields[0]), uint8(fields[1]), nil
}

// SetM1EncoderMode selects the encoder pin mode for motor 1.
func (c *Controller) SetM1EncoderMode(mode uint8) error {
	return c.exec(CmdSetM1EncoderMode, int64(mode))
}

// SetM2EncoderMode selects the encoder pin mode for motor 2.
func (c *Controller) SetM2EncoderMode(mode uint8) error {
	return c.exec(CmdSetM2EncoderMode, int64(mode))
}

// ReadEncoderModes reads both encoder pin assignments.
func (c *Controller) ReadEncoderModes() (m1, m2 uint8, err error) {
	fields, err := c.query(CmdReadEncoderModes)
	if err != nil {
		return 0, 0, err
	}
	return uint8(fields[0]), uint8(fields[1]), nil
}

// SetConfig writes the standard-settings config register. Changing the
// control mode or baud bits over TTL serial drops the link.
func (c *Controller) SetConfig(config uint16) error {
	return c.exec(CmdSetConfig, int64(config))
}

// ReadConfig reads the config register.
func (c *Controller) ReadConfig() (uint16, error) {
	fields, err := c.query(CmdReadConfig)
	if err != nil {
		return 0, err
	}
	return uint16(fields[0]), nil
}

// SetPWMMode selects locked-antiphase or sign-magnitude drive.
func (c *Controller) SetPWMMode(mode uint8) error {
	return c.exec(CmdSetPWMMode, int64(mode))
}

// ReadPWMMode reads the PWM drive mode.
func (c *Controller) ReadPWMMode() (uint8, error) {
	fields, err := c.query(CmdReadPWMMode)
	if err != nil {
		return 0, err
	}
	return uint8(fields[0]), nil
}

// RestoreDefaults resets all settings to factory values. Over TTL serial
// the baud rate may change and the link will drop.
func (c *Controller) RestoreDefaults() error {
	return c.exec(CmdRestoreDefaults)
}

// WriteNVM commits the working settings to non-volatile memory. The fixed
// magic payload is the firmware's guard against accidental writes.
func (c *Controller) WriteNVM() error {
	return c.exec(CmdWriteNVM, int64(nvmMagic))
}

// ReadNVM reloads settings from non-volatile memory. If the stored baud or
// control mode differs, the link drops.
func (c *Controller) ReadNVM() (m1Mode, m2Mode uint8, err error) {
	fields, err := c.query(CmdReadNVM)
	if err != nil {
		return 0, 0, err
	}
	return uint8(fields[0]), uint8(fields[1]), nil
}
