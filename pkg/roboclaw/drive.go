// pkg/roboclaw/drive.go
package roboclaw

// Open-loop drive commands. The compatibility commands (0-13) take a 7-bit
// magnitude: 0 = stop (or full reverse for the bidirectional variants, with
// 64 = stop) and 127 = full speed. Duty commands take a signed duty where
// ±32767 is ±100%.

// ForwardM1 drives motor 1 forward, 0-127.
func (c *Controller) ForwardM1(val uint8) error {
	return c.exec(CmdM1Forward, int64(val))
}

// BackwardM1 drives motor 1 backward, 0-127.
func (c *Controller) BackwardM1(val uint8) error {
	return c.exec(CmdM1Backward, int64(val))
}

// ForwardM2 drives motor 2 forward, 0-127.
func (c *Controller) ForwardM2(val uint8) error {
	return c.exec(CmdM2Forward, int64(val))
}

// BackwardM2 drives motor 2 backward, 0-127.
func (c *Controller) BackwardM2(val uint8) error {
	return c.exec(CmdM2Backward, int64(val))
}

// ForwardBackwardM1 drives motor 1 bidirectionally: 0 = full reverse,
// 64 = stop, 127 = full forward.
func (c *Controller) ForwardBackwardM1(val uint8) error {
	return c.exec(CmdM1Drive7Bit, int64(val))
}

// ForwardBackwardM2 drives motor 2 bidirectionally: 0 = full reverse,
// 64 = stop, 127 = full forward.
func (c *Controller) ForwardBackwardM2(val uint8) error {
	return c.exec(CmdM2Drive7Bit, int64(val))
}

// ForwardMixed drives both motors forward in mix mode.
func (c *Controller) ForwardMixed(val uint8) error {
	return c.exec(CmdMixedForward, int64(val))
}

// BackwardMixed drives both motors backward in mix mode.
func (c *Controller) BackwardMixed(val uint8) error {
	return c.exec(CmdMixedBackward, int64(val))
}

// TurnRightMixed turns right in mix mode.
func (c *Controller) TurnRightMixed(val uint8) error {
	return c.exec(CmdMixedTurnRight, int64(val))
}

// TurnLeftMixed turns left in mix mode.
func (c *Controller) TurnLeftMixed(val uint8) error {
	return c.exec(CmdMixedTurnLeft, int64(val))
}

// ForwardBackwardMixed drives bidirectionally in mix mode: 0 = full
// backward, 64 = stop, 127 = full forward.
func (c *Controller) ForwardBackwardMixed(val uint8) error {
	return c.exec(CmdMixedDrive7Bit, int64(val))
}

// LeftRightMixed turns bidirectionally in mix mode: 0 = full left,
// 64 = stop, 127 = full right.
func (c *Controller) LeftRightMixed(val uint8) error {
	return c.exec(CmdMixedTurn7Bit, int64(val))
}

// DutyM1 drives motor 1 by duty cycle, no encoder required.
func (c *Controller) DutyM1(duty int16) error {
	return c.exec(CmdM1Duty, int64(duty))
}

// DutyM2 drives motor 2 by duty cycle.
func (c *Controller) DutyM2(duty int16) error {
	return c.exec(CmdM2Duty, int64(duty))
}

// DutyM1M2 drives both motors by duty cycle in one frame.
func (c *Controller) DutyM1M2(duty1, duty2 int16) error {
	return c.exec(CmdMixedDuty, int64(duty1), int64(duty2))
}

// DutyAccelM1 drives motor 1 by duty with a ramp; accel is the duty change
// per second, up to 655359.
func (c *Controller) DutyAccelM1(accel uint32, duty int16) error {
	return c.exec(CmdM1DutyAccel, int64(duty), int64(accel))
}

// DutyAccelM2 drives motor 2 by duty with a ramp.
func (c *Controller) DutyAccelM2(accel uint32, duty int16) error {
	return c.exec(CmdM2DutyAccel, int64(duty), int64(accel))
}

// DutyAccelM1M2 drives both motors by duty with per-motor ramps.
func (c *Controller) DutyAccelM1M2(accel1 uint32, duty1 int16, accel2 uint32, duty2 int16) error {
	return c.exec(CmdMixedDutyAccel, int64(duty1), int64(accel1), int64(duty2), int64(accel2))
}
