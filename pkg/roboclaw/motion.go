// pkg/roboclaw/motion.go
package roboclaw

// Closed-loop velocity and buffered motion commands. Speeds are signed QPPS
// (quadrature pulses per second); accelerations and distances are unsigned.
//
// Each motor channel has its own command FIFO, at most 64 deep on the
// device. The buffer argument is forwarded as-is: BufferQueue appends the
// command behind whatever is in flight on that channel, BufferPreempt stops
// the running command, drops the queue and starts this one immediately.
// Queue depth is enforced by the device, not locally.
const (
	BufferQueue   uint8 = 0
	BufferPreempt uint8 = 1
)

// SpeedM1 drives motor 1 at a signed QPPS rate.
func (c *Controller) SpeedM1(speed int32) error {
	return c.exec(CmdM1Speed, int64(speed))
}

// SpeedM2 drives motor 2 at a signed QPPS rate.
func (c *Controller) SpeedM2(speed int32) error {
	return c.exec(CmdM2Speed, int64(speed))
}

// SpeedM1M2 drives both motors at signed QPPS rates in one frame.
func (c *Controller) SpeedM1M2(speed1, speed2 int32) error {
	return c.exec(CmdMixedSpeed, int64(speed1), int64(speed2))
}

// SpeedAccelM1 drives motor 1 at speed, ramping at accel QPPS per second.
func (c *Controller) SpeedAccelM1(accel uint32, speed int32) error {
	return c.exec(CmdM1SpeedAccel, int64(accel), int64(speed))
}

// SpeedAccelM2 drives motor 2 at speed, ramping at accel QPPS per second.
func (c *Controller) SpeedAccelM2(accel uint32, speed int32) error {
	return c.exec(CmdM2SpeedAccel, int64(accel), int64(speed))
}

// SpeedAccelM1M2 drives both motors with one shared acceleration.
func (c *Controller) SpeedAccelM1M2(accel uint32, speed1, speed2 int32) error {
	return c.exec(CmdMixedSpeedAccel, int64(accel), int64(speed1), int64(speed2))
}

// SpeedAccelEachM1M2 drives both motors with independent accelerations.
func (c *Controller) SpeedAccelEachM1M2(accel1 uint32, speed1 int32, accel2 uint32, speed2 int32) error {
	return c.exec(CmdMixedSpeed2Accel, int64(accel1), int64(speed1), int64(accel2), int64(speed2))
}

// SpeedDistanceM1 runs motor 1 at speed for distance pulses, then stops.
// Buffered per the buffer flag.
func (c *Controller) SpeedDistanceM1(speed int32, distance uint32, buffer uint8) error {
	return c.exec(CmdM1SpeedDist, int64(speed), int64(distance), int64(buffer))
}

// SpeedDistanceM2 runs motor 2 at speed for distance pulses, then stops.
func (c *Controller) SpeedDistanceM2(speed int32, distance uint32, buffer uint8) error {
	return c.exec(CmdM2SpeedDist, int64(speed), int64(distance), int64(buffer))
}

// SpeedDistanceM1M2 runs both motors for per-motor distances in one frame.
func (c *Controller) SpeedDistanceM1M2(speed1 int32, distance1 uint32, speed2 int32, distance2 uint32, buffer uint8) error {
	return c.exec(CmdMixedSpeedDist,
		int64(speed1), int64(distance1), int64(speed2), int64(distance2), int64(buffer))
}

// SpeedAccelDistanceM1 runs motor 1 at speed for distance pulses with a
// ramp-in at accel.
func (c *Controller) SpeedAccelDistanceM1(accel uint32, speed int32, distance uint32, buffer uint8) error {
	return c.exec(CmdM1SpeedAccelDist, int64(accel), int64(speed), int64(distance), int64(buffer))
}

// SpeedAccelDistanceM2 runs motor 2 at speed for distance pulses with a
// ramp-in at accel.
func (c *Controller) SpeedAccelDistanceM2(accel uint32, speed int32, distance uint32, buffer uint8) error {
	return c.exec(CmdM2SpeedAccelDist, int64(accel), int64(speed), int64(distance), int64(buffer))
}

// SpeedAccelDistanceM1M2 runs both motors with one shared acceleration and
// per-motor speed and distance.
func (c *Controller) SpeedAccelDistanceM1M2(accel uint32, speed1 int32, distance1 uint32, speed2 int32, distance2 uint32, buffer uint8) error {
	return c.exec(CmdMixedSpAccelDist,
		int64(accel), int64(speed1), int64(distance1), int64(speed2), int64(distance2), int64(buffer))
}

// SpeedAccelDistanceEachM1M2 runs both motors with fully independent
// acceleration, speed and distance.
func (c *Controller) SpeedAccelDistanceEachM1M2(accel1 uint32, speed1 int32, distance1 uint32, accel2 uint32, speed2 int32, distance2 uint32, buffer uint8) error {
	return c.exec(CmdMixedSp2AclDist,
		int64(accel1), int64(speed1), int64(distance1),
		int64(accel2), int64(speed2), int64(distance2), int64(buffer))
}

// SpeedAccelDeccelPositionM1 moves motor 1 to an absolute encoder position
// and holds it, accelerating at accel, cruising at speed and decelerating
// at deccel. Position PID constants must be configured first.
func (c *Controller) SpeedAccelDeccelPositionM1(accel, speed, deccel, position uint32, buffer uint8) error {
	return c.exec(CmdM1SpAclDclPos,
		int64(accel), int64(speed), int64(deccel), int64(position), int64(buffer))
}

// SpeedAccelDeccelPositionM2 moves motor 2 to an absolute encoder position
// and holds it.
func (c *Controller) SpeedAccelDeccelPositionM2(accel, speed, deccel, position uint32, buffer uint8) error {
	return c.exec(CmdM2SpAclDclPos,
		int64(accel), int64(speed), int64(deccel), int64(position), int64(buffer))
}

// SpeedAccelDeccelPositionM1M2 moves both motors to absolute positions with
// independent motion profiles.
func (c *Controller) SpeedAccelDeccelPositionM1M2(accel1, speed1, deccel1, position1, accel2, speed2, deccel2, position2 uint32, buffer uint8) error {
	return c.exec(CmdMixedSpAclDclPos,
		int64(accel1), int64(speed1), int64(deccel1), int64(position1),
		int64(accel2), int64(speed2), int64(deccel2), int64(position2), int64(buffer))
}
