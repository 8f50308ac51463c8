// pkg/roboclaw/pid.go
package roboclaw

// Fixed-point scale factors used by the PID registers.
const (
	velPIDScale = 65536.0
	posPIDScale = 1024.0
)

// VelocityPID holds the velocity loop constants. P, I and D travel as
// fixed-point x65536 on the wire; QPPS is the encoder rate at 100% power.
type VelocityPID struct {
	P, I, D float64
	QPPS    uint32
}

// PositionPID holds the seven position loop constants. P, I and D travel as
// fixed-point x1024; the rest are raw counts.
type PositionPID struct {
	P, I, D  float64
	MaxI     uint32
	Deadzone uint32
	MinPos   uint32
	MaxPos   uint32
}

func velTerm(cmd Cmd, field string, v float64) (int64, error) {
	return scaled(cmd, field, v, 0, 0xFFFFFFFF/velPIDScale, func(x float64) float64 {
		return x * velPIDScale
	})
}

func posTerm(cmd Cmd, field string, v float64) (int64, error) {
	return scaled(cmd, field, v, 0, 0xFFFFFFFF/posPIDScale, func(x float64) float64 {
		return x * posPIDScale
	})
}

func (c *Controller) setVelocityPID(cmd Cmd, pid VelocityPID) error {
	// Wire order is D, P, I, QPPS.
	d, err := velTerm(cmd, "D", pid.D)
	if err != nil {
		return err
	}
	p, err := velTerm(cmd, "P", pid.P)
	if err != nil {
		return err
	}
	i, err := velTerm(cmd, "I", pid.I)
	if err != nil {
		return err
	}
	return c.exec(cmd, d, p, i, int64(pid.QPPS))
}

// SetM1VelocityPID writes the motor 1 velocity loop constants.
func (c *Controller) SetM1VelocityPID(pid VelocityPID) error {
	return c.setVelocityPID(CmdSetM1VelPID, pid)
}

// SetM2VelocityPID writes the motor 2 velocity loop constants.
func (c *Controller) SetM2VelocityPID(pid VelocityPID) error {
	return c.setVelocityPID(CmdSetM2VelPID, pid)
}

func (c *Controller) readVelocityPID(cmd Cmd) (VelocityPID, error) {
	// Read-back order is P, I, D, QPPS, each PID term at the same x65536
	// scale the setter packs.
	fields, err := c.query(cmd)
	if err != nil {
		return VelocityPID{}, err
	}
	return VelocityPID{
		P:    float64(fields[0]) / velPIDScale,
		I:    float64(fields[1]) / velPIDScale,
		D:    float64(fields[2]) / velPIDScale,
		QPPS: uint32(fields[3]),
	}, nil
}

// ReadM1VelocityPID reads back the motor 1 velocity loop constants.
func (c *Controller) ReadM1VelocityPID() (VelocityPID, error) {
	return c.readVelocityPID(CmdReadM1VelPID)
}

// ReadM2VelocityPID reads back the motor 2 velocity loop constants.
func (c *Controller) ReadM2VelocityPID() (VelocityPID, error) {
	return c.readVelocityPID(CmdReadM2VelPID)
}

func (c *Controller) setPositionPID(cmd Cmd, pid PositionPID) error {
	// Wire order is D, P, I, MaxI, Deadzone, MinPos, MaxPos.
	d, err := posTerm(cmd, "D", pid.D)
	if err != nil {
		return err
	}
	p, err := posTerm(cmd, "P", pid.P)
	if err != nil {
		return err
	}
	i, err := posTerm(cmd, "I", pid.I)
	if err != nil {
		return err
	}
	return c.exec(cmd, d, p, i,
		int64(pid.MaxI), int64(pid.Deadzone), int64(pid.MinPos), int64(pid.MaxPos))
}

// SetM1PositionPID writes the motor 1 position loop constants.
func (c *Controller) SetM1PositionPID(pid PositionPID) error {
	return c.setPositionPID(CmdSetM1PosPID, pid)
}

// SetM2PositionPID writes the motor 2 position loop constants.
func (c *Controller) SetM2PositionPID(pid PositionPID) error {
	return c.setPositionPID(CmdSetM2PosPID, pid)
}

func (c *Controller) readPositionPID(cmd Cmd) (PositionPID, error) {
	// Read-back order is P, I, D, MaxI, Deadzone, MinPos, MaxPos.
	fields, err := c.query(cmd)
	if err != nil {
		return PositionPID{}, err
	}
	return PositionPID{
		P:        float64(fields[0]) / posPIDScale,
		I:        float64(fields[1]) / posPIDScale,
		D:        float64(fields[2]) / posPIDScale,
		MaxI:     uint32(fields[3]),
		Deadzone: uint32(fields[4]),
		MinPos:   uint32(fields[5]),
		MaxPos:   uint32(fields[6]),
	}, nil
}

// ReadM1PositionPID reads back the motor 1 position loop constants.
func (c *Controller) ReadM1PositionPID() (PositionPID, error) {
	return c.readPositionPID(CmdReadM1PosPID)
}

// ReadM2PositionPID reads back the motor 2 position loop constants.
func (c *Controller) ReadM2PositionPID() (PositionPID, error) {
	return c.readPositionPID(CmdReadM2PosPID)
}
