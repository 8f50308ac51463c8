// pkg/roboclaw/controller.go
package roboclaw

import (
	"math"

	"go.uber.org/zap"
)

// Valid packet-serial device addresses on a multi-drop bus.
const (
	MinAddress byte = 0x80
	MaxAddress byte = 0x87
)

// DefaultRetries is the send/await attempt budget unless overridden.
const DefaultRetries = 3

// Controller is one session with one RoboClaw device. It exclusively owns
// the injected Stream and exposes a typed call per firmware command. Calls
// are synchronous; each blocks for one write plus a bounded read.
type Controller struct {
	transport *transport
	address   byte
	packet    bool
	logger    *zap.Logger
}

// Option configures a Controller at construction.
type Option func(*Controller)

// WithAddress selects the device address, range [0x80, 0x87]. Defaults to
// 0x80.
func WithAddress(addr byte) Option {
	return func(c *Controller) { c.address = addr }
}

// WithRetries sets the send/await attempt budget.
func WithRetries(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.transport.retries = n
		}
	}
}

// WithSimpleSerial drops the address byte and checksum framing. Simple
// serial cannot share a line between devices; packet serial is the default.
func WithSimpleSerial() Option {
	return func(c *Controller) {
		c.packet = false
		c.transport.packet = false
	}
}

// WithLogger attaches a logger; frames and retries are traced at debug.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
		c.transport.logger = logger
	}
}

// New creates a session over stream. The stream is owned by the returned
// Controller; release it with Close.
func New(stream Stream, opts ...Option) (*Controller, error) {
	c := &Controller{
		address: MinAddress,
		packet:  true,
		logger:  zap.NewNop(),
	}
	c.transport = newTransport(stream, DefaultRetries, true, c.logger)
	for _, opt := range opts {
		opt(c)
	}
	if err := checkAddress(c.address); err != nil {
		return nil, err
	}
	return c, nil
}

func checkAddress(addr byte) error {
	if addr < MinAddress || addr > MaxAddress {
		return &ArgumentError{
			Field: "address",
			Value: float64(addr),
			Min:   float64(MinAddress),
			Max:   float64(MaxAddress),
		}
	}
	return nil
}

// Address returns the configured device address.
func (c *Controller) Address() byte { return c.address }

// SetAddress retargets the session at another device on the same line.
func (c *Controller) SetAddress(addr byte) error {
	if err := checkAddress(addr); err != nil {
		return err
	}
	c.address = addr
	return nil
}

// Retries returns the current attempt budget.
func (c *Controller) Retries() int { return c.transport.retries }

// SetRetries reconfigures the attempt budget.
func (c *Controller) SetRetries(n int) {
	if n > 0 {
		c.transport.retries = n
	}
}

// Close releases the underlying stream.
func (c *Controller) Close() error {
	return c.transport.stream.Close()
}

// exec sends a write command and waits for its acknowledgment.
func (c *Controller) exec(cmd Cmd, vals ...int64) error {
	frame, err := encodeFrame(c.address, cmd, c.packet, vals...)
	if err != nil {
		return err
	}
	_, err = c.transport.sendAwait(cmd, frame, commandTable[cmd].reply)
	return err
}

// query sends a read command and decodes the fixed-width reply per the
// command's result schema.
func (c *Controller) query(cmd Cmd, vals ...int64) ([]int64, error) {
	frame, err := encodeFrame(c.address, cmd, c.packet, vals...)
	if err != nil {
		return nil, err
	}
	payload, err := c.transport.sendAwait(cmd, frame, commandTable[cmd].reply)
	if err != nil {
		return nil, err
	}
	fields, err := decodeFields(payload, commandTable[cmd].reply.res)
	if err != nil {
		// Width is checked by the transport; a mismatch here means the
		// schema and table disagree, which is a bug in this package.
		return nil, commErr(cmd, c.transport.retries, err)
	}
	return fields, nil
}

// scaled range-checks a float argument and returns its packed integer form.
func scaled(cmd Cmd, field string, v, min, max float64, pack func(float64) float64) (int64, error) {
	if v < min || v > max {
		return 0, &ArgumentError{Cmd: cmd.String(), Field: field, Value: v, Min: min, Max: max}
	}
	return int64(math.Round(pack(v))), nil
}
