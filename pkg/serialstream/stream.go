// pkg/serialstream/stream.go
package serialstream

import (
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// Config represents serial port configuration.
type Config struct {
	Port        string        `mapstructure:"port" json:"port"`
	BaudRate    int           `mapstructure:"baud_rate" json:"baud_rate"`
	DataBits    int           `mapstructure:"data_bits" json:"data_bits"`
	StopBits    int           `mapstructure:"stop_bits" json:"stop_bits"`
	Parity      string        `mapstructure:"parity" json:"parity"`
	ReadTimeout time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
}

// Stream adapts a go.bug.st serial port to the duplex-stream capability the
// roboclaw transport borrows. The port is opened lazily on the first Acquire
// and stays open across borrows until Close.
type Stream struct {
	config Config
	logger *zap.Logger
	mutex  sync.Mutex
	port   serial.Port
}

// New creates a stream for the configured port without opening it.
func New(config Config, logger *zap.Logger) (*Stream, error) {
	if config.Port == "" {
		return nil, fmt.Errorf("port is required")
	}
	if config.BaudRate == 0 {
		config.BaudRate = 38400
	}
	if config.DataBits == 0 {
		config.DataBits = 8
	}
	if config.StopBits == 0 {
		config.StopBits = 1
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 100 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stream{config: config, logger: logger}, nil
}

// Acquire borrows the stream for one request/response cycle, opening the
// port if it is not open yet.
func (s *Stream) Acquire() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port != nil {
		return nil
	}

	mode := &serial.Mode{
		BaudRate: s.config.BaudRate,
		DataBits: s.config.DataBits,
		StopBits: serial.StopBits(s.config.StopBits),
	}
	switch s.config.Parity {
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	default:
		mode.Parity = serial.NoParity
	}

	port, err := serial.Open(s.config.Port, mode)
	if err != nil {
		s.logger.Error("Failed to open serial port",
			zap.Error(err),
			zap.String("port", s.config.Port),
		)
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	if err := port.SetReadTimeout(s.config.ReadTimeout); err != nil {
		port.Close()
		return fmt.Errorf("failed to set read timeout: %w", err)
	}

	s.port = port
	s.logger.Info("Serial port opened",
		zap.String("port", s.config.Port),
		zap.Int("baud_rate", s.config.BaudRate),
	)
	return nil
}

// Release returns the borrow. The port stays open for the next cycle.
func (s *Stream) Release() error {
	return nil
}

// Write sends the full frame to the port.
func (s *Stream) Write(p []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return fmt.Errorf("port not open")
	}
	n, err := s.port.Write(p)
	if err != nil {
		return fmt.Errorf("failed to write to serial port: %w", err)
	}
	if n != len(p) {
		return fmt.Errorf("incomplete write: wrote %d of %d bytes", n, len(p))
	}
	s.logger.Debug("Data written to serial port",
		zap.Int("bytes_written", n),
		zap.Binary("data", p),
	)
	return nil
}

// ReadN reads up to n bytes. It returns early with a short result when the
// port read timeout expires; a short read is the caller's timeout signal.
func (s *Stream) ReadN(n int) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return nil, fmt.Errorf("port not open")
	}
	buf := make([]byte, 0, n)
	tmp := make([]byte, n)
	for len(buf) < n {
		k, err := s.port.Read(tmp[:n-len(buf)])
		if err != nil {
			return buf, fmt.Errorf("failed to read from serial port: %w", err)
		}
		if k == 0 { // read timeout
			break
		}
		buf = append(buf, tmp[:k]...)
	}
	s.logger.Debug("Data read from serial port",
		zap.Int("bytes_read", len(buf)),
		zap.Binary("data", buf),
	)
	return buf, nil
}

// ReadUntil reads until delim (inclusive) or the port read timeout.
func (s *Stream) ReadUntil(delim byte) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return nil, fmt.Errorf("port not open")
	}
	var buf []byte
	one := make([]byte, 1)
	for {
		k, err := s.port.Read(one)
		if err != nil {
			return buf, fmt.Errorf("failed to read from serial port: %w", err)
		}
		if k == 0 { // read timeout
			return buf, nil
		}
		buf = append(buf, one[0])
		if one[0] == delim {
			return buf, nil
		}
	}
}

// Close closes the serial port.
func (s *Stream) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.port == nil {
		return nil
	}
	if err := s.port.Close(); err != nil {
		s.logger.Error("Failed to close serial port", zap.Error(err))
		return fmt.Errorf("failed to close serial port: %w", err)
	}
	s.port = nil
	s.logger.Info("Serial port closed", zap.String("port", s.config.Port))
	return nil
}

// ListPorts enumerates the serial ports visible to the host.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	return ports, nil
}
