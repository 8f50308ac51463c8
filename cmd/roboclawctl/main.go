// cmd/roboclawctl/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/UChicago-Robotics/roboclaw/internal/config"
	"github.com/UChicago-Robotics/roboclaw/internal/logging"
	"github.com/UChicago-Robotics/roboclaw/pkg/roboclaw"
	"github.com/UChicago-Robotics/roboclaw/pkg/serialstream"
)

var (
	configPath string
	portFlag   string
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to configuration file.")
	flag.StringVar(&portFlag, "port", "", "Serial port, overrides configuration.")
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roboclawctl: %v\n", err)
		os.Exit(1)
	}
	if portFlag != "" {
		cfg.Serial.Port = portFlag
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roboclawctl: %v\n", err)
		os.Exit(1)
	}
	defer logging.CloseLogger(logger)

	logger = logger.With(zap.String("session_id", uuid.New().String()))

	stream, err := serialstream.New(cfg.Serial, logger)
	if err != nil {
		logger.Fatal("Failed to create serial stream", zap.Error(err))
	}

	ctl, err := roboclaw.New(stream, controllerOptions(&cfg.Controller, logger)...)
	if err != nil {
		logger.Fatal("Failed to create controller", zap.Error(err))
	}
	defer ctl.Close()

	shell := ishell.New()
	shell.Println("roboclawctl interactive console. Type 'help' for commands.")
	shell.SetPrompt(fmt.Sprintf("[0x%02X] > ", ctl.Address()))

	for _, cmd := range consoleCmds(ctl, shell) {
		shell.AddCmd(cmd)
	}

	shell.Run()
}

// controllerOptions maps the controller configuration onto session options,
// including the simple-serial framing switch.
func controllerOptions(cfg *config.ControllerConfig, logger *zap.Logger) []roboclaw.Option {
	opts := []roboclaw.Option{
		roboclaw.WithAddress(cfg.Address),
		roboclaw.WithRetries(cfg.Retries),
		roboclaw.WithLogger(logger),
	}
	if !cfg.PacketSerial {
		opts = append(opts, roboclaw.WithSimpleSerial())
	}
	return opts
}

func consoleCmds(ctl *roboclaw.Controller, shell *ishell.Shell) []*ishell.Cmd {
	return []*ishell.Cmd{
		{
			Name:    "ports",
			Help:    "list serial ports on this host",
			Aliases: []string{"p"},
			Func: func(c *ishell.Context) {
				ports, err := serialstream.ListPorts()
				if err != nil {
					c.Err(err)
					return
				}
				if len(ports) == 0 {
					c.Println("no serial ports found")
					return
				}
				for _, p := range ports {
					c.Println(p)
				}
			},
		},
		{
			Name:    "version",
			Help:    "read the firmware version string",
			Aliases: []string{"v"},
			Func: func(c *ishell.Context) {
				version, err := ctl.ReadVersion()
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(version)
			},
		},
		{
			Name: "status",
			Help: "read the unit status bits",
			Func: func(c *ishell.Context) {
				status, err := ctl.ReadStatus()
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("status: 0x%02X\n", status)
			},
		},
		{
			Name: "battery",
			Help: "read main and logic battery voltages",
			Func: func(c *ishell.Context) {
				main, err := ctl.ReadMainBatteryVoltage()
				if err != nil {
					c.Err(err)
					return
				}
				logic, err := ctl.ReadLogicBatteryVoltage()
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("main: %.1fV  logic: %.1fV\n", main, logic)
			},
		},
		{
			Name: "temp",
			Help: "read the board temperature",
			Func: func(c *ishell.Context) {
				temp, err := ctl.ReadTemp()
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("board: %.1fC\n", temp)
			},
		},
		{
			Name:    "encoders",
			Help:    "read both encoder counters and status",
			Aliases: []string{"enc"},
			Func: func(c *ishell.Context) {
				c1, s1, err := ctl.ReadEncoderM1()
				if err != nil {
					c.Err(err)
					return
				}
				c2, s2, err := ctl.ReadEncoderM2()
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("m1: %d (status 0x%02X)  m2: %d (status 0x%02X)\n", c1, s1, c2, s2)
			},
		},
		{
			Name: "reset-encoders",
			Help: "zero both quadrature counters",
			Func: func(c *ishell.Context) {
				if err := ctl.ResetEncoders(); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "speed",
			Help: "M1_QPPS M2_QPPS",
			Func: func(c *ishell.Context) {
				if len(c.Args) != 2 {
					c.Err(fmt.Errorf("usage: speed M1_QPPS M2_QPPS"))
					return
				}
				m1, err := parseInt32(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				m2, err := parseInt32(c.Args[1])
				if err != nil {
					c.Err(err)
					return
				}
				if err := ctl.SpeedM1M2(m1, m2); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "drive",
			Help: "POWER (0-127, mixed mode forward)",
			Func: func(c *ishell.Context) {
				if len(c.Args) != 1 {
					c.Err(fmt.Errorf("usage: drive POWER"))
					return
				}
				power, err := strconv.ParseUint(c.Args[0], 10, 8)
				if err != nil {
					c.Err(err)
					return
				}
				if err := ctl.ForwardMixed(uint8(power)); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "duty",
			Help: "M1_DUTY M2_DUTY (-32767 to 32767)",
			Func: func(c *ishell.Context) {
				if len(c.Args) != 2 {
					c.Err(fmt.Errorf("usage: duty M1_DUTY M2_DUTY"))
					return
				}
				m1, err := strconv.ParseInt(c.Args[0], 10, 16)
				if err != nil {
					c.Err(err)
					return
				}
				m2, err := strconv.ParseInt(c.Args[1], 10, 16)
				if err != nil {
					c.Err(err)
					return
				}
				if err := ctl.DutyM1M2(int16(m1), int16(m2)); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "stop",
			Help: "set both motor duties to zero",
			Func: func(c *ishell.Context) {
				if err := ctl.DutyM1M2(0, 0); err != nil {
					c.Err(err)
				}
			},
		},
		{
			Name: "buffers",
			Help: "read the per-motor command buffer depths",
			Func: func(c *ishell.Context) {
				b1, b2, err := ctl.ReadBufferLengths()
				if err != nil {
					c.Err(err)
					return
				}
				c.Printf("m1: %s  m2: %s\n", bufferString(b1), bufferString(b2))
			},
		},
		{
			Name: "eeprom",
			Help: "read ADDR | write ADDR VALUE",
			Func: func(c *ishell.Context) {
				if len(c.Args) < 2 {
					c.Err(fmt.Errorf("usage: eeprom read ADDR | eeprom write ADDR VALUE"))
					return
				}
				addr, err := strconv.ParseUint(c.Args[1], 0, 8)
				if err != nil {
					c.Err(err)
					return
				}
				switch strings.ToLower(c.Args[0]) {
				case "read":
					value, err := ctl.ReadEEPROM(uint8(addr))
					if err != nil {
						c.Err(err)
						return
					}
					c.Printf("0x%02X: 0x%04X\n", addr, value)
				case "write":
					if len(c.Args) != 3 {
						c.Err(fmt.Errorf("usage: eeprom write ADDR VALUE"))
						return
					}
					value, err := strconv.ParseUint(c.Args[2], 0, 16)
					if err != nil {
						c.Err(err)
						return
					}
					if err := ctl.WriteEEPROM(uint8(addr), uint16(value)); err != nil {
						c.Err(err)
					}
				default:
					c.Err(fmt.Errorf("unknown eeprom action %q", c.Args[0]))
				}
			},
		},
		{
			Name: "address",
			Help: "[ADDR] show or switch controller address",
			Func: func(c *ishell.Context) {
				if len(c.Args) == 0 {
					c.Printf("0x%02X\n", ctl.Address())
					return
				}
				addr, err := strconv.ParseUint(c.Args[0], 0, 8)
				if err != nil {
					c.Err(err)
					return
				}
				if err := ctl.SetAddress(uint8(addr)); err != nil {
					c.Err(err)
					return
				}
				shell.SetPrompt(fmt.Sprintf("[0x%02X] > ", ctl.Address()))
			},
		},
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func bufferString(b uint8) string {
	switch {
	case b == roboclaw.BufferEmpty:
		return "empty"
	case b == roboclaw.BufferExecuting:
		return "executing"
	default:
		return fmt.Sprintf("%d queued", b)
	}
}
