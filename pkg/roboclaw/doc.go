// Package roboclaw implements the packet-serial protocol spoken by RoboClaw
// dual-channel motor controllers.
//
// A Controller wraps one device on a serial line and exposes a typed call per
// firmware command: open-loop drive, duty cycle, closed-loop velocity and
// position moves, PID tuning, telemetry reads, voltage/current limits, config
// registers and user EEPROM. All calls are strictly synchronous: one frame
// out, one bounded-timeout reply in, with up to the configured number of
// retries before a communication failure is reported.
//
// Frames are [address][opcode][payload...] followed by a big-endian CRC-16
// (CCITT/XMODEM, polynomial 0x1021) over everything before it. Up to eight
// controllers may share a physical line, addressed 0x80 through 0x87. The
// package provides no cross-address locking; callers driving several
// addresses over one port must serialize their calls.
package roboclaw
