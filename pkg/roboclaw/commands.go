// pkg/roboclaw/commands.go
package roboclaw

import "fmt"

// Cmd is the numeric command selector sent after the address byte.
type Cmd byte

// Command opcodes. Values are fixed by the RoboClaw firmware.
const (
	CmdM1Forward        Cmd = 0
	CmdM1Backward       Cmd = 1
	CmdSetMinMainVolt   Cmd = 2
	CmdSetMaxMainVolt   Cmd = 3
	CmdM2Forward        Cmd = 4
	CmdM2Backward       Cmd = 5
	CmdM1Drive7Bit      Cmd = 6
	CmdM2Drive7Bit      Cmd = 7
	CmdMixedForward     Cmd = 8
	CmdMixedBackward    Cmd = 9
	CmdMixedTurnRight   Cmd = 10
	CmdMixedTurnLeft    Cmd = 11
	CmdMixedDrive7Bit   Cmd = 12
	CmdMixedTurn7Bit    Cmd = 13
	CmdReadEncM1        Cmd = 16
	CmdReadEncM2        Cmd = 17
	CmdReadSpeedM1      Cmd = 18
	CmdReadSpeedM2      Cmd = 19
	CmdResetEncoders    Cmd = 20
	CmdReadVersion      Cmd = 21
	CmdSetEncM1         Cmd = 22
	CmdSetEncM2         Cmd = 23
	CmdReadMainBattery  Cmd = 24
	CmdReadLogicBattery Cmd = 25
	CmdSetMinLogicVolt  Cmd = 26
	CmdSetMaxLogicVolt  Cmd = 27
	CmdSetM1VelPID      Cmd = 28
	CmdSetM2VelPID      Cmd = 29
	CmdReadRawSpeedM1   Cmd = 30
	CmdReadRawSpeedM2   Cmd = 31
	CmdM1Duty           Cmd = 32
	CmdM2Duty           Cmd = 33
	CmdMixedDuty        Cmd = 34
	CmdM1Speed          Cmd = 35
	CmdM2Speed          Cmd = 36
	CmdMixedSpeed       Cmd = 37
	CmdM1SpeedAccel     Cmd = 38
	CmdM2SpeedAccel     Cmd = 39
	CmdMixedSpeedAccel  Cmd = 40
	CmdM1SpeedDist      Cmd = 41
	CmdM2SpeedDist      Cmd = 42
	CmdMixedSpeedDist   Cmd = 43
	CmdM1SpeedAccelDist Cmd = 44
	CmdM2SpeedAccelDist Cmd = 45
	CmdMixedSpAccelDist Cmd = 46
	CmdReadBuffers      Cmd = 47
	CmdReadPWMs         Cmd = 48
	CmdReadCurrents     Cmd = 49
	CmdMixedSpeed2Accel Cmd = 50
	CmdMixedSp2AclDist  Cmd = 51
	CmdM1DutyAccel      Cmd = 52
	CmdM2DutyAccel      Cmd = 53
	CmdMixedDutyAccel   Cmd = 54
	CmdReadM1VelPID     Cmd = 55
	CmdReadM2VelPID     Cmd = 56
	CmdSetMainVoltages  Cmd = 57
	CmdSetLogicVoltages Cmd = 58
	CmdReadMainVoltages Cmd = 59
	CmdReadLogicVoltSet Cmd = 60
	CmdSetM1PosPID      Cmd = 61
	CmdSetM2PosPID      Cmd = 62
	CmdReadM1PosPID     Cmd = 63
	CmdReadM2PosPID     Cmd = 64
	CmdM1SpAclDclPos    Cmd = 65
	CmdM2SpAclDclPos    Cmd = 66
	CmdMixedSpAclDclPos Cmd = 67
	CmdSetM1DefaultAccl Cmd = 68
	CmdSetM2DefaultAccl Cmd = 69
	CmdSetPinFunctions  Cmd = 74
	CmdReadPinFunctions Cmd = 75
	CmdSetDeadband      Cmd = 76
	CmdReadDeadband     Cmd = 77
	CmdRestoreDefaults  Cmd = 80
	CmdReadTemp         Cmd = 82
	CmdReadTemp2        Cmd = 83
	CmdReadStatus       Cmd = 90
	CmdReadEncoderModes Cmd = 91
	CmdSetM1EncoderMode Cmd = 92
	CmdSetM2EncoderMode Cmd = 93
	CmdWriteNVM         Cmd = 94
	CmdReadNVM          Cmd = 95
	CmdSetConfig        Cmd = 98
	CmdReadConfig       Cmd = 99
	CmdSetM1MaxCurrent  Cmd = 133
	CmdSetM2MaxCurrent  Cmd = 134
	CmdReadM1MaxCurrent Cmd = 135
	CmdReadM2MaxCurrent Cmd = 136
	CmdSetPWMMode       Cmd = 148
	CmdReadPWMMode      Cmd = 149
	CmdReadEEPROM       Cmd = 252
	CmdWriteEEPROM      Cmd = 253
)

// nvmMagic is the safety cookie WriteNVM sends as its sole payload. The
// firmware ignores the command unless this exact constant arrives.
const nvmMagic uint32 = 0xE22EAB7A

// Reply acknowledgment bytes.
const (
	ackOK     byte = 0xFF // blanket write acknowledgment
	ackEEPROM byte = 0xAA // the only byte WriteEEPROM accepts as success
)

// Buffer status sentinels returned by ReadBufferLengths.
const (
	BufferEmpty     byte = 0x80 // buffer empty / last buffered command finished
	BufferExecuting byte = 0    // last command sent is executing
	BufferMax       byte = 0x3F // deepest possible queue per motor channel
)

// argKind declares the width and signedness of one wire field.
type argKind uint8

const (
	argU8 argKind = iota
	argS8
	argU16
	argS16
	argU32
	argS32
)

func (k argKind) width() int {
	switch k {
	case argU8, argS8:
		return 1
	case argU16, argS16:
		return 2
	default:
		return 4
	}
}

func (k argKind) bounds() (min, max int64) {
	switch k {
	case argU8:
		return 0, 0xFF
	case argS8:
		return -0x80, 0x7F
	case argU16:
		return 0, 0xFFFF
	case argS16:
		return -0x8000, 0x7FFF
	case argU32:
		return 0, 0xFFFFFFFF
	default: // argS32
		return -0x80000000, 0x7FFFFFFF
	}
}

// replyKind selects how the transport reads and checks a device reply.
type replyKind uint8

const (
	replyAck   replyKind = iota // single byte, compared against ok
	replyFixed                  // fixed-width payload (+ checksum in packet mode)
	replyText                   // ASCII terminated by LF + NUL, then checksum
)

// replyShape is the response half of a command descriptor.
type replyShape struct {
	kind replyKind
	res  []argKind // field layout for replyFixed
	ok   byte      // expected byte for replyAck
}

var (
	ackShape    = replyShape{kind: replyAck, ok: ackOK}
	eepromShape = replyShape{kind: replyAck, ok: ackEEPROM}
	textShape   = replyShape{kind: replyText}
)

func fixedShape(res ...argKind) replyShape {
	return replyShape{kind: replyFixed, res: res}
}

func (r replyShape) width() int {
	n := 0
	for _, k := range r.res {
		n += k.width()
	}
	return n
}

// command is one static descriptor: payload schema in, reply schema out.
type command struct {
	name  string
	args  []argKind
	reply replyShape
}

func args(kinds ...argKind) []argKind { return kinds }

// commandTable fixes the payload and reply schema of every operation. Typed
// methods on Controller pack and unpack exclusively through this table.
var commandTable = map[Cmd]command{
	CmdM1Forward:        {"M1Forward", args(argU8), ackShape},
	CmdM1Backward:       {"M1Backward", args(argU8), ackShape},
	CmdSetMinMainVolt:   {"SetMinMainVolt", args(argU8), ackShape},
	CmdSetMaxMainVolt:   {"SetMaxMainVolt", args(argU8), ackShape},
	CmdM2Forward:        {"M2Forward", args(argU8), ackShape},
	CmdM2Backward:       {"M2Backward", args(argU8), ackShape},
	CmdM1Drive7Bit:      {"M1Drive7Bit", args(argU8), ackShape},
	CmdM2Drive7Bit:      {"M2Drive7Bit", args(argU8), ackShape},
	CmdMixedForward:     {"MixedForward", args(argU8), ackShape},
	CmdMixedBackward:    {"MixedBackward", args(argU8), ackShape},
	CmdMixedTurnRight:   {"MixedTurnRight", args(argU8), ackShape},
	CmdMixedTurnLeft:    {"MixedTurnLeft", args(argU8), ackShape},
	CmdMixedDrive7Bit:   {"MixedDrive7Bit", args(argU8), ackShape},
	CmdMixedTurn7Bit:    {"MixedTurn7Bit", args(argU8), ackShape},
	CmdReadEncM1:        {"ReadEncM1", nil, fixedShape(argU32, argU8)},
	CmdReadEncM2:        {"ReadEncM2", nil, fixedShape(argU32, argU8)},
	CmdReadSpeedM1:      {"ReadSpeedM1", nil, fixedShape(argU32, argU8)},
	CmdReadSpeedM2:      {"ReadSpeedM2", nil, fixedShape(argU32, argU8)},
	CmdResetEncoders:    {"ResetEncoders", nil, ackShape},
	CmdReadVersion:      {"ReadVersion", nil, textShape},
	CmdSetEncM1:         {"SetEncM1", args(argU32), ackShape},
	CmdSetEncM2:         {"SetEncM2", args(argU32), ackShape},
	CmdReadMainBattery:  {"ReadMainBattery", nil, fixedShape(argS16)},
	CmdReadLogicBattery: {"ReadLogicBattery", nil, fixedShape(argS16)},
	CmdSetMinLogicVolt:  {"SetMinLogicVolt", args(argU8), ackShape},
	CmdSetMaxLogicVolt:  {"SetMaxLogicVolt", args(argU8), ackShape},
	CmdSetM1VelPID:      {"SetM1VelPID", args(argU32, argU32, argU32, argU32), ackShape},
	CmdSetM2VelPID:      {"SetM2VelPID", args(argU32, argU32, argU32, argU32), ackShape},
	CmdReadRawSpeedM1:   {"ReadRawSpeedM1", nil, fixedShape(argU32, argU8)},
	CmdReadRawSpeedM2:   {"ReadRawSpeedM2", nil, fixedShape(argU32, argU8)},
	CmdM1Duty:           {"M1Duty", args(argS16), ackShape},
	CmdM2Duty:           {"M2Duty", args(argS16), ackShape},
	CmdMixedDuty:        {"MixedDuty", args(argS16, argS16), ackShape},
	CmdM1Speed:          {"M1Speed", args(argS32), ackShape},
	CmdM2Speed:          {"M2Speed", args(argS32), ackShape},
	CmdMixedSpeed:       {"MixedSpeed", args(argS32, argS32), ackShape},
	CmdM1SpeedAccel:     {"M1SpeedAccel", args(argU32, argS32), ackShape},
	CmdM2SpeedAccel:     {"M2SpeedAccel", args(argU32, argS32), ackShape},
	CmdMixedSpeedAccel:  {"MixedSpeedAccel", args(argU32, argS32, argS32), ackShape},
	CmdM1SpeedDist:      {"M1SpeedDist", args(argS32, argU32, argU8), ackShape},
	CmdM2SpeedDist:      {"M2SpeedDist", args(argS32, argU32, argU8), ackShape},
	CmdMixedSpeedDist:   {"MixedSpeedDist", args(argS32, argU32, argS32, argU32, argU8), ackShape},
	CmdM1SpeedAccelDist: {"M1SpeedAccelDist", args(argU32, argS32, argU32, argU8), ackShape},
	CmdM2SpeedAccelDist: {"M2SpeedAccelDist", args(argU32, argS32, argU32, argU8), ackShape},
	CmdMixedSpAccelDist: {"MixedSpeedAccelDist", args(argU32, argS32, argU32, argS32, argU32, argU8), ackShape},
	CmdReadBuffers:      {"ReadBuffers", nil, fixedShape(argU8, argU8)},
	CmdReadPWMs:         {"ReadPWMs", nil, fixedShape(argS16, argS16)},
	CmdReadCurrents:     {"ReadCurrents", nil, fixedShape(argS16, argS16)},
	CmdMixedSpeed2Accel: {"MixedSpeed2Accel", args(argU32, argS32, argU32, argS32), ackShape},
	CmdMixedSp2AclDist:  {"MixedSpeed2AccelDist", args(argU32, argS32, argU32, argU32, argS32, argU32, argU8), ackShape},
	CmdM1DutyAccel:      {"M1DutyAccel", args(argS16, argU32), ackShape},
	CmdM2DutyAccel:      {"M2DutyAccel", args(argS16, argU32), ackShape},
	CmdMixedDutyAccel:   {"MixedDutyAccel", args(argS16, argU32, argS16, argU32), ackShape},
	CmdReadM1VelPID:     {"ReadM1VelPID", nil, fixedShape(argU32, argU32, argU32, argU32)},
	CmdReadM2VelPID:     {"ReadM2VelPID", nil, fixedShape(argU32, argU32, argU32, argU32)},
	CmdSetMainVoltages:  {"SetMainVoltages", args(argU16, argU16), ackShape},
	CmdSetLogicVoltages: {"SetLogicVoltages", args(argU16, argU16), ackShape},
	CmdReadMainVoltages: {"ReadMainVoltages", nil, fixedShape(argU16, argU16)},
	CmdReadLogicVoltSet: {"ReadLogicVoltages", nil, fixedShape(argU16, argU16)},
	CmdSetM1PosPID:      {"SetM1PosPID", args(argU32, argU32, argU32, argU32, argU32, argU32, argU32), ackShape},
	CmdSetM2PosPID:      {"SetM2PosPID", args(argU32, argU32, argU32, argU32, argU32, argU32, argU32), ackShape},
	CmdReadM1PosPID:     {"ReadM1PosPID", nil, fixedShape(argU32, argU32, argU32, argU32, argU32, argU32, argU32)},
	CmdReadM2PosPID:     {"ReadM2PosPID", nil, fixedShape(argU32, argU32, argU32, argU32, argU32, argU32, argU32)},
	CmdM1SpAclDclPos:    {"M1SpeedAccelDeccelPos", args(argU32, argU32, argU32, argU32, argU8), ackShape},
	CmdM2SpAclDclPos:    {"M2SpeedAccelDeccelPos", args(argU32, argU32, argU32, argU32, argU8), ackShape},
	CmdMixedSpAclDclPos: {"MixedSpeedAccelDeccelPos", args(argU32, argU32, argU32, argU32, argU32, argU32, argU32, argU32, argU8), ackShape},
	CmdSetM1DefaultAccl: {"SetM1DefaultAccel", args(argU32), ackShape},
	CmdSetM2DefaultAccl: {"SetM2DefaultAccel", args(argU32), ackShape},
	CmdSetPinFunctions:  {"SetPinFunctions", args(argU8, argU8, argU8), ackShape},
	CmdReadPinFunctions: {"ReadPinFunctions", nil, fixedShape(argU8, argU8, argU8)},
	CmdSetDeadband:      {"SetDeadband", args(argU8, argU8), ackShape},
	CmdReadDeadband:     {"ReadDeadband", nil, fixedShape(argU8, argU8)},
	CmdRestoreDefaults:  {"RestoreDefaults", nil, ackShape},
	CmdReadTemp:         {"ReadTemp", nil, fixedShape(argS16)},
	CmdReadTemp2:        {"ReadTemp2", nil, fixedShape(argS16)},
	CmdReadStatus:       {"ReadStatus", nil, fixedShape(argU8)},
	CmdReadEncoderModes: {"ReadEncoderModes", nil, fixedShape(argU8, argU8)},
	CmdSetM1EncoderMode: {"SetM1EncoderMode", args(argU8), ackShape},
	CmdSetM2EncoderMode: {"SetM2EncoderMode", args(argU8), ackShape},
	CmdWriteNVM:         {"WriteNVM", args(argU32), ackShape},
	CmdReadNVM:          {"ReadNVM", nil, fixedShape(argU8, argU8)},
	CmdSetConfig:        {"SetConfig", args(argU16), ackShape},
	CmdReadConfig:       {"ReadConfig", nil, fixedShape(argU16)},
	CmdSetM1MaxCurrent:  {"SetM1MaxCurrent", args(argU32, argU32), ackShape},
	CmdSetM2MaxCurrent:  {"SetM2MaxCurrent", args(argU32, argU32), ackShape},
	CmdReadM1MaxCurrent: {"ReadM1MaxCurrent", nil, fixedShape(argU32, argU32)},
	CmdReadM2MaxCurrent: {"ReadM2MaxCurrent", nil, fixedShape(argU32, argU32)},
	CmdSetPWMMode:       {"SetPWMMode", args(argU8), ackShape},
	CmdReadPWMMode:      {"ReadPWMMode", nil, fixedShape(argU8)},
	CmdReadEEPROM:       {"ReadEEPROM", args(argU8), fixedShape(argU16)},
	CmdWriteEEPROM:      {"WriteEEPROM", args(argU8, argU16), eepromShape},
}

// String returns the table name for known opcodes, for logs and errors.
func (c Cmd) String() string {
	if cmd, ok := commandTable[c]; ok {
		return cmd.name
	}
	return fmt.Sprintf("Cmd(%d)", byte(c))
}
