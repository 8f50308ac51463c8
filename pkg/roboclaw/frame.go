// pkg/roboclaw/frame.go
package roboclaw

import (
	"encoding/binary"
	"fmt"
)

// encodeFrame builds one wire frame for cmd: address byte (packet mode),
// opcode byte, then each argument packed big-endian at its declared width in
// table order, and finally the two checksum bytes when packet mode is on.
// A fresh slice is built per call; frames are never reused.
func encodeFrame(address byte, cmd Cmd, packet bool, vals ...int64) ([]byte, error) {
	desc, ok := commandTable[cmd]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", byte(cmd))
	}
	if len(vals) != len(desc.args) {
		return nil, fmt.Errorf("%s: got %d arguments, schema has %d", desc.name, len(vals), len(desc.args))
	}
	buf := make([]byte, 0, 2+frameWidth(desc.args)+2)
	if packet {
		buf = append(buf, address)
	}
	buf = append(buf, byte(cmd))
	for i, kind := range desc.args {
		var err error
		if buf, err = appendArg(buf, kind, vals[i], desc.name); err != nil {
			return nil, err
		}
	}
	if packet {
		buf = appendChecksum(buf)
	}
	return buf, nil
}

func frameWidth(kinds []argKind) int {
	n := 0
	for _, k := range kinds {
		n += k.width()
	}
	return n
}

// appendArg range-checks v against the field's width and signedness, then
// appends it big-endian.
func appendArg(buf []byte, kind argKind, v int64, cmdName string) ([]byte, error) {
	min, max := kind.bounds()
	if v < min || v > max {
		return nil, &ArgumentError{
			Cmd:   cmdName,
			Field: "argument",
			Value: float64(v),
			Min:   float64(min),
			Max:   float64(max),
		}
	}
	switch kind.width() {
	case 1:
		return append(buf, byte(v)), nil
	case 2:
		return binary.BigEndian.AppendUint16(buf, uint16(v)), nil
	default:
		return binary.BigEndian.AppendUint32(buf, uint32(v)), nil
	}
}

// decodeFields splits a checksum-stripped reply payload into its declared
// fields. Signed kinds are sign-extended; everything else is zero-extended.
func decodeFields(payload []byte, kinds []argKind) ([]int64, error) {
	if len(payload) != frameWidth(kinds) {
		return nil, fmt.Errorf("reply length %d, want %d", len(payload), frameWidth(kinds))
	}
	out := make([]int64, 0, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case argU8:
			out = append(out, int64(payload[0]))
		case argS8:
			out = append(out, int64(int8(payload[0])))
		case argU16:
			out = append(out, int64(binary.BigEndian.Uint16(payload)))
		case argS16:
			out = append(out, int64(int16(binary.BigEndian.Uint16(payload))))
		case argU32:
			out = append(out, int64(binary.BigEndian.Uint32(payload)))
		default: // argS32
			out = append(out, int64(int32(binary.BigEndian.Uint32(payload))))
		}
		payload = payload[kind.width():]
	}
	return out, nil
}

// decodeVersion strips the line-feed and null terminator from a version
// reply. The checksum suffix has already been removed by the transport.
func decodeVersion(payload []byte) string {
	for len(payload) > 0 {
		last := payload[len(payload)-1]
		if last != '\n' && last != 0 {
			break
		}
		payload = payload[:len(payload)-1]
	}
	return string(payload)
}
