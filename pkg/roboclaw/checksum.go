// pkg/roboclaw/checksum.go
package roboclaw

import "github.com/sigurn/crc16"

// The firmware computes CRC-16/XMODEM (polynomial 0x1021, init 0, no
// reflection) over address, opcode and payload, and compares it against the
// trailing two bytes of every packet-serial frame. Both sides must match
// bit-for-bit.
var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// Checksum computes the frame checksum over p.
func Checksum(p []byte) uint16 {
	return crc16.Checksum(p, crcTable)
}

// ValidateChecksum treats the last two bytes of p as a big-endian checksum,
// recomputes it over the rest and reports whether they match. The returned
// slice is p with the checksum suffix stripped.
func ValidateChecksum(p []byte) ([]byte, bool) {
	if len(p) < 2 {
		return nil, false
	}
	payload, suffix := p[:len(p)-2], p[len(p)-2:]
	got := uint16(suffix[0])<<8 | uint16(suffix[1])
	return payload, Checksum(payload) == got
}

// appendChecksum appends the big-endian checksum of buf to buf.
func appendChecksum(buf []byte) []byte {
	sum := Checksum(buf)
	return append(buf, byte(sum>>8), byte(sum))
}
