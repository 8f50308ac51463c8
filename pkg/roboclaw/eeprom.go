// pkg/roboclaw/eeprom.go
package roboclaw

// User EEPROM access, 256 bytes addressed per 16-bit word.

// ReadEEPROM reads one word from the user EEPROM.
func (c *Controller) ReadEEPROM(eeAddress uint8) (uint16, error) {
	fields, err := c.query(CmdReadEEPROM, int64(eeAddress))
	if err != nil {
		return 0, err
	}
	return uint16(fields[0]), nil
}

// WriteEEPROM writes one word to the user EEPROM. The device acknowledges a
// committed write with 0xAA; the ordinary 0xFF framing ack does not count as
// success here, so anything else is reported as a communication failure.
func (c *Controller) WriteEEPROM(eeAddress uint8, value uint16) error {
	return c.exec(CmdWriteEEPROM, int64(eeAddress), int64(value))
}
