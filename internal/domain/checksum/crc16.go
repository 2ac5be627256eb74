// Package checksum implements the CRC-16/CCITT-FALSE variant QRIS payloads
// are sealed with: initial register 0xFFFF, polynomial 0x1021, output as
// four uppercase hex digits.
package checksum

import "fmt"

const (
	initial    = 0xFFFF
	polynomial = 0x1021
)

// CCITTFalse computes the checksum over the payload characters, each masked
// to its low byte, and formats it as a zero-padded 4-digit uppercase hex
// string. Deterministic; the empty payload yields "FFFF".
func CCITTFalse(payload string) string {
	crc := uint16(initial)
	for i := 0; i < len(payload); i++ {
		crc ^= uint16(payload[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
