// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

// updateBytewise folds one byte at a time through the 256-entry
// accelerator table: reg' = byte1[(reg XOR b) & 0xFF] XOR (reg >> 8).
func (e *Engine) updateBytewise(data []byte) {
	reg := e.register
	t := e.tables
	refin := e.params.RefIn
	for _, b := range data {
		v := b
		if !refin {
			v = reflectedByte[b]
		}
		reg = t.byte1[(reg^uint64(v))&0xFF] ^ (reg >> 8)
	}
	e.register = reg
}
