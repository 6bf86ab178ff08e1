// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import "encoding/hex"

// Digest returns the finalized CRC value as a big-endian byte string,
// ceil(Width/8) bytes long.
func (e *Engine) Digest() []byte {
	n := (int(e.params.Width) + BYTE_WIDTH - 1) / BYTE_WIDTH
	if n == 0 {
		n = 1
	}
	v := e.Int()
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// Hexdigest returns Digest encoded as lowercase hex.
func (e *Engine) Hexdigest() string {
	return hex.EncodeToString(e.Digest())
}
