// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

// Write, Sum, Reset, Size and BlockSize let Engine stand in wherever a
// hash.Hash is expected, matching the ambient pattern the wider CRC
// ecosystem exposes. Size mirrors DigestSize's MAX_WIDTH/8 quirk: it
// does not shrink for a narrower template, while Sum still appends
// exactly Digest()'s correctly-sized bytes for this template's width.
func (e *Engine) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

func (e *Engine) Sum(b []byte) []byte {
	return append(b, e.Digest()...)
}

func (e *Engine) Reset() {
	_ = e.Clear(nil)
}

func (e *Engine) Size() int { return e.DigestSize() }
