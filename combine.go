// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// gf2Matrix is a width x width matrix over GF(2), stored column-major:
// cols[j] is the image of the j-th standard basis vector. Applying the
// matrix to a register value is then just XORing together the columns
// whose index bit is set in that value — which is exactly what a
// bitset's symmetric difference (XOR) computes one column at a time.
type gf2Matrix struct {
	width uint8
	cols  []*bitset.BitSet
}

func bitsetFromUint64(v uint64, width uint8) *bitset.BitSet {
	b := bitset.New(uint(width))
	for j := uint8(0); j < width; j++ {
		if v&(uint64(1)<<j) != 0 {
			b.Set(uint(j))
		}
	}
	return b
}

func uint64FromBitset(b *bitset.BitSet, width uint8) uint64 {
	var v uint64
	for j := uint8(0); j < width; j++ {
		if b.Test(uint(j)) {
			v |= uint64(1) << j
		}
	}
	return v
}

func identityMatrix(width uint8) *gf2Matrix {
	m := &gf2Matrix{width: width, cols: make([]*bitset.BitSet, width)}
	for j := uint8(0); j < width; j++ {
		c := bitset.New(uint(width))
		c.Set(uint(j))
		m.cols[j] = c
	}
	return m
}

// oneBitShiftMatrix builds the linear operator for "shift the
// reflected-domain register by one zero bit": reg' = (reg>>1) XOR
// (refPoly if the dropped bit was 1, else 0). Column 0 (the image of
// bit 0, the bit that determines whether refPoly gets folded in) is
// refPoly itself; every other column j just moves bit j down to j-1.
func oneBitShiftMatrix(refPoly uint64, width uint8) *gf2Matrix {
	m := &gf2Matrix{width: width, cols: make([]*bitset.BitSet, width)}
	for j := uint8(0); j < width; j++ {
		var v uint64
		if j == 0 {
			v = refPoly
		} else {
			v = uint64(1) << (j - 1)
		}
		m.cols[j] = bitsetFromUint64(v, width)
	}
	return m
}

// apply computes m(v).
func (m *gf2Matrix) apply(v uint64) uint64 {
	acc := bitset.New(uint(m.width))
	for j := uint8(0); j < m.width; j++ {
		if v&(uint64(1)<<j) != 0 {
			acc = acc.SymmetricDifference(m.cols[j])
		}
	}
	return uint64FromBitset(acc, m.width)
}

// compose returns the matrix for "apply inner, then m" — i.e. m∘inner.
func (m *gf2Matrix) compose(inner *gf2Matrix) *gf2Matrix {
	out := &gf2Matrix{width: m.width, cols: make([]*bitset.BitSet, m.width)}
	for j := uint8(0); j < m.width; j++ {
		col := uint64FromBitset(inner.cols[j], m.width)
		out.cols[j] = bitsetFromUint64(m.apply(col), m.width)
	}
	return out
}

// pow returns m raised to the n-th power via repeated squaring, so a
// shift by n zero bits costs O(log n) matrix compositions instead of n
// register steps.
func (m *gf2Matrix) pow(n uint64) *gf2Matrix {
	result := identityMatrix(m.width)
	base := m
	for n > 0 {
		if n&1 != 0 {
			result = base.compose(result)
		}
		if n >>= 1; n > 0 {
			base = base.compose(base)
		}
	}
	return result
}

type combineKey struct {
	width uint8
	poly  uint64
}

var (
	combineCacheMu sync.Mutex
	combineCache   = map[combineKey]*gf2Matrix{}
)

// sharedBitShiftMatrix returns the cached one-zero-bit shift operator
// for (width, poly), building it once per distinct pair.
func sharedBitShiftMatrix(width uint8, poly uint64) *gf2Matrix {
	key := combineKey{width, poly}

	combineCacheMu.Lock()
	m, ok := combineCache[key]
	combineCacheMu.Unlock()
	if ok {
		return m
	}

	m = oneBitShiftMatrix(reflect(poly, uint(width)), width)

	combineCacheMu.Lock()
	combineCache[key] = m
	combineCacheMu.Unlock()
	return m
}

// ZeroBits folds n zero-valued bits into the register in O(log n)
// matrix operations instead of n register steps.
func (e *Engine) ZeroBits(n int64) error {
	if n < 0 {
		return newErr("zero_bits", KindRange, "n %d is negative", n)
	}
	m := sharedBitShiftMatrix(e.params.Width, e.params.Poly)
	e.register = m.pow(uint64(n)).apply(e.register)
	return nil
}

// ZeroBytes folds n zero-valued bytes into the register; equivalent to
// ZeroBits(8*n), and computed the same way.
func (e *Engine) ZeroBytes(n int64) error {
	if n < 0 {
		return newErr("zero_bytes", KindRange, "n %d is negative", n)
	}
	m := sharedBitShiftMatrix(e.params.Width, e.params.Poly)
	e.register = m.pow(uint64(n) * BYTE_WIDTH).apply(e.register)
	return nil
}

// Combine computes the CRC of the concatenation data1+data2 given only
// crc1 = CRC(data1), crc2 = CRC(data2), and len2 = len(data2), without
// access to either data buffer. len2 == 0 returns crc1 unconditionally,
// matching the reference implementation's contract: a zero-length
// second buffer leaves crc2 unobserved entirely, even if it does not
// happen to equal this template's own CRC of the empty string.
func (e *Engine) Combine(crc1, crc2 uint64, len2 int64) (uint64, error) {
	mask := maskOf(e.params.Width)
	if crc1 > mask {
		return 0, newErr("combine", KindRange, "crc1 0x%x exceeds width %d", crc1, e.params.Width)
	}
	if crc2 > mask {
		return 0, newErr("combine", KindRange, "crc2 0x%x exceeds width %d", crc2, e.params.Width)
	}
	if len2 < 0 {
		return 0, newErr("combine", KindRange, "len2 %d is negative", len2)
	}
	if len2 == 0 {
		return crc1, nil
	}

	m := sharedBitShiftMatrix(e.params.Width, e.params.Poly).pow(uint64(len2) * BYTE_WIDTH)

	regA := e.unfinalize(crc1)
	regB := e.unfinalize(crc2)
	refInit := reflect(e.params.Init, uint(e.params.Width))

	shiftedA := m.apply(regA)
	shiftedInit := m.apply(refInit)
	regAB := shiftedA ^ regB ^ shiftedInit

	return e.finalize(regAB), nil
}
