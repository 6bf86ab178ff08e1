// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGF2MatrixIdentity(t *testing.T) {
	m := identityMatrix(16)
	for v := uint64(0); v < 0x10000; v += 4099 {
		require.Equal(t, v, m.apply(v))
	}
}

func TestGF2MatrixPowZeroIsIdentity(t *testing.T) {
	base := oneBitShiftMatrix(reflect(0x1021, 16), 16)
	m := base.pow(0)
	for v := uint64(0); v < 0x10000; v += 4099 {
		require.Equal(t, v, m.apply(v))
	}
}

func TestGF2MatrixPowMatchesRepeatedApply(t *testing.T) {
	base := oneBitShiftMatrix(reflect(0x1021, 16), 16)
	for _, n := range []uint64{1, 2, 3, 8, 17, 64, 100} {
		m := base.pow(n)
		for _, v := range []uint64{0, 1, 0xFFFF, 0x1234, 0xBEEF} {
			want := v
			for i := uint64(0); i < n; i++ {
				want = base.apply(want)
			}
			require.Equal(t, want, m.apply(v), "n=%d v=%#x", n, v)
		}
	}
}

func TestGF2MatrixPowIsAdditiveInExponent(t *testing.T) {
	base := oneBitShiftMatrix(reflect(0x04C11DB7, 32), 32)
	a := base.pow(5)
	b := base.pow(7)
	combined := a.compose(b)
	direct := base.pow(12)

	for _, v := range []uint64{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		require.Equal(t, direct.apply(v), combined.apply(v), "v=%#x", v)
	}
}
