// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineMatchesWholeBufferCRC(t *testing.T) {
	data := make([]byte, 777)
	for i := range data {
		data[i] = byte(i*i + 13)
	}

	samples := []string{"crc-32", "crc-16-ibm-sdlc", "crc-64-xz", "crc-7-mmc", "crc-16-ibm-3740"}
	splits := []int{0, 1, 5, 8, 100, 776, 777}

	for _, name := range samples {
		for _, split := range splits {
			name, split := name, split
			t.Run(name, func(t *testing.T) {
				whole, err := New(Config{Name: name})
				require.NoError(t, err)
				whole.Update(data)
				want := whole.Int()

				e1, err := New(Config{Name: name})
				require.NoError(t, err)
				e1.Update(data[:split])
				crc1 := e1.Int()

				e2, err := New(Config{Name: name})
				require.NoError(t, err)
				e2.Update(data[split:])
				crc2 := e2.Int()

				combined, err := e1.Combine(crc1, crc2, int64(len(data)-split))
				require.NoError(t, err)
				require.Equal(t, want, combined)
			})
		}
	}
}

func TestCombineZeroLengthIgnoresCRC2(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	combined, err := e.Combine(0x12345678, 0xFFFFFFFF, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0x12345678), combined)
}

func TestCombineRejectsOutOfRangeInputs(t *testing.T) {
	e, err := New(Config{Name: "crc-16-ibm-3740"})
	require.NoError(t, err)

	_, err = e.Combine(uint64(1)<<16, 0, 1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	_, err = e.Combine(0, uint64(1)<<16, 1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	_, err = e.Combine(0, 0, -1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))
}

func TestZeroBitsEightNMatchesZeroBytesN(t *testing.T) {
	e1, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)
	e1.Update([]byte("hello"))
	require.NoError(t, e1.ZeroBits(40))

	e2, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)
	e2.Update([]byte("hello"))
	require.NoError(t, e2.ZeroBytes(5))

	require.Equal(t, e1.Int(), e2.Int())
}

func TestZeroBitsOneBitMatchesUpdateWord(t *testing.T) {
	e1, err := New(Config{Name: "crc-16-ibm-sdlc"})
	require.NoError(t, err)
	e1.Update([]byte("x"))
	require.NoError(t, e1.ZeroBits(1))

	e2, err := New(Config{Name: "crc-16-ibm-sdlc"})
	require.NoError(t, err)
	e2.Update([]byte("x"))
	require.NoError(t, e2.UpdateWord(0, 1))

	require.Equal(t, e1.Int(), e2.Int())
}

func TestZeroBitsAndZeroBytesRejectNegative(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	err = e.ZeroBits(-1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	err = e.ZeroBytes(-1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))
}

func TestZeroBytesEquivalentToUpdatingZeroBytes(t *testing.T) {
	e1, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)
	e1.Update([]byte("abc"))
	require.NoError(t, e1.ZeroBytes(4))

	e2, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)
	e2.Update([]byte("abc"))
	e2.Update(make([]byte, 4))

	require.Equal(t, e1.Int(), e2.Int())
}
