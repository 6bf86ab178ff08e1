// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkString is the canonical input the CRC catalogue's Check values
// were computed against.
const checkString = "123456789"

var allMethods = []Method{Bitwise, Bytewise, Wordwise}

func TestTemplatesAgainstCheckValue(t *testing.T) {
	for name, tpl := range templateTable {
		for _, method := range allMethods {
			name, tpl, method := name, tpl, method
			t.Run(name+"/"+method.String(), func(t *testing.T) {
				e, err := New(Config{Name: name, Method: method.String()})
				require.NoError(t, err)

				e.Update([]byte(checkString))
				require.Equal(t, tpl.Check, e.Int(), "width=%d poly=%#x", tpl.Width, tpl.Poly)

				size := (int(tpl.Width) + 7) / 8
				if size == 0 {
					size = 1
				}
				digest := e.Digest()
				require.Len(t, digest, size)
				var reconstructed uint64
				for _, b := range digest {
					reconstructed = reconstructed<<8 | uint64(b)
				}
				require.Equal(t, tpl.Check, reconstructed)
			})
		}
	}
}

func TestThreeMethodsAgree(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 37)
	}

	samples := []string{"crc-32", "crc-16-ibm-sdlc", "crc-64-xz", "crc-7-mmc", "crc-40-gsm"}
	for _, name := range samples {
		for _, split := range []int{0, 1, 7, 8, 9, 15, 16, 17, 63, 500, 1000} {
			if split > len(data) {
				continue
			}
			name, split := name, split
			t.Run(name, func(t *testing.T) {
				var results [3]uint64
				for i, method := range allMethods {
					e, err := New(Config{Name: name, Method: method.String()})
					require.NoError(t, err)
					e.Update(data[:split])
					e.Update(data[split:])
					results[i] = e.Int()
				}
				require.Equal(t, results[0], results[1])
				require.Equal(t, results[1], results[2])
			})
		}
	}
}

func TestUpdateWordMatchesByteUpdate(t *testing.T) {
	e1, err := New(Config{Name: "crc-16-ibm-sdlc"})
	require.NoError(t, err)
	e2, err := New(Config{Name: "crc-16-ibm-sdlc"})
	require.NoError(t, err)

	data := []byte("gocrc")
	e1.Update(data)
	for _, b := range data {
		require.NoError(t, e2.UpdateWord(uint64(b), BYTE_WIDTH))
	}
	require.Equal(t, e1.Int(), e2.Int())
}

func TestUpdateWordRejectsOutOfRange(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	err = e.UpdateWord(0, -1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	err = e.UpdateWord(0, MAX_WIDTH+1)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	err = e.UpdateWord(0x100, 8)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))

	require.NoError(t, e.UpdateWord(0xDEAD, 0))
}

func TestClearResetsToInitByDefault(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	e.Update([]byte(checkString))
	require.NotEqual(t, e.Init(), e.Int())

	require.NoError(t, e.Clear(nil))
	require.Equal(t, e.Init(), e.Int())
}

func TestClearWithExplicitValue(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	var v uint64 = 0xDEADBEEF
	require.NoError(t, e.Clear(&v))
	require.Equal(t, v, e.Int())
}

func TestClearRejectsOutOfRange(t *testing.T) {
	e, err := New(Config{Name: "crc-7-mmc"})
	require.NoError(t, err)

	v := uint64(1) << 8
	err = e.Clear(&v)
	require.Error(t, err)
	require.True(t, IsKind(err, KindRange))
}

func TestCopyIsIndependent(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	e.Update([]byte("abc"))
	cp := e.Copy()

	e.Update([]byte("def"))
	cp.Update([]byte("def"))
	require.Equal(t, e.Int(), cp.Int())

	e.Update([]byte("more"))
	require.NotEqual(t, e.Int(), cp.Int())
}

func TestNewRequiresWidthAndPolyTogether(t *testing.T) {
	width := uint8(16)
	_, err := New(Config{Width: &width})
	require.Error(t, err)
	require.True(t, IsKind(err, KindDomain))
}

func TestNewDefaultsToCRC32(t *testing.T) {
	byName, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)
	byDefault, err := New(Config{})
	require.NoError(t, err)
	require.Equal(t, byName.Width(), byDefault.Width())
	require.Equal(t, byName.Poly(), byDefault.Poly())
}

func TestNewCustomParameters(t *testing.T) {
	width := uint8(16)
	poly := uint64(0x1021)
	init := uint64(0xFFFF)
	e, err := New(Config{Width: &width, Poly: &poly, Init: &init})
	require.NoError(t, err)
	e.Update([]byte(checkString))
	require.Equal(t, templateTable["crc-16-ibm-3740"].Check, e.Int())
}

func TestNewRejectsUnknownMethod(t *testing.T) {
	_, err := New(Config{Name: "crc-32", Method: "nibblewise"})
	require.Error(t, err)
	require.True(t, IsKind(err, KindNotFound))
}

func TestHashInterfaceMethods(t *testing.T) {
	e, err := New(Config{Name: "crc-32"})
	require.NoError(t, err)

	n, werr := e.Write([]byte(checkString))
	require.NoError(t, werr)
	require.Equal(t, len(checkString), n)

	sum := e.Sum(nil)
	require.Equal(t, e.Digest(), sum)
	require.Equal(t, 1, e.BlockSize())

	e.Reset()
	require.Equal(t, e.Init(), e.Int())
}
