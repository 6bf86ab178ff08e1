// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordTableMatchesRepeatedStep(t *testing.T) {
	tpl := templateTable["crc-32-iso-hdlc"]
	tables := buildAccelTables(tpl.Width, tpl.Poly)

	for b := 0; b < 256; b++ {
		v := tables.byte1[b]
		for k := 1; k < sliceFactor; k++ {
			v = tables.step(v)
			require.Equal(t, v, tables.wordTableAt(k, byte(b)), "k=%d b=%d", k, b)
		}
	}
}

func TestSharedAccelTablesCaches(t *testing.T) {
	tpl := templateTable["crc-16-ibm-sdlc"]
	a := sharedAccelTables(tpl.Width, tpl.Poly)
	b := sharedAccelTables(tpl.Width, tpl.Poly)
	require.Same(t, a, b)
}

func TestAccelTablesAreLinear(t *testing.T) {
	tpl := templateTable["crc-32-iso-hdlc"]
	tables := buildAccelTables(tpl.Width, tpl.Poly)

	for x := uint64(0); x < 256; x += 37 {
		for y := uint64(0); y < 256; y += 53 {
			require.Equal(t, tables.byte1[x]^tables.byte1[y], tables.byte1[x^y])
		}
	}
}
