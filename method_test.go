// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("")
	require.NoError(t, err)
	require.Equal(t, Bytewise, m)

	m, err = parseMethod("bitwise")
	require.NoError(t, err)
	require.Equal(t, Bitwise, m)

	m, err = parseMethod("wordwise")
	require.NoError(t, err)
	require.Equal(t, Wordwise, m)

	_, err = parseMethod("nibblewise")
	require.Error(t, err)
	require.True(t, IsKind(err, KindNotFound))
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "bitwise", Bitwise.String())
	require.Equal(t, "bytewise", Bytewise.String())
	require.Equal(t, "wordwise", Wordwise.String())
}
