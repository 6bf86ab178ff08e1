// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package crc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCanonicalNamesSelfAlias(t *testing.T) {
	for name := range templateTable {
		t.Run(name, func(t *testing.T) {
			tpl, err := Resolve(name)
			require.NoError(t, err)
			require.Equal(t, templateTable[name], tpl)
		})
	}
}

func TestResolveIsCaseAndSpaceInsensitive(t *testing.T) {
	tpl, err := Resolve("  CRC-32  ")
	require.NoError(t, err)
	require.Equal(t, templateTable["crc-32-iso-hdlc"], tpl)
}

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("not-a-real-crc")
	require.Error(t, err)
	require.True(t, IsKind(err, KindNotFound))
}

func TestTemplatesAvailableMatchesAliasTable(t *testing.T) {
	available := TemplatesAvailable()
	require.Len(t, available, len(aliasTable))
	for alias, canon := range aliasTable {
		require.Equal(t, templateTable[canon].Params, available[alias])
	}
}

func TestTemplatesAvailableReturnsACopy(t *testing.T) {
	available := TemplatesAvailable()
	for alias := range available {
		p := available[alias]
		p.Width = 0
		available[alias] = p
		break
	}
	fresh := TemplatesAvailable()
	for alias, canon := range aliasTable {
		require.Equal(t, templateTable[canon].Params, fresh[alias])
	}
}

func TestDefaultTemplateResolves(t *testing.T) {
	_, err := Resolve(defaultTemplateName)
	require.NoError(t, err)
}
