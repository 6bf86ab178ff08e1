// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

// Package cli wires the gocrc package into a cobra command tree: sum,
// combine, and list.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetString gets an expected flag value, or exits if cobra rejects it
// (a flag defined by this program that fails to parse is a bug here,
// not a user error worth a stack trace).
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

