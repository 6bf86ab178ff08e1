// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/texzk/gocrc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known CRC template name and alias.",
	Run: func(cmd *cobra.Command, args []string) {
		templates := crc.TemplatesAvailable()
		names := make([]string, 0, len(templates))
		for name := range templates {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			p := templates[name]
			fmt.Printf("%-30s width=%-2d poly=0x%x init=0x%x refin=%-5v refout=%-5v xorout=0x%x\n",
				name, p.Width, p.Poly, p.Init, p.RefIn, p.RefOut, p.XorOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
