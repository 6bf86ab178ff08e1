// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package cli

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/texzk/gocrc"
)

var combineCmd = &cobra.Command{
	Use:   "combine [flags] crc1 crc2 len2",
	Short: "Combine two CRC values without re-reading either buffer.",
	Long: `Combine computes the CRC of data1+data2 given crc1 = CRC(data1),
crc2 = CRC(data2) and len2 = len(data2), in bytes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		name := GetString(cmd, "name")

		crc1, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		crc2, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		len2, err := strconv.ParseInt(args[2], 0, 64)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}

		e, err := crc.New(crc.Config{Name: name})
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}

		result, err := e.Combine(crc1, crc2, len2)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}

		fmt.Printf("0x%x\n", result)
	},
}

func init() {
	combineCmd.Flags().StringP("name", "n", "", "CRC template name or alias (default crc-32)")
	rootCmd.AddCommand(combineCmd)
}
