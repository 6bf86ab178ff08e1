// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

package cli

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/texzk/gocrc"
)

var sumCmd = &cobra.Command{
	Use:   "sum [flags] [file]",
	Short: "Compute the CRC of a file, or stdin if no file is given.",
	Run: func(cmd *cobra.Command, args []string) {
		name := GetString(cmd, "name")
		method := GetString(cmd, "method")

		var (
			data []byte
			err  error
		)
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}

		e, err := crc.New(crc.Config{Name: name, Method: method})
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		e.Update(data)

		fmt.Println(e.Hexdigest())
	},
}

func init() {
	sumCmd.Flags().StringP("name", "n", "", "CRC template name or alias (default crc-32)")
	sumCmd.Flags().StringP("method", "m", "", "computation strategy: bitwise, bytewise or wordwise")
	rootCmd.AddCommand(sumCmd)
}
