// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2024 Istvan Pasztor

// Command gocrc is a CLI front end for the gocrc CRC engine.
package main

import "github.com/texzk/gocrc/internal/cli"

func main() {
	cli.Execute()
}
