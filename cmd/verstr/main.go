// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var totalOrderMode string

var rootCmd = &cobra.Command{
	Use:   "verstr [command] (flags)",
	Short: "version-string ordering tool",
	Long: `
Compare, sort, and generate sort keys for strings in version-string order,
where runs of decimal digits compare as numbers: "abc-2.20" sorts after
"abc-2.3".
`,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		compareCmd,
		keyCmd,
		sortCmd,
		matrixCmd,
	)

	for _, cmd := range []*cobra.Command{compareCmd, sortCmd, matrixCmd} {
		cmd.Flags().StringVarP(
			&totalOrderMode, "total-order", "t", "off",
			"zero-padding tie break mode: off, deferred, or elementwise")
	}
	keyCmd.Flags().BoolVar(
		&keyTotalOrder, "total-order", false,
		"append the padding-marker suffix, making distinct strings map to distinct keys")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
