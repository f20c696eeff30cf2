// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yoiwa-personal/verstr"
)

var compareCmd = &cobra.Command{
	Use:   "compare <left> <right>",
	Short: "compare two strings in version-string order",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

var keyTotalOrder bool

var keyCmd = &cobra.Command{
	Use:   "key <string> [<string>] ...",
	Short: "print sort keys for the given strings",
	Long: `
Print a sort key for each argument. Byte-wise comparison of the keys
reproduces the comparison of the original strings. The key layout is an
implementation detail and not stable across versions.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKey,
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <string> [<string>] ...",
	Short: "print a pairwise comparison table",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMatrix,
}

func runCompare(_ *cobra.Command, args []string) error {
	mode, err := verstr.ParseTotalOrder(totalOrderMode)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %s\n", args[0], verstr.Compare(args[0], args[1], mode), args[1])
	return nil
}

func runKey(_ *cobra.Command, args []string) error {
	for _, s := range args {
		fmt.Printf("%q: %q\n", s, verstr.SortKey(s, keyTotalOrder))
	}
	return nil
}

func runMatrix(_ *cobra.Command, args []string) error {
	mode, err := verstr.ParseTotalOrder(totalOrderMode)
	if err != nil {
		return err
	}
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader(append([]string{""}, args...))
	for _, l := range args {
		row := []string{l}
		for _, r := range args {
			row = append(row, verstr.Compare(l, r, mode).String())
		}
		tbl.Append(row)
	}
	tbl.Render()
	return nil
}
