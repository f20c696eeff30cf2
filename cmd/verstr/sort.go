// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/yoiwa-personal/verstr"
)

var sortCmd = &cobra.Command{
	Use:   "sort [<file>]",
	Short: "sort lines in version-string order",
	Long: `
Sort the lines of <file> (or standard input) in version-string order and
print them. The sort is stable: under the default mode, lines that differ
only in zero padding keep their input order.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func runSort(_ *cobra.Command, args []string) error {
	mode, err := verstr.ParseTotalOrder(totalOrderMode)
	if err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	verstr.SortStrings(lines, mode)
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}
