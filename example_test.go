// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package verstr_test

import (
	"fmt"
	"strings"

	"github.com/yoiwa-personal/verstr"
)

func ExampleCompare() {
	fmt.Println(verstr.Compare("abc-2.20", "abc-2.3", verstr.TotalOrderOff))
	fmt.Println(verstr.Compare("abc-2.20", "def-2.3", verstr.TotalOrderOff))
	fmt.Println(verstr.Compare("2.007", "2.7", verstr.TotalOrderOff))
	fmt.Println(verstr.Compare("2.007", "2.7", verstr.TotalOrderDeferred))
	// Output:
	// >
	// <
	// =
	// <
}

func ExampleSortKey() {
	fmt.Printf("%q\n", verstr.SortKey("abc-2.20", false))
	fmt.Printf("%q\n", verstr.SortKey("abc-2.3", false))
	// Output:
	// "abc-02.120"
	// "abc-02.03"
}

func ExampleSortStrings() {
	ss := []string{"abc-2.20", "abc-2.3", "def-2.3", "abc-2.15"}
	verstr.SortStrings(ss, verstr.TotalOrderOff)
	fmt.Println(strings.Join(ss, " "))
	// Output: abc-2.3 abc-2.15 abc-2.20 def-2.3
}
