// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package verstr implements version-string ordering: comparison of strings
// where maximal runs of decimal digits are treated as numeric magnitudes
// rather than as sequences of characters. All other bytes compare by value,
// so for valid UTF-8 the order coincides with code-point order.
//
// For example, "abc-2.20" sorts after "abc-2.3" and before "def-2.3":
//
//	"0A" < "A0" < "AA" < "AB" < "ABC"  (usual string comparison)
//	"3" < "20" < "100"                 (digit runs compare numerically)
//	"A3D" < "A20C" < "A100B"
//	"2.7" < "2.7.90" < "2.15.8" < "2.20.1"
//	"2.007" < "2.015.8" == "2.15.08" < "2.20.1"
//
// Zero padding is ignored by default, which makes the relation a total
// preorder rather than a total order ("2.007" equals "2.7"). The TotalOrder
// modes break such ties by the amount of padding; a side with more leading
// zeros sorts smaller.
//
// The package provides two equivalent ways to order strings: Compare, a
// direct three-way comparison, and SortKey, which maps a string to a key
// whose ordinary byte-wise order reproduces Compare's result. Keys are
// useful when the same strings are compared many times or when ordering is
// delegated to a system that only understands plain string comparison. The
// key's byte layout is an implementation detail; only its ordering is
// contractual.
//
// All operations are pure functions over their inputs and are safe for
// concurrent use.
package verstr

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Result is the outcome of a three-way comparison. Left means the first
// argument sorts after the second; Right means it sorts before.
type Result int8

const (
	// Right indicates the right argument is the greater one.
	Right Result = -1
	// Equal indicates the arguments are equivalent under the selected
	// total-order mode.
	Equal Result = 0
	// Left indicates the left argument is the greater one.
	Left Result = 1
)

// Symbol returns the comparison operator relating the left argument to the
// right one: '>' for Left, '=' for Equal, '<' for Right.
func (r Result) Symbol() byte {
	return "<=>"[r+1]
}

// String implements fmt.Stringer.
func (r Result) String() string {
	return string(r.Symbol())
}

// SafeFormat implements redact.SafeFormatter.
func (r Result) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(r.String()))
}

// TotalOrder selects how a zero-padding difference between numerically
// equal digit runs breaks ties.
type TotalOrder uint8

const (
	// TotalOrderOff ignores zero padding: "2.007" and "2.7" compare Equal.
	// The induced relation is a total preorder.
	TotalOrderOff TotalOrder = iota
	// TotalOrderDeferred resolves ties with the first zero-padding
	// difference found anywhere in the scan, but only once both strings
	// are otherwise exhausted as equal:
	//
	//	"2.020.01" < "2.020.1" < "2.20.01" < "2.20.1" < "2.020.02"
	//
	// This can look unintuitive next to plain string order ("A00" < "A0")
	// but yields a proper total order consistent with TotalOrderOff
	// wherever the latter is strict.
	TotalOrderDeferred
	// TotalOrderElementwise resolves each digit run's zero-padding
	// difference immediately at that run:
	//
	//	"2.020.01" < "2.020.1" < "2.020.02" < "2.20.01" < "2.20.1"
	//
	// This order is not consistent with TotalOrderDeferred.
	TotalOrderElementwise
)

var totalOrderNames = []string{
	TotalOrderOff:         "off",
	TotalOrderDeferred:    "deferred",
	TotalOrderElementwise: "elementwise",
}

// String implements fmt.Stringer.
func (t TotalOrder) String() string {
	if int(t) < len(totalOrderNames) {
		return totalOrderNames[t]
	}
	return "unknown"
}

// ParseTotalOrder parses the representation produced by String: "off",
// "deferred", or "elementwise".
func ParseTotalOrder(s string) (TotalOrder, error) {
	for t, name := range totalOrderNames {
		if s == name {
			return TotalOrder(t), nil
		}
	}
	return 0, errors.Newf("unknown total-order mode %q", s)
}
