// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package verstr

import "slices"

// Compare returns Left, Equal, or Right depending on whether l is greater
// than, equivalent to, or less than r in version-string order. Runs of
// decimal digits compare as numbers of unbounded length; all other bytes
// compare by value.
//
// The comparison is a single left-to-right pass over both strings and never
// materializes sort keys. It agrees with SortKey for every pair of inputs:
// mode TotalOrderOff corresponds to keys built without the total-order
// suffix, TotalOrderDeferred to keys built with it.
func Compare(l, r string, mode TotalOrder) Result {
	lp, rp := 0, 0
	// First zero-padding difference seen, used as a last resort under
	// TotalOrderDeferred.
	deferred := Equal
	for {
		if lp == len(l) {
			if rp == len(r) {
				if mode == TotalOrderDeferred {
					return deferred
				}
				return Equal
			}
			return Right
		}
		if rp == len(r) {
			return Left
		}

		if isDigit(l[lp]) && isDigit(r[rp]) {
			var digits, zeros Result
			lp, rp, digits, zeros = compareDigitRuns(l, r, lp, rp)
			if digits != Equal {
				return digits
			}
			if zeros != Equal {
				switch mode {
				case TotalOrderElementwise:
					return zeros
				case TotalOrderDeferred:
					if deferred == Equal {
						deferred = zeros
					}
				}
			}
			continue
		}

		if l[lp] != r[rp] {
			if l[lp] > r[rp] {
				return Left
			}
			return Right
		}
		lp++
		rp++
	}
}

// compareDigitRuns compares the digit runs starting at l[lp] and r[rp],
// returning the cursor positions after the shorter-aligned portion of the
// runs, the magnitude comparison, and the zero-padding signal. A non-Equal
// magnitude result decides the whole comparison; an Equal one means both
// runs were numerically equal and the main scan continues.
func compareDigitRuns(l, r string, lp, rp int) (_, _ int, digits, zeros Result) {
	// Zeros common to both runs never affect the order.
	for lp < len(l) && l[lp] == '0' && rp < len(r) && r[rp] == '0' {
		lp++
		rp++
	}
	// At most one of the next two loops can run: the loop above stopped
	// because one side ran out of zeros. A side with extra leading zeros
	// sorts smaller when the padding signal is consulted at all.
	for lp < len(l) && l[lp] == '0' {
		zeros = Right
		lp++
	}
	for rp < len(r) && r[rp] == '0' {
		zeros = Left
		rp++
	}

	// Compare the magnitudes digit by digit. The first differing digit is
	// only provisional: it holds only if both runs end at the same length,
	// because a longer run is a larger number regardless of its digits.
	for lp < len(l) && isDigit(l[lp]) && rp < len(r) && isDigit(r[rp]) {
		if digits == Equal && l[lp] != r[rp] {
			if l[lp] > r[rp] {
				digits = Left
			} else {
				digits = Right
			}
		}
		lp++
		rp++
	}
	if lp < len(l) && isDigit(l[lp]) {
		return lp, rp, Left, zeros
	}
	if rp < len(r) && isDigit(r[rp]) {
		return lp, rp, Right, zeros
	}
	return lp, rp, digits, zeros
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Cmp returns -1, 0, or +1 depending on whether a is less than, equivalent
// to, or greater than b in version-string order with zero padding ignored.
// It has the shape expected by slices.SortFunc and friends.
func Cmp(a, b string) int {
	return int(Compare(a, b, TotalOrderOff))
}

// Less reports whether a sorts strictly before b with zero padding ignored.
func Less(a, b string) bool {
	return Compare(a, b, TotalOrderOff) == Right
}

// SortStrings sorts ss in place in version-string order under the given
// total-order mode. The sort is stable, so under TotalOrderOff strings that
// differ only in zero padding keep their original relative order.
func SortStrings(ss []string, mode TotalOrder) {
	slices.SortStableFunc(ss, func(a, b string) int {
		return int(Compare(a, b, mode))
	})
}
