// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package verstr

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestSortKeyDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/sortkey", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "key":
			totalOrder := d.HasArg("total-order")
			var buf strings.Builder
			for _, line := range crstrings.Lines(d.Input) {
				fmt.Fprintf(&buf, "%q: %q\n", line, SortKey(line, totalOrder))
			}
			return buf.String()
		case "sort":
			mode := TotalOrderOff
			if d.HasArg("mode") {
				var s string
				d.ScanArgs(t, "mode", &s)
				var err error
				mode, err = ParseTotalOrder(s)
				require.NoError(t, err)
			}
			ss := crstrings.Lines(d.Input)
			SortStrings(ss, mode)
			return strings.Join(ss, "\n") + "\n"
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestSortKeyEdgeCases(t *testing.T) {
	require.Equal(t, "", SortKey("", false))
	require.Equal(t, "\x00", SortKey("", true))
	require.Equal(t, "abc", SortKey("abc", false))
	// Strings equal up to zero padding share a key only without the
	// total-order suffix.
	require.Equal(t, SortKey("2.007", false), SortKey("2.7", false))
	require.NotEqual(t, SortKey("2.007", true), SortKey("2.7", true))
	// An all-zero run encodes as the zero token plus a padding marker.
	require.Equal(t, SortKey("a000b", false), SortKey("a0b", false))
	// Literal NULs are escaped so they cannot collide with the marker
	// separator.
	require.Equal(t, "a\x00~b\x00", SortKey("a\x00b", true))
	require.Equal(t, "a\x00b", SortKey("a\x00b", false))
}

// sortKeyResult maps a byte-wise key comparison back onto a Result.
func sortKeyResult(aKey, bKey string) Result {
	switch c := strings.Compare(aKey, bKey); {
	case c > 0:
		return Left
	case c < 0:
		return Right
	}
	return Equal
}

// TestSortKeyAgreement exercises the central guarantee: byte-wise order of
// keys reproduces Compare, for both key forms and for every pair drawn from
// a corpus of fixed and randomized inputs.
func TestSortKeyAgreement(t *testing.T) {
	seed := rand.Int63()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	corpus := []string{
		"", "0", "00", "1", "01", "a", "a0", "a00", "A0", "A00", "A00!", "A0!",
		"3", "20", "020", "100", "2.7", "2.007", "2.015.8", "2.15.08",
		"2.20.0", "2.020.1", "2.20.02", "2.020.01", "2.020.02", "2.20.01", "2.20.1",
		"abc-2.20", "abc-2.3", "def-2.3", "v1.0.0", "v1.0.0-rc1",
		"a\x00b", "a\x00", "\x000", "\x00~", "1234567890123456789012345",
	}
	corpus = append(corpus, randVersionStrings(rng, 150)...)

	for _, tc := range []struct {
		totalOrder bool
		mode       TotalOrder
	}{
		{false, TotalOrderOff},
		{true, TotalOrderDeferred},
	} {
		keys := make([]string, len(corpus))
		for i, s := range corpus {
			keys[i] = SortKey(s, tc.totalOrder)
		}
		for i, a := range corpus {
			for j, b := range corpus {
				want := Compare(a, b, tc.mode)
				got := sortKeyResult(keys[i], keys[j])
				require.Equalf(t, want, got,
					"%q vs %q (mode %s): keys %q vs %q", a, b, tc.mode, keys[i], keys[j])
			}
		}
	}
}

// TestSortKeySortEquivalence sorts one copy of a corpus with the comparator
// and another by plain string order of the keys; the two must agree.
func TestSortKeySortEquivalence(t *testing.T) {
	seed := rand.Int63()
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))
	ss := randVersionStrings(rng, 300)

	byCompare := append([]string(nil), ss...)
	SortStrings(byCompare, TotalOrderDeferred)

	byKey := append([]string(nil), ss...)
	slices.SortStableFunc(byKey, func(a, b string) int {
		return strings.Compare(SortKey(a, true), SortKey(b, true))
	})

	if diff := pretty.Diff(byCompare, byKey); len(diff) > 0 {
		t.Fatalf("comparator order and key order disagree:\n%s", strings.Join(diff, "\n"))
	}
}

func TestSortKeyIdempotent(t *testing.T) {
	for _, s := range []string{"", "2.020.1", "a\x00b", "x09y"} {
		for _, to := range []bool{false, true} {
			require.Equal(t, SortKey(s, to), SortKey(s, to))
		}
	}
}
