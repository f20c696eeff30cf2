// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package verstr

import (
	"bytes"

	"github.com/yoiwa-personal/verstr/internal/sortenc"
)

// keySeparator splits the scanned portion of a total-order key from the
// padding-marker suffix. Any literal NUL in the input is escaped as
// "\x00~" before the separator is appended; '~' sorts after every byte a
// marker encoding can start with, so a longer input always outranks the
// suffix of a shorter one.
const keySeparator = '\x00'

// SortKey returns a key for s such that byte-wise lexicographic comparison
// of two keys reproduces Compare on the corresponding inputs: without the
// total-order suffix it matches mode TotalOrderOff, with it
// TotalOrderDeferred. The key layout is an implementation detail; only its
// ordering is contractual.
//
// The key consists of the non-digit portions of s verbatim, with every
// digit run replaced by the order-preserving encoding of its numeric value.
// If totalOrder is true, the key additionally records how many leading
// zeros were stripped from each run, so strings equal up to zero padding
// still map to distinct, consistently ordered keys.
func SortKey(s string, totalOrder bool) string {
	var key []byte
	// One marker per digit run: -(1 + stripped zeros), so runs with more
	// padding get more negative markers and therefore smaller encodings.
	var markers []int
	for i := 0; i < len(s); {
		p := i
		for i < len(s) && !isDigit(s[i]) {
			i++
		}
		key = append(key, s[p:i]...)
		if i == len(s) {
			break
		}
		p = i
		for i < len(s) && s[i] == '0' {
			i++
		}
		markers = append(markers, -(i - p + 1))
		p = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		key = sortenc.Append(key, s[p:i])
	}
	if !totalOrder {
		return string(key)
	}
	key = bytes.ReplaceAll(key, []byte{keySeparator}, []byte{keySeparator, '~'})
	key = append(key, keySeparator)
	for _, m := range markers {
		key = sortenc.AppendInt(key, m)
	}
	return string(key)
}
