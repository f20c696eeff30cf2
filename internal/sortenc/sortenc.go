// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package sortenc implements a self-delimiting, order-preserving encoding
// of decimal numbers of unbounded length. Byte-wise lexicographic order
// over encoded values equals numeric order over the values they represent,
// across differing digit counts and across sign, which makes the encoding
// suitable as a building block for sort keys.
//
// The scheme is an implementation detail and subject to change. Currently:
//
//  1. Zero (including the empty string and all-zero strings) encodes as
//     "00".
//  2. A magnitude of L digits, 1 <= L <= 9, encodes as the class byte
//     '0'+L-1 followed by the digits: "1" -> "01", "10" -> "110",
//     "999999999" -> "8999999999". The class byte dominates the
//     comparison, so longer numbers sort after shorter ones, and within a
//     class the digits compare positionally.
//  3. A magnitude of L > 9 digits encodes as '9', then the encoding of
//     L-10 under this same scheme, then the digits. The recursion keeps
//     the value self-delimiting at any length; the next level of
//     indirection is only reached around 10^9 digits.
//  4. A negative number encodes as '-' followed by the nine's complement
//     (each digit d becomes 9-d) of its absolute value's encoding:
//     "-1" -> "-98", "-10" -> "-889". The complement reverses the order of
//     the magnitude so that more-negative numbers sort first, and '-'
//     precedes every digit, so negatives sort before zero and positives.
package sortenc

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/yoiwa-personal/verstr/internal/invariants"
)

// zeroToken is the encoding of zero. It sorts after every negative
// encoding (they start with '-') and before every positive one (their
// class byte is at least '0' with a nonzero digit following).
const zeroToken = "00"

// literalEmptyToken is the encoding of the empty string in literal mode.
// '%' precedes every digit, keeping empty before everything else, and
// keeps the output printable.
const literalEmptyToken = "%"

// Append appends the encoding of the decimal string d to dst and returns
// the extended buffer. Leading zeros are ignored and the empty string is
// treated as zero. A leading '-' denotes a negative number; "-0" is zero.
// Behavior is undefined for any other non-digit byte.
func Append(dst []byte, d string) []byte {
	if invariants.Enabled {
		checkDecimal(d)
	}
	if len(d) > 0 && d[0] == '-' {
		return appendNegative(dst, d[1:])
	}
	return appendMagnitude(dst, d)
}

// AppendInt appends the encoding of n to dst and returns the extended
// buffer.
func AppendInt(dst []byte, n int) []byte {
	return Append(dst, strconv.Itoa(n))
}

// Encode returns the encoding of the decimal string d. See Append.
func Encode(d string) string {
	return string(Append(nil, d))
}

// AppendLiteral appends a self-delimiting wrapping of the arbitrary string
// s to dst, preserving its exact bytes: no sign handling and no stripping
// of leading zeros. Longer strings sort after shorter ones and same-length
// strings keep their byte-wise relative order. The empty string encodes as
// "%".
//
// This generalization of the numeric scheme exists for degenerate segment
// boundaries where a scanned substring must be wrapped without numeric
// reinterpretation; it is not part of the public key format.
func AppendLiteral(dst []byte, s string) []byte {
	if len(s) == 0 {
		return append(dst, literalEmptyToken...)
	}
	return appendDelimited(dst, s)
}

func appendMagnitude(dst []byte, d string) []byte {
	for len(d) > 0 && d[0] == '0' {
		d = d[1:]
	}
	if len(d) == 0 {
		return append(dst, zeroToken...)
	}
	return appendDelimited(dst, d)
}

// appendDelimited appends the self-delimiting length-class form of s: the
// class byte '0'..'8' for lengths 1 through 9, or '9' followed by the
// recursive encoding of len(s)-10, then s itself. Recursion depth is the
// number of times a decimal length survives repeated "take the length"
// reduction, effectively constant for any realistic input.
func appendDelimited(dst []byte, s string) []byte {
	if l := len(s); l <= 9 {
		dst = append(dst, byte('0'+l-1))
	} else {
		dst = append(dst, '9')
		dst = appendMagnitude(dst, strconv.Itoa(l-10))
	}
	return append(dst, s...)
}

func appendNegative(dst []byte, d string) []byte {
	for len(d) > 0 && d[0] == '0' {
		d = d[1:]
	}
	if len(d) == 0 {
		// Negative zero is zero.
		return append(dst, zeroToken...)
	}
	dst = append(dst, '-')
	// The encoded magnitude consists of digits only, so complementing every
	// byte after the sign reverses its lexicographic order.
	start := len(dst)
	dst = appendDelimited(dst, d)
	for i := start; i < len(dst); i++ {
		dst[i] = '9' - (dst[i] - '0')
	}
	return dst
}

func checkDecimal(d string) {
	for i := 0; i < len(d); i++ {
		if isDigit(d[i]) || (i == 0 && d[i] == '-') {
			continue
		}
		panic(errors.AssertionFailedf("non-decimal byte %q in input %q", d[i], d))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
