/*
 * Calc14 - Number values, input parsing and canonical print.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/rcornwell/calc14/util/digits"
)

// A Number is a signed decimal floating point value: 14 mantissa digits,
// most significant first, and a biased 8 bit exponent. Non zero values are
// normalized with a non zero leading digit. The value is
// mant[0].mant[1..] * 10^(exp-128). Numbers are immutable, operations
// return fresh values.
type Number struct {
	mant [MANT]uint8 // Mantissa digits, most significant first.
	sign bool        // True if negative.
	exp  uint8       // Biased exponent, 128 is 10^0.
}

// Result of checking a computed value against an expected print.
type Result int

const (
	OK   Result = iota // Prints are identical.
	NEAR               // Off by a rounding step in the last digit.
	FAIL               // Anything worse.
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case NEAR:
		return "NEAR"
	}
	return "FAIL"
}

// Zero returns the canonical zero. It is the only zero an operation may
// produce: positive sign, all digits zero, exponent 10^0.
func Zero() Number {
	return Number{exp: expBias}
}

// IsZero checks for an all zero mantissa.
func (n Number) IsZero() bool {
	for _, d := range n.mant {
		if d != 0 {
			return false
		}
	}
	return true
}

// Infinite reports the divide by zero marker.
func (n Number) Infinite() bool {
	return n.exp == expDivZero
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// FromBuffer converts a 16 character input buffer into a normalized number.
//
//	pos:  0   1 .. 11 or 15          12  13  14 15
//	      S   digits and one '.'     E   +-  D  D
//
// Position 0 holds the mantissa sign, blank or '-'. When position 12 is 'E'
// the mantissa field is positions 1-11 and positions 13-15 carry a signed
// two digit exponent, otherwise the field runs to position 15. A space ends
// the mantissa. The caller is contracted to supply exactly 16 characters in
// this layout, malformed buffers give undefined results.
func FromBuffer(buf []byte) Number {
	var num Number

	num.exp = expBias
	if buf[0] == '-' {
		num.sign = true
	}

	field := buf[1:16]
	if buf[12] == 'E' {
		field = buf[1:12]
		val := 10*int(buf[14]-'0') + int(buf[15]-'0')
		if buf[13] == '-' {
			num.exp = uint8(expBias - val)
		} else {
			num.exp = uint8(expBias + val)
		}
	}

	// Skip leading zeros.
	pos := 0
	for pos < len(field) && field[pos] == '0' {
		pos++
	}

	// Walk the field once to find the decimal exponent adjustment. Digits
	// ahead of the point raise it, zeros behind the point lower it.
	adj := -1
	if pos < len(field) && field[pos] == '.' {
		pos++
		for pos < len(field) && field[pos] == '0' {
			adj--
			pos++
		}
	} else {
		for scan := pos; scan < len(field) && isDigit(field[scan]); scan++ {
			adj++
		}
	}

	// Copy the remaining digits into the mantissa.
	count := 0
	for i := pos; i < len(field) && count < MANT; i++ {
		ch := field[i]
		if ch == '.' {
			continue
		}
		if !isDigit(ch) {
			break
		}
		num.mant[count] = ch - '0'
		count++
	}

	if count != 0 {
		num.exp = uint8(int(num.exp) + adj)
	}
	if num.IsZero() {
		return Zero()
	}
	return num
}

// FromFloat builds a number from a reference floating point value. The
// float is printed to 14 significant digits and the digits taken as the
// mantissa.
func FromFloat(val float64) Number {
	if val == 0 {
		return Zero()
	}

	var num Number
	if math.Signbit(val) {
		num.sign = true
		val = -val
	}

	str := strconv.FormatFloat(val, 'e', MANT-1, 64)
	num.mant[0] = str[0] - '0'
	for i := 1; i < MANT; i++ {
		num.mant[i] = str[i+1] - '0'
	}
	e := strings.IndexByte(str, 'e')
	exp, _ := strconv.Atoi(str[e+1:])
	num.exp = uint8(expBias + exp)
	return num
}

// String prints the canonical form, sign, point after the leading digit and
// a signed two digit exponent. The divide by zero marker prints as
// infinity.
func (n Number) String() string {
	if n.exp == expDivZero {
		if n.sign {
			return "-inf"
		}
		return "+inf"
	}

	var str strings.Builder
	if n.sign {
		str.WriteByte('-')
	} else {
		str.WriteByte('+')
	}
	digits.FormatDigit(&str, n.mant[0])
	str.WriteByte('.')
	for i := 1; i < MANT; i++ {
		digits.FormatDigit(&str, n.mant[i])
	}
	str.WriteByte('e')
	exp := int(n.exp) - expBias
	if exp < 0 {
		str.WriteByte('-')
		exp = -exp
	} else {
		str.WriteByte('+')
	}
	digits.FormatPair(&str, uint8(exp))
	return str.String()
}

// Check compares the canonical print against an expected string from the
// reference oracle. Truncation against a rounding oracle can differ in the
// last mantissa digit, such results classify as NEAR rather than FAIL.
func (n Number) Check(expect string) Result {
	got := n.String()
	if got == expect {
		return OK
	}
	if n.exp == expDivZero {
		return FAIL
	}

	gval, gerr := strconv.ParseFloat(got, 64)
	eval, eerr := strconv.ParseFloat(expect, 64)
	if gerr != nil || eerr != nil {
		return FAIL
	}
	diff := math.Abs(gval - eval)
	scale := math.Pow(10, float64(expBias-int(n.exp)))
	if diff*scale <= math.Pow10(-(MANT - 2)) {
		return NEAR
	}
	return FAIL
}

// Load the mantissa into a scratch register, guard digits zero.
func (n Number) loadScratch() scratch {
	var s scratch
	copy(s[:MANT], n.mant[:])
	return s
}
