/*
 * Calc14 - Decimal digit formatting.
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

package digits

import "strings"

var digitMap = "0123456789"

// Format a single BCD digit. Values above nine come out as '?', they only
// occur when a register still holds poison.
func FormatDigit(str *strings.Builder, digit uint8) {
	if digit > 9 {
		str.WriteByte('?')
		return
	}
	str.WriteByte(digitMap[digit])
}

// Format a number as two decimal digits, zero padded. Values of one
// hundred or more grow a third digit.
func FormatPair(str *strings.Builder, num uint8) {
	if num >= 100 {
		str.WriteByte(digitMap[num/100])
		num %= 100
	}
	str.WriteByte(digitMap[num/10])
	str.WriteByte(digitMap[num%10])
}

// Format a run of BCD digits.
func FormatDigits(str *strings.Builder, digs []uint8) {
	for _, d := range digs {
		FormatDigit(str, d)
	}
}
