/*
 * Calc14 - Decimal multiply.
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
	"github.com/rcornwell/calc14/util/debug"
)

// Mult returns x * y. Partial products accumulate into a running register
// that shifts down one digit per multiplier digit, least significant
// multiplier digit first in register terms, so the top of the register ends
// up holding the rounded down product mantissa.
func Mult(x, y Number) Number {
	if x.IsZero() || y.IsZero() {
		return Zero()
	}

	var num Number
	num.sign = x.sign != y.sign
	num.exp = expAdd(x.exp, y.exp)

	run := newScratch()
	run.clear()
	for j := MANT - 1; j >= 0; j-- {
		run.shiftRight()
		for i := MANT - 1; i >= 0; i-- {
			prod := bcdMult(x.mant[i], y.mant[j])

			// Place the two product digits and add them in.
			tmp := newScratch()
			tmp.clear()
			tmp[i+1] = prod & 0xf
			tmp[i] = (prod >> 4) & 0xf
			carry := uint8(0)
			for k := scratchLen - 1; k >= 0; k-- {
				run[k], carry = bcdAdc(run[k], tmp[k], carry)
			}
			if carry != 0 {
				debug.Debugf("CALC", debugMsk, debugCheck,
					"product carry out of top digit: %s", run.dump())
			}
		}
	}

	// One leading digit of headroom was kept, use it or shift it out.
	if run[0] == 0 {
		run.shiftLeft()
	} else {
		num.exp++
	}

	copy(num.mant[:], run[:MANT])
	if num.IsZero() {
		return Zero()
	}
	debug.Debugf("CALC", debugMsk, debugOp, "%v * %v = %v", x, y, num)
	return num
}
