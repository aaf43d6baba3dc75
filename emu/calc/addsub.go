/*
 * Calc14 - Decimal add and subtract.
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

// Add returns x + y.
func Add(x, y Number) Number {
	return addSub(x, y, false)
}

// Sub returns x - y.
func Sub(x, y Number) Number {
	return addSub(x, y, true)
}

// Add or subtract a pair of numbers. The mantissas are aligned on the
// larger exponent, then either added or subtracted by magnitude depending
// on the operand signs and the requested operation.
func addSub(x, y Number, sub bool) Number {
	// Zero operands need no alignment.
	if y.IsZero() {
		if x.IsZero() {
			return Zero()
		}
		return x
	}
	if x.IsZero() {
		y.sign = y.sign != sub
		return y
	}

	// When the exponents are a mantissa width apart the smaller operand
	// contributes nothing.
	diff := int(x.exp) - int(y.exp)
	if diff >= MANT {
		return x
	}
	if diff <= -MANT {
		y.sign = y.sign != sub
		return y
	}

	var num Number
	num.exp = x.exp

	// Align the smaller operand.
	xs := x.loadScratch()
	ys := y.loadScratch()
	if diff > 0 {
		for range diff {
			ys.shiftRight()
		}
	} else if diff < 0 {
		for range -diff {
			xs.shiftRight()
		}
		num.exp = y.exp
	}

	if sub == (x.sign != y.sign) {
		// Magnitudes add. A carry out of the top digit shifts the
		// result down one place.
		num.sign = x.sign
		carry := uint8(0)
		for i := MANT - 1; i >= 0; i-- {
			xs[i], carry = bcdAdc(xs[i], ys[i], carry)
		}
		if carry != 0 {
			xs.shiftRight()
			xs[0] = 1
			num.exp++
		}
	} else {
		// Magnitudes subtract, smaller from larger.
		swapped := false
		if !xs.greaterEqual(&ys) {
			xs.swap(&ys)
			swapped = true
		}
		borrow := uint8(0)
		for i := scratchLen - 1; i >= 0; i-- {
			xs[i], borrow = bcdSbc(xs[i], ys[i], borrow)
		}
		if borrow != 0 {
			debug.Debugf("CALC", debugMsk, debugCheck,
				"subtract borrow out of top digit: %s", xs.dump())
		}
		if xs.isZero() {
			return Zero()
		}
		for xs[0] == 0 {
			xs.shiftLeft()
			num.exp--
		}
		num.sign = x.sign != swapped
	}

	copy(num.mant[:], xs[:MANT])
	op := "+"
	if sub {
		op = "-"
	}
	debug.Debugf("CALC", debugMsk, debugOp, "%v %s %v = %v", x, op, y, num)
	return num
}
