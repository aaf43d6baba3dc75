/*
 * Calc14 - Decimal divide.
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

// Div returns x / y by restoring division, one quotient digit per repeated
// subtract run. Dividing by zero gives the infinity marker with the usual
// sign rule.
func Div(x, y Number) Number {
	var num Number

	num.sign = x.sign != y.sign
	if y.IsZero() {
		num.exp = expDivZero
		return num
	}
	if x.IsZero() {
		return Zero()
	}
	num.exp = expSub(x.exp, y.exp)

	// Both registers shift down one place first. The free top digit keeps
	// the dividend from overflowing when it shifts back up each round,
	// and holds every quotient digit under ten.
	dvd := x.loadScratch()
	dvs := y.loadScratch()
	dvd.shiftRight()
	dvs.shiftRight()

	quo := newScratch()
	quo.clear()
	for i := range scratchLen {
		for dvd.greaterEqual(&dvs) {
			borrow := uint8(0)
			for k := scratchLen - 1; k >= 0; k-- {
				dvd[k], borrow = bcdSbc(dvd[k], dvs[k], borrow)
			}
			quo[i]++
			if quo[i] > 9 {
				debug.Debugf("CALC", debugMsk, debugCheck,
					"quotient digit over nine: %s", quo.dump())
			}
		}
		dvd.shiftLeft()
	}

	if quo[0] == 0 {
		quo.shiftLeft()
		num.exp--
	}

	copy(num.mant[:], quo[:MANT])
	debug.Debugf("CALC", debugMsk, debugOp, "%v / %v = %v", x, y, num)
	return num
}
