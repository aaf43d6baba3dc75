/*
 * Calc14 - Arithmetic unit definitions.
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

// Package calc is the arithmetic unit of a 14 digit BCD pocket calculator.
// Numbers are signed decimal floating point with a 14 digit mantissa and a
// biased 8 bit exponent. All four operations work a digit at a time, the way
// the microcoded datapath of the original chip did.
package calc

import "errors"

const (
	// MANT is the number of mantissa digits carried by every number.
	MANT = 14

	scratchLen = MANT + 2 // Working register width, two guard digits.
	expBias    = 128      // Biased exponent of 10^0.
	expDivZero = 0        // Exponent value reserved for divide by zero.
	poison     = 0xf      // Fill for scratch registers not loaded from a number.
)

// Debug options.
const (
	debugOp    = 1 << iota // Trace each operation.
	debugCheck             // Report digit invariant failures.
)

var debugOption = map[string]int{
	"OP":    debugOp,
	"CHECK": debugCheck,
}

// Invariant failures are always reported, tracing is opt in.
var debugMsk = debugCheck

// Enable debug option.
func Debug(opt string) error {
	d, ok := debugOption[opt]
	if !ok {
		return errors.New("calc debug option invalid: " + opt)
	}
	debugMsk |= d
	return nil
}
