/*
 * Calc14 - Scratch register.
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
	"strings"

	"github.com/rcornwell/calc14/util/digits"
)

// A scratch register holds the mantissa plus two guard digits during an
// operation. Digit 0 is the most significant. Registers never outlive the
// operation that created them.
type scratch [scratchLen]uint8

// A register that is not loaded from a number starts out poisoned, so an
// operation that forgets to clear it shows up in testing.
func newScratch() scratch {
	var s scratch
	for i := range s {
		s[i] = poison
	}
	return s
}

// Set every digit to zero.
func (s *scratch) clear() {
	for i := range s {
		s[i] = 0
	}
}

// Check for all digits zero.
func (s *scratch) isZero() bool {
	for _, d := range s {
		if d != 0 {
			return false
		}
	}
	return true
}

// Compare digit by digit from the most significant end. True if s >= t.
func (s *scratch) greaterEqual(t *scratch) bool {
	for i := range s {
		if s[i] > t[i] {
			return true
		}
		if s[i] < t[i] {
			return false
		}
	}
	return true
}

// Move digits toward higher indices. The most significant digit becomes zero.
func (s *scratch) shiftRight() {
	for i := scratchLen - 1; i > 0; i-- {
		s[i] = s[i-1]
	}
	s[0] = 0
}

// Move digits toward lower indices. The least significant digit becomes zero.
func (s *scratch) shiftLeft() {
	for i := 0; i < scratchLen-1; i++ {
		s[i] = s[i+1]
	}
	s[scratchLen-1] = 0
}

// Exchange two registers.
func (s *scratch) swap(t *scratch) {
	*s, *t = *t, *s
}

// Format register contents for debug traces.
func (s *scratch) dump() string {
	var str strings.Builder
	digits.FormatDigits(&str, s[:])
	return str.String()
}
