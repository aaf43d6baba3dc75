/*
 * Calc14 - Digit primitive test cases.
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

import "testing"

func TestBcdAdc(t *testing.T) {
	for a := uint8(0); a <= 9; a++ {
		for b := uint8(0); b <= 9; b++ {
			for c := uint8(0); c <= 1; c++ {
				digit, carry := bcdAdc(a, b, c)
				want := a + b + c
				got := digit + 10*carry
				if got != want {
					t.Errorf("bcdAdc(%d, %d, %d) gave %d carry %d", a, b, c, digit, carry)
				}
				if digit > 9 {
					t.Errorf("bcdAdc(%d, %d, %d) digit out of range: %d", a, b, c, digit)
				}
			}
		}
	}
}

func TestBcdSbc(t *testing.T) {
	for a := uint8(0); a <= 9; a++ {
		for b := uint8(0); b <= 9; b++ {
			for c := uint8(0); c <= 1; c++ {
				digit, borrow := bcdSbc(a, b, c)
				want := int(a) - int(b) - int(c)
				got := int(digit) - 10*int(borrow)
				if got != want {
					t.Errorf("bcdSbc(%d, %d, %d) gave %d borrow %d", a, b, c, digit, borrow)
				}
				if digit > 9 {
					t.Errorf("bcdSbc(%d, %d, %d) digit out of range: %d", a, b, c, digit)
				}
			}
		}
	}
}

// Every single digit product must come out as two packed BCD digits.
func TestBcdMult(t *testing.T) {
	for a := uint8(0); a <= 9; a++ {
		for b := uint8(0); b <= 9; b++ {
			packed := bcdMult(a, b)
			want := a * b
			got := 10*((packed>>4)&0xf) + (packed & 0xf)
			if got != want {
				t.Errorf("bcdMult(%d, %d) gave %#02x want %d", a, b, packed, want)
			}
		}
	}
}

func TestExpAdd(t *testing.T) {
	// 10^2 * 10^3 = 10^5.
	if exp := expAdd(130, 131); exp != 133 {
		t.Errorf("expAdd(130, 131) gave %d want 133", exp)
	}
	// 10^-4 * 10^2 = 10^-2.
	if exp := expAdd(124, 130); exp != 126 {
		t.Errorf("expAdd(124, 130) gave %d want 126", exp)
	}
	// Wrap around is the defined behavior.
	if exp := expAdd(255, 255); exp != 126 {
		t.Errorf("expAdd(255, 255) gave %d want 126", exp)
	}
}

func TestExpSub(t *testing.T) {
	// 10^2 / 10^3 = 10^-1.
	if exp := expSub(130, 131); exp != 127 {
		t.Errorf("expSub(130, 131) gave %d want 127", exp)
	}
	if exp := expSub(128, 128); exp != 128 {
		t.Errorf("expSub(128, 128) gave %d want 128", exp)
	}
	// Wrap around is the defined behavior.
	if exp := expSub(0, 255); exp != 129 {
		t.Errorf("expSub(0, 255) gave %d want 129", exp)
	}
}
