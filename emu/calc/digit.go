/*
 * Calc14 - BCD digit primitives.
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

// Add two BCD digits plus carry in. Returns digit and carry out.
func bcdAdc(a, b, carry uint8) (uint8, uint8) {
	sum := a + b + carry
	if sum > 0x9 {
		return (sum + 0x6) & 0xf, 1
	}
	return sum, 0
}

// Subtract two BCD digits with borrow in. Returns digit and borrow out.
func bcdSbc(a, b, borrow uint8) (uint8, uint8) {
	diff := int(a) - int(b) - int(borrow)
	if diff < 0 {
		return uint8(diff+10) & 0xf, 1
	}
	return uint8(diff), 0
}

// Multiply two BCD digits giving a packed two digit result, tens digit in
// the high nibble. Shift and add forms the binary product, double-dabble
// converts it back to BCD. Both run a fixed number of steps so the routine
// maps onto a hardware sequence.
func bcdMult(a, b uint8) uint8 {
	var prod uint16

	mplier := uint16(a)
	mcand := uint16(b)
	for range 4 {
		if (mcand & 1) != 0 {
			prod += mplier
		}
		mplier <<= 1
		mcand >>= 1
	}

	var packed uint16
	for i := 7; i >= 0; i-- {
		if (packed & 0xf) >= 0x5 {
			packed += 0x3
		}
		if (packed & 0xf0) >= 0x50 {
			packed += 0x30
		}
		packed = (packed << 1) | ((prod >> i) & 1)
	}
	return uint8(packed)
}

// Add two biased exponents. Wraps in 8 bits, no overflow indication.
func expAdd(x, y uint8) uint8 {
	return uint8((int(x) - expBias) + (int(y) - expBias) + expBias)
}

// Subtract two biased exponents. Wraps in 8 bits, no overflow indication.
func expSub(x, y uint8) uint8 {
	return uint8((int(x) - expBias) - (int(y) - expBias) + expBias)
}
