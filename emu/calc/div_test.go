/*
 * Calc14 - Divide test cases.
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

var divCases = []struct {
	x    string
	y    string
	want string
}{
	{" 1              ", " 3              ", "+3.3333333333333e-01"},
	{" 9              ", " 2              ", "+4.5000000000000e+00"},
	{" 9              ", " 1              ", "+9.0000000000000e+00"},
	{" 1              ", " 7              ", "+1.4285714285714e-01"},
	{" 2.5        E+03", " 4          E-01", "+6.2500000000000e+03"},
	{" 1          E-20", " 1          E+20", "+1.0000000000000e-40"},
	// Sign composes by exclusive or.
	{"-9              ", " 2              ", "-4.5000000000000e+00"},
	{" 9              ", "-2              ", "-4.5000000000000e+00"},
	{"-9              ", "-2              ", "+4.5000000000000e+00"},
	// Zero dividend.
	{" 0              ", " 3              ", "+0.0000000000000e+00"},
	{"-0              ", "-3              ", "+0.0000000000000e+00"},
	// Zero divisor raises the marker, sign by exclusive or.
	{" 1              ", " 0              ", "+inf"},
	{"-1              ", " 0              ", "-inf"},
	{" 0              ", " 0              ", "+inf"},
}

func TestDiv(t *testing.T) {
	for _, tc := range divCases {
		got := Div(parse(t, tc.x), parse(t, tc.y)).String()
		if got != tc.want {
			t.Errorf("%q / %q gave %s want %s", tc.x, tc.y, got, tc.want)
		}
	}
}

// Any value divided by itself gives exactly one.
func TestDivSelf(t *testing.T) {
	for _, buffer := range []string{
		" 1              ",
		" 7.253000001E+05",
		"-3.14159265358  ",
		" 9.999999999E-12",
	} {
		x := parse(t, buffer)
		got := Div(x, x)
		if got.String() != "+1.0000000000000e+00" {
			t.Errorf("%q / itself gave %s", buffer, got)
		}
		if got.exp != expBias {
			t.Errorf("%q / itself exponent %d want %d", buffer, got.exp, expBias)
		}
	}
}

func TestDivByZeroMarker(t *testing.T) {
	num := Div(parse(t, "-4.5            "), Zero())
	if num.exp != expDivZero {
		t.Errorf("marker exponent %d want %d", num.exp, expDivZero)
	}
	if !num.sign {
		t.Error("marker lost the sign")
	}
	if !num.IsZero() {
		t.Errorf("marker mantissa not zero: %v", num)
	}
}
