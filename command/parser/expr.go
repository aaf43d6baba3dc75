/*
 * Calc14 - Expression evaluation.
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

package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rcornwell/calc14/emu/calc"
)

// Evaluate a two operand expression and return the canonical result.
func (line *cmdLine) evaluate() (string, error) {
	left, err := line.getOperand()
	if err != nil {
		return "", err
	}

	line.skipSpace()
	if line.isEOL() {
		return "", errors.New("expected operator after " + left)
	}
	oper := line.line[line.pos]
	line.pos++

	line.skipSpace()
	if line.isEOL() || !line.atNumber() {
		return "", errors.New("expected second operand")
	}
	right, err := line.getOperand()
	if err != nil {
		return "", err
	}
	line.skipSpace()
	if !line.isEOL() {
		return "", errors.New("only one operation per line")
	}

	bufX, err := makeBuffer(left)
	if err != nil {
		return "", err
	}
	bufY, err := makeBuffer(right)
	if err != nil {
		return "", err
	}
	x := calc.FromBuffer(bufX)
	y := calc.FromBuffer(bufY)

	var result calc.Number
	switch oper {
	case '+':
		result = calc.Add(x, y)
	case '-':
		result = calc.Sub(x, y)
	case '*':
		result = calc.Mult(x, y)
	case '/':
		result = calc.Div(x, y)
	default:
		return "", errors.New("unknown operator: " + string(oper))
	}
	return result.String(), nil
}

// Collect one numeric operand: optional sign, digits with one point and an
// optional exponent part.
func (line *cmdLine) getOperand() (string, error) {
	start := line.pos
	if ch := line.line[line.pos]; ch == '-' || ch == '+' {
		line.pos++
	}
	point := false
	digit := false
	for !line.isEOL() {
		ch := line.line[line.pos]
		if ch >= '0' && ch <= '9' {
			digit = true
			line.pos++
			continue
		}
		if ch == '.' {
			if point {
				return "", errors.New("two decimal points in number")
			}
			point = true
			line.pos++
			continue
		}
		if (ch == 'e' || ch == 'E') && digit {
			line.pos++
			if !line.isEOL() && (line.line[line.pos] == '+' || line.line[line.pos] == '-') {
				line.pos++
			}
			for !line.isEOL() && line.line[line.pos] >= '0' && line.line[line.pos] <= '9' {
				line.pos++
			}
		}
		break
	}
	if !digit {
		return "", errors.New("invalid number: " + line.line[start:line.pos])
	}
	return line.line[start:line.pos], nil
}

// Convert an operand string into the fixed 16 character input buffer the
// arithmetic unit reads.
func makeBuffer(operand string) ([]byte, error) {
	buf := []byte("                ")

	mant := operand
	switch {
	case strings.HasPrefix(mant, "-"):
		buf[0] = '-'
		mant = mant[1:]
	case strings.HasPrefix(mant, "+"):
		mant = mant[1:]
	}

	expPart := ""
	if i := strings.IndexAny(mant, "eE"); i >= 0 {
		expPart = mant[i+1:]
		mant = mant[:i]
	}

	if expPart == "" {
		if len(mant) > 15 {
			return nil, errors.New("number too long: " + operand)
		}
		copy(buf[1:], mant)
		return buf, nil
	}

	if len(mant) > 11 {
		return nil, errors.New("number too long for exponent form: " + operand)
	}
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return nil, errors.New("bad exponent: " + expPart)
	}
	expSign := byte('+')
	if exp < 0 {
		expSign = '-'
		exp = -exp
	}
	if exp > 99 {
		return nil, errors.New("exponent out of range: " + expPart)
	}
	copy(buf[1:], mant)
	buf[12] = 'E'
	buf[13] = expSign
	buf[14] = byte('0' + exp/10)
	buf[15] = byte('0' + exp%10)
	return buf, nil
}
