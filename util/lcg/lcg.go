/*
 * Calc14 - Deterministic test vector generator.
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

// Package lcg is the classical minstd linear congruential generator,
// modulus 2^31-1 and multiplier 48271. Test vectors must come out the same
// on every implementation, so the generator is pinned here rather than
// taken from a library whose stream could change.
package lcg

const (
	lcgMult uint64 = 48271
	lcgMod  uint64 = 1<<31 - 1
)

type Generator struct {
	state uint32
}

// New returns a generator with the given seed. A zero state would lock the
// generator at zero forever, so a zero seed is replaced by one.
func New(seed uint32) *Generator {
	if seed == 0 {
		seed = 1
	}
	return &Generator{state: seed}
}

// Next advances the generator and returns the new state, 1 to 2^31-2.
func (g *Generator) Next() uint32 {
	g.state = uint32((uint64(g.state) * lcgMult) % lcgMod)
	return g.state
}

// Digit returns a decimal digit. Each call consumes exactly one generator
// step, callers that need two digits make two calls on separate statements
// so the consumption order stays pinned down.
func (g *Generator) Digit() uint8 {
	return uint8(g.Next() % 10)
}
