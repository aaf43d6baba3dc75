/*
 * Calc14 - Console command parser.
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
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum match size.
	process func(*cmdLine) (bool, error)
}

type cmdLine struct {
	line string // Current command.
	pos  int    // Position in line.
}

var cmdList = []cmd{
	{name: "quit", min: 1, process: quit},
	{name: "test", min: 1, process: test},
	{name: "set", min: 3, process: set},
	{name: "show", min: 2, process: show},
	{name: "help", min: 1, process: help},
}

// Execute the command line given. A line opening with a number is an
// expression, anything else is looked up in the command table.
func ProcessCommand(commandLine string) (bool, error) {
	line := cmdLine{line: commandLine}
	line.skipSpace()
	if line.isEOL() {
		return false, nil
	}

	if line.atNumber() {
		result, err := line.evaluate()
		if err != nil {
			return false, err
		}
		fmt.Println(result)
		return false, nil
	}

	command := line.getWord()

	match := matchList(command)
	if len(match) == 0 {
		return false, errors.New("command not found: " + command)
	}

	if len(match) > 1 {
		return false, errors.New("unique command not found: " + command)
	}

	return match[0].process(&line)
}

// Called to complete a command line, during line editing.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matchList := matchList(name)
	matches := make([]string, len(matchList))
	for i, m := range matchList {
		matches[i] = m.name
	}
	return matches
}

// Check if command matches at least to minimum length.
func matchCommand(match cmd, command string) bool {
	if len(command) > len(match.name) {
		return false
	}
	for l := range len(command) {
		if match.name[l] != command[l] {
			return false
		}
	}
	return len(command) >= match.min
}

// Collect all commands the word could stand for.
func matchList(command string) []cmd {
	command = strings.ToLower(command)
	match := []cmd{}
	for _, c := range cmdList {
		if matchCommand(c, command) {
			match = append(match, c)
		}
	}
	return match
}

// Leave the calculator.
func quit(_ *cmdLine) (bool, error) {
	return true, nil
}

// Run the random self test. An optional count overrides the configured
// vector count.
func test(line *cmdLine) (bool, error) {
	count := testVectors
	line.skipSpace()
	if !line.isEOL() {
		word := line.getWord()
		n, err := strconv.Atoi(word)
		if err != nil || n <= 0 {
			return false, errors.New("test count must be a positive number: " + word)
		}
		count = n
	}
	ok, near, fail := RunSelfTest(os.Stdout, count, testSeed)
	fmt.Printf("vectors: %d ok, %d near, %d fail\n", ok, near, fail)
	return false, nil
}

// Change seed or vector count.
func set(line *cmdLine) (bool, error) {
	line.skipSpace()
	name := strings.ToLower(line.getWord())
	line.skipSpace()
	value := line.getWord()
	n, err := strconv.Atoi(value)
	if err != nil {
		return false, errors.New("set needs a numeric value: " + value)
	}

	switch name {
	case "seed":
		if n <= 0 {
			return false, errors.New("seed must be positive")
		}
		testSeed = uint32(n)
	case "vectors":
		if n <= 0 {
			return false, errors.New("vector count must be positive")
		}
		testVectors = n
	default:
		return false, errors.New("unknown setting: " + name)
	}
	return false, nil
}

// Display current settings.
func show(line *cmdLine) (bool, error) {
	line.skipSpace()
	name := strings.ToLower(line.getWord())
	switch name {
	case "seed":
		fmt.Printf("seed %d\n", testSeed)
	case "vectors":
		fmt.Printf("vectors %d\n", testVectors)
	case "":
		fmt.Printf("seed %d\nvectors %d\n", testSeed, testVectors)
	default:
		return false, errors.New("unknown setting: " + name)
	}
	return false, nil
}

// Print a short usage summary.
func help(_ *cmdLine) (bool, error) {
	fmt.Println("enter expressions like: 1.25 + 3, 2e-3 * 4.5, 1 / 3")
	fmt.Println("commands: test [n], set seed|vectors <n>, show, quit")
	return false, nil
}

// Skip forward over line until none whitespace character found.
func (line *cmdLine) skipSpace() {
	for line.pos < len(line.line) && unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
}

// Check if at end of line.
func (line *cmdLine) isEOL() bool {
	return line.pos >= len(line.line)
}

// Collect characters up to the next space.
func (line *cmdLine) getWord() string {
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Check whether the line opens with a number, signed or not.
func (line *cmdLine) atNumber() bool {
	pos := line.pos
	ch := line.line[pos]
	if ch == '-' || ch == '+' {
		pos++
		if pos >= len(line.line) {
			return false
		}
		ch = line.line[pos]
	}
	return ch == '.' || (ch >= '0' && ch <= '9')
}
