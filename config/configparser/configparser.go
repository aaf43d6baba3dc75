/*
 * Calc14 - Configuration file parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// List of options following the value of an options line.
type Option struct {
	Name     string // Name of option.
	EqualOpt string // Value of string after =.
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <switch> |
 *            <option> <whitespace> <value> |
 *            <file> <whitespace> <quoteopt> |
 *            <options> <whitespace> <value> *(<whitespace> <opt>)
 * <opt> ::= <string> ['=' <string>] *(',' <string>)
 * <quoteopt> ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <string> ::= *(<letter> | <number> | <punct>)
 */

const (
	TypeSwitch  = 1 + iota // Stands alone, sets a flag.
	TypeOption             // Takes a single value.
	TypeOptions            // Takes a value plus a list of options.
	TypeFile               // Takes a file name, possibly quoted.
)

// Option creation list.
type optionDef struct {
	create func(string, []Option) error
	ty     int
}

var options = map[string]optionDef{}

var lineNumber int

// Register should be called from init functions.
func Register(name string, ty int, fn func(string, []Option) error) {
	name = strings.ToUpper(name)
	options[name] = optionDef{create: fn, ty: ty}
}

// Register a switch option.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	Register(name, TypeSwitch, fn)
}

// Register an option taking one value.
func RegisterOption(name string, fn func(string, []Option) error) {
	Register(name, TypeOption, fn)
}

// Register an option taking a value and an option list.
func RegisterOptions(name string, fn func(string, []Option) error) {
	Register(name, TypeOptions, fn)
}

// Register an option taking a file name.
func RegisterFile(name string, fn func(string, []Option) error) {
	Register(name, TypeFile, fn)
}

// Load in a configuration file.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		err = line.parseLine()
		if err != nil {
			return err
		}
	}
	return nil
}

// Parse one line from file.
func (line *optionLine) parseLine() error {
	line.skipSpace()
	if line.isEOL() {
		return nil
	}

	name := strings.ToUpper(line.getWord())
	opt, ok := options[name]
	if !ok {
		return fmt.Errorf("no option: %s registered, line: %d", name, lineNumber)
	}

	switch opt.ty {
	case TypeSwitch:
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("switch option: %s followed by options, line: %d", name, lineNumber)
		}
		return opt.create("", nil)

	case TypeOption:
		line.skipSpace()
		value := line.getWord()
		if value == "" {
			return fmt.Errorf("option: %s not followed by value, line: %d", name, lineNumber)
		}
		line.skipSpace()
		if !line.isEOL() {
			return fmt.Errorf("option: %s takes a single value, line: %d", name, lineNumber)
		}
		return opt.create(value, nil)

	case TypeFile:
		line.skipSpace()
		value := line.getQuoted()
		if value == "" {
			return fmt.Errorf("option: %s not followed by file name, line: %d", name, lineNumber)
		}
		return opt.create(value, nil)

	case TypeOptions:
		line.skipSpace()
		value := line.getWord()
		if value == "" {
			return fmt.Errorf("option: %s not followed by value, line: %d", name, lineNumber)
		}
		opts, err := line.parseOptions()
		if err != nil {
			return err
		}
		return opt.create(value, opts)
	}
	return nil
}

// Collect the options trailing an options line.
func (line *optionLine) parseOptions() ([]Option, error) {
	opts := []Option{}
	for {
		line.skipSpace()
		if line.isEOL() {
			return opts, nil
		}
		word := line.getWord()
		if word == "" {
			return opts, fmt.Errorf("invalid option character, line: %d", lineNumber)
		}
		// Comma separated names are separate options.
		for _, name := range strings.Split(word, ",") {
			if name == "" {
				continue
			}
			opt := Option{Name: name}
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				opt.Name = name[:eq]
				opt.EqualOpt = name[eq+1:]
			}
			opts = append(opts, opt)
		}
	}
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Collect characters up to the next space or comment.
func (line *optionLine) getWord() string {
	start := line.pos
	for !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		line.pos++
	}
	return line.line[start:line.pos]
}

// Collect a word or a double quoted string.
func (line *optionLine) getQuoted() string {
	if line.isEOL() || line.line[line.pos] != '"' {
		return line.getWord()
	}
	line.pos++
	start := line.pos
	for line.pos < len(line.line) && line.line[line.pos] != '"' {
		line.pos++
	}
	value := line.line[start:line.pos]
	if line.pos < len(line.line) {
		line.pos++
	}
	return value
}
