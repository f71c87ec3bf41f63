// seehuhn.de/go/pcl - decoding of PCL printer data streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pcl

import (
	"strconv"
)

const (
	verticalTab = 0x0B

	// maxDataLength is the largest data section a command can declare.
	maxDataLength = 32767

	// terminationToParameter is the difference between a parameter
	// character and the corresponding termination character.
	terminationToParameter = 'a' - 'A'
)

// lexPCL decodes PCL5 text, control characters and escape sequences,
// starting with the already read byte c.  It returns when the stream ends
// or when a command switches to a different printer language.
func (p *parser) lexPCL(c int) (int, Language, error) {
	for c != eos {
		start := p.lastPos()

		var err error
		switch {
		case c == Escape:
			var lang Language
			c, lang, err = p.escapeSequence(start)
			if err == nil && lang != PCL5 {
				return c, lang, nil
			}
		case isControlCharacter(c):
			err = p.emit(ControlCharacter{Pos: start, Char: byte(c)})
			c = p.cur.next()
		default:
			c, err = p.text(start, c)
		}
		if err != nil {
			return eos, PCL5, err
		}
	}
	return eos, PCL5, nil
}

// text collects a run of text, starting with the already read byte first.
// It returns the first byte after the text.
func (p *parser) text(start uint64, first int) (int, error) {
	data := []byte{byte(first)}
	c := p.cur.next()
	for c != eos && c != Escape && !isControlCharacter(c) {
		data = append(data, byte(c))
		c = p.cur.next()
	}
	return c, p.emit(Text{Pos: start, Data: data})
}

// escapeSequence decodes the remainder of an escape sequence.  The escape
// byte at offset start has already been read.
func (p *parser) escapeSequence(start uint64) (int, Language, error) {
	pc := p.cur.next()
	if pc == eos {
		return eos, PCL5, p.truncated(PCL5)
	}

	if isOperationCharacter(pc) {
		err := p.emit(TwoByteCommand{Pos: start, Operation: byte(pc)})
		return p.cur.next(), PCL5, err
	}
	if !isParameterizedCharacter(pc) {
		return eos, PCL5, p.malformed(p.lastPos(), errParameterized)
	}

	// Both the group character and the value are optional.  For example,
	// "<esc>%-12345X" has no group character, and "<esc>&d@" has no value.
	c := p.cur.next()
	if c == eos {
		return eos, PCL5, p.truncated(PCL5)
	}
	var group byte
	if isGroupCharacter(c) {
		group = byte(c)
		c = p.cur.next()
		if c == eos {
			return eos, PCL5, p.truncated(PCL5)
		}
	}
	if c == Escape {
		return eos, PCL5, p.malformed(p.lastPos(), errUnexpectedEsc)
	}

	if pc == '&' && group == 'p' && c == '<' {
		err := p.imageContainer(start)
		return p.cur.next(), PCL5, err
	}

	cmd := ParameterizedCommand{
		Pos:           start,
		Parameterized: byte(pc),
		Group:         group,
	}
	var value []byte
	for {
		switch {
		case isTerminationCharacter(c):
			cmd.Termination = byte(c)
			setValue(&cmd, value)
			if hasDataSection(cmd.Parameterized, cmd.Group, cmd.Termination) {
				n, err := strconv.Atoi(cmd.Value)
				if err != nil || n < 0 || n > maxDataLength {
					return eos, PCL5, p.malformed(p.lastPos(), errDataLength)
				}
				cmd.Data, err = p.cur.readFull(n)
				if err != nil {
					return eos, PCL5, p.truncated(PCL5)
				}
			}
			err := p.emit(cmd)
			if err != nil {
				return eos, PCL5, err
			}
			next := PCL5
			switch {
			case isUniversalExitLanguage(cmd):
				next = PJL
			case isEnterHPGL(cmd):
				next = HPGL2
			}
			return p.cur.next(), next, nil

		case isParameterCharacter(c):
			cmd.Termination = byte(c) - terminationToParameter
			cmd.Combined = true
			setValue(&cmd, value)
			err := p.emit(cmd)
			if err != nil {
				return eos, PCL5, err
			}
			cmd.Pos = p.cur.offset()
			cmd.Continued = true
			cmd.Combined = false
			value = value[:0]

		case isValueCharacter(c):
			value = append(value, byte(c))

		default:
			return eos, PCL5, p.malformed(p.lastPos(), errValueCharacter)
		}

		c = p.cur.next()

		// A sequence can end after a parameter character, if it is followed
		// by the next escape sequence or by the end of the stream.
		if len(value) == 0 && (c == Escape || c == eos) {
			return c, PCL5, nil
		}
		switch c {
		case eos:
			return eos, PCL5, p.truncated(PCL5)
		case Escape:
			return eos, PCL5, p.malformed(p.lastPos(), errUnexpectedEsc)
		}
	}
}

// imageContainer reads an Océ image stream data container, which has the
// form "<esc>&p<...>A".  The bytes up to and including "<" have already been
// read.  The container is passed on as the value of a single command; its
// contents are not interpreted as value and parameter characters.
func (p *parser) imageContainer(start uint64) error {
	value := []byte{'<'}
	for {
		c := p.cur.next()
		if c == eos {
			return p.truncated(PCL5)
		}
		value = append(value, byte(c))
		if c == '>' {
			break
		}
	}

	c := p.cur.next()
	if c == eos {
		return p.truncated(PCL5)
	}
	if c != 'A' {
		return p.malformed(p.lastPos(), errContainerMarker)
	}

	return p.emit(ParameterizedCommand{
		Pos:           start,
		Parameterized: '&',
		Group:         'p',
		Value:         string(value),
		Termination:   'A',
	})
}

// setValue stores the value field of a command, replacing an omitted value
// by "0".
func setValue(cmd *ParameterizedCommand, value []byte) {
	if len(value) == 0 {
		cmd.Value = "0"
		cmd.Omitted = true
	} else {
		cmd.Value = string(value)
		cmd.Omitted = false
	}
}

// hasDataSection reports whether a command is followed by binary data.  The
// value of these commands gives the number of data bytes.
func hasDataSection(parameterized, group, termination byte) bool {
	switch {
	case termination == 'W': // Transfer Raster Data, Font Header, ...
		return true
	case parameterized == '&' && group == 'p' && termination == 'X': // Transparent Print Data
		return true
	case parameterized == '*' && group == 'b' && termination == 'V': // Transfer Raster Data by Plane
		return true
	default:
		return false
	}
}

func isUniversalExitLanguage(cmd ParameterizedCommand) bool {
	return cmd.Parameterized == '%' && cmd.Group == 0 &&
		cmd.Value == "-12345" && cmd.Termination == 'X'
}

func isEnterHPGL(cmd ParameterizedCommand) bool {
	return cmd.Parameterized == '%' && cmd.Group == 0 && cmd.Termination == 'B'
}

func isControlCharacter(c int) bool {
	return c >= Backspace && c <= ShiftOut && c != verticalTab
}

func isOperationCharacter(c int) bool {
	return c >= 48 && c <= 126
}

func isParameterizedCharacter(c int) bool {
	return c >= 33 && c <= 47
}

func isGroupCharacter(c int) bool {
	return c >= 96 && c <= 126
}

func isParameterCharacter(c int) bool {
	return c >= 96 && c <= 126
}

func isTerminationCharacter(c int) bool {
	return c >= 64 && c <= 94
}

func isValueCharacter(c int) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-'
}
