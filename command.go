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
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Escape is the byte which introduces a PCL5 escape sequence.
const Escape = 0x1B

// The PCL5 control characters.
//
// VerticalTab (0x0B) lies within this range but is treated as text.
// ShiftIn is listed for completeness; the parser treats 0x0F as text.
const (
	Backspace      = 0x08
	HorizontalTab  = 0x09
	LineFeed       = 0x0A
	FormFeed       = 0x0C
	CarriageReturn = 0x0D
	ShiftOut       = 0x0E
	ShiftIn        = 0x0F
)

// Command is one command decoded from a printer data stream.
//
// The set of commands is closed.  The concrete types are [Text],
// [ControlCharacter], [TwoByteCommand], [ParameterizedCommand], [PjlCommand]
// and [HpglCommand].
type Command interface {
	// Offset returns the stream position of the first byte of the command.
	Offset() uint64

	// Key returns a short, canonical string which identifies the kind of
	// the command.  It is suitable as a key for lookup tables, see
	// the names sub-package.
	Key() string

	// Display returns a human readable form of the command, including
	// parameter values but excluding any binary data section.
	Display() string

	// Bytes returns the wire form of the command.
	Bytes() []byte

	// WriteTo writes the wire form of the command to w.
	WriteTo(w io.Writer) (int64, error)

	fmt.Stringer

	isCommand()
}

// Text is a run of printable bytes.
type Text struct {
	Pos  uint64
	Data []byte
}

func (c Text) Offset() uint64 { return c.Pos }

// Key returns "TEXT".
func (c Text) Key() string { return "TEXT" }

// Display returns the text, decoded as ISO 8859-1.
func (c Text) Display() string {
	var b strings.Builder
	for _, x := range c.Data {
		b.WriteRune(charmap.ISO8859_1.DecodeByte(x))
	}
	return b.String()
}

func (c Text) Bytes() []byte {
	return append([]byte(nil), c.Data...)
}

func (c Text) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, c.Data)
}

func (c Text) String() string {
	return c.Display() + "@" + strconv.FormatUint(c.Pos, 10)
}

func (Text) isCommand() {}

// ControlCharacter is a single PCL5 control character, for example
// [CarriageReturn] or [FormFeed].
type ControlCharacter struct {
	Pos  uint64
	Char byte
}

func (c ControlCharacter) Offset() uint64 { return c.Pos }

// Key returns the byte value in hexadecimal, for example "0x0D".
func (c ControlCharacter) Key() string {
	return fmt.Sprintf("0x%02X", c.Char)
}

func (c ControlCharacter) Display() string {
	return c.Key()
}

func (c ControlCharacter) Bytes() []byte {
	return []byte{c.Char}
}

func (c ControlCharacter) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, []byte{c.Char})
}

func (c ControlCharacter) String() string {
	return fmt.Sprintf("<0x%02X>@%d", c.Char, c.Pos)
}

func (ControlCharacter) isCommand() {}

// TwoByteCommand is a PCL5 escape sequence which consists of the escape
// byte followed by an operation character, for example "<esc>E" (Printer
// Reset).
type TwoByteCommand struct {
	Pos uint64

	// Operation is in the range 48 ('0') to 126 ('~').
	Operation byte
}

func (c TwoByteCommand) Offset() uint64 { return c.Pos }

// Key returns the operation character.
func (c TwoByteCommand) Key() string {
	return string(rune(c.Operation))
}

func (c TwoByteCommand) Display() string {
	return c.Key()
}

func (c TwoByteCommand) Bytes() []byte {
	return []byte{Escape, c.Operation}
}

func (c TwoByteCommand) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, c.Bytes())
}

func (c TwoByteCommand) String() string {
	return "<esc>" + c.Display() + "@" + strconv.FormatUint(c.Pos, 10)
}

func (TwoByteCommand) isCommand() {}

// ParameterizedCommand is a parameterized PCL5 escape sequence, for example
// "<esc>&l1S" (Simplex/Duplex Print).
//
// Several commands which share the parameterized and group character can be
// combined into one escape sequence, like "<esc>&l1s0O".  Such a sequence is
// decoded into one command per value.
type ParameterizedCommand struct {
	Pos uint64

	// Parameterized is in the range 33 ('!') to 47 ('/').
	Parameterized byte

	// Group is in the range 96 ('`') to 126 ('~'), or 0 if the command has
	// no group character.
	Group byte

	// Value is the value field.  An omitted value is represented as "0".
	Value string

	// Termination is in the range 64 ('@') to 94 ('^').  For commands
	// within a combined sequence this is the upper case form of the
	// parameter character.
	Termination byte

	// Data is the binary data section, or nil if the command has none.
	Data []byte

	// Continued is set if the command is not the first command of a
	// combined escape sequence.  Such commands have no escape byte,
	// parameterized character and group character on the wire.
	Continued bool

	// Combined is set if the command is followed by another command of the
	// same escape sequence.  On the wire, the termination character is
	// then given in lower case.
	Combined bool

	// Omitted is set if the value was not present on the wire.
	Omitted bool
}

func (c ParameterizedCommand) Offset() uint64 { return c.Pos }

// Key returns the parameterized, group and termination characters, for
// example "&lS".
func (c ParameterizedCommand) Key() string {
	key := make([]byte, 0, 3)
	key = append(key, c.Parameterized)
	if c.Group != 0 {
		key = append(key, c.Group)
	}
	key = append(key, c.Termination)
	return string(key)
}

// Display returns the command without the escape byte and without the data
// section, for example "&l1S".
func (c ParameterizedCommand) Display() string {
	var b strings.Builder
	b.WriteByte(c.Parameterized)
	if c.Group != 0 {
		b.WriteByte(c.Group)
	}
	b.WriteString(c.Value)
	b.WriteByte(c.Termination)
	return b.String()
}

func (c ParameterizedCommand) Bytes() []byte {
	res := make([]byte, 0, 4+len(c.Value)+len(c.Data))
	if !c.Continued {
		res = append(res, Escape, c.Parameterized)
		if c.Group != 0 {
			res = append(res, c.Group)
		}
	}
	if !c.Omitted {
		res = append(res, c.Value...)
	}
	if c.Combined {
		res = append(res, c.Termination+terminationToParameter)
	} else {
		res = append(res, c.Termination)
	}
	res = append(res, c.Data...)
	return res
}

func (c ParameterizedCommand) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, c.Bytes())
}

func (c ParameterizedCommand) String() string {
	return "<esc>" + c.Display() + "@" + strconv.FormatUint(c.Pos, 10)
}

func (ParameterizedCommand) isCommand() {}

// PjlCommand is one line of Printer Job Language.
type PjlCommand struct {
	Pos uint64

	// Command is the full command line, including the "@PJL" prefix and
	// without the line ending or trailing white space.
	Command string

	// Raw holds the command as it appeared in the data stream, including
	// the line ending.  If Raw is nil, Command followed by CR LF is used as
	// the wire form.
	Raw []byte
}

func (c PjlCommand) Offset() uint64 { return c.Pos }

// Key returns "PJL".  PJL commands are not decoded further.
func (c PjlCommand) Key() string { return "PJL" }

func (c PjlCommand) Display() string {
	return c.Command
}

func (c PjlCommand) Bytes() []byte {
	if c.Raw != nil {
		return append([]byte(nil), c.Raw...)
	}
	return []byte(c.Command + "\r\n")
}

func (c PjlCommand) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, c.Bytes())
}

func (c PjlCommand) String() string {
	return c.Command + "@" + strconv.FormatUint(c.Pos, 10)
}

func (PjlCommand) isCommand() {}

// HpglCommand is one HP-GL/2 command.
type HpglCommand struct {
	Pos uint64

	// Name is the two letter mnemonic, in upper case.
	Name string

	// Params holds the parameters, with surrounding white space removed.
	// Within quoted strings, doubled quotes are reduced to one.
	Params string

	// Raw holds the command as it appeared in the data stream, including
	// the terminator.  If Raw is nil, Name and Params followed by ';' are
	// used as the wire form.
	Raw []byte
}

func (c HpglCommand) Offset() uint64 { return c.Pos }

// Key returns the command name, for example "PU".
func (c HpglCommand) Key() string {
	return c.Name
}

func (c HpglCommand) Display() string {
	return c.Name + c.Params
}

func (c HpglCommand) Bytes() []byte {
	if c.Raw != nil {
		return append([]byte(nil), c.Raw...)
	}
	return []byte(c.Name + c.Params + ";")
}

func (c HpglCommand) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, c.Bytes())
}

func (c HpglCommand) String() string {
	return c.Name + c.Params + "@" + strconv.FormatUint(c.Pos, 10)
}

func (HpglCommand) isCommand() {}

func writeBytes(w io.Writer, data []byte) (int64, error) {
	n, err := w.Write(data)
	return int64(n), err
}
