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
	"errors"
	"io"
	"strconv"
)

var (
	errParameterized   = errors.New("invalid parameterized character")
	errUnexpectedEsc   = errors.New("unexpected escape")
	errValueCharacter  = errors.New("invalid value character")
	errDataLength      = errors.New("invalid data section length")
	errMissingPJL      = errors.New("no PJL command found")
	errContainerMarker = errors.New("invalid end of image stream data container")
)

// MalformedError indicates that the data stream violates the grammar of
// the current printer language.
type MalformedError struct {
	// Pos is the offset of the offending byte.
	Pos uint64

	// Err describes the problem.
	Err error
}

func (err *MalformedError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "malformed command" + middle + " (at byte " + strconv.FormatUint(err.Pos, 10) + ")"
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

// TruncatedError indicates that the data stream ends in the middle of a
// command.
type TruncatedError struct {
	// Pos is the offset at which the stream ended.
	Pos uint64

	// Lang is the printer language which was active at the end of the
	// stream.
	Lang Language
}

func (err *TruncatedError) Error() string {
	msg := "the " + err.Lang.String() + " data stream unexpectedly ends at byte " +
		strconv.FormatUint(err.Pos, 10)
	if err.Lang == PJL {
		msg += " (command is not properly terminated)"
	}
	return msg
}

// Unwrap returns [io.ErrUnexpectedEOF].
func (err *TruncatedError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// Language identifies one of the printer languages which can occur in a data
// stream.
type Language int

// These are the printer languages understood by the parser.
const (
	PCL5 Language = iota
	PJL
	HPGL2
)

func (l Language) String() string {
	switch l {
	case PCL5:
		return "PCL"
	case PJL:
		return "PJL"
	case HPGL2:
		return "HP-GL/2"
	default:
		return "Language(" + strconv.Itoa(int(l)) + ")"
	}
}
