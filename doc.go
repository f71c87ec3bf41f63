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

// Package pcl decodes printer data streams.
//
// A printer data stream is a mixture of PCL5 escape sequences, control
// characters and printable text, with embedded job control lines in the
// Printer Job Language (PJL) and embedded HP-GL/2 vector graphics.  This
// package splits such a stream into a sequence of commands, each tagged with
// the byte offset at which it starts.  The commands are not interpreted.
//
// Commands are delivered to a [Handler] as soon as they are recognized:
//
//	err := pcl.Parse(r, nil, func(cmd pcl.Command) error {
//	    fmt.Printf("%8d %s\n", cmd.Offset(), cmd.Display())
//	    return nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The following types implement the [Command] interface:
//
//	Text
//	ControlCharacter
//	TwoByteCommand
//	ParameterizedCommand
//	PjlCommand
//	HpglCommand
//
// Every command remembers enough of its wire form that writing all commands
// of a stream back, using [Write] or the Bytes method, reproduces the
// original stream exactly.
//
// Errors are either a [*TruncatedError], if the stream ends in the middle of
// a command, or a [*MalformedError], if the stream violates the grammar.
// Parsing stops at the first error; commands delivered before the error
// remain valid.
package pcl
