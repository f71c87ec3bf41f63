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
	"bufio"
	"io"
)

// Write writes the wire form of the given commands to w.
//
// Writing all commands decoded from a data stream, in the order they were
// decoded, reproduces the original data stream.
func Write(w io.Writer, cmds ...Command) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range cmds {
		_, err := cmd.WriteTo(bw)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// A Writer re-encodes commands as they are decoded.  It can be used as a
// [Handler], to copy a data stream while inspecting it.
type Writer struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewWriter returns a new Writer which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Handle writes the wire form of cmd.
func (w *Writer) Handle(cmd Command) error {
	if w.err != nil {
		return w.err
	}
	n, err := cmd.WriteTo(w.w)
	w.n += n
	w.err = err
	return err
}

// Count returns the number of bytes written so far.
func (w *Writer) Count() int64 {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
