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
)

const cursorBufSize = 4096

// eos is returned by cursor.next at the end of the stream.
const eos = -1

// A cursor reads a byte stream strictly forward and keeps track of the
// stream offset.
//
// Read errors other than io.EOF are recorded in err and reported as the end
// of the stream.  The parser checks err before reporting a truncated stream,
// so that I/O errors are not mistaken for grammar errors.
type cursor struct {
	r         io.Reader
	buf       []byte
	used, pos int

	// total is the stream offset of buf[0].
	total uint64

	err error
}

func newCursor(r io.Reader, start uint64) *cursor {
	return &cursor{
		r:     r,
		buf:   make([]byte, cursorBufSize),
		total: start,
	}
}

// offset returns the stream position of the next unread byte.
func (c *cursor) offset() uint64 {
	return c.total + uint64(c.pos)
}

// next returns the next byte of the stream, or eos at the end of the stream.
func (c *cursor) next() int {
	if c.pos >= c.used && !c.refill() {
		return eos
	}
	b := c.buf[c.pos]
	c.pos++
	return int(b)
}

// readFull reads exactly n bytes.  If the stream ends before n bytes could be
// read, io.ErrUnexpectedEOF is returned.
func (c *cursor) readFull(n int) ([]byte, error) {
	res := make([]byte, 0, n)
	for len(res) < n {
		if c.pos >= c.used && !c.refill() {
			return res, io.ErrUnexpectedEOF
		}
		k := copy(res[len(res):n], c.buf[c.pos:c.used])
		res = res[:len(res)+k]
		c.pos += k
	}
	return res, nil
}

// refill discards all consumed data and reads more data from the
// underlying reader.  The return value indicates whether unread data is
// available afterwards.
func (c *cursor) refill() bool {
	if c.err != nil {
		return false
	}
	c.total += uint64(c.pos)
	c.pos = 0
	c.used = 0
	for c.used == 0 {
		n, err := c.r.Read(c.buf)
		c.used = n
		if err != nil {
			if !errors.Is(err, io.EOF) {
				c.err = err
			} else if n == 0 {
				c.err = io.EOF
			}
			break
		}
	}
	return c.used > 0
}

// ioError returns the read error encountered so far, if any.  The end of
// the stream is not considered an error.
func (c *cursor) ioError() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}
