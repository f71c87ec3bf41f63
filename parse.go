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
	"context"
	"io"
)

// A Handler is called once for every command decoded from a data stream, in
// stream order.  If the handler returns an error, parsing stops and the
// error is returned to the caller.
type Handler func(Command) error

// Options can be used to control the parser.
type Options struct {
	// Context, if not nil, is checked before every command is delivered.
	// Once the context is done, parsing stops and the context's error is
	// returned.
	Context context.Context
}

// Parse decodes the data stream r and calls h for every command.
//
// The stream is read strictly forward, starting in PCL5 mode.  Parsing
// stops at the end of the stream, at the first error in the data stream, or
// when h returns an error.  The options can be nil.
func Parse(r io.Reader, opt *Options, h Handler) error {
	p := newParser(newCursor(r, 0), opt, h)
	return p.run(PCL5)
}

// ParseAt is like [Parse], but starts decoding at the given offset of a
// seekable stream.  All offsets in the decoded commands and in error
// values are measured from the start of the stream.
//
// The offset must point to a byte where PCL5 mode was active, for example
// the start of a command previously reported by [Parse].
func ParseAt(rs io.ReadSeeker, offset int64, opt *Options, h Handler) error {
	_, err := rs.Seek(offset, io.SeekStart)
	if err != nil {
		return err
	}
	p := newParser(newCursor(rs, uint64(offset)), opt, h)
	return p.run(PCL5)
}

// Decode reads all commands from r.  If an error occurs, the commands
// decoded before the error are returned together with the error.
func Decode(r io.Reader, opt *Options) ([]Command, error) {
	var res []Command
	err := Parse(r, opt, func(cmd Command) error {
		res = append(res, cmd)
		return nil
	})
	return res, err
}

// parser holds the state shared by the PCL5, PJL and HP-GL/2 lexers.
type parser struct {
	cur    *cursor
	handle Handler
	ctx    context.Context
}

func newParser(cur *cursor, opt *Options, h Handler) *parser {
	p := &parser{
		cur:    cur,
		handle: h,
	}
	if opt != nil {
		p.ctx = opt.Context
	}
	return p
}

// run drives the lexers, starting in the given language.  Every lexer
// returns the first byte it did not consume, together with the language to
// continue in.  Mode switches are handled here rather than by nested calls,
// so that the call depth stays bounded no matter how often the data stream
// switches languages.
func (p *parser) run(lang Language) error {
	c := p.cur.next()
	for c != eos {
		var err error
		switch lang {
		case PCL5:
			c, lang, err = p.lexPCL(c)
		case PJL:
			c, lang, err = p.lexPJL(c)
		case HPGL2:
			c, lang, err = p.lexHPGL(c)
		}
		if err != nil {
			return err
		}
	}
	return p.cur.ioError()
}

func (p *parser) emit(cmd Command) error {
	if p.ctx != nil {
		if err := p.ctx.Err(); err != nil {
			return err
		}
	}
	return p.handle(cmd)
}

// truncated returns the error for an unexpected end of the stream.  Read
// errors take precedence, since they are the reason the stream ended.
func (p *parser) truncated(lang Language) error {
	if err := p.cur.ioError(); err != nil {
		return err
	}
	return &TruncatedError{Pos: p.cur.offset(), Lang: lang}
}

// malformed returns an error for the byte at the given offset.
func (p *parser) malformed(pos uint64, err error) error {
	return &MalformedError{Pos: pos, Err: err}
}

// lastPos returns the offset of the most recently read byte.
func (p *parser) lastPos() uint64 {
	return p.cur.offset() - 1
}
