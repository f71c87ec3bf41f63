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

import "strings"

const (
	hpglTerminator = ';'
	hpglQuote      = '"'
)

// lexHPGL decodes HP-GL/2 commands, starting with the already read byte c.
// An escape byte in place of a command name returns control to PCL5.
//
// Only commands terminated by the default terminator ";" are supported.
// This is the convention for HP-GL/2 embedded in PCL.
func (p *parser) lexHPGL(c int) (int, Language, error) {
	for c != eos && c != Escape {
		start := p.lastPos()
		c2 := p.cur.next()
		if c2 == eos {
			return eos, HPGL2, p.truncated(HPGL2)
		}

		var err error
		c, err = p.hpglCommand(start, byte(c), byte(c2))
		if err != nil {
			return eos, HPGL2, err
		}
	}
	if c == Escape {
		return c, PCL5, nil
	}
	return eos, HPGL2, nil
}

// hpglCommand reads the parameters of a command and emits the command.  It
// returns the first byte after the command.
//
// Some commands, like "CO" (Comment) and "LB" (Label), take strings in
// double quotes.  A ";" within quotes does not end the command, and two
// consecutive quotes within a quoted string stand for one quote character.
// If a closing quote is not followed by ";", the command ends after the
// quote.
func (p *parser) hpglCommand(start uint64, b1, b2 byte) (int, error) {
	raw := []byte{b1, b2}
	name := string([]byte{toUpperASCII(b1), toUpperASCII(b2)})

	var params []byte
	inQuotes := false
	c := p.cur.next()
	for c != eos {
		raw = append(raw, byte(c))
		if c == hpglTerminator && !inQuotes {
			err := p.emitHPGL(start, name, params, raw)
			return p.cur.next(), err
		}
		params = append(params, byte(c))

		if c == hpglQuote {
			if !inQuotes {
				inQuotes = true
			} else {
				next := p.cur.next()
				switch next {
				case hpglQuote:
					raw = append(raw, hpglQuote)
				case hpglTerminator:
					raw = append(raw, hpglTerminator)
					err := p.emitHPGL(start, name, params, raw)
					return p.cur.next(), err
				default:
					err := p.emitHPGL(start, name, params, raw)
					return next, err
				}
			}
		}

		c = p.cur.next()
	}

	// The last command must have a terminator, so the data stream has been
	// truncated.
	return eos, p.truncated(HPGL2)
}

func (p *parser) emitHPGL(start uint64, name string, params, raw []byte) error {
	return p.emit(HpglCommand{
		Pos:    start,
		Name:   name,
		Params: strings.TrimFunc(string(params), isHPGLSpace),
		Raw:    raw,
	})
}

func isHPGLSpace(r rune) bool {
	return r <= ' '
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
