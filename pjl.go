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

import "bytes"

var pjlPrefix = []byte("@PJL")

// lexPJL decodes PJL command lines, starting with the already read byte c.
// An escape byte at the start of a line returns control to PCL5.
func (p *parser) lexPJL(c int) (int, Language, error) {
	for {
		switch c {
		case Escape:
			return c, PCL5, nil
		case eos:
			return eos, PJL, nil
		}

		start := p.lastPos()
		var raw []byte
		for c != LineFeed {
			if c == eos {
				if !hasPJLPrefix(raw, true) {
					return eos, PJL, p.malformed(start, errMissingPJL)
				}
				return eos, PJL, p.truncated(PJL)
			}
			raw = append(raw, byte(c))
			c = p.cur.next()
		}
		raw = append(raw, LineFeed)

		line := trimRight(raw)
		if !hasPJLPrefix(line, false) {
			return eos, PJL, p.malformed(start, errMissingPJL)
		}
		err := p.emit(PjlCommand{Pos: start, Command: string(line), Raw: raw})
		if err != nil {
			return eos, PJL, err
		}

		c = p.cur.next()
	}
}

// hasPJLPrefix reports whether line starts with "@PJL".  If partial is set,
// a line which is a prefix of "@PJL" is also accepted.
func hasPJLPrefix(line []byte, partial bool) bool {
	if partial && len(line) < len(pjlPrefix) {
		return bytes.HasPrefix(pjlPrefix, line)
	}
	return bytes.HasPrefix(line, pjlPrefix)
}

// trimRight removes the line ending and any trailing white space.
func trimRight(line []byte) []byte {
	n := len(line)
	for n > 0 && line[n-1] <= ' ' {
		n--
	}
	return line[:n]
}
