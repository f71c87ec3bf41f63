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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	in := esc("~E~&l1s26A\r\n~%-12345X@PJL ENTER LANGUAGE=PCL\r\n~*b3W\x00~\x01~%0BLB\"a;\"\"b\";PU;~%0Aend")
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	err := Parse(strings.NewReader(in), nil, w.Handle)
	if err != nil {
		t.Fatal(err)
	}
	err = w.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("round trip failed:\n%q\n%q", in, buf.String())
	}
	if w.Count() != int64(len(in)) {
		t.Errorf("Count() = %d, want %d", w.Count(), len(in))
	}
}

// TestWriteCanonical checks the wire form of commands which were not
// decoded from a data stream.
func TestWriteCanonical(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Write(buf,
		ParameterizedCommand{Parameterized: '%', Value: "-12345", Termination: 'X'},
		PjlCommand{Command: "@PJL ENTER LANGUAGE=PCL"},
		TwoByteCommand{Operation: 'E'},
		ParameterizedCommand{Parameterized: '%', Value: "0", Termination: 'B'},
		HpglCommand{Name: "IN"},
		HpglCommand{Name: "PD", Params: "1,2"},
		ParameterizedCommand{Parameterized: '%', Value: "0", Termination: 'A'},
		Text{Data: []byte("hello")},
		ControlCharacter{Char: FormFeed},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := esc("~%-12345X@PJL ENTER LANGUAGE=PCL\r\n~E~%0BIN;PD1,2;~%0Ahello\f")
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	// The canonical form decodes to the same commands.
	cmds, err := Decode(strings.NewReader(want), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 9 {
		t.Errorf("got %d commands, want 9", len(cmds))
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{})
	big := Text{Data: bytes.Repeat([]byte("x"), 10000)}
	err := w.Handle(big)
	if !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
	if err := w.Handle(TwoByteCommand{Operation: 'E'}); !errors.Is(err, errWrite) {
		t.Errorf("error is not sticky: %v", err)
	}
	if err := w.Flush(); !errors.Is(err, errWrite) {
		t.Errorf("Flush: %v", err)
	}

	err = Write(failingWriter{}, big)
	if !errors.Is(err, errWrite) {
		t.Error("missing error from Write")
	}
}
