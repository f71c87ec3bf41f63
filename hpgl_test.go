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
	"testing"

	"github.com/google/go-cmp/cmp"
)

var hpglTestCases = []lexerTestCase{
	{"", nil},
	{"IN;", []Command{HpglCommand{Pos: 0, Name: "IN"}}},
	{"IN;PU10,20;", []Command{
		HpglCommand{Pos: 0, Name: "IN"},
		HpglCommand{Pos: 3, Name: "PU", Params: "10,20"},
	}},
	{"in;pu 10 , 20 ;", []Command{
		HpglCommand{Pos: 0, Name: "IN"},
		HpglCommand{Pos: 3, Name: "PU", Params: "10 , 20"},
	}},
	{`IN;COba;CO"Foo";CO"Hello ""World""";CO"1 ""2"" 3";IN;`, []Command{
		HpglCommand{Pos: 0, Name: "IN"},
		HpglCommand{Pos: 3, Name: "CO", Params: "ba"},
		HpglCommand{Pos: 8, Name: "CO", Params: `"Foo"`},
		HpglCommand{Pos: 16, Name: "CO", Params: `"Hello "World""`},
		HpglCommand{Pos: 36, Name: "CO", Params: `"1 "2" 3"`},
		HpglCommand{Pos: 50, Name: "IN"},
	}},
	{`LB"a;b";`, []Command{HpglCommand{Pos: 0, Name: "LB", Params: `"a;b"`}}},
	{`LB"abc"PU;`, []Command{
		HpglCommand{Pos: 0, Name: "LB", Params: `"abc"`},
		HpglCommand{Pos: 7, Name: "PU"},
	}},
	{esc("IN;~E"), []Command{
		HpglCommand{Pos: 0, Name: "IN"},
		TwoByteCommand{3, 'E'},
	}},
	{esc("PA0,0;~%1A~%1BPU;"), []Command{
		HpglCommand{Pos: 0, Name: "PA", Params: "0,0"},
		ParameterizedCommand{Pos: 6, Parameterized: '%', Value: "1", Termination: 'A'},
		ParameterizedCommand{Pos: 10, Parameterized: '%', Value: "1", Termination: 'B'},
		HpglCommand{Pos: 14, Name: "PU"},
	}},
}

func TestHPGL(t *testing.T) {
	for i, tc := range hpglTestCases {
		got, err := lex(tc.in, HPGL2)
		if err != nil {
			t.Errorf("%d: %q: %v", i, tc.in, err)
			continue
		}
		if d := cmp.Diff(tc.want, got, ignoreRaw, ignoreRawHPGL); d != "" {
			t.Errorf("%d: %q: unexpected commands (-want +got):\n%s", i, tc.in, d)
		}
	}
}

func TestHPGLRaw(t *testing.T) {
	in := `co"a""b";pu;`
	got, err := lex(in, HPGL2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Command{
		HpglCommand{Pos: 0, Name: "CO", Params: `"a"b"`, Raw: []byte(`co"a""b";`)},
		HpglCommand{Pos: 9, Name: "PU", Raw: []byte("pu;")},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
}

func TestHPGLErrors(t *testing.T) {
	cases := []struct {
		in      string
		pos     uint64
		numGood int
	}{
		{"IN;P", 4, 1},
		{"IN", 2, 0},
		{"PU10,20", 7, 0},
		{`LB"abc`, 6, 0},
		{`LB"a;b`, 6, 0},
	}
	for i, tc := range cases {
		got, err := lex(tc.in, HPGL2)
		if len(got) != tc.numGood {
			t.Errorf("%d: %q: got %d commands, want %d", i, tc.in, len(got), tc.numGood)
		}
		var e *TruncatedError
		if !errors.As(err, &e) {
			t.Errorf("%d: %q: expected TruncatedError, got %v", i, tc.in, err)
			continue
		}
		if e.Pos != tc.pos || e.Lang != HPGL2 {
			t.Errorf("%d: %q: wrong error %#v", i, tc.in, e)
		}
	}
}
