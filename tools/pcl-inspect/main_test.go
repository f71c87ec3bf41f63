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

package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pcl"
)

func TestParseLanguages(t *testing.T) {
	got, err := parseLanguages("pcl, HPGL")
	if err != nil {
		t.Fatal(err)
	}
	want := map[pcl.Language]bool{pcl.PCL5: true, pcl.HPGL2: true}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected languages (-want +got):\n%s", d)
	}

	if _, err := parseLanguages("xl"); err == nil {
		t.Error("missing error for unknown language")
	}
}

func TestStats(t *testing.T) {
	buf := &bytes.Buffer{}
	ins := &inspector{
		out:    bufio.NewWriter(buf),
		langs:  map[pcl.Language]bool{pcl.PCL5: true},
		counts: map[statKey]int{},
		descs:  map[statKey]string{},
	}
	in := "\x1bE\x1b%0BIN;\x1b%0A\x1bE\r\n"
	err := pcl.Parse(strings.NewReader(in), nil, ins.count)
	if err != nil {
		t.Fatal(err)
	}
	ins.printStats()
	ins.out.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "Printer Reset") || !strings.HasPrefix(strings.TrimSpace(lines[0]), "2 ") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if strings.Contains(buf.String(), "IN") {
		t.Error("HP-GL/2 command not filtered")
	}
}

func TestTruncate(t *testing.T) {
	ins := &inspector{width: 4}
	if got := ins.truncate("äbcdef"); got != "äbcd" {
		t.Errorf("got %q", got)
	}
	ins.width = 0
	if got := ins.truncate("abcdef"); got != "abcdef" {
		t.Errorf("got %q", got)
	}
}
