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

package memfile

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadWrite(t *testing.T) {
	f := New(nil)
	f.Write([]byte("hello"))
	f.Seek(1, io.SeekStart)
	f.Write([]byte("EL"))
	f.Seek(7, io.SeekStart)
	f.Write([]byte("!"))

	want := []byte("hELlo\x00\x00!")
	if d := cmp.Diff(want, f.Data); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}

	pos, err := f.Seek(-3, io.SeekEnd)
	if err != nil || pos != 5 {
		t.Fatalf("Seek: %d %v", pos, err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte("\x00\x00!"), got); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}
	if f.Lowest != 5 {
		t.Errorf("Lowest = %d, want 5", f.Lowest)
	}
}

func TestChunkSize(t *testing.T) {
	f := New([]byte("abcdef"))
	f.ChunkSize = 4
	buf := make([]byte, 10)
	n, err := f.Read(buf)
	if n != 4 || err != nil {
		t.Errorf("Read: %d %v", n, err)
	}
	n, err = f.Read(buf)
	if n != 2 || err != nil {
		t.Errorf("Read: %d %v", n, err)
	}
	n, err = f.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read: %d %v", n, err)
	}
}

func TestSeekErrors(t *testing.T) {
	f := New([]byte("abc"))
	if _, err := f.Seek(-1, io.SeekStart); err != errInvalidOffset {
		t.Errorf("expected errInvalidOffset, got %v", err)
	}
	if _, err := f.Seek(0, 42); err != errInvalidWhence {
		t.Errorf("expected errInvalidWhence, got %v", err)
	}
}
