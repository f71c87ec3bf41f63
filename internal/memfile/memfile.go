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

// Package memfile implements an in-memory data stream for tests.
package memfile

import (
	"errors"
	"io"
)

// File holds a data stream in memory.
//
// This type implements the [io.ReadWriteSeeker] interface.  In addition to
// the stream contents, File records which part of the stream has been read,
// so that tests can check that decoding starts at the requested offset.
type File struct {
	// Data are the stream contents.
	Data []byte

	// Offset is the current stream offset.
	Offset int64

	// ChunkSize, if positive, limits the number of bytes returned by a
	// single call to Read.
	ChunkSize int

	// Lowest is the smallest offset at which data has been read, or -1 if
	// no data has been read yet.
	Lowest int64
}

// New creates a new File with the given contents.
func New(data []byte) *File {
	return &File{
		Data:   data,
		Lowest: -1,
	}
}

// Write writes data at the current offset.  If the offset is beyond the
// end of the stream, the gap is filled with zero bytes.
// This implements the [io.Writer] interface.
func (f *File) Write(p []byte) (int, error) {
	if gap := f.Offset - int64(len(f.Data)); gap > 0 {
		f.Data = append(f.Data, make([]byte, gap)...)
	}
	n := copy(f.Data[f.Offset:], p)
	f.Data = append(f.Data, p[n:]...)
	f.Offset += int64(len(p))
	return len(p), nil
}

// Read reads data from the current offset.
// This implements the [io.Reader] interface.
func (f *File) Read(p []byte) (int, error) {
	if f.Offset >= int64(len(f.Data)) {
		return 0, io.EOF
	}
	if f.ChunkSize > 0 && len(p) > f.ChunkSize {
		p = p[:f.ChunkSize]
	}
	if f.Lowest < 0 || f.Offset < f.Lowest {
		f.Lowest = f.Offset
	}
	n := copy(p, f.Data[f.Offset:])
	f.Offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read or Write.
// This implements the [io.Seeker] interface.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.Offset + offset
	case io.SeekEnd:
		newOffset = int64(len(f.Data)) + offset
	default:
		return 0, errInvalidWhence
	}

	if newOffset < 0 {
		return 0, errInvalidOffset
	}

	f.Offset = newOffset
	return newOffset, nil
}

var (
	errInvalidWhence = errors.New("invalid whence")
	errInvalidOffset = errors.New("invalid offset")
)
