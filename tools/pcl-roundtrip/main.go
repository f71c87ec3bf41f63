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
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/tools/internal/buildinfo"
	"seehuhn.de/go/pcl/tools/internal/profile"
)

var (
	outArg     = flag.String("o", "", "write the re-encoded data stream to `file`")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pcl-roundtrip \u2014 check that a PCL data stream decodes and re-encodes exactly\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pcl-roundtrip"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pcl-roundtrip [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fname string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	w := pcl.NewWriter(buf)
	numCommands := 0
	err = pcl.Parse(bytes.NewReader(data), nil, func(cmd pcl.Command) error {
		numCommands++
		return w.Handle(cmd)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	err = w.Flush()
	if err != nil {
		return err
	}

	if *outArg != "" {
		err = os.WriteFile(*outArg, buf.Bytes(), 0o644)
		if err != nil {
			return err
		}
	}

	if pos := mismatch(data, buf.Bytes()); pos >= 0 {
		return fmt.Errorf("%s: re-encoded stream differs at byte %d", fname, pos)
	}
	fmt.Printf("%s: %d commands, %d bytes, ok\n", fname, numCommands, w.Count())
	return nil
}

// mismatch returns the first offset where a and b differ, or -1 if they
// are equal.
func mismatch(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
