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
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"seehuhn.de/go/pcl"
	"seehuhn.de/go/pcl/names"
	"seehuhn.de/go/pcl/tools/internal/buildinfo"
	"seehuhn.de/go/pcl/tools/internal/profile"
)

var (
	statsArg   = flag.Bool("stats", false, "print how often each command occurs, instead of listing the commands")
	langArg    = flag.String("lang", "", "only show commands of the given comma separated `languages` (pcl, pjl, hpgl)")
	widthArg   = flag.Int("w", 0, "truncate output lines to `width` characters (default: terminal width)")
	offsetArg  = flag.Int64("offset", 0, "start decoding at byte `offset`, which must be in PCL mode")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "pcl-inspect \u2014 list the commands in a PCL data stream\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("pcl-inspect"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  pcl-inspect [options] <file>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file   one or more print files, or \"-\" for standard input\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pcl-inspect job.pcl\n")
		fmt.Fprintf(os.Stderr, "  pcl-inspect -stats -lang hpgl job.pcl\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	langs, err := parseLanguages(*langArg)
	if err != nil {
		return err
	}

	width := *widthArg
	if width == 0 {
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil {
				width = w
			}
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, fname := range flag.Args() {
		if flag.NArg() > 1 {
			fmt.Fprintf(out, "%s:\n", fname)
		}
		ins := &inspector{
			out:   out,
			langs: langs,
			width: width,
		}
		err := ins.inspect(fname, *offsetArg, *statsArg)
		if err != nil {
			return err
		}
	}
	return nil
}

// parseLanguages converts the argument of the -lang option.  A nil map
// selects all languages.
func parseLanguages(arg string) (map[pcl.Language]bool, error) {
	if arg == "" {
		return nil, nil
	}
	res := make(map[pcl.Language]bool)
	for _, name := range strings.Split(arg, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "pcl", "pcl5":
			res[pcl.PCL5] = true
		case "pjl":
			res[pcl.PJL] = true
		case "hpgl", "hp-gl/2", "hpgl2":
			res[pcl.HPGL2] = true
		default:
			return nil, fmt.Errorf("unknown language %q", name)
		}
	}
	return res, nil
}

type inspector struct {
	out   *bufio.Writer
	langs map[pcl.Language]bool
	width int

	counts map[statKey]int
	descs  map[statKey]string
}

type statKey struct {
	lang pcl.Language
	key  string
}

func (ins *inspector) inspect(fname string, offset int64, stats bool) error {
	var r io.Reader
	if fname == "-" {
		if offset != 0 {
			return errors.New("-offset cannot be used with standard input")
		}
		r = os.Stdin
	} else {
		fd, err := os.Open(fname)
		if err != nil {
			return err
		}
		defer fd.Close()
		r = fd
	}

	handle := ins.list
	if stats {
		ins.counts = make(map[statKey]int)
		ins.descs = make(map[statKey]string)
		handle = ins.count
	}

	var err error
	if rs, ok := r.(io.ReadSeeker); ok && offset > 0 {
		err = pcl.ParseAt(rs, offset, nil, handle)
	} else {
		err = pcl.Parse(r, nil, handle)
	}

	if stats {
		ins.printStats()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func (ins *inspector) list(cmd pcl.Command) error {
	if !ins.selected(cmd) {
		return nil
	}

	display := cmd.Display()
	switch cmd := cmd.(type) {
	case pcl.Text:
		display = strconv.Quote(display)
	case pcl.ParameterizedCommand:
		if cmd.Data != nil {
			display += fmt.Sprintf(" [%d bytes]", len(cmd.Data))
		}
	}

	line := fmt.Sprintf("%10d  %-5s  %-24s  %s", cmd.Offset(), cmd.Key(), display, names.Describe(cmd))
	_, err := fmt.Fprintln(ins.out, ins.truncate(line))
	return err
}

func (ins *inspector) count(cmd pcl.Command) error {
	if !ins.selected(cmd) {
		return nil
	}
	key := statKey{language(cmd), cmd.Key()}
	if _, seen := ins.counts[key]; !seen {
		ins.descs[key] = names.Describe(cmd)
	}
	ins.counts[key]++
	return nil
}

func (ins *inspector) printStats() {
	keys := make([]statKey, 0, len(ins.counts))
	for key := range ins.counts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b statKey) int {
		if c := cmp.Compare(ins.counts[b], ins.counts[a]); c != 0 {
			return c
		}
		if c := cmp.Compare(a.lang, b.lang); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	for _, key := range keys {
		line := fmt.Sprintf("%10d  %-7s  %-5s  %s", ins.counts[key], key.lang, key.key, ins.descs[key])
		fmt.Fprintln(ins.out, ins.truncate(line))
	}
}

func (ins *inspector) selected(cmd pcl.Command) bool {
	return ins.langs == nil || ins.langs[language(cmd)]
}

func (ins *inspector) truncate(line string) string {
	if ins.width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= ins.width {
		return line
	}
	return string(runes[:ins.width])
}

// language returns the printer language a command belongs to.
func language(cmd pcl.Command) pcl.Language {
	switch cmd.(type) {
	case pcl.PjlCommand:
		return pcl.PJL
	case pcl.HpglCommand:
		return pcl.HPGL2
	default:
		return pcl.PCL5
	}
}
