// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Lookup returns the wire with the given path. A path is made of the
// dot separated names of a top level gate, its sub-gates, and a wire name, as
// in "F0.H1.X1.A". If several top level gates have the same name, the first
// one is used.
//
func (c *Circuit) Lookup(path string) (Wire, error) {
	names := strings.Split(path, ".")
	if len(names) < 2 {
		return -1, errors.Errorf("lookup %q: expected a gate and a wire name", path)
	}
	var g *Gate
	for _, r := range c.gates {
		if r.parent == nil && r.name == names[0] {
			g = r
			break
		}
	}
	if g == nil {
		return -1, errors.Errorf("lookup %q: no gate named %s", path, names[0])
	}
	for _, n := range names[1 : len(names)-1] {
		var p *Gate
		for _, sub := range g.parts {
			if sub.name == n {
				p = sub
				break
			}
		}
		if p == nil {
			return -1, errors.Errorf("lookup %q: %s has no part named %s", path, g.Path(), n)
		}
		g = p
	}
	wn := names[len(names)-1]
	for _, n := range g.pins {
		if c.wires[n].name == wn {
			return n, nil
		}
	}
	return -1, errors.Errorf("lookup %q: %s has no wire named %s", path, g.Path(), wn)
}

// LookupAll returns the wires matching a comma separated list of paths. Each
// path may contain one numeric range that expands to several paths:
//
//	c.LookupAll("F[0..3].S, F3.Cout") // F0.S, F1.S, F2.S, F3.S, F3.Cout
//
// Ranges may count down, as in "F[3..0].S".
//
func (c *Circuit) LookupAll(paths string) ([]Wire, error) {
	var out []Wire
	for _, p := range strings.Split(paths, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		names, err := ExpandRange(p)
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			w, err := c.Lookup(n)
			if err != nil {
				return nil, err
			}
			out = append(out, w)
		}
	}
	return out, nil
}

// MaxRange is the largest number of names a single range may expand to.
const MaxRange = 1024

// ExpandRange expands the first range in a path:
//
//	ExpandRange("B[0..2].Q") // []string{"B0.Q", "B1.Q", "B2.Q"}
//
// Paths without a range are returned as is.
//
func ExpandRange(path string) ([]string, error) {
	i := strings.IndexRune(path, '[')
	if i < 0 {
		return []string{path}, nil
	}
	prefix := path[:i]
	if prefix == "" || strings.HasSuffix(prefix, ".") {
		return nil, rangeError(path, i, "empty name before range")
	}
	n := path[i+1:]
	j := strings.Index(n, "..")
	if j < 0 {
		return nil, rangeError(path, i+1, "expected range start..end")
	}
	start, err := strconv.Atoi(n[:j])
	if err != nil {
		return nil, rangeError(path, i+1, "invalid range start")
	}
	n = n[j+2:]
	k := strings.IndexRune(n, ']')
	if k < 0 {
		return nil, rangeError(path, i+j+3, "no terminating ] in range")
	}
	end, err := strconv.Atoi(n[:k])
	if err != nil {
		return nil, rangeError(path, i+j+3, "invalid range end")
	}
	suffix := n[k+1:]

	step := 1
	width := uint64(end) - uint64(start)
	if end < start {
		step = -1
		width = uint64(start) - uint64(end)
	}
	if width >= MaxRange {
		return nil, rangeError(path, i, "range wider than "+strconv.Itoa(MaxRange))
	}
	r := make([]string, 0, int(width)+1)
	for x := start; ; x += step {
		r = append(r, prefix+strconv.Itoa(x)+suffix)
		if x == end {
			break
		}
	}
	return r, nil
}

func rangeError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
