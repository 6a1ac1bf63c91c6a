// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim runs the logic simulator demos.
//
//	logicsim [-v] [-i] [-a BITS -b BITS] [-watch PATHS] [demo...]
//
// Without arguments, all demos are run in sequence. The latch, div2 and
// counter demos read their commands from stdin, one per line. With -i and a
// terminal, they run as a full screen interactive session instead.
//
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [demo...]\n\nDemos: %s, all\n\nFlags:\n",
		os.Args[0], strings.Join(demoNames(), ", "))
	flag.PrintDefaults()
}

func main() {
	var (
		verbose     = flag.Bool("v", false, "Verbose: log every wire transition to stderr")
		interactive = flag.Bool("i", false, "Run the latch, div2, counter and adder4 demos in a terminal UI")
		a           = flag.String("a", "1110", "First operand of the adder4 demo, msb first")
		b           = flag.String("b", "0010", "Second operand of the adder4 demo, msb first")
		watch       = flag.String("watch", "", "Comma separated `paths` of extra wires to monitor, i.e. ff1.N[1..2].C")
	)
	flag.Usage = usage
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() // nolint: errcheck
	logicsim.SetLogger(log)

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"all"}
	}
	sel, err := selectDemos(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(2)
	}

	if *interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Warn("stdin is not a terminal, running in scripted mode")
		*interactive = false
	}

	env := &env{
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
		a:     *a,
		b:     *b,
		watch: *watch,
	}
	for _, d := range sel {
		if *interactive && d.session != nil {
			err = runInteractive(d.session(env))
		} else {
			err = d.run(env)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", errors.Wrapf(err, "demo %s", d.name))
			os.Exit(1)
		}
	}
}
