// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Command smtcore reads a DIMACS CNF file and reports SAT/UNSAT, mirroring
// the basic mode of go-air/gini's cmd/gini (file-or-stdin input,
// gzip/bzip2 transparent decompression, -model/-timeout/-satcomp flags),
// dropped down to the boolean SAT engine of spec §4.1.
package main

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-air/smtcore/dimacs"
	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

var (
	timeout = flag.Duration("timeout", 30*time.Second, "solve timeout")
	model   = flag.Bool("model", false, "print a satisfying model")
	satcomp = flag.Bool("satcomp", false, "exit 10 sat, 20 unsat, 0 unknown, per the SAT competition convention")
)

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(p, ".gz"):
		return gzip.NewReader(f)
	case strings.HasSuffix(p, ".bz2"):
		return bzip2.NewReader(f), nil
	default:
		return f, nil
	}
}

// solveFile returns the SAT competition's ternary outcome: 1 sat, -1
// unsat, 0 unknown (timed out, or the file could not be read or parsed).
func solveFile(path string) int {
	r, err := path2Reader(path)
	if err != nil {
		log.Printf("%s: %s", path, err)
		return 0
	}
	if rc, ok := r.(io.Closer); ok {
		defer rc.Close()
	}
	cnf, err := dimacs.ReadCNF(r)
	if err != nil {
		log.Printf("%s: %s", path, err)
		return 0
	}

	type outcome struct {
		m  sat.Model
		ok bool
	}
	done := make(chan outcome, 1)
	go func() {
		m, ok := sat.NewCDCL(cnf).Solve()
		done <- outcome{m, ok}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	select {
	case <-ctx.Done():
		fmt.Println("s UNKNOWN")
		return 0
	case out := <-done:
		if !out.ok {
			fmt.Println("s UNSATISFIABLE")
			return -1
		}
		fmt.Println("s SATISFIABLE")
		if *model {
			maxVar := z.Var(0)
			for _, c := range cnf {
				for lit := range c {
					if v := lit.Var(); v > maxVar {
						maxVar = v
					}
				}
			}
			dimacs.WriteModel(os.Stdout, out.m, maxVar)
		}
		return 1
	}
}

func handleExit(res int) {
	if !*satcomp {
		return
	}
	switch res {
	case 1:
		os.Exit(10)
	case -1:
		os.Exit(20)
	default:
		os.Exit(0)
	}
}

func main() {
	log.SetPrefix("c [smtcore] ")
	flag.Usage = func() {
		p := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.cnf[.gz|.bz2] ...\n", p)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		res := solveFile("-")
		handleExit(res)
		return
	}
	var last int
	for i := 0; i < flag.NArg(); i++ {
		last = solveFile(flag.Arg(i))
	}
	handleExit(last)
}
