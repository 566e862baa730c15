// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package dimacs reads and writes the DIMACS CNF text format used by the
// SAT competition and most public benchmark suites.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

// ReadCNF parses a DIMACS CNF file from r. Lines starting with "c" are
// comments, the "p cnf nvars nclauses" line is validated but its counts
// are advisory only, and every clause is terminated by a literal "0".
func ReadCNF(r io.Reader) (sat.CNF, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var cnf sat.CNF
	var cur []z.Lit
	sawHeader := false
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "c") {
			continue
		}
		if strings.HasPrefix(text, "p") {
			fields := strings.Fields(text)
			if len(fields) < 4 || fields[1] != "cnf" {
				return nil, errors.Errorf("dimacs: line %d: malformed problem line %q", line, text)
			}
			sawHeader = true
			continue
		}
		for _, tok := range strings.Fields(text) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "dimacs: line %d: bad literal %q", line, tok)
			}
			if n == 0 {
				cnf = append(cnf, sat.NewClause(cur...))
				cur = cur[:0]
				continue
			}
			cur = append(cur, z.Dimacs2Lit(n))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dimacs: read")
	}
	if !sawHeader {
		return nil, errors.New("dimacs: missing problem line")
	}
	if len(cur) != 0 {
		return nil, errors.New("dimacs: trailing clause missing terminating 0")
	}
	return cnf, nil
}

// WriteModel writes a satisfying assignment in the DIMACS solution
// format ("v lit lit ... 0") for every variable from 1 through maxVar.
func WriteModel(w io.Writer, m sat.Model, maxVar z.Var) error {
	if _, err := io.WriteString(w, "v"); err != nil {
		return err
	}
	for v := z.Var(1); v <= maxVar; v++ {
		lit := v.Pos()
		if !m[v] {
			lit = v.Neg()
		}
		if _, err := fmt.Fprintf(w, " %d", lit.Dimacs()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " 0\n")
	return err
}
