/*
Package fasta reads and writes multi-record FASTA files, converting each
record to and from a feature.Construct holding only a sequence (FASTA
carries no annotations).

The line-scanning approach (bufio.Scanner, ';' comment lines, '>' header
lines, buffering sequence lines until the next header) is grounded on the
teacher's io/fasta/fasta.go ParseConcurrent.
*/
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// Record is one FASTA entry: a header and the construct it decodes to
// (topology is always Linear; FASTA has no way to express circularity).
type Record struct {
	Name     string
	Construct feature.Construct
}

// ParseAll reads every record in r (spec.md S4.9: "multi-record read").
func ParseAll(r io.Reader) ([]Record, error) {
	var records []Record
	var lines []string
	var name string
	started := false

	flush := func() {
		if !started {
			return
		}
		s, skipped := seq.FromStringLenient(strings.Join(lines, ""))
		_ = skipped
		c := feature.New()
		c.Topology = seq.Linear
		c.Seq = s
		c.Metadata.PlasmidName = name
		records = append(records, Record{Name: name, Construct: c})
		lines = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024*64)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case len(line) == 0:
			continue
		case line[0] == ';':
			continue
		case line[0] == '>':
			flush()
			name = strings.TrimSpace(line[1:])
			started = true
		default:
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scan: %w", err)
	}
	flush()
	return records, nil
}

// WriteAll writes every record to w, 60 columns per sequence line (spec.md
// S4.9).
func WriteAll(w io.Writer, records []Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.Name); err != nil {
			return err
		}
		letters := rec.Construct.Seq.String()
		for i := 0; i < len(letters); i += 60 {
			end := i + 60
			if end > len(letters) {
				end = len(letters)
			}
			if _, err := fmt.Fprintln(w, letters[i:end]); err != nil {
				return err
			}
		}
		if len(letters) == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
