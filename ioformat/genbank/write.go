package genbank

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/genomancer/plasmidcore/feature"
)

// Write emits c as a single GenBank record (spec.md S4.6: "Writing reverses
// the mapping"). Feature direction Forward/Reverse emits direction=right|
// left; Reverse features wrap their Location in complement(...); primers
// emit as primer_bind features carrying their binding range, not their
// sequence; sequence is written as lowercase 60-column rows with position
// prefixes.
func Write(w io.Writer, c feature.Construct) error {
	if err := writeLocus(w, c); err != nil {
		return err
	}
	if err := writeWrappedField(w, "DEFINITION", c.Metadata.Definition); err != nil {
		return err
	}
	if err := writeWrappedField(w, "ACCESSION", c.Metadata.Accession); err != nil {
		return err
	}
	if err := writeWrappedField(w, "VERSION", c.Metadata.Version); err != nil {
		return err
	}
	if err := writeWrappedField(w, "KEYWORDS", c.Metadata.Keywords); err != nil {
		return err
	}
	if c.Metadata.Source != "" || c.Metadata.Organism != "" {
		if _, err := fmt.Fprintf(w, "SOURCE      %s\n", c.Metadata.Source); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  ORGANISM  %s\n", c.Metadata.Organism); err != nil {
			return err
		}
	}
	for i, ref := range c.Metadata.References {
		if err := writeReference(w, i+1, ref); err != nil {
			return err
		}
	}
	for _, comment := range c.Metadata.Comments {
		if err := writeWrappedField(w, "COMMENT", comment); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "FEATURES             Location/Qualifiers"); err != nil {
		return err
	}
	for _, f := range c.Features {
		if err := writeFeature(w, f); err != nil {
			return err
		}
	}
	for _, p := range c.Primers {
		if err := writePrimer(w, p); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "ORIGIN"); err != nil {
		return err
	}
	if err := writeOrigin(w, c); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}

func writeLocus(w io.Writer, c feature.Construct) error {
	topology := "linear"
	if c.Topology.String() == "circular" {
		topology = "circular"
	}
	name := c.Metadata.PlasmidName
	if name == "" {
		name = "UNNAMED"
	}
	_, err := fmt.Fprintf(w, "LOCUS       %-16s %5d bp    DNA     %s %s\n", name, c.Len(), topology, c.Metadata.Division)
	return err
}

func writeWrappedField(w io.Writer, keyword, value string) error {
	if value == "" {
		return nil
	}
	wrapped := wordwrap.WrapString(value, 68)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		prefix := strings.Repeat(" ", 12)
		if i == 0 {
			prefix = fmt.Sprintf("%-12s", keyword)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}

func writeReference(w io.Writer, n int, ref feature.Reference) error {
	if _, err := fmt.Fprintf(w, "REFERENCE   %d\n", n); err != nil {
		return err
	}
	fields := []struct{ key, val string }{
		{"AUTHORS", ref.Authors},
		{"CONSRTM", ref.Consortium},
		{"TITLE", ref.Title},
		{"JOURNAL", ref.Journal},
		{"PUBMED", ref.PubMed},
		{"REMARK", ref.Remark},
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-10s%s\n", f.key, f.val); err != nil {
			return err
		}
	}
	return nil
}

func locationString(f feature.Feature) string {
	loc := fmt.Sprintf("%d..%d", f.Range.Start, f.Range.End)
	if f.Direction == feature.Reverse {
		loc = "complement(" + loc + ")"
	}
	return loc
}

func writeFeature(w io.Writer, f feature.Feature) error {
	if _, err := fmt.Fprintf(w, "     %-16s%s\n", f.Type.ExternalName(), locationString(f)); err != nil {
		return err
	}
	if f.Label != "" {
		if err := writeQualifier(w, "label", f.Label); err != nil {
			return err
		}
	}
	switch f.Direction {
	case feature.Forward:
		if err := writeQualifier(w, "direction", "right"); err != nil {
			return err
		}
	case feature.Reverse:
		if err := writeQualifier(w, "direction", "left"); err != nil {
			return err
		}
	}
	for _, note := range f.Notes {
		if err := writeQualifier(w, note.Key, note.Value); err != nil {
			return err
		}
	}
	return nil
}

func writePrimer(w io.Writer, p feature.Primer) error {
	for _, m := range p.Matches {
		f := feature.Feature{Range: m.Range, Direction: m.Direction, Label: p.Name}
		loc := fmt.Sprintf("%d..%d", f.Range.Start, f.Range.End)
		if f.Direction == feature.Reverse {
			loc = "complement(" + loc + ")"
		}
		if _, err := fmt.Fprintf(w, "     %-16s%s\n", "primer_bind", loc); err != nil {
			return err
		}
		if p.Name != "" {
			if err := writeQualifier(w, "label", p.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeQualifier(w io.Writer, key, value string) error {
	_, err := fmt.Fprintf(w, "                     /%s=\"%s\"\n", key, value)
	return err
}

func writeOrigin(w io.Writer, c feature.Construct) error {
	letters := strings.ToLower(c.Seq.String())
	for i := 0; i < len(letters); i += 60 {
		end := i + 60
		if end > len(letters) {
			end = len(letters)
		}
		if _, err := fmt.Fprintf(w, "%9d", i+1); err != nil {
			return err
		}
		for j := i; j < end; j += 10 {
			chunkEnd := j + 10
			if chunkEnd > end {
				chunkEnd = end
			}
			if _, err := fmt.Fprintf(w, " %s", letters[j:chunkEnd]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
