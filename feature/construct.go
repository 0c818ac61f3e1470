package feature

import (
	"fmt"

	"github.com/genomancer/plasmidcore/seq"
)

// Reference holds a single bibliographic reference, carried over from
// GenBank's REFERENCE block (spec.md S3).
type Reference struct {
	Description string
	Authors     string
	Consortium  string
	Title       string
	Journal     string
	PubMed      string
	Remark      string
}

// Metadata carries the plasmid name, GenBank header fields, and references
// that accompany a Construct but aren't part of its sequence or annotations.
type Metadata struct {
	PlasmidName string
	Definition  string
	Accession   string
	Version     string
	Keywords    string
	Source      string
	Organism    string
	MoleculeType string
	Division    string
	Comments    []string
	References  []Reference
}

// IonConcentrations lives in primer.go; Portions (reagent mixing state) is
// intentionally out of this package's scope -- it is a PCAD-only opaque
// payload, see ioformat/pcad.

// Construct is the unit of persistence: a sequence plus its topology,
// annotations, and metadata (spec.md S3, "the generic document").
type Construct struct {
	Seq      seq.Seq
	Topology seq.Topology
	Features []Feature
	Primers  []Primer
	Metadata Metadata
	Ions     IonConcentrations

	// Portions is the opaque reagent-mixing state PCAD persists (packet type
	// 7). Portion/reagent mixing math is out of this module's scope (spec.md
	// S1 Non-goals); we only round-trip the bytes a GUI-level mixing
	// calculator would have written.
	Portions []byte

	// PathLoaded is the absolute path of the last PCAD save, round-tripped
	// verbatim (PCAD packet type 10).
	PathLoaded string

	// SnapGeneOpaque preserves SnapGene packets this module doesn't interpret
	// (AdditionalSequenceProperties 0x08, AlignableSequences 0x11,
	// CustomEnzymeSets 0x0e), keyed by packet type byte, and re-emits them
	// verbatim on write to keep round-trips lossless.
	SnapGeneOpaque map[byte][]byte
}

// New returns an empty, Circular-by-default Construct (spec.md S8 scenario
// 1: "Decoding yields seq=[], topology=Circular by default").
func New() Construct {
	return Construct{
		Topology: seq.Circular,
		Ions:     DefaultIonConcentrations,
	}
}

// Len returns the number of nucleotides in the construct.
func (c Construct) Len() int {
	return len(c.Seq)
}

// AddFeature appends f to the construct after validating its range.
func (c *Construct) AddFeature(f Feature) error {
	if err := f.Range.Validate(c.Len(), c.Topology); err != nil {
		return fmt.Errorf("feature: %w", err)
	}
	c.Features = append(c.Features, f.Clone())
	return nil
}

// AddPrimer appends p to the construct's primer list.
func (c *Construct) AddPrimer(p Primer) {
	c.Primers = append(c.Primers, p.Clone())
}

// Clone returns a deep copy of c.
func (c Construct) Clone() Construct {
	out := c
	out.Seq = append(seq.Seq(nil), c.Seq...)
	out.Features = make([]Feature, len(c.Features))
	for i, f := range c.Features {
		out.Features[i] = f.Clone()
	}
	out.Primers = make([]Primer, len(c.Primers))
	for i, p := range c.Primers {
		out.Primers[i] = p.Clone()
	}
	out.Metadata.Comments = append([]string(nil), c.Metadata.Comments...)
	out.Metadata.References = append([]Reference(nil), c.Metadata.References...)
	if c.SnapGeneOpaque != nil {
		out.SnapGeneOpaque = make(map[byte][]byte, len(c.SnapGeneOpaque))
		for k, v := range c.SnapGeneOpaque {
			out.SnapGeneOpaque[k] = append([]byte(nil), v...)
		}
	}
	return out
}

// FeatureSequence returns the nucleotides f's Range covers on c, reverse
// complemented if f.Direction is Reverse.
func (c Construct) FeatureSequence(f Feature) (seq.Seq, error) {
	if err := f.Range.Validate(c.Len(), c.Topology); err != nil {
		return nil, err
	}
	s := f.Range.Slice(c.Seq)
	if f.Direction == Reverse {
		return s.ReverseComplement(), nil
	}
	return s, nil
}
