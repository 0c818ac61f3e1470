/*
Package clone implements the cloning operations a plasmid editor exposes
directly to a user: inserting/removing nucleotides with feature-range
bookkeeping, rotating the origin, and extracting a PCR amplicon between two
primers.

The teacher's own clone.go simulated restriction-digest ligation assembly
(CutWithEnzyme/CircularLigate/GoldenGate) on raw strings; that digestion
side of it is now restriction.Digest operating on seq.Seq/feature.Construct,
and its ligation-product dedup by rotation-and-strand-canonicalized hash is
generalized in the fingerprint package. What's left here is the part of the
teacher's file with no direct analogue: per-edit feature-range bookkeeping,
grounded instead on how a GUI-backed editor would need to keep annotations
in sync across an edit (the shift-on-splice idiom this package applies
throughout).
*/
package clone

import (
	"fmt"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/primer"
	"github.com/genomancer/plasmidcore/seq"
)

// InsertNucleotides inserts insert after 1-based index loc in host, shifting
// every feature per spec.md S4.10/S8's rule, and records a new CodingRegion
// feature spanning the inserted span.
func InsertNucleotides(host feature.Construct, insert seq.Seq, loc int, label string) (feature.Construct, error) {
	if loc < 0 || loc > host.Len() {
		return feature.Construct{}, fmt.Errorf("clone: insertion point %d out of range [0,%d]", loc, host.Len())
	}
	out := host.Clone()

	before := out.Seq[:loc]
	after := out.Seq[loc:]
	merged := make(seq.Seq, 0, len(before)+len(insert)+len(after))
	merged = append(merged, before...)
	merged = append(merged, insert...)
	merged = append(merged, after...)
	out.Seq = merged

	n := len(insert)
	for i := range out.Features {
		out.Features[i] = shiftForInsertion(out.Features[i], loc, n)
	}

	if label == "" {
		label = "insert"
	}
	newFeature := feature.Feature{
		Range: seq.RangeIncl{Start: loc + 1, End: loc + n},
		Type:  feature.CodingRegion,
		Label: label,
	}
	if err := out.AddFeature(newFeature); err != nil {
		return feature.Construct{}, err
	}
	return out, nil
}

// shiftForInsertion implements spec.md S8's insertion-shift invariant:
// a feature wholly before loc is unchanged; a feature wholly after loc has
// both ends shifted by n; a feature straddling loc keeps its start and
// shifts only its end by n.
func shiftForInsertion(f feature.Feature, loc, n int) feature.Feature {
	out := f.Clone()
	switch {
	case out.Range.End <= loc:
		// entirely before the insertion point: unchanged
	case out.Range.Start > loc:
		out.Range.Start += n
		out.Range.End += n
	default:
		// straddles loc: start unchanged, end shifts
		out.Range.End += n
	}
	return out
}

// RemoveNucleotides drains r from host and shifts features whose endpoints
// lie to the right of the removed region by -|r| (spec.md S4.10). Features
// wholly contained in r are dropped.
func RemoveNucleotides(host feature.Construct, r seq.RangeIncl) (feature.Construct, error) {
	if err := r.Validate(host.Len(), host.Topology); err != nil {
		return feature.Construct{}, fmt.Errorf("clone: %w", err)
	}
	if r.WrapsOrigin() {
		return feature.Construct{}, fmt.Errorf("clone: removal of a wrapping range is not supported")
	}
	out := host.Clone()
	n := r.Len(host.Len())

	before := out.Seq[:r.Start-1]
	after := out.Seq[r.End:]
	merged := make(seq.Seq, 0, len(before)+len(after))
	merged = append(merged, before...)
	merged = append(merged, after...)
	out.Seq = merged

	var kept []feature.Feature
	for _, f := range out.Features {
		if f.Range.Start >= r.Start && f.Range.End <= r.End {
			continue // fully removed along with the drained range
		}
		kept = append(kept, shiftForDeletion(f, r, n))
	}
	out.Features = kept
	return out, nil
}

func shiftForDeletion(f feature.Feature, removed seq.RangeIncl, n int) feature.Feature {
	out := f.Clone()
	if out.Range.Start > removed.End {
		out.Range.Start -= n
	}
	if out.Range.End > removed.End {
		out.Range.End -= n
	}
	return out
}

// ChangeOrigin rotates host so that index newOrigin (1-based) becomes
// position 1, translating every feature's and primer match's start/end by
// the same amount modulo host length (spec.md S4.10). Composable:
// ChangeOrigin(ChangeOrigin(c,i),j) is equivalent to a single rotation by
// ((i-1)+(j-1)) mod N + 1 (spec.md S8).
func ChangeOrigin(host feature.Construct, newOrigin int) (feature.Construct, error) {
	n := host.Len()
	if n == 0 {
		return host.Clone(), nil
	}
	if newOrigin < 1 || newOrigin > n {
		return feature.Construct{}, fmt.Errorf("clone: origin %d out of range [1,%d]", newOrigin, n)
	}
	out := host.Clone()
	shift := newOrigin - 1

	rotated := make(seq.Seq, 0, n)
	rotated = append(rotated, out.Seq[shift:]...)
	rotated = append(rotated, out.Seq[:shift]...)
	out.Seq = rotated

	for i := range out.Features {
		out.Features[i].Range = rotateRange(out.Features[i].Range, shift, n)
	}
	for i := range out.Primers {
		for j := range out.Primers[i].Matches {
			out.Primers[i].Matches[j].Range = rotateRange(out.Primers[i].Matches[j].Range, shift, n)
		}
	}
	return out, nil
}

func rotateRange(r seq.RangeIncl, shift, n int) seq.RangeIncl {
	return seq.RangeIncl{
		Start: wrapMod(r.Start-shift, n),
		End:   wrapMod(r.End-shift, n),
	}
}

func wrapMod(v, n int) int {
	v = ((v-1)%n + n) % n
	return v + 1
}

// PCRAmplicon locates fwd's and rev's binding ranges on host, extracts the
// subsequence they span (inclusive), copies features wholly contained in
// that span translated to the new origin, attaches both primers, and
// returns the result as a new linear "PCR amplicon" construct (spec.md
// S4.10).
func PCRAmplicon(host feature.Construct, fwd, rev feature.Primer) (feature.Construct, error) {
	fwdMatches := primer.MatchToHost(fwd.Sequence, host.Seq)
	revMatches := primer.MatchToHost(rev.Sequence, host.Seq)
	if len(fwdMatches) == 0 {
		return feature.Construct{}, fmt.Errorf("clone: forward primer does not bind host")
	}
	if len(revMatches) == 0 {
		return feature.Construct{}, fmt.Errorf("clone: reverse primer does not bind host")
	}

	fwdRange := fwdMatches[0].Range
	revRange := revMatches[0].Range
	span := seq.RangeIncl{Start: fwdRange.Start, End: revRange.End}
	if span.Start > span.End && host.Topology != seq.Circular {
		return feature.Construct{}, fmt.Errorf("clone: primers do not bound a forward span on a linear host")
	}
	if err := span.Validate(host.Len(), host.Topology); err != nil {
		return feature.Construct{}, fmt.Errorf("clone: %w", err)
	}

	out := feature.New()
	out.Topology = seq.Linear
	out.Seq = span.Slice(host.Seq)
	out.Metadata.PlasmidName = "PCR amplicon"

	for _, f := range host.Features {
		if rangeContainedIn(span, f.Range) {
			translated := f.Clone()
			translated.Range = translateIntoSpan(f.Range, span, host.Len())
			_ = out.AddFeature(translated)
		}
	}
	out.AddPrimer(fwd)
	out.AddPrimer(rev)
	return out, nil
}

// rangeContainedIn reports whether r lies wholly within span, honoring
// origin-wrap on a circular host.
func rangeContainedIn(span, r seq.RangeIncl) bool {
	if r.WrapsOrigin() {
		return false
	}
	if !span.WrapsOrigin() {
		return r.Start >= span.Start && r.End <= span.End
	}
	return span.Contains(r.Start) && span.Contains(r.End)
}

// translateIntoSpan maps r's 1-based coordinates (within host) onto the
// extracted amplicon's own 1-based coordinate system starting at span.Start.
func translateIntoSpan(r, span seq.RangeIncl, hostLen int) seq.RangeIncl {
	offset := func(idx int) int {
		if idx >= span.Start {
			return idx - span.Start + 1
		}
		return (hostLen - span.Start + 1) + idx
	}
	return seq.RangeIncl{Start: offset(r.Start), End: offset(r.End)}
}
