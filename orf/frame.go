/*
Package orf scans a construct's six reading frames for open reading frames,
histidine-tag runs, and a fixed library of common plasmid part sequences
(promoters, origins, resistances, RBS, terminators).

Reading-frame walking follows the codon-table mechanics the teacher's
transform/codon package uses (start/stop codon sets, walking triplets), but
generalized to spec.md S4.5's six-frame emit-on-stop-or-end model rather than
transform/codon's translate-whole-sequence model.
*/
package orf

import "github.com/genomancer/plasmidcore/seq"

// Frame names the six reading frames a construct is scanned in.
type Frame int

const (
	Fwd0 Frame = iota
	Fwd1
	Fwd2
	Rev0
	Rev1
	Rev2
)

func (f Frame) String() string {
	switch f {
	case Fwd0:
		return "Fwd0"
	case Fwd1:
		return "Fwd1"
	case Fwd2:
		return "Fwd2"
	case Rev0:
		return "Rev0"
	case Rev1:
		return "Rev1"
	case Rev2:
		return "Rev2"
	default:
		return "?"
	}
}

func (f Frame) offset() int {
	switch f {
	case Fwd0, Rev0:
		return 0
	case Fwd1, Rev1:
		return 1
	case Fwd2, Rev2:
		return 2
	default:
		return 0
	}
}

func (f Frame) reverse() bool {
	return f == Rev0 || f == Rev1 || f == Rev2
}

// ReadingFrameMatch is one open reading frame: ATG to the first in-frame
// stop codon (or sequence end), recorded in 1-based indices on the
// original, non-complemented strand (spec.md S4.5).
type ReadingFrameMatch struct {
	Frame Frame
	Range seq.RangeIncl
}

var stopCodons = map[string]bool{"TAA": true, "TAG": true, "TGA": true}

const startCodon = "ATG"

// frameLetters returns the letters this frame walks codons over: the
// original sequence for forward frames, or its base-by-base complement
// (NOT reversed) for reverse frames, per spec.md S4.5's literal wording.
func frameLetters(s seq.Seq, f Frame) string {
	if !f.reverse() {
		return s.String()
	}
	return s.Complement().String()
}

// ScanFrames walks all six reading frames of s and returns every open
// reading frame found (spec.md S4.5).
func ScanFrames(s seq.Seq) []ReadingFrameMatch {
	var out []ReadingFrameMatch
	for _, f := range []Frame{Fwd0, Fwd1, Fwd2, Rev0, Rev1, Rev2} {
		out = append(out, scanOneFrame(s, f)...)
	}
	return out
}

func scanOneFrame(s seq.Seq, f Frame) []ReadingFrameMatch {
	letters := frameLetters(s, f)
	offset := f.offset()
	var matches []ReadingFrameMatch

	i := offset
	for i+3 <= len(letters) {
		if letters[i:i+3] == startCodon {
			// open reading frame: walk to stop or end
			j := i + 3
			for j+3 <= len(letters) && !stopCodons[letters[j:j+3]] {
				j += 3
			}
			end := j
			if j+3 <= len(letters) {
				end = j + 3 // include the stop codon in the range
			}
			matches = append(matches, ReadingFrameMatch{
				Frame: f,
				Range: seq.RangeIncl{Start: i + 1, End: end},
			})
			i = end
			continue
		}
		i += 3
	}
	return matches
}
