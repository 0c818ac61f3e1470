/*
Package seq provides the four-letter DNA alphabet, 1-based inclusive ranges,
and topology used by every other package in plasmidcore.

A Seq is a finite ordered sequence of Nucleotide. Indexing into a Seq at the
public API boundary (feature and primer ranges) is always 1-based and
inclusive via RangeIncl. Internal buffers are plain 0-based Go slices; the
conversion between the two happens at the boundary, in RangeIncl.Slice.
*/
package seq

import (
	"fmt"
	"strings"
)

// Nucleotide is one of the four DNA bases.
type Nucleotide uint8

const (
	A Nucleotide = iota
	C
	T
	G
	invalidNucleotide
)

// complementOf maps a Nucleotide to its Watson-Crick complement (A<->T, C<->G).
var complementOf = [...]Nucleotide{A: T, C: G, T: A, G: C}

// Complement returns the Watson-Crick complement of n.
func (n Nucleotide) Complement() Nucleotide {
	return complementOf[n]
}

// Letter returns the uppercase single-letter representation of n.
func (n Nucleotide) Letter() byte {
	switch n {
	case A:
		return 'A'
	case C:
		return 'C'
	case T:
		return 'T'
	case G:
		return 'G'
	default:
		return 'N'
	}
}

// Weight is the average molecular weight of the free nucleotide monophosphate
// in g/mol, used by primer absorbance/mass calculations.
func (n Nucleotide) Weight() float64 {
	switch n {
	case A:
		return 313.21
	case C:
		return 289.18
	case T:
		return 304.2
	case G:
		return 329.21
	default:
		return 0
	}
}

// LambdaMax is the wavelength (nm) of maximum UV absorbance for the free base.
func (n Nucleotide) LambdaMax() float64 {
	switch n {
	case A:
		return 259
	case C:
		return 271
	case T:
		return 267
	case G:
		return 253
	default:
		return 0
	}
}

// MolarAbsorbance is the molar extinction coefficient (L/(mol*cm)) at 260nm,
// used for nearest-neighbor-free estimates of primer concentration.
func (n Nucleotide) MolarAbsorbance() float64 {
	switch n {
	case A:
		return 15400
	case C:
		return 7400
	case T:
		return 8700
	case G:
		return 11500
	default:
		return 0
	}
}

// NucleotideFromLetter converts a case-insensitive letter byte to a
// Nucleotide. It returns false for any byte outside {A,C,T,G,a,c,t,g}.
func NucleotideFromLetter(b byte) (Nucleotide, bool) {
	switch b {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'T', 't':
		return T, true
	case 'G', 'g':
		return G, true
	default:
		return invalidNucleotide, false
	}
}

// Seq is an ordered sequence of Nucleotide.
type Seq []Nucleotide

// FromString builds a Seq from a letter string, rejecting any byte outside
// the four-letter alphabet. Matching is case-insensitive.
func FromString(s string) (Seq, error) {
	out := make(Seq, len(s))
	for i := 0; i < len(s); i++ {
		n, ok := NucleotideFromLetter(s[i])
		if !ok {
			return nil, fmt.Errorf("seq: invalid nucleotide letter %q at position %d", s[i], i)
		}
		out[i] = n
	}
	return out, nil
}

// FromStringLenient builds a Seq from a letter string, skipping (rather than
// rejecting) any byte outside the four-letter alphabet, and reporting the
// count of skipped bytes. Used by lenient file importers (spec.md S3).
func FromStringLenient(s string) (out Seq, skipped int) {
	out = make(Seq, 0, len(s))
	for i := 0; i < len(s); i++ {
		n, ok := NucleotideFromLetter(s[i])
		if !ok {
			skipped++
			continue
		}
		out = append(out, n)
	}
	return out, skipped
}

// String renders seq as an uppercase letter string.
func (s Seq) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, n := range s {
		b.WriteByte(n.Letter())
	}
	return b.String()
}

// Complement returns the point-wise Watson-Crick complement of s, in the same
// 5'->3' reading order as the input (i.e. NOT reversed).
func (s Seq) Complement() Seq {
	out := make(Seq, len(s))
	for i, n := range s {
		out[i] = n.Complement()
	}
	return out
}

// Reverse returns s with nucleotide order reversed.
func (s Seq) Reverse() Seq {
	out := make(Seq, len(s))
	for i, n := range s {
		out[len(s)-1-i] = n
	}
	return out
}

// ReverseComplement returns the reverse complement of s.
func (s Seq) ReverseComplement() Seq {
	return s.Complement().Reverse()
}

// Equal reports whether two Seqs hold the same nucleotides in the same order.
func (s Seq) Equal(other Seq) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
