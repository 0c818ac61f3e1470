/*
Package primer computes primer thermodynamics (nearest-neighbor Tm), tunes
primers against an anchor, matches primers to a host sequence, and scores
primer quality.

The nearest-neighbor table and base initiation/terminal penalties below are
lifted directly from the teacher's root primers.go (SantaLucia & Hicks 2004
values), generalized to the salt-correction and terminal-AT rules spec.md
S4.3 specifies.
*/
package primer

import (
	"math"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// gasConstant is R in cal/(mol*K).
const gasConstant = 1.987

// minEffectiveLength is the shortest effective primer Metrics will compute
// Tm/quality for; below this, Metrics returns nil (spec.md S4.3).
const minEffectiveLength = 10

type thermo struct{ H, S float64 }

// nearestNeighbor holds one representative key per reverse-complement pair,
// e.g. "AA" stands in for both AA and its complement TT.
var nearestNeighbor = map[string]thermo{
	"AA": {-7.6, -21.3},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
}

var (
	initPenalty       = thermo{0.2, -5.7}
	lowGCPenalty      = thermo{2.2, 6.9}
	terminalATPenalty = thermo{2.2, 6.9}
)

var complementLetter = map[byte]byte{'A': 'T', 'C': 'G', 'T': 'A', 'G': 'C'}

// pairThermo looks up the stacking penalty for two adjacent bases, first
// directly and then, on miss, via its reverse complement (spec.md S4.3).
func pairThermo(pair string) thermo {
	if t, ok := nearestNeighbor[pair]; ok {
		return t
	}
	rc := string([]byte{complementLetter[pair[1]], complementLetter[pair[0]]})
	return nearestNeighbor[rc]
}

// Tm computes the nearest-neighbor melting temperature, in degrees Celsius,
// of s under the given ion concentrations, following SantaLucia & Hicks
// 2004 as specified in spec.md S4.3.
func Tm(s seq.Seq, ions feature.IonConcentrations) float64 {
	letters := s.String()
	n := len(letters)

	dH := initPenalty.H
	dS := initPenalty.S

	gcFraction := gcFractionOf(letters)
	if gcFraction < 0.001 {
		dH += lowGCPenalty.H
		dS += lowGCPenalty.S
	}

	for _, end := range []byte{letters[0], letters[n-1]} {
		if end == 'A' || end == 'T' {
			dH += terminalATPenalty.H
			dS += terminalATPenalty.S
		}
	}

	monMM := ions.MonovalentMM
	if ions.DivalentMM > ions.DNTPMM {
		monMM += 120 * math.Sqrt(ions.DivalentMM-ions.DNTPMM)
	}
	naMol := monMM * 1e-3
	if naMol > 0 && n > 1 {
		dS += 0.368 * float64(n-1) * math.Log(naMol)
	}

	for i := 0; i+1 < n; i++ {
		t := pairThermo(letters[i : i+2])
		dH += t.H
		dS += t.S
	}

	ct := ions.PrimerNM * 1e-9
	if ct <= 0 {
		ct = feature.DefaultIonConcentrations.PrimerNM * 1e-9
	}
	return 1000*dH/(dS+gasConstant*math.Log(ct/2)) - 273.15
}

// gcFractionOf returns the fraction of G/C bases in letters.
func gcFractionOf(letters string) float64 {
	if len(letters) == 0 {
		return 0
	}
	var gc int
	for i := 0; i < len(letters); i++ {
		if letters[i] == 'G' || letters[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(letters))
}
