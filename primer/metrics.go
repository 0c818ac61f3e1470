package primer

import (
	"github.com/genomancer/plasmidcore/feature"
)

// repeatScoreTable maps a repeat-feature count to the piecewise quality
// score spec.md S4.3 specifies: 0 repeats is perfect (1.0), 5 or more zeroes
// the sub-score out.
var repeatScoreTable = map[int]float64{
	0: 1.0,
	1: 0.8,
	2: 0.6,
	3: 0.3,
	4: 0.2,
}

func repeatScoreOf(count int) float64 {
	if count >= 5 {
		return 0
	}
	return repeatScoreTable[count]
}

// Metrics computes the thermodynamic and quality figures for p's effective
// (tuned) sequence, or nil if that sequence is shorter than
// minEffectiveLength (spec.md S4.3: "returns None when |primer| < 10 nt").
func Metrics(p feature.Primer, ions feature.IonConcentrations) *feature.PrimerMetrics {
	eff := EffectiveSeq(p)
	if len(eff) < minEffectiveLength {
		return nil
	}
	letters := eff.String()

	gc := gcFractionOf(letters)

	threePrimeWindow := letters
	if len(threePrimeWindow) > 5 {
		threePrimeWindow = threePrimeWindow[len(threePrimeWindow)-5:]
	}
	threePrimeGC := 0
	for i := 0; i < len(threePrimeWindow); i++ {
		if threePrimeWindow[i] == 'G' || threePrimeWindow[i] == 'C' {
			threePrimeGC++
		}
	}

	repeats := countRepeats(letters)
	selfEnd := selfEndDimerScore(letters)

	tm := Tm(eff, ions)

	// Equally-weighted composite: Tm proximity to 59C, GC proximity to 50%,
	// moderate 3'GC (1-3 of the last 5 bases), low self-dimer, low repeats.
	tmScore := 1.0 - clamp(absF(tm-59.0)/20.0, 0, 1)
	gcScore := 1.0 - clamp(absF(gc-0.5)/0.5, 0, 1)
	threePrimeScore := 1.0
	if threePrimeGC < 1 || threePrimeGC > 3 {
		threePrimeScore = 0.5
	}
	selfDimerScore := 1.0 - clamp(float64(selfEnd)/8.0, 0, 1)
	repeatScore := repeatScoreOf(repeats)

	composite := (tmScore + gcScore + threePrimeScore + selfDimerScore + repeatScore) / 5.0

	return &feature.PrimerMetrics{
		Tm:             tm,
		GCFraction:     gc,
		ThreePrimeGC:   threePrimeGC,
		SelfEndDimer:   selfEnd,
		RepeatScore:    repeats,
		CompositeScore: composite,
	}
}

// countRepeats sums three repeat features over letters: maximal single-
// nucleotide runs of length>=4, maximal dinucleotide repeats (the 2-letter
// unit repeated 4+ times in a row, spanning length>=8), and distinct 3-nt
// windows (checked at every offset, not just multiples of 3) that recur
// more than once anywhere in the sequence.
func countRepeats(letters string) int {
	count := 0
	n := len(letters)

	// Single-nucleotide runs >= 4.
	i := 0
	for i < n {
		j := i + 1
		for j < n && letters[j] == letters[i] {
			j++
		}
		if j-i >= 4 {
			count++
		}
		i = j
	}

	// Dinucleotide repeats: unit of 2 repeated >=4 times (span >= 8).
	i = 0
	for i+1 < n {
		unit := letters[i : i+2]
		j := i + 2
		reps := 1
		for j+1 < n && letters[j:j+2] == unit {
			reps++
			j += 2
		}
		if reps >= 4 {
			count++
			i = j
			continue
		}
		i++
	}

	// Triplets anywhere in the sequence (every offset, not just multiples of
	// 3) that recur elsewhere: count each distinct repeated triplet value
	// once, mirroring original_source's primer_metrics.rs calc_repeats,
	// which slides a 3-nt window across every offset and dedupes the
	// matching triplet values it finds.
	seen := map[string]int{}
	for i := 0; i+3 <= n; i++ {
		seen[letters[i:i+3]]++
	}
	for _, c := range seen {
		if c > 1 {
			count++
		}
	}

	return count
}

// selfEndDimerScore is a lightweight placeholder for 3' self-dimerization
// strength: the length of the longest complementary match between the
// primer's 3' end and its own reverse complement, capped at 8.
func selfEndDimerScore(letters string) int {
	n := len(letters)
	maxCheck := 8
	if n < maxCheck {
		maxCheck = n
	}
	suffix := letters[n-maxCheck:]
	rc := reverseComplementLetters(suffix)

	best := 0
	for length := len(suffix); length > 0; length-- {
		if suffix[len(suffix)-length:] == rc[:length] {
			best = length
			break
		}
	}
	return best
}

func reverseComplementLetters(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[len(s)-1-i] = complementLetter[s[i]]
	}
	return string(out)
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

