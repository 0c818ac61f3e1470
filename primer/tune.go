package primer

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// EffectiveRange returns the [start, end) 0-based half-open slice of the full
// primer sequence that tuning leaves "live" for Tm/metrics, after clamping
// an inconsistent TuneSetting into range (spec.md S4.3: "Tune values
// inconsistent with the anchor or sequence length are silently clamped").
func EffectiveRange(fullLen int, tune feature.TuneSetting) (start, end int) {
	switch tune.Kind {
	case feature.TuneDisabled:
		return 0, fullLen
	case feature.TuneOnly5:
		start = clamp(tune.N5, 0, fullLen)
		return start, fullLen
	case feature.TuneOnly3:
		end = fullLen - clamp(tune.N3, 0, fullLen)
		return 0, end
	case feature.TuneBoth:
		n5 := clamp(tune.N5, 0, fullLen)
		n3 := clamp(tune.N3, 0, fullLen)
		anchor := clamp(tune.Anchor, 1, fullLen)
		start = n5
		end = fullLen - n3
		// Anchor (1-based) must stay inside the effective primer: start < anchor <= end.
		if start >= anchor {
			start = anchor - 1
		}
		if end < anchor {
			end = anchor
		}
		if start < 0 {
			start = 0
		}
		if end > fullLen {
			end = fullLen
		}
		if start > end {
			start = end
		}
		return start, end
	default:
		return 0, fullLen
	}
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApplyTune recomputes p's TrimmedPrefix/TrimmedSuffix from its Tune
// setting. It does not recompute Matches or Metrics -- call Sync for that.
func ApplyTune(p *feature.Primer) {
	start, end := EffectiveRange(len(p.Sequence), p.Tune)
	p.TrimmedPrefix = append(seq.Seq(nil), p.Sequence[:start]...)
	p.TrimmedSuffix = append(seq.Seq(nil), p.Sequence[end:]...)
}

// EffectiveSeq returns the tuned, "live" portion of p's sequence -- the part
// that Tm/metrics are computed over.
func EffectiveSeq(p feature.Primer) seq.Seq {
	start, end := EffectiveRange(len(p.Sequence), p.Tune)
	return p.Sequence[start:end]
}

// minTuneEffectiveLen / maxTuneEffectiveLen bound Tune's search, a
// conservative default band for primers in the 15-60nt range typical of PCR.
const (
	minTuneEffectiveLen = 15
	maxTuneEffectiveLen = 60
	targetTmDefault     = 59.0
)

// Tune iteratively adjusts p.Tune's N5/N3 (honoring kind and anchor) to
// minimize |Tm-59C| while keeping the effective length within
// [minLen,maxLen]. It mutates p in place and returns the resulting Tm.
func Tune(p *feature.Primer, ions feature.IonConcentrations, minLen, maxLen int) float64 {
	if minLen <= 0 {
		minLen = minTuneEffectiveLen
	}
	if maxLen <= 0 {
		maxLen = maxTuneEffectiveLen
	}
	if p.Tune.Kind == feature.TuneDisabled {
		return Tm(p.Sequence, ions)
	}

	bestN5, bestN3 := p.Tune.N5, p.Tune.N3
	bestDiff := math.Inf(1)
	found := false

	fullLen := len(p.Sequence)
	for n5 := 0; n5 <= fullLen; n5++ {
		for n3 := 0; n3 <= fullLen; n3++ {
			candidate := p.Tune
			candidate.N5, candidate.N3 = n5, n3
			start, end := EffectiveRange(fullLen, candidate)
			effLen := end - start
			if effLen < minLen || effLen > maxLen || effLen < minEffectiveLength {
				continue
			}
			tm := Tm(p.Sequence[start:end], ions)
			diff := math.Abs(tm - targetTmDefault)
			if diff < bestDiff {
				bestDiff = diff
				bestN5, bestN3 = n5, n3
				found = true
			}
		}
	}
	if found {
		p.Tune.N5, p.Tune.N3 = bestN5, bestN3
	}
	ApplyTune(p)
	return Tm(EffectiveSeq(*p), ions)
}
