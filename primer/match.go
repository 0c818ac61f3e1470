package primer

import (
	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// MatchToHost searches host for every exact occurrence of needle (forward
// and reverse-complement strand) and returns them as PrimerMatch values,
// mirroring seq.MatchSubseq's two-slice result (spec.md S4.3).
func MatchToHost(needle, host seq.Seq) []feature.PrimerMatch {
	forward, reverse := seq.MatchSubseq(needle, host)
	out := make([]feature.PrimerMatch, 0, len(forward)+len(reverse))
	for _, r := range forward {
		out = append(out, feature.PrimerMatch{Range: r, Direction: feature.Forward})
	}
	for _, r := range reverse {
		out = append(out, feature.PrimerMatch{Range: r, Direction: feature.Reverse})
	}
	return out
}

// Sync recomputes p's tuned-range trim, Matches against host, and Metrics,
// in that order -- the recompute-on-change pipeline spec.md S9 describes for
// any operation that edits a primer's sequence or tuning.
func Sync(p *feature.Primer, host seq.Seq, ions feature.IonConcentrations) {
	ApplyTune(p)
	p.Matches = MatchToHost(EffectiveSeq(*p), host)
	p.Metrics = Metrics(*p, ions)
}
