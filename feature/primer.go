package feature

import "github.com/genomancer/plasmidcore/seq"

// PrimerMatch is one exact occurrence of a Primer against a host sequence.
type PrimerMatch struct {
	Range     seq.RangeIncl
	Direction Direction // Forward or Reverse; never None
}

// TuneKind selects which ends of a primer tuning trims.
type TuneKind int

const (
	// TuneDisabled uses the entire primer; no trimming.
	TuneDisabled TuneKind = iota
	// TuneOnly5 trims N nucleotides from the 5' end only.
	TuneOnly5
	// TuneOnly3 trims N nucleotides from the 3' end only.
	TuneOnly3
	// TuneBoth trims from both ends, pinned around a non-tunable Anchor.
	TuneBoth
)

// TuneSetting configures how much of a primer's sequence is "live" (used for
// Tm/metrics) versus trimmed display-only prefix/suffix (spec.md S3/S4.3).
type TuneSetting struct {
	Kind TuneKind
	// N5, N3 are nucleotide counts trimmed from the 5'/3' end, used by
	// TuneOnly5, TuneOnly3, and TuneBoth.
	N5, N3 int
	// Anchor is the non-tunable pivot index (1-based, in the original
	// untrimmed primer) that must stay inside the effective primer in
	// TuneBoth mode -- e.g. a cloning insertion point.
	Anchor int
}

// PrimerMetrics holds the computed thermodynamic and quality figures for a
// primer's effective (tuned) sequence. Returned by primer.Metrics; nil when
// the effective primer is shorter than the minimum length (spec.md S4.3).
type PrimerMetrics struct {
	Tm             float64
	GCFraction     float64
	ThreePrimeGC   int
	SelfEndDimer   int
	RepeatScore    int
	CompositeScore float64
}

// IonConcentrations are the buffer conditions that affect Tm (spec.md S3).
type IonConcentrations struct {
	MonovalentMM float64
	DivalentMM   float64
	DNTPMM       float64
	PrimerNM     float64
}

// DefaultIonConcentrations mirrors common PCR buffer conditions (50mM
// monovalent, 1.5mM divalent, 0.2mM dNTP, 25nM primer), used as a sane
// default for callers that don't care to specify ions explicitly.
var DefaultIonConcentrations = IonConcentrations{
	MonovalentMM: 50,
	DivalentMM:   1.5,
	DNTPMM:       0.2,
	PrimerNM:     25,
}

// Primer is a short oligonucleotide, plus the volatile derived state that is
// recomputed whenever its sequence or tuning changes (spec.md S3, S9). Only
// Sequence, Name, and Description are ever persisted; the rest is
// recomputed by primer.Sync after load.
type Primer struct {
	Sequence    seq.Seq
	Name        string
	Description string

	// Volatile fields below. Never serialized raw.
	Tune    TuneSetting
	Matches []PrimerMatch
	Metrics *PrimerMetrics

	// TrimmedPrefix/TrimmedSuffix are the nucleotides tuning removed from the
	// 5'/3' ends, retained for display only -- they never enter Tm/metrics.
	TrimmedPrefix seq.Seq
	TrimmedSuffix seq.Seq
}

// Clone returns a deep copy of p.
func (p Primer) Clone() Primer {
	out := p
	out.Sequence = append(seq.Seq(nil), p.Sequence...)
	out.Matches = append([]PrimerMatch(nil), p.Matches...)
	out.TrimmedPrefix = append(seq.Seq(nil), p.TrimmedPrefix...)
	out.TrimmedSuffix = append(seq.Seq(nil), p.TrimmedSuffix...)
	if p.Metrics != nil {
		m := *p.Metrics
		out.Metrics = &m
	}
	return out
}
