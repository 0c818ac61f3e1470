package primer

import (
	"testing"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTmKnownRange(t *testing.T) {
	s, err := seq.FromString("AGCTTGCATGCCTGCAGGTC")
	require.NoError(t, err)
	tm := Tm(s, feature.DefaultIonConcentrations)
	// A 20nt mixed-GC primer under standard PCR buffer should land in a
	// biologically plausible range, not merely be finite.
	assert.Greater(t, tm, 30.0)
	assert.Less(t, tm, 90.0)
}

func TestTmHigherGCRaisesTm(t *testing.T) {
	atRich, err := seq.FromString("AAAAAAAAAATTTTTTTTTT")
	require.NoError(t, err)
	gcRich, err := seq.FromString("GGGGGGGGGGCCCCCCCCCC")
	require.NoError(t, err)

	assert.Greater(t, Tm(gcRich, feature.DefaultIonConcentrations), Tm(atRich, feature.DefaultIonConcentrations))
}

func TestEffectiveRangeDisabledIsFullLength(t *testing.T) {
	start, end := EffectiveRange(20, feature.TuneSetting{Kind: feature.TuneDisabled})
	assert.Equal(t, 0, start)
	assert.Equal(t, 20, end)
}

func TestEffectiveRangeOnly5(t *testing.T) {
	start, end := EffectiveRange(20, feature.TuneSetting{Kind: feature.TuneOnly5, N5: 5})
	assert.Equal(t, 5, start)
	assert.Equal(t, 20, end)
}

func TestEffectiveRangeBothClampsAroundAnchor(t *testing.T) {
	// Anchor sits at position 10; trimming both ends by 15 each would cross
	// the anchor, so start/end must clamp instead of inverting.
	start, end := EffectiveRange(20, feature.TuneSetting{Kind: feature.TuneBoth, N5: 15, N3: 15, Anchor: 10})
	assert.LessOrEqual(t, start, 9)
	assert.GreaterOrEqual(t, end, 10)
}

func TestApplyTunePopulatesTrimmed(t *testing.T) {
	s, err := seq.FromString("ACGTACGTACGTACGTACGT")
	require.NoError(t, err)
	p := &feature.Primer{Sequence: s, Tune: feature.TuneSetting{Kind: feature.TuneOnly5, N5: 4}}
	ApplyTune(p)
	assert.Equal(t, "ACGT", p.TrimmedPrefix.String())
	assert.Empty(t, p.TrimmedSuffix.String())
}

func TestMatchToHostForwardAndReverse(t *testing.T) {
	host, err := seq.FromString("TTTTGAATTCAAAA")
	require.NoError(t, err)
	needle, err := seq.FromString("GAATTC")
	require.NoError(t, err)

	matches := MatchToHost(needle, host)
	require.Len(t, matches, 2) // EcoRI site is palindromic: matches both strands
	for _, m := range matches {
		assert.Equal(t, 5, m.Range.Start)
		assert.Equal(t, 10, m.Range.End)
	}
}

func TestMetricsNilBelowMinimumLength(t *testing.T) {
	s, err := seq.FromString("ACGT")
	require.NoError(t, err)
	p := feature.Primer{Sequence: s}
	assert.Nil(t, Metrics(p, feature.DefaultIonConcentrations))
}

func TestMetricsComposite(t *testing.T) {
	s, err := seq.FromString("AGCTTGCATGCCTGCAGGTC")
	require.NoError(t, err)
	p := feature.Primer{Sequence: s}
	m := Metrics(p, feature.DefaultIonConcentrations)
	require.NotNil(t, m)
	assert.GreaterOrEqual(t, m.CompositeScore, 0.0)
	assert.LessOrEqual(t, m.CompositeScore, 1.0)
}

func TestCountRepeatsSingleRun(t *testing.T) {
	// "ACGTACGTAC" is periodic with period 4, so every 3-nt window recurs
	// elsewhere in the sequence once the triplet scan checks all offsets,
	// not just multiples of 3.
	assert.Equal(t, 4, countRepeats("ACGTACGTAC"))
	assert.Equal(t, 2, countRepeats("ACGTAAAATGC"))
}

func TestCountRepeatsFindsTripletStraddlingNonMultipleOfThreeOffset(t *testing.T) {
	// The repeated unit "AGCT" starts at offset 1, not a multiple of 3, so a
	// triplet scan anchored only at offsets 0, 3, 6, ... would never see it
	// (a scan anchored that way counts 0 here).
	assert.NotEqual(t, 0, countRepeats("AAGCTAGCTAGCTT"))
}

func TestRepeatScoreTable(t *testing.T) {
	assert.Equal(t, 1.0, repeatScoreOf(0))
	assert.Equal(t, 0.8, repeatScoreOf(1))
	assert.Equal(t, 0.0, repeatScoreOf(5))
	assert.Equal(t, 0.0, repeatScoreOf(9))
}

func TestSyncPopulatesMatchesAndMetrics(t *testing.T) {
	host, err := seq.FromString("TTTTAGCTTGCATGCCTGCAGGTCAAAA")
	require.NoError(t, err)
	s, err := seq.FromString("AGCTTGCATGCCTGCAGGTC")
	require.NoError(t, err)

	p := &feature.Primer{Sequence: s}
	Sync(p, host, feature.DefaultIonConcentrations)

	require.Len(t, p.Matches, 1)
	assert.Equal(t, feature.Forward, p.Matches[0].Direction)
	require.NotNil(t, p.Metrics)
}

func TestTuneMovesTmTowardTarget(t *testing.T) {
	s, err := seq.FromString("ACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGTACGT")
	require.NoError(t, err)
	p := &feature.Primer{Sequence: s, Tune: feature.TuneSetting{Kind: feature.TuneOnly3}}

	tm := Tune(p, feature.DefaultIonConcentrations, 15, 60)
	assert.InDelta(t, 59.0, tm, 15.0)
}
