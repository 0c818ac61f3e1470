package clone

import (
	"testing"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, s string) seq.Seq {
	t.Helper()
	out, err := seq.FromString(s)
	require.NoError(t, err)
	return out
}

func construct(t *testing.T, letters string, features []feature.Feature) feature.Construct {
	t.Helper()
	c := feature.New()
	c.Topology = seq.Linear
	c.Seq = mustSeq(t, letters)
	c.Features = features
	return c
}

func TestInsertNucleotidesShiftsFeaturesPerSpecExample(t *testing.T) {
	// spec.md S8 scenario 6: features at 20..=30 and 10..=15; insert 5 nt at
	// position 12. 10..=15 straddles 12 (start unchanged, end+5=20);
	// 20..=30 lies wholly after 12 (both ends +5 = 25..=35).
	host := construct(t, seqOfLen(40), []feature.Feature{
		{Range: seq.RangeIncl{Start: 20, End: 30}, Type: feature.Gene, Label: "g"},
		{Range: seq.RangeIncl{Start: 10, End: 15}, Type: feature.Gene, Label: "h"},
	})
	insert := mustSeq(t, "AAAAA")

	out, err := InsertNucleotides(host, insert, 12, "ins")
	require.NoError(t, err)
	require.Len(t, out.Features, 3)
	assert.Equal(t, seq.RangeIncl{Start: 25, End: 35}, out.Features[0].Range)
	assert.Equal(t, seq.RangeIncl{Start: 10, End: 20}, out.Features[1].Range)
	assert.Equal(t, 45, out.Len())

	inserted := out.Features[2]
	assert.Equal(t, feature.CodingRegion, inserted.Type)
	assert.Equal(t, seq.RangeIncl{Start: 13, End: 17}, inserted.Range)
}

func TestInsertNucleotidesFeatureWhollyBeforeIsUnchanged(t *testing.T) {
	host := construct(t, seqOfLen(20), []feature.Feature{
		{Range: seq.RangeIncl{Start: 1, End: 5}, Type: feature.Gene},
	})
	out, err := InsertNucleotides(host, mustSeq(t, "TT"), 10, "")
	require.NoError(t, err)
	assert.Equal(t, seq.RangeIncl{Start: 1, End: 5}, out.Features[0].Range)
}

func TestRemoveNucleotidesShiftsFeaturesRightOfRemoval(t *testing.T) {
	host := construct(t, seqOfLen(30), []feature.Feature{
		{Range: seq.RangeIncl{Start: 1, End: 5}, Type: feature.Gene, Label: "untouched"},
		{Range: seq.RangeIncl{Start: 20, End: 25}, Type: feature.Gene, Label: "shifted"},
	})
	out, err := RemoveNucleotides(host, seq.RangeIncl{Start: 10, End: 15})
	require.NoError(t, err)
	require.Len(t, out.Features, 2)
	assert.Equal(t, seq.RangeIncl{Start: 1, End: 5}, out.Features[0].Range)
	assert.Equal(t, seq.RangeIncl{Start: 14, End: 19}, out.Features[1].Range)
	assert.Equal(t, 24, out.Len())
}

func TestRemoveNucleotidesDropsFullyContainedFeature(t *testing.T) {
	host := construct(t, seqOfLen(20), []feature.Feature{
		{Range: seq.RangeIncl{Start: 10, End: 12}, Type: feature.Gene},
	})
	out, err := RemoveNucleotides(host, seq.RangeIncl{Start: 5, End: 15})
	require.NoError(t, err)
	assert.Empty(t, out.Features)
}

func TestChangeOriginRotatesSequenceAndFeatures(t *testing.T) {
	host := construct(t, "ACGTACGTAC", []feature.Feature{
		{Range: seq.RangeIncl{Start: 1, End: 4}, Type: feature.Gene},
	})
	host.Topology = seq.Circular

	out, err := ChangeOrigin(host, 5)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACACGT", out.Seq.String())
	assert.Equal(t, seq.RangeIncl{Start: 7, End: 10}, out.Features[0].Range)
}

func TestChangeOriginComposesWithSingleRotation(t *testing.T) {
	host := construct(t, "ACGTACGTACGTACGT", nil)
	host.Topology = seq.Circular
	n := host.Len()

	i, j := 4, 7
	twoStep, err := ChangeOrigin(host, i)
	require.NoError(t, err)
	twoStep, err = ChangeOrigin(twoStep, j)
	require.NoError(t, err)

	composed := ((i-1)+(j-1))%n + 1
	oneStep, err := ChangeOrigin(host, composed)
	require.NoError(t, err)

	assert.Equal(t, oneStep.Seq.String(), twoStep.Seq.String())
}

func TestPCRAmpliconExtractsSpanAndContainedFeatures(t *testing.T) {
	// host[1..8]="AAAACCCC", host[13..20]="TTTTAAAA" (palindromic, so its own
	// reverse complement) -- fwd binds forward at 1..8, rev binds the
	// reverse strand at 13..20, so the amplicon spans 1..20.
	host := construct(t, "AAAACCCCGGGGTTTTAAAACCCC", []feature.Feature{
		{Range: seq.RangeIncl{Start: 9, End: 12}, Type: feature.Gene, Label: "inner"},
		{Range: seq.RangeIncl{Start: 21, End: 24}, Type: feature.Gene, Label: "outside"},
	})
	fwd := feature.Primer{Sequence: mustSeq(t, "AAAACCCC"), Name: "fwd"}
	rev := feature.Primer{Sequence: mustSeq(t, "TTTTAAAA"), Name: "rev"}

	out, err := PCRAmplicon(host, fwd, rev)
	require.NoError(t, err)
	assert.Equal(t, "PCR amplicon", out.Metadata.PlasmidName)
	assert.Equal(t, seq.Linear, out.Topology)
	assert.Equal(t, 20, out.Len())
	require.Len(t, out.Primers, 2)

	var found bool
	for _, f := range out.Features {
		if f.Label == "inner" {
			found = true
		}
		assert.NotEqual(t, "outside", f.Label)
	}
	assert.True(t, found)
}

func TestPCRAmpliconErrorsWhenPrimerDoesNotBind(t *testing.T) {
	host := construct(t, "AAAACCCCGGGGTTTT", nil)
	fwd := feature.Primer{Sequence: mustSeq(t, "TTTTTTTT")}
	rev := feature.Primer{Sequence: mustSeq(t, "GGGGGGGG")}
	_, err := PCRAmplicon(host, fwd, rev)
	assert.Error(t, err)
}

func seqOfLen(n int) string {
	letters := "ACGT"
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[i%4]
	}
	return string(out)
}
