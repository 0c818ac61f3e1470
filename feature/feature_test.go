package feature

import (
	"testing"

	"github.com/genomancer/plasmidcore/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeExternalRoundTrip(t *testing.T) {
	cases := map[string]Type{
		"CDS":          CodingRegion,
		"gene":         Gene,
		"rep_origin":   Ori,
		"rbs":          RibosomeBindSite,
		"promoter":     Promoter,
		"primer_bind":  PrimerBindSite,
		"ltr":          LongTerminalRepeat,
		"misc_feature": Generic,
		"source":       Source,
		"exon":         Exon,
		"transcript":   Transcript,
		"protein_bind": ProteinBind,
		"terminator":   Terminator,
	}
	for external, want := range cases {
		got := TypeFromExternal(external)
		assert.Equal(t, want, got, "external %q", external)
		assert.Equal(t, external, got.ExternalName())
	}
}

func TestTypeFromExternalUnknownMapsToGeneric(t *testing.T) {
	assert.Equal(t, Generic, TypeFromExternal("some_weird_qualifier"))
}

func TestFeatureColorOverride(t *testing.T) {
	f := Feature{Type: Gene}
	assert.Equal(t, Gene.DefaultColor(), f.Color())
	f.ColorOverride = "#123456"
	assert.Equal(t, "#123456", f.Color())
}

func TestFeatureShift(t *testing.T) {
	f := Feature{Range: seq.RangeIncl{Start: 10, End: 20}}
	shifted := f.Shift(5)
	assert.Equal(t, seq.RangeIncl{Start: 15, End: 25}, shifted.Range)
	// original untouched
	assert.Equal(t, seq.RangeIncl{Start: 10, End: 20}, f.Range)
}

func TestConstructAddFeatureValidatesRange(t *testing.T) {
	c := New()
	c.Seq, _ = seq.FromString("ACGTACGTAC")
	err := c.AddFeature(Feature{Range: seq.RangeIncl{Start: 1, End: 20}})
	assert.Error(t, err)

	err = c.AddFeature(Feature{Range: seq.RangeIncl{Start: 1, End: 4}, Type: Gene})
	require.NoError(t, err)
	assert.Len(t, c.Features, 1)
}

func TestConstructFeatureSequenceReverse(t *testing.T) {
	c := New()
	c.Seq, _ = seq.FromString("AAACCCTTTGGG")
	f := Feature{Range: seq.RangeIncl{Start: 1, End: 3}, Direction: Reverse}
	s, err := c.FeatureSequence(f)
	require.NoError(t, err)
	assert.Equal(t, "TTT", s.String())
}

func TestConstructCloneIsDeep(t *testing.T) {
	c := New()
	c.Seq, _ = seq.FromString("ACGT")
	_ = c.AddFeature(Feature{Range: seq.RangeIncl{Start: 1, End: 2}, Type: Gene})

	clone := c.Clone()
	clone.Features[0].Label = "mutated"
	assert.NotEqual(t, c.Features[0].Label, clone.Features[0].Label)
}

func TestNewConstructDefaultsCircular(t *testing.T) {
	c := New()
	assert.Equal(t, seq.Circular, c.Topology)
	assert.Equal(t, 0, c.Len())
}
