package snapgene

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

func TestWriteParseRoundTrip(t *testing.T) {
	c := feature.New()
	c.Topology = seq.Circular
	c.Seq, _ = seq.FromString("ACGTACGTACGTACGT")
	require.NoError(t, c.AddFeature(feature.Feature{
		Range: seq.RangeIncl{Start: 1, End: 4},
		Type:  feature.CodingRegion,
		Label: "testCDS",
	}))
	c.AddPrimer(feature.Primer{Sequence: c.Seq[:8], Name: "fwd", Description: "forward primer"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	c2, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, seq.Circular, c2.Topology)
	assert.Equal(t, c.Seq.String(), c2.Seq.String())
	require.Len(t, c2.Features, 1)
	assert.Equal(t, "testCDS", c2.Features[0].Label)
	assert.Equal(t, feature.CodingRegion, c2.Features[0].Type)
	require.Len(t, c2.Primers, 1)
	assert.Equal(t, "fwd", c2.Primers[0].Name)
}

func TestParsePreservesOpaquePackets(t *testing.T) {
	c := feature.New()
	c.Seq, _ = seq.FromString("ACGT")
	c.SnapGeneOpaque = map[byte][]byte{
		byte(packetAdditionalSequenceProperties): []byte("opaque-props"),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	c2, err := Parse(&buf)
	require.NoError(t, err)
	require.Contains(t, c2.SnapGeneOpaque, byte(packetAdditionalSequenceProperties))
	assert.Equal(t, []byte("opaque-props"), c2.SnapGeneOpaque[byte(packetAdditionalSequenceProperties)])
}

func TestParseLinearTopologyFlag(t *testing.T) {
	c := feature.New()
	c.Topology = seq.Linear
	c.Seq, _ = seq.FromString("AAAACCCC")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	c2, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, seq.Linear, c2.Topology)
}
