package genbank

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

const sampleRecord = `LOCUS       pTEST                 40 bp    DNA     circular SYN
DEFINITION  a small test plasmid.
ACCESSION   TEST001
VERSION     TEST001.1
KEYWORDS    synthetic.
SOURCE      synthetic DNA construct
  ORGANISM  synthetic DNA construct
FEATURES             Location/Qualifiers
     CDS             1..12
                     /label="testCDS"
                     /direction=right
ORIGIN
        1 atgaaattcg gtaccgaatt caagcttgga tcctaggcta
//
`

func TestParseBasicRecord(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleRecord))
	require.NoError(t, err)

	assert.Equal(t, "a small test plasmid.", c.Metadata.Definition)
	assert.Equal(t, "TEST001", c.Metadata.Accession)
	assert.Equal(t, seq.Circular, c.Topology)
	assert.Equal(t, 40, c.Len())

	require.Len(t, c.Features, 1)
	assert.Equal(t, feature.CodingRegion, c.Features[0].Type)
	assert.Equal(t, "testCDS", c.Features[0].Label)
	assert.Equal(t, feature.Forward, c.Features[0].Direction)
	assert.Equal(t, 1, c.Features[0].Range.Start)
	assert.Equal(t, 12, c.Features[0].Range.End)
}

func TestParseReturnsOnlyFirstRecord(t *testing.T) {
	two := sampleRecord + sampleRecord
	c, err := Parse(strings.NewReader(two))
	require.NoError(t, err)
	assert.Equal(t, "TEST001", c.Metadata.Accession)
}

func TestWriteRoundTripsFeatureLocation(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleRecord))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	c2, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, c2.Features, 1)
	assert.Equal(t, c.Features[0].Range, c2.Features[0].Range)
	assert.Equal(t, c.Features[0].Label, c2.Features[0].Label)
	assert.Equal(t, c.Seq.String(), c2.Seq.String())
}

const noOverrideRecord = `LOCUS       pTEST2                40 bp    DNA     circular SYN
FEATURES             Location/Qualifiers
     CDS             complement(1..12)
                     /label="testCDS"
ORIGIN
        1 atgaaattcg gtaccgaatt caagcttgga tcctaggcta
//
`

func TestParseComplementLocation(t *testing.T) {
	c, err := Parse(strings.NewReader(noOverrideRecord))
	require.NoError(t, err)
	require.Len(t, c.Features, 1)
	assert.Equal(t, feature.Reverse, c.Features[0].Direction)
}

func TestWriteRoundTripsFullTextRecord(t *testing.T) {
	c, err := Parse(strings.NewReader(sampleRecord))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	c2, err := Parse(&buf)
	require.NoError(t, err)

	var buf2 bytes.Buffer
	require.NoError(t, Write(&buf2, c2))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(buf.String(), buf2.String(), false)
	if len(diffs) > 1 || (len(diffs) == 1 && diffs[0].Type != diffmatchpatch.DiffEqual) {
		t.Errorf("re-rendering a parsed record is not stable:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestSumIsDeterministic(t *testing.T) {
	a := Sum([]byte(sampleRecord))
	b := Sum([]byte(sampleRecord))
	assert.Equal(t, a, b)
}
