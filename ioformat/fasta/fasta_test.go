package fasta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `>seq1
ACGTACGTACGT
>seq2
TTTTGGGGCCCC
AAAA
`

func TestParseAllMultiRecord(t *testing.T) {
	records, err := ParseAll(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "seq1", records[0].Name)
	assert.Equal(t, "ACGTACGTACGT", records[0].Construct.Seq.String())
	assert.Equal(t, "TTTTGGGGCCCCAAAA", records[1].Construct.Seq.String())
}

func TestWriteAllWrapsAt60Columns(t *testing.T) {
	records, err := ParseAll(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, records))

	roundTrip, err := ParseAll(&buf)
	require.NoError(t, err)
	require.Len(t, roundTrip, 2)
	assert.Equal(t, records[0].Construct.Seq.String(), roundTrip[0].Construct.Seq.String())
	assert.Equal(t, records[1].Construct.Seq.String(), roundTrip[1].Construct.Seq.String())
}
