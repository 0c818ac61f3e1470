package orf

import (
	"testing"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFramesFindsSimpleORF(t *testing.T) {
	s, err := seq.FromString("ATGAAATTTCCCTAA")
	require.NoError(t, err)
	matches := ScanFrames(s)

	var fwd0 []ReadingFrameMatch
	for _, m := range matches {
		if m.Frame == Fwd0 {
			fwd0 = append(fwd0, m)
		}
	}
	require.Len(t, fwd0, 1)
	assert.Equal(t, 1, fwd0[0].Range.Start)
	assert.Equal(t, 15, fwd0[0].Range.End)
}

func TestScanFramesNoStartCodonNoMatches(t *testing.T) {
	s, err := seq.FromString("CCCCCCCCCCCCCCC")
	require.NoError(t, err)
	matches := ScanFrames(s)
	assert.Empty(t, matches)
}

func TestFindHisTagsDetectsSixCodonRun(t *testing.T) {
	s, err := seq.FromString("CATCATCATCATCATCAT")
	require.NoError(t, err)
	tags := FindHisTags(s)

	var found bool
	for _, f := range tags {
		if f.Label == "6xHis" && f.Type == feature.CodingRegion {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFindHisTagsIgnoresShortRuns(t *testing.T) {
	s, err := seq.FromString("CATCATCAT")
	require.NoError(t, err)
	tags := FindHisTags(s)
	assert.Empty(t, tags)
}

func TestMatchPatternsFindsT7Promoter(t *testing.T) {
	t7, err := seq.FromString("TAATACGACTCACTATAGGG")
	require.NoError(t, err)
	host := append(seq.Seq{}, t7...)

	matches := MatchPatterns(host)
	var found bool
	for _, m := range matches {
		if m.Name == "T7 promoter" {
			found = true
			assert.Equal(t, feature.Forward, m.Direction)
		}
	}
	assert.True(t, found)
}
