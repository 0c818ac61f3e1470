package restriction

import (
	"testing"

	"github.com/genomancer/plasmidcore/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsEcoRISite(t *testing.T) {
	host, err := seq.FromString("TTTTGAATTCAAAA")
	require.NoError(t, err)
	ecori, ok := ByName("EcoRI")
	require.True(t, ok)

	matches := Search(host, seq.Linear, []Enzyme{ecori})
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].SiteCount())
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	host, err := seq.FromString("AAAAAAAAAAAA")
	require.NoError(t, err)
	ecori, _ := ByName("EcoRI")
	matches := Search(host, seq.Linear, []Enzyme{ecori})
	assert.Equal(t, 0, matches[0].SiteCount())
}

func TestUniqueCuttersFilter(t *testing.T) {
	host, err := seq.FromString("GAATTCAAAAGAATTC")
	require.NoError(t, err)
	ecori, _ := ByName("EcoRI")
	bamhi, _ := ByName("BamHI")

	matches := Search(host, seq.Linear, []Enzyme{ecori, bamhi})
	unique := UniqueCutters(matches)
	// EcoRI cuts twice here, BamHI zero times -- neither is a unique cutter.
	assert.Len(t, unique, 0)
}

func TestStickyEndsOnlyFilter(t *testing.T) {
	ecori, _ := ByName("EcoRI")
	assert.False(t, ecori.IsBlunt())

	smai, _ := ByName("SmaI")
	assert.True(t, smai.IsBlunt())

	matches := []ReMatch{
		{Enzyme: ecori, Sites: []Site{{}}},
		{Enzyme: smai, Sites: []Site{{}}},
	}
	sticky := StickyEndsOnly(matches)
	require.Len(t, sticky, 1)
	assert.Equal(t, "EcoRI", sticky[0].Enzyme.Name)
}

func TestDigestZeroCutsReturnsWholeHost(t *testing.T) {
	host, err := seq.FromString("AAAACCCCGGGGTTTT")
	require.NoError(t, err)
	frags := Digest(host, seq.Linear, "test", nil)
	require.Len(t, frags, 1)
	assert.Equal(t, host.String(), frags[0].Seq.String())
}

func TestDigestLinearTwoCutsThreeFragments(t *testing.T) {
	host, err := seq.FromString("AAAAGAATTCCCCCGAATTCGGGG")
	require.NoError(t, err)
	ecori, _ := ByName("EcoRI")
	matches := Search(host, seq.Linear, []Enzyme{ecori})

	frags := Digest(host, seq.Linear, "test", matches)
	assert.Len(t, frags, 3)
}

func TestCandidateEnzymesSelectsSharedUniqueStickyCutters(t *testing.T) {
	insert, err := seq.FromString("AAAAGAATTCCCCC")
	require.NoError(t, err)
	backbone, err := seq.FromString("TTTTGAATTCGGGG")
	require.NoError(t, err)

	candidates := CandidateEnzymes(insert, seq.Linear, backbone, seq.Linear, Library)
	var names []string
	for _, c := range candidates {
		names = append(names, c.Enzyme.Name)
	}
	assert.Contains(t, names, "EcoRI")
}

func TestPreferredCandidatePicksFromSet(t *testing.T) {
	ecori, _ := ByName("EcoRI")
	candidates := []ReMatch{{Enzyme: ecori}}
	chosen, ok := PreferredCandidate(candidates)
	require.True(t, ok)
	assert.Equal(t, "EcoRI", chosen.Enzyme.Name)
}

func TestPreferredCandidateEmptySet(t *testing.T) {
	_, ok := PreferredCandidate(nil)
	assert.False(t, ok)
}
