package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/ioformat/genbank"
	"github.com/genomancer/plasmidcore/seq"
)

/******************************************************************************

Testing command line utilities can be annoying. The way root commands.go's
own tests do it is by temporarily swapping os.Stdout for a pipe and reading
back whatever was written to it. We follow the same approach here since our
subcommands print through tablewriter straight to os.Stdout rather than
through the cli.App's configurable Writer.

******************************************************************************/

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	rescue := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = rescue

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeSampleGenbank(t *testing.T) string {
	t.Helper()
	c := feature.New()
	c.Metadata.PlasmidName = "sample"
	c.Topology = seq.Circular
	c.Seq, _ = seq.FromString("AAAAGAATTCAAAATGAAACGTTTTTAA")
	require.NoError(t, c.AddFeature(feature.Feature{
		Range: seq.RangeIncl{Start: 1, End: 10},
		Type:  feature.Gene,
		Label: "testGene",
	}))

	path := filepath.Join(t.TempDir(), "sample.gbk")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, genbank.Write(f, c))
	return path
}

func TestOpenCommandPrintsSummary(t *testing.T) {
	path := writeSampleGenbank(t)

	out := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "open", path})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "sample")
	assert.Contains(t, out, "28")
}

func TestConvertCommandWritesSiblingFile(t *testing.T) {
	path := writeSampleGenbank(t)

	err := application().Run([]string{"plasmidcore", "convert", "-o", "fasta", path})
	require.NoError(t, err)

	outputPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".fasta"
	defer os.Remove(outputPath)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestDigestCommandListsEcoRIFragments(t *testing.T) {
	path := writeSampleGenbank(t)

	out := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "digest", "--enzyme", "EcoRI", path})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "Fragment")
}

func TestDigestCommandStickyFlagKeepsEcoRI(t *testing.T) {
	path := writeSampleGenbank(t)

	out := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "digest", "--enzyme", "EcoRI", "--sticky", path})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "EcoRI")
}

func TestDigestCommandStickyFlagDropsBluntEnzyme(t *testing.T) {
	c := feature.New()
	c.Metadata.PlasmidName = "blunt-and-sticky"
	c.Topology = seq.Circular
	// GAATTC is EcoRI (sticky, CutAfter=1); CCCGGG is SmaI (blunt, CutAfter=3).
	c.Seq, _ = seq.FromString("AAAAGAATTCAAAACCCGGGAAAA")
	path := filepath.Join(t.TempDir(), "blunt.gbk")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, genbank.Write(f, c))
	require.NoError(t, f.Close())

	withoutSticky := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "digest", "--enzyme", "EcoRI", "--enzyme", "SmaI", path})
		assert.NoError(t, err)
	})
	assert.Contains(t, withoutSticky, "EcoRI")
	assert.Contains(t, withoutSticky, "SmaI")

	withSticky := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "digest", "--enzyme", "EcoRI", "--enzyme", "SmaI", "--sticky", path})
		assert.NoError(t, err)
	})
	assert.Contains(t, withSticky, "EcoRI")
	assert.NotContains(t, withSticky, "SmaI")
}

func TestTmCommandPrintsMeltingTemperature(t *testing.T) {
	out := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "tm", "ACGTACGTACGTACGTACGT"})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "Tm (C)")
}

func TestOrfCommandFindsStartCodon(t *testing.T) {
	path := writeSampleGenbank(t)

	out := captureStdout(t, func() {
		err := application().Run([]string{"plasmidcore", "orf", path})
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "Frame")
}

func TestOpenCommandErrorsWithoutPath(t *testing.T) {
	err := application().Run([]string{"plasmidcore", "open"})
	assert.Error(t, err)
}
