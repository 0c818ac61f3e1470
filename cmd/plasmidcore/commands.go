package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/ioformat/fasta"
	"github.com/genomancer/plasmidcore/ioformat/genbank"
	"github.com/genomancer/plasmidcore/ioformat/pcad"
	"github.com/genomancer/plasmidcore/ioformat/snapgene"
	"github.com/genomancer/plasmidcore/orf"
	"github.com/genomancer/plasmidcore/primer"
	"github.com/genomancer/plasmidcore/restriction"
	"github.com/genomancer/plasmidcore/restriction/store"
	"github.com/genomancer/plasmidcore/seq"
)

// formatOf determines which codec to use for path, preferring an explicit
// flag over the file extension the way root commands.go's fileParser does.
func formatOf(c *cli.Context, path string) string {
	if f := c.String("i"); f != "" {
		return strings.ToLower(f)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gbk", ".gb", ".genbank":
		return "gbk"
	case ".fasta", ".fa", ".fna":
		return "fasta"
	case ".dna":
		return "snapgene"
	case ".pcad":
		return "pcad"
	default:
		return ""
	}
}

// readConstruct opens path and decodes it with the codec named by format.
// FASTA files may hold more than one record; only the first is returned,
// since every other subcommand here operates on a single construct.
func readConstruct(format, path string) (feature.Construct, error) {
	f, err := os.Open(path)
	if err != nil {
		return feature.Construct{}, err
	}
	defer f.Close()

	switch format {
	case "gbk", "gb":
		return genbank.Parse(f)
	case "fasta", "fa":
		records, err := fasta.ParseAll(f)
		if err != nil {
			return feature.Construct{}, err
		}
		if len(records) == 0 {
			return feature.Construct{}, fmt.Errorf("%s: no records found", path)
		}
		return records[0].Construct, nil
	case "snapgene", "dna":
		return snapgene.Parse(f)
	case "pcad":
		return pcad.Parse(f)
	default:
		return feature.Construct{}, fmt.Errorf("unrecognized format %q (pass -i explicitly)", format)
	}
}

// writeConstruct encodes c with the codec named by format to w.
func writeConstruct(w *os.File, format string, c feature.Construct) error {
	switch format {
	case "gbk", "gb":
		return genbank.Write(w, c)
	case "fasta", "fa":
		return fasta.WriteAll(w, []fasta.Record{{Name: c.Metadata.PlasmidName, Construct: c}})
	case "snapgene", "dna":
		return snapgene.Write(w, c)
	case "pcad":
		return pcad.Write(w, c)
	default:
		return fmt.Errorf("unrecognized output format %q", format)
	}
}

// openCommand parses a single construct file and prints a one-row summary.
func openCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: plasmidcore open [-i format] <path>")
	}
	format := formatOf(c, path)
	construct, err := readConstruct(format, path)
	if err != nil {
		return err
	}

	topology := "linear"
	if construct.Topology == seq.Circular {
		topology = "circular"
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Length", "Topology", "Features", "Primers"})
	table.Append([]string{
		construct.Metadata.PlasmidName,
		strconv.Itoa(construct.Len()),
		topology,
		strconv.Itoa(len(construct.Features)),
		strconv.Itoa(len(construct.Primers)),
	})
	table.Render()
	return nil
}

// convertCommand reads a single construct file and re-encodes it in another
// format, writing to a sibling file whose extension matches the output
// format, following root commands.go's convert pattern.
func convertCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: plasmidcore convert -o <format> <path>")
	}
	inFormat := formatOf(c, path)
	construct, err := readConstruct(inFormat, path)
	if err != nil {
		return err
	}

	outFormat := strings.ToLower(c.String("o"))
	extension := filepath.Ext(path)
	outputPath := path[:len(path)-len(extension)] + "." + outFormat

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeConstruct(out, outFormat, construct); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", outputPath)
	return nil
}

// digestCommand searches a construct for restriction sites (optionally
// restricted to a named subset, optionally filtered to unique cutters and/or
// sticky-end cutters) and prints the resulting fragments.
func digestCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: plasmidcore digest <path>")
	}
	construct, err := readConstruct(formatOf(c, path), path)
	if err != nil {
		return err
	}

	lib := restriction.Library
	if names := c.StringSlice("enzyme"); len(names) > 0 {
		lib = nil
		for _, name := range names {
			e, ok := restriction.ByName(name)
			if !ok {
				return fmt.Errorf("unknown enzyme %q", name)
			}
			lib = append(lib, e)
		}
	}

	matches := restriction.Search(construct.Seq, construct.Topology, lib)
	if c.Bool("unique") {
		matches = restriction.UniqueCutters(matches)
	}
	if c.Bool("sticky") {
		filtered, err := stickyFilter(lib, matches)
		if err != nil {
			return err
		}
		matches = filtered
	}

	fragments := restriction.Digest(construct.Seq, construct.Topology, construct.Metadata.PlasmidName, matches)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Fragment", "Length", "Left Enzyme", "Right Enzyme"})
	for i, frag := range fragments {
		leftName, rightName := "", ""
		if frag.LeftEnzyme != nil {
			leftName = frag.LeftEnzyme.Name
		}
		if frag.RightEnzyme != nil {
			rightName = frag.RightEnzyme.Name
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(frag.Seq)),
			leftName,
			rightName,
		})
	}
	table.Render()
	return nil
}

// stickyFilter retains matches whose enzyme leaves a sticky end, querying
// the sqlite-backed store rather than restriction.StickyEndsOnly's in-memory
// walk -- the store exists precisely so a caller like this one can filter by
// SQL instead of re-deriving the predicate over the Go slice each time.
func stickyFilter(lib []restriction.Enzyme, matches []restriction.ReMatch) ([]restriction.ReMatch, error) {
	s, err := store.Open(lib)
	if err != nil {
		return nil, fmt.Errorf("sticky filter: %w", err)
	}
	defer s.Close()

	names, err := s.StickyEndNames()
	if err != nil {
		return nil, fmt.Errorf("sticky filter: %w", err)
	}
	sticky := make(map[string]bool, len(names))
	for _, n := range names {
		sticky[n] = true
	}

	var out []restriction.ReMatch
	for _, m := range matches {
		if sticky[m.Enzyme.Name] {
			out = append(out, m)
		}
	}
	return out, nil
}

// tmCommand computes melting temperature and the full quality-metric set
// for a bare primer sequence given on the command line.
func tmCommand(c *cli.Context) error {
	letters := c.Args().First()
	if letters == "" {
		return fmt.Errorf("usage: plasmidcore tm <sequence>")
	}
	s, err := seq.FromString(letters)
	if err != nil {
		return err
	}

	ions := feature.DefaultIonConcentrations
	ions.MonovalentMM = c.Float64("na")
	ions.DivalentMM = c.Float64("mg")

	meltingTemp := primer.Tm(s, ions)
	metrics := primer.Metrics(feature.Primer{Sequence: s}, ions)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Length", strconv.Itoa(len(s))})
	table.Append([]string{"Tm (C)", fmt.Sprintf("%.2f", meltingTemp)})
	if metrics != nil {
		table.Append([]string{"GC Fraction", fmt.Sprintf("%.2f", metrics.GCFraction)})
		table.Append([]string{"3' GC", strconv.Itoa(metrics.ThreePrimeGC)})
		table.Append([]string{"Self-End Dimer Score", strconv.Itoa(metrics.SelfEndDimer)})
		table.Append([]string{"Repeat Score", strconv.Itoa(metrics.RepeatScore)})
		table.Append([]string{"Composite Score", fmt.Sprintf("%.2f", metrics.CompositeScore)})
	}
	table.Render()
	return nil
}

// orfCommand scans a construct's six reading frames for ORFs, His-tag runs,
// and known plasmid part patterns, printing one table per category.
func orfCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: plasmidcore orf <path>")
	}
	construct, err := readConstruct(formatOf(c, path), path)
	if err != nil {
		return err
	}

	frames := orf.ScanFrames(construct.Seq)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Frame", "Range"})
	for _, m := range frames {
		table.Append([]string{m.Frame.String(), fmt.Sprintf("%d..%d", m.Range.Start, m.Range.End)})
	}
	table.Render()

	hisTags := orf.FindHisTags(construct.Seq)
	if len(hisTags) > 0 {
		hisTable := tablewriter.NewWriter(os.Stdout)
		hisTable.SetHeader([]string{"His-tag", "Range"})
		for _, f := range hisTags {
			hisTable.Append([]string{f.Label, fmt.Sprintf("%d..%d", f.Range.Start, f.Range.End)})
		}
		hisTable.Render()
	}

	patterns := orf.MatchPatterns(construct.Seq)
	if len(patterns) > 0 {
		patternTable := tablewriter.NewWriter(os.Stdout)
		patternTable.SetHeader([]string{"Part", "Type", "Range"})
		for _, m := range patterns {
			patternTable.Append([]string{m.Name, m.Type.ExternalName(), fmt.Sprintf("%d..%d", m.Range.Start, m.Range.End)})
		}
		patternTable.Render()
	}
	return nil
}
