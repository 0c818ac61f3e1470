package orf

import (
	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// patternEntry is one fixed plasmid-part pattern (spec.md S4.5). Coding/
// ori/promoter/resistance entries carry a meaningful direction; others
// (terminators, RBS) do not.
type patternEntry struct {
	Name       string
	Type       feature.Type
	Seq        seq.Seq
	Directional bool
}

func p(name string, t feature.Type, letters string, directional bool) patternEntry {
	s, err := seq.FromString(letters)
	if err != nil {
		panic(err)
	}
	return patternEntry{Name: name, Type: t, Seq: s, Directional: directional}
}

// PatternLibrary is the fixed list of common plasmid parts scanned for by
// MatchPatterns (spec.md S4.5).
var PatternLibrary = []patternEntry{
	p("T7 promoter", feature.Promoter, "TAATACGACTCACTATAGGG", true),
	p("lac promoter", feature.Promoter, "TTTACACTTTATGCTTCCGGCTCGTATGTTGTGTGGAATTGTGAGCGGATAACAATT", true),
	p("CMV promoter (partial)", feature.Promoter, "TATTAATAGTAATCAATTACGGGGTCATTAGTTCATAGCCCATATATGGAGTTCCGCGTTACATAACTTACGGTAAATGGCCCGCCTGGCTGACCGCCCAACGACCCCCGCCCATTGACGTCAATAATGACGTATGTTCCCATAGTAACGCCAATAGGGACTTTCCATTGACGTCAATGGGTGGAGTATTTACGGTAAACTGCCCACTTGGCAGTACATCAAGTGTATCATATGCCAAGTACGCCCCCTATTGACGTCAATGACGGTAAATGGCCCGCCTGGCATTATGCCCAGTACATGACCTTATGGGACTTTCCTACTTGGCAGTACATCTACGTATTAGTCATCGCTATTACCATG", true),
	p("AmpR promoter", feature.Promoter, "GGAAACGCCTGGTATCTTTATAGTCCTGTCG", true),
	p("KanR promoter", feature.Promoter, "GTGGTTACGCGCAGCGTGACCGCTACACTTGCC", true),

	p("pUC ori", feature.Ori, "TTAAGGGATTTTGGTCATGAGATTATCAAAAAGGATCTTCACCTAGATCCTTTT", true),
	p("f1 ori (partial)", feature.Ori, "CCCCTAAAGGGAGCCCGGTAGCTCAGTCGGTAGAGCAGCGGCCGC", true),
	p("pSC101 ori (partial)", feature.Ori, "AAAGAGTTTGTAGAAACGCAAAAAGGCCATCC", true),

	p("AmpR (bla) (partial)", feature.CodingRegion, "ATGAGTATTCAACATTTCCGTGTCGCCCTTATTCCCTTTTTTGCGGCATTTTGCCTTCCTGTTTTTGCTCACCCAGAAACGCTGGTGAAAGTAAAAGATGCTGAAGATCAGTTGGGTGCACGAGTGGGTTACATCGAACTGGATCTCAACAGCGGTAAGATCCTTGAGAGTTTTCGCCCCGAAGAACGTTTTCCAATGATGAGCACTTTTAAAGTTCTGCTATGTGGCGCGGTATTATCCCGTATTGACGCCGGGCAAGAGCAACTCGGTCGCCGCATACACTATTCTCAGAATGACTTGGTTGAGTACTCACCAGTCACAGAAAAGCATCTTACGGATGGCATGACAGTAAGAGAATTATGCAGTGCTGCCATAACCATGAGTGATAACACTGCGGCCAACTTACTTCTGACAACGATCGGAGGACCGAAGGAGCTAACCGCTTTTTTGCACAACATGGGGGATCATGTAACTCGCCTTGATCGTTGGGAACCGGAGCTGAATGAAGCCATACCAAACGACGAGCGTGACACCACGATGCCTGTAGCAATGGCAACAACGTTGCGCAAACTATTAACTGGCGAACTACTTACTCTAGCTTCCCGGCAACAATTAATAGACTGGATGGAGGCGGATAAAGTTGCAGGACCACTTCTGCGCTCGGCCCTTCCGGCTGGCTGGTTTATTGCTGATAAATCTGGAGCCGGTGAGCGTGGGTCTCGCGGTATCATTGCAGCACTGGGGCCAGATGGTAAGCCCTCCCGTATCGTAGTTATCTACACGACGGGGAGTCAGGCAACTATGGATGAACGAAATAGACAGATCGCTGAGATAGGTGCCTCACTGATTAAGCATTGGTAA", true),
	p("KanR (partial)", feature.CodingRegion, "ATGAGCCATATTCAACGGGAAACGTCTTGCTCTAGGCCGCGATTAAATTCCAACATGGATGCTGATTTATATGGGTATAAATGGGCTCGCGATAATGTCGGGCAATCAGGTGCGACAATCTATCGATTGTATGGGAAGCCCGATGCGCCAGAGTTGTTTCTGAAACATGGCAAAGGTAGCGTTGCCAATGATGTTACAGATGAGATGGTCAGACTAAACTGGCTGACGGAATTTATGCCTCTTCCGACCATCAAGCATTTTATCCGTACTCCTGATGATGCATGGTTACTCACCACTGCGATCCCCGGGAAAACAGCATTCCAGGTATTAGAAGAATATCCTGATTCAGGTGAAAATATTGTTGATGCGCTGGCAGTGTTCCTGCGCCGGTTGCATTCGATTCCTGTTTGTAATTGTCCTTTTAACAGCGATCGCGTATTTCGTCTCGCTCAGGCGCAATCACGAATGAATAACGGTTTGGTTGATGCGAGTGATTTTGATGACGAGCGTAATGGCTGGCCTGTTGAACAAGTCTGGAAAGAAATGCATAAACTTTTGCCATTCTCACCGGATTCAGTCGTCACTCATGGTGATTTCTCACTTGATAACCTTATTTTTGACGAGGGGAAATTAATAGGTTGTATTGATGTTGGACGAGTCGGAATCGCAGACCGATACCAGGATCTTGCCATCCTATGGAACTGCCTCGGTGAGTTTTCTCCTTCATTACAGAAACGGCTTTTTCAAAAATATGGTATTGATAATCCTGATATGAATAAATTGCAGTTTCATTTGATGCTCGATGAGTTTTTCTAA", true),

	p("lac operator (O1)", feature.ProteinBind, "AATTGTGAGCGGATAACAATT", false),
	p("tet operator", feature.ProteinBind, "TCCCTATCAGTGATAGAGA", false),

	p("Shine-Dalgarno RBS", feature.RibosomeBindSite, "AGGAGG", false),
	p("T7 terminator", feature.Terminator, "CTAGCATAACCCCTTGGGGCCTCTAAACGGGTCTTGAGGGGTTTTTTG", false),
	p("rrnB T1 terminator (partial)", feature.Terminator, "CAAATAAAACGAAAGGCTCAGTCGAAAGACTGGGCCTTTCGTTTTATCTGTTGTTTGTCGGTGAACGCTCTCCTGAGTAGGACAAATCCGCCGGGAGCGGATTTGAACGTTGCGAAGCAACGGCCCGGAGGGTGGCGGGCAGGACGCCCGCCATAAACTGCCAGGCATCAAATTAAGCAGAAGGCCATCCTGACGGATGGCCTTTTTGCGTTTCTACAAACTCTTTT", false),
}

// PatternMatch is a hit against PatternLibrary, carrying the entry and the
// range/direction on the host it matched (spec.md S4.5).
type PatternMatch struct {
	Name      string
	Type      feature.Type
	Range     seq.RangeIncl
	Direction feature.Direction
}

// MatchPatterns scans host forward and reverse-complement against every
// entry in PatternLibrary (spec.md S4.5).
func MatchPatterns(host seq.Seq) []PatternMatch {
	var out []PatternMatch
	for _, entry := range PatternLibrary {
		forward, reverse := seq.MatchSubseq(entry.Seq, host)
		for _, r := range forward {
			dir := feature.None
			if entry.Directional {
				dir = feature.Forward
			}
			out = append(out, PatternMatch{Name: entry.Name, Type: entry.Type, Range: r, Direction: dir})
		}
		for _, r := range reverse {
			dir := feature.None
			if entry.Directional {
				dir = feature.Reverse
			}
			out = append(out, PatternMatch{Name: entry.Name, Type: entry.Type, Range: r, Direction: dir})
		}
	}
	return out
}
