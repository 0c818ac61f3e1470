/*
Package restriction recognizes restriction-enzyme sites, computes digestion
fragments, and selects enzymes suitable for cloning between a backbone and an
insert.

The enzyme library and cut-site bookkeeping are grounded on the teacher's
clone/clone.go (Enzyme/EnzymeManager/Overhang/Fragment) and io/rebase/rebase.go
(the REBASE dump this kind of table is normally derived from), generalized to
spec.md S4.4's RangeIncl/origin-wrap search model instead of regexp-on-strings.
*/
package restriction

import "github.com/genomancer/plasmidcore/seq"

// Enzyme is one restriction enzyme: its recognition sequence and the offset,
// measured in bases after the start of that recognition sequence, where it
// cuts the top strand (spec.md S4.4).
type Enzyme struct {
	Name           string
	RecognitionSeq seq.Seq
	CutAfter       int // bases after the site's start where the top strand is cut; see IsBlunt
}

// IsBlunt reports whether the enzyme leaves a blunt end (cuts in the middle
// of its recognition sequence, leaving no single-stranded overhang). The
// library's CutAfter convention puts blunt cutters at exactly the midpoint
// of RecognitionSeq (e.g. SmaI CutAfter=3, len=6); CutAfter==0 is also blunt,
// covering enzymes that cut immediately at the start of the site.
func (e Enzyme) IsBlunt() bool {
	return e.CutAfter == 0 || e.CutAfter == len(e.RecognitionSeq)/2
}

func mustSeq(s string) seq.Seq {
	out, err := seq.FromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// Library is the curated ~50-entry enzyme table (spec.md S4.4), a
// representative cross-section of common type II enzymes.
var Library = []Enzyme{
	{"AanI", mustSeq("TTATAA"), 3},
	{"AatII", mustSeq("GACGTC"), 5},
	{"BspHI", mustSeq("TCATGA"), 1},
	{"AfeI", mustSeq("AGCGCT"), 3},
	{"AflII", mustSeq("CTTAAG"), 1},
	{"AgeI", mustSeq("ACCGGT"), 1},
	{"ApaI", mustSeq("GGGCCC"), 5},
	{"AscI", mustSeq("GGCGCGCC"), 2},
	{"AvrII", mustSeq("CCTAGG"), 1},
	{"BamHI", mustSeq("GGATCC"), 1},
	{"BclI", mustSeq("TGATCA"), 1},
	{"BglII", mustSeq("AGATCT"), 1},
	{"BsiWI", mustSeq("CGTACG"), 1},
	{"BspEI", mustSeq("TCCGGA"), 1},
	{"BsrGI", mustSeq("TGTACA"), 1},
	{"BssHII", mustSeq("GCGCGC"), 1},
	{"BstBI", mustSeq("TTCGAA"), 2},
	{"ClaI", mustSeq("ATCGAT"), 2},
	{"DraI", mustSeq("TTTAAA"), 3},
	{"EagI", mustSeq("CGGCCG"), 1},
	{"EcoRI", mustSeq("GAATTC"), 1},
	{"EcoRV", mustSeq("GATATC"), 3},
	{"FseI", mustSeq("GGCCGGCC"), 6},
	{"FspI", mustSeq("TGCGCA"), 3},
	{"HindIII", mustSeq("AAGCTT"), 1},
	{"HpaI", mustSeq("GTTAAC"), 3},
	{"KasI", mustSeq("GGCGCC"), 1},
	{"KpnI", mustSeq("GGTACC"), 5},
	{"MfeI", mustSeq("CAATTG"), 1},
	{"MluI", mustSeq("ACGCGT"), 1},
	{"MscI", mustSeq("TGGCCA"), 3},
	{"NaeI", mustSeq("GCCGGC"), 3},
	{"NcoI", mustSeq("CCATGG"), 1},
	{"NdeI", mustSeq("CATATG"), 2},
	{"NheI", mustSeq("GCTAGC"), 1},
	{"NotI", mustSeq("GCGGCCGC"), 2},
	{"NruI", mustSeq("TCGCGA"), 3},
	{"NsiI", mustSeq("ATGCAT"), 5},
	{"PacI", mustSeq("TTAATTAA"), 5},
	{"PciI", mustSeq("ACATGT"), 1},
	{"PmeI", mustSeq("GTTTAAAC"), 4},
	{"PmlI", mustSeq("CACGTG"), 3},
	{"PsiI", mustSeq("TTATAA"), 3},
	{"PstI", mustSeq("CTGCAG"), 5},
	{"PvuI", mustSeq("CGATCG"), 4},
	{"PvuII", mustSeq("CAGCTG"), 3},
	{"SacI", mustSeq("GAGCTC"), 5},
	{"SacII", mustSeq("CCGCGG"), 4},
	{"SalI", mustSeq("GTCGAC"), 1},
	{"SbfI", mustSeq("CCTGCAGG"), 6},
	{"SmaI", mustSeq("CCCGGG"), 3},
	{"SnaBI", mustSeq("TACGTA"), 3},
	{"SpeI", mustSeq("ACTAGT"), 1},
	{"SphI", mustSeq("GCATGC"), 5},
	{"SrfI", mustSeq("GCCCGGGC"), 4},
	{"StuI", mustSeq("AGGCCT"), 3},
	{"SwaI", mustSeq("ATTTAAAT"), 4},
	{"XbaI", mustSeq("TCTAGA"), 1},
	{"XhoI", mustSeq("CTCGAG"), 1},
	{"XmaI", mustSeq("CCCGGG"), 1},
}

// ByName returns the library enzyme with the given name.
func ByName(name string) (Enzyme, bool) {
	for _, e := range Library {
		if e.Name == name {
			return e, true
		}
	}
	return Enzyme{}, false
}
