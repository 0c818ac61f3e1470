package restriction

import (
	"golang.org/x/exp/slices"

	"github.com/genomancer/plasmidcore/seq"
)

// Site is one occurrence of an enzyme's recognition sequence on a host,
// recorded on the top strand; CutPosition is the 1-based index (in
// RangeIncl terms: the base after which the top strand is nicked).
type Site struct {
	Range       seq.RangeIncl
	CutPosition int
	Forward     bool // true if matched on the given strand, false if on the reverse complement
}

// ReMatch summarizes every occurrence of one library enzyme against a host
// (spec.md S4.4: "Matches also record the per-enzyme site count").
type ReMatch struct {
	LibraryIndex int
	Enzyme       Enzyme
	Sites        []Site
}

func (m ReMatch) SiteCount() int { return len(m.Sites) }

// Search finds every site of every enzyme in lib against host, honoring
// origin-wrap when topology is Circular. Results never fail -- a host with
// no matches simply returns ReMatch entries with zero sites.
func Search(host seq.Seq, topology seq.Topology, lib []Enzyme) []ReMatch {
	out := make([]ReMatch, len(lib))
	for i, e := range lib {
		out[i] = ReMatch{LibraryIndex: i, Enzyme: e, Sites: searchOne(host, topology, e)}
	}
	return out
}

func searchOne(host seq.Seq, topology seq.Topology, e Enzyme) []Site {
	// On a circular host, scan the host followed by its first len(site)-1
	// bases so that sites spanning the origin are found; such a match is
	// mapped back to a wrapping range (End < Start).
	scan := host
	if topology == seq.Circular && len(e.RecognitionSeq) > 1 {
		extra := len(e.RecognitionSeq) - 1
		if extra > len(host) {
			extra = len(host)
		}
		scan = append(append(seq.Seq{}, host...), host[:extra]...)
	}
	forward, reverse := seq.MatchSubseq(e.RecognitionSeq, scan)
	for _, ranges := range [][]seq.RangeIncl{forward, reverse} {
		for i := range ranges {
			if ranges[i].End > len(host) {
				ranges[i].End -= len(host)
			}
		}
	}
	// A palindromic recognition sequence (its own reverse complement) names
	// one physical site per forward match; counting the reverse-strand
	// match too would double it, so skip the reverse pass in that case.
	palindromic := e.RecognitionSeq.Equal(e.RecognitionSeq.ReverseComplement())

	var sites []Site
	for _, r := range forward {
		if topology != seq.Circular && r.WrapsOrigin() {
			continue
		}
		sites = append(sites, Site{Range: r, CutPosition: cutPositionOf(r, e, host, true), Forward: true})
	}
	if !palindromic {
		for _, r := range reverse {
			if topology != seq.Circular && r.WrapsOrigin() {
				continue
			}
			sites = append(sites, Site{Range: r, CutPosition: cutPositionOf(r, e, host, false), Forward: false})
		}
	}
	// Sort by sequence index (spec.md S4.4: "Results are sorted by sequence index").
	slices.SortFunc(sites, func(a, b Site) int { return a.CutPosition - b.CutPosition })
	return sites
}

// cutPositionOf computes the 1-based base index after which the enzyme
// nicks, measuring CutAfter bases into the matched site from its 5' end on
// whichever strand matched.
func cutPositionOf(r seq.RangeIncl, e Enzyme, host seq.Seq, forward bool) int {
	hostLen := len(host)
	if forward {
		return wrapCut(r.Start+e.CutAfter-1, hostLen)
	}
	return wrapCut(r.End-e.CutAfter+1, hostLen)
}

func wrapCut(pos, hostLen int) int {
	for pos > hostLen {
		pos -= hostLen
	}
	for pos < 1 {
		pos += hostLen
	}
	return pos
}
