package restriction

import (
	"sort"

	"github.com/genomancer/plasmidcore/seq"
)

// LigationFragment is one piece of a digested host, bounded by the enzymes
// (if any) that cut at each end (spec.md S4.4).
type LigationFragment struct {
	Seq        seq.Seq
	SourceName string
	LeftEnzyme *Enzyme
	RightEnzyme *Enzyme
}

// cutEvent pairs a cut position with the enzyme responsible, for sorting.
type cutEvent struct {
	position int
	enzyme   *Enzyme
}

// Digest computes the digestion fragments of host given a set of matches
// selected as the candidate cut set (spec.md S4.4). A zero-cut selection
// returns a single fragment equal to the whole host.
func Digest(host seq.Seq, topology seq.Topology, sourceName string, matches []ReMatch) []LigationFragment {
	var events []cutEvent
	for i := range matches {
		e := matches[i].Enzyme
		for _, site := range matches[i].Sites {
			events = append(events, cutEvent{position: site.CutPosition, enzyme: &e})
		}
	}
	if len(events) == 0 {
		return []LigationFragment{{Seq: append(seq.Seq(nil), host...), SourceName: sourceName}}
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].position < events[j].position })

	hostLen := len(host)
	var frags []LigationFragment

	if topology == seq.Circular {
		for i := 0; i < len(events); i++ {
			cur := events[i]
			next := events[(i+1)%len(events)]
			r := seq.RangeIncl{Start: cur.position + 1, End: next.position}
			s := r.Slice(host)
			frags = append(frags, LigationFragment{Seq: s, SourceName: sourceName, LeftEnzyme: cur.enzyme, RightEnzyme: next.enzyme})
		}
		return frags
	}

	// Linear: first fragment spans [1, first_cut], last spans (last_cut, len].
	first := events[0]
	frags = append(frags, LigationFragment{
		Seq:         seq.RangeIncl{Start: 1, End: first.position}.Slice(host),
		SourceName:  sourceName,
		RightEnzyme: first.enzyme,
	})
	for i := 0; i < len(events)-1; i++ {
		cur, next := events[i], events[i+1]
		frags = append(frags, LigationFragment{
			Seq:         seq.RangeIncl{Start: cur.position + 1, End: next.position}.Slice(host),
			SourceName:  sourceName,
			LeftEnzyme:  cur.enzyme,
			RightEnzyme: next.enzyme,
		})
	}
	last := events[len(events)-1]
	frags = append(frags, LigationFragment{
		Seq:        seq.RangeIncl{Start: last.position + 1, End: hostLen}.Slice(host),
		SourceName: sourceName,
		LeftEnzyme: last.enzyme,
	})
	return frags
}

// CandidateEnzymes selects enzymes suitable for cloning insert into backbone:
// matches on both, intersected, then filtered to unique+sticky-end cutters
// (spec.md S4.4 "Backbone/insert candidate selection").
func CandidateEnzymes(insert seq.Seq, insertTopology seq.Topology, backbone seq.Seq, backboneTopology seq.Topology, lib []Enzyme) []ReMatch {
	insertMatches := Search(insert, insertTopology, lib)
	backboneMatches := Search(backbone, backboneTopology, lib)
	common := CommonToAll([][]ReMatch{insertMatches, backboneMatches})
	return StickyEndsOnly(UniqueCutters(common))
}
