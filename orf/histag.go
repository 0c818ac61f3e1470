package orf

import (
	"fmt"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

var histidineCodons = map[string]bool{"CAT": true, "CAC": true}

const minHisRun = 6

// FindHisTags scans every reading frame for runs of 6 or more consecutive
// histidine codons, emitting a CodingRegion feature labeled "{n}xHis" for
// each run found (spec.md S4.5).
func FindHisTags(s seq.Seq) []feature.Feature {
	var out []feature.Feature
	for _, f := range []Frame{Fwd0, Fwd1, Fwd2, Rev0, Rev1, Rev2} {
		out = append(out, findHisRunsInFrame(s, f)...)
	}
	return out
}

func findHisRunsInFrame(s seq.Seq, f Frame) []feature.Feature {
	letters := frameLetters(s, f)
	offset := f.offset()
	var out []feature.Feature

	i := offset
	for i+3 <= len(letters) {
		if !histidineCodons[letters[i:i+3]] {
			i += 3
			continue
		}
		runStart := i
		count := 0
		for i+3 <= len(letters) && histidineCodons[letters[i:i+3]] {
			count++
			i += 3
		}
		if count >= minHisRun {
			dir := feature.Forward
			if f.reverse() {
				dir = feature.Reverse
			}
			out = append(out, feature.Feature{
				Range:     seq.RangeIncl{Start: runStart + 1, End: i},
				Type:      feature.CodingRegion,
				Direction: dir,
				Label:     fmt.Sprintf("%dxHis", count),
			})
		}
	}
	return out
}
