package seq

import "github.com/genomancer/plasmidcore/internal/kmerindex"

// MatchSubseq scans host for every exact occurrence of needle, forward and
// on the reverse complement strand. Forward ranges are 1-based inclusive
// positions where host[start..end] literally equals needle. Reverse ranges
// are 1-based inclusive positions on the original (forward) strand where the
// reverse complement of needle occurs -- i.e. host[start..end] equals
// needle.ReverseComplement().
//
// Matching is exact. On hosts long enough to make indexing worthwhile, a
// kmerindex.Index narrows the offsets actually compared byte-for-byte; the
// result is identical either way, only the constant factor changes, keeping
// primer/restriction-site search responsive as hosts approach spec.md C1's
// ~1Mb interactive budget.
func MatchSubseq(needle, host Seq) (forward, reverse []RangeIncl) {
	if len(needle) == 0 || len(needle) > len(host) {
		return nil, nil
	}
	revComp := needle.ReverseComplement()

	hostBytes := []byte(host.String())
	idx := kmerindex.Build(hostBytes)

	forward = matchOne(idx, hostBytes, host, needle)
	reverse = matchOne(idx, hostBytes, host, revComp)
	return forward, reverse
}

func matchOne(idx *kmerindex.Index, hostBytes []byte, host, needle Seq) []RangeIncl {
	var out []RangeIncl
	if offsets, ok := idx.Candidates([]byte(needle.String())); ok {
		for _, i := range offsets {
			if i+len(needle) <= len(host) && regionEqual(host, i, needle) {
				out = append(out, RangeIncl{Start: i + 1, End: i + len(needle)})
			}
		}
		sortRanges(out)
		return out
	}
	for i := 0; i+len(needle) <= len(host); i++ {
		if regionEqual(host, i, needle) {
			out = append(out, RangeIncl{Start: i + 1, End: i + len(needle)})
		}
	}
	return out
}

// sortRanges restores ascending-start order: kmerindex.Candidates returns
// offsets in the order they were indexed, which is already ascending, but
// this keeps the guarantee explicit rather than relying on that incidentally.
func sortRanges(ranges []RangeIncl) {
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && ranges[j].Start < ranges[j-1].Start; j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}

func regionEqual(host Seq, offset int, needle Seq) bool {
	for j, n := range needle {
		if host[offset+j] != n {
			return false
		}
	}
	return true
}
