/*
Package kmerindex builds a fixed-width k-mer position index over a host
sequence, hashed with murmur3 exactly as the teacher's mash package hashes
its sketch windows. It exists to keep primer matching and restriction-site
search responsive on sequences approaching the spec's ~1Mb interactive
budget: instead of testing every offset against a needle with a byte-by-byte
compare, callers first ask the index which offsets share the needle's
leading k-mer and only compare those.

The index never changes the result of a search, only which offsets get
compared; it is a pure performance aid, not part of the public matching
contract.
*/
package kmerindex

import "github.com/spaolacci/murmur3"

// K is the k-mer width used to key the index. 8 nucleotides (4^8 = 65536
// distinct keys) keeps the index small. Most restriction recognition sites
// are shorter than K; such needles are not looked up in the index and the
// caller scans every offset instead.
const K = 8

// Index maps an 8-mer's murmur3 hash to every 0-based offset in the host
// sequence letters where it occurs.
type Index struct {
	positions map[uint32][]int
	hostLen   int
}

// Build constructs an Index over the uppercase letters of host. Sequences
// shorter than K produce an empty, always-miss index.
func Build(host []byte) *Index {
	idx := &Index{positions: make(map[uint32][]int), hostLen: len(host)}
	if len(host) < K {
		return idx
	}
	for i := 0; i+K <= len(host); i++ {
		h := murmur3.Sum32(host[i : i+K])
		idx.positions[h] = append(idx.positions[h], i)
	}
	return idx
}

// Candidates returns the 0-based offsets in the indexed host where the first
// K bytes of needle might start a match. If needle is shorter than K, or the
// index was built over a too-short host, ok is false and the caller must
// fall back to scanning every offset itself.
func (idx *Index) Candidates(needle []byte) (offsets []int, ok bool) {
	if idx == nil || len(needle) < K || idx.hostLen < K {
		return nil, false
	}
	h := murmur3.Sum32(needle[:K])
	return idx.positions[h], true
}
