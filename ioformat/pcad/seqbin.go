package pcad

import (
	"encoding/binary"
	"fmt"

	"github.com/genomancer/plasmidcore/seq"
)

// packSeq 2-bit packs s: a 4-byte big-endian length prefix (needed because
// one nucleotide necessarily encodes to 0b00 and trailing zero bits are
// otherwise ambiguous), then 4 nucleotides per byte, low bits first.
// Mirrors original_source/src/file_io/save.rs's serialize_seq_bin.
func packSeq(s seq.Seq) []byte {
	out := make([]byte, 4, 4+len(s)/4+1)
	binary.BigEndian.PutUint32(out, uint32(len(s)))
	for i := 0; i < len(s); i += 4 {
		var b byte
		for j := 0; j < 4 && i+j < len(s); j++ {
			b |= byte(s[i+j]) << (uint(j) * 2)
		}
		out = append(out, b)
	}
	return out
}

// unpackSeq reverses packSeq.
func unpackSeq(data []byte) (seq.Seq, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("packed sequence too short")
	}
	n := int(binary.BigEndian.Uint32(data[:4]))
	out := make(seq.Seq, 0, n)
	for _, b := range data[4:] {
		for i := 0; i < 4 && len(out) < n; i++ {
			bits := (b >> (uint(i) * 2)) & 0b11
			nt := seq.Nucleotide(bits)
			if nt > seq.G {
				return nil, fmt.Errorf("invalid packed nucleotide bits %d", bits)
			}
			out = append(out, nt)
		}
	}
	if len(out) != n {
		return nil, fmt.Errorf("packed sequence length mismatch: want %d got %d", n, len(out))
	}
	return out, nil
}
