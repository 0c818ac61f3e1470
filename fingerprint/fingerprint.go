/*
Package fingerprint gives a Construct a stable identifier that doesn't
depend on where its origin happens to sit or which strand it was recorded
from -- two rotations of the same circular plasmid, or a plasmid and its
reverse complement, fingerprint identically.

This is a direct generalization of two pieces of teacher machinery: the
root hash.go/seqhash package's Booth-least-rotation canonicalization (used
there to give an AnnotatedSequence a consistent cross-database identifier),
and clone.go's CircularLigate, which used the same idea (seqhash.Hash with
circular+doubleStranded set) to deduplicate candidate ligation products
during GoldenGate assembly. We fold both into one Construct-level primitive
so clone's cloning operations (PCR, insertion) and any batch caller can
dedupe results the same way.
*/
package fingerprint

import (
	"crypto"
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/hex"
	"errors"
	"io"
	"sort"
	"strings"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/ripemd160"
	_ "golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

// Fingerprint is a Construct's canonicalized hash, hex-encoded.
type Fingerprint string

// Of computes c's fingerprint with Blake3, the default the rest of this
// module uses (genbank.Sum checksums). The sequence
// is rotated to its lexicographically-least rotation if c is Circular
// (BoothLeastRotation), then compared against its reverse complement
// similarly rotated, and the lexicographically smaller of the two is hashed
// -- so orientation and origin never affect the result.
func Of(c feature.Construct) Fingerprint {
	sum := blake3.Sum256([]byte(canonicalLetters(c)))
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// OfWith computes c's fingerprint using any registered crypto.Hash instead
// of Blake3 -- e.g. a caller matching fingerprints against a third-party
// database keyed by SHA-256 or BLAKE2b rather than this module's own
// default. Mirrors the teacher's root hash.go GenericSequenceHash, which
// hashes an AnnotatedSequence through the same registry rather than a single
// hardcoded algorithm.
func OfWith(c feature.Construct, h crypto.Hash) (Fingerprint, error) {
	if !h.Available() {
		return "", errors.New("fingerprint: requested hash is not available")
	}
	hasher := h.New()
	io.WriteString(hasher, canonicalLetters(c))
	return Fingerprint(hex.EncodeToString(hasher.Sum(nil))), nil
}

// Equal reports whether a and b are the same sequence up to rotation and
// strand.
func Equal(a, b feature.Construct) bool {
	return Of(a) == Of(b)
}

func canonicalLetters(c feature.Construct) string {
	letters := strings.ToUpper(c.Seq.String())
	return canonicalize(letters, c.Topology == seq.Circular)
}

// canonicalize applies rotation (if circular) and strand canonicalization,
// mirroring seqhash.prepareDeterministicSequence's circular+doubleStranded
// case: DNA here is always treated as double-stranded.
func canonicalize(letters string, circular bool) string {
	revComp := reverseComplement(letters)
	if circular {
		candidates := []string{rotateLeast(letters), rotateLeast(revComp)}
		sort.Strings(candidates)
		return candidates[0]
	}
	candidates := []string{letters, revComp}
	sort.Strings(candidates)
	return candidates[0]
}

func reverseComplement(letters string) string {
	out := make([]byte, len(letters))
	for i := 0; i < len(letters); i++ {
		out[len(letters)-1-i] = complementByte(letters[i])
	}
	return string(out)
}

func complementByte(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return b
	}
}

// rotateLeast rotates letters to its lexicographically minimal rotation,
// via the Booth's algorithm least-rotation index (teacher's
// BoothLeastRotation in root hash.go / seqhash.boothLeastRotation).
func rotateLeast(letters string) string {
	if len(letters) == 0 {
		return letters
	}
	idx := boothLeastRotation(letters)
	doubled := letters + letters
	return doubled[idx : idx+len(letters)]
}

func boothLeastRotation(s string) int {
	s += s
	least := 0
	failure := make([]int, len(s))
	for i := range failure {
		failure[i] = -1
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		f := failure[i-least-1]
		for f != -1 && ch != s[least+f+1] {
			if ch < s[least+f+1] {
				least = i - f - 1
			}
			f = failure[f]
		}
		if ch != s[least+f+1] {
			if ch < s[least] {
				least = i
			}
			failure[i-least] = -1
		} else {
			failure[i-least] = f + 1
		}
	}
	return least
}
