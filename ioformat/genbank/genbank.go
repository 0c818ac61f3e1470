/*
Package genbank parses and writes the GenBank flatfile format into and out
of feature.Construct.

The line-oriented parsing style (top-level keyword detection, joining
continuation lines, regex-based LOCUS/location parsing) is grounded on the
teacher's bio/genbank/genbank.go, including its use of lunny/log for
recoverable parse warnings, blake3 for a whole-file checksum, and
mitchellh/go-wordwrap to fold long header fields (DEFINITION, ACCESSION,
VERSION, KEYWORDS, COMMENT) when writing; qualifier values are written on
one line.
*/
package genbank

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lunny/log"
	"lukechampine.com/blake3"

	"github.com/genomancer/plasmidcore/feature"
	"github.com/genomancer/plasmidcore/seq"
)

var partialRegex = regexp.MustCompile(`[<>]`)

// qualifierLine matches a `/key="value"` or `/key=value` qualifier line.
var qualifierLine = regexp.MustCompile(`^/([^=]+)=(.*)$`)

// Checksum is the blake3 checksum of the raw bytes a Construct was parsed
// from, useful for detecting whether an incoming file actually changed.
type Checksum = [32]byte

// Parse reads every GenBank record in r but returns only the first,
// matching spec.md S4.6 ("read all records but return the first").
func Parse(r io.Reader) (feature.Construct, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return feature.Construct{}, fmt.Errorf("genbank: read: %w", err)
	}
	records, err := splitRecords(string(raw))
	if err != nil {
		return feature.Construct{}, err
	}
	if len(records) == 0 {
		return feature.Construct{}, fmt.Errorf("genbank: no records found")
	}
	return parseRecord(records[0])
}

// Sum returns the blake3 checksum of raw GenBank bytes, independent of
// parsing -- callers use this to detect whether a file changed.
func Sum(raw []byte) Checksum {
	return blake3.Sum256(raw)
}

// splitRecords splits a multi-entry GenBank file on "//" terminator lines.
func splitRecords(data string) ([]string, error) {
	lines := strings.Split(data, "\n")
	var records []string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "//" {
			if len(current) > 0 {
				records = append(records, strings.Join(current, "\n"))
			}
			current = nil
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 && strings.TrimSpace(strings.Join(current, "")) != "" {
		records = append(records, strings.Join(current, "\n"))
	}
	return records, nil
}

func parseRecord(record string) (feature.Construct, error) {
	c := feature.New()
	lines := strings.Split(record, "\n")

	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		keyword, rest := splitKeyword(line)
		switch keyword {
		case "LOCUS":
			if err := parseLocus(rest, &c); err != nil {
				return c, err
			}
			i++
		case "DEFINITION":
			val, next := collectContinuation(lines, i, rest)
			c.Metadata.Definition = val
			i = next
		case "ACCESSION":
			val, next := collectContinuation(lines, i, rest)
			c.Metadata.Accession = val
			i = next
		case "VERSION":
			val, next := collectContinuation(lines, i, rest)
			c.Metadata.Version = val
			i = next
		case "KEYWORDS":
			val, next := collectContinuation(lines, i, rest)
			c.Metadata.Keywords = val
			i = next
		case "SOURCE":
			source, organism, next := parseSourceOrganism(lines, i, rest)
			c.Metadata.Source = source
			c.Metadata.Organism = organism
			i = next
		case "REFERENCE":
			ref, next := parseReference(lines, i)
			c.Metadata.References = append(c.Metadata.References, ref)
			i = next
		case "COMMENT":
			val, next := collectContinuation(lines, i, rest)
			c.Metadata.Comments = append(c.Metadata.Comments, val)
			i = next
		case "FEATURES":
			next, err := parseFeatures(lines, i+1, &c)
			if err != nil {
				return c, err
			}
			i = next
		case "ORIGIN":
			next := parseOrigin(lines, i+1, &c)
			i = next
		default:
			log.Warnf("genbank: unrecognized top-level keyword %q at line %d, skipping", keyword, i+1)
			i++
		}
	}
	return c, nil
}

// splitKeyword splits a top-level line ("KEYWORD    rest of line") into its
// keyword and remainder. A line with leading whitespace has no keyword.
func splitKeyword(line string) (keyword, rest string) {
	if line == "" || line[0] == ' ' {
		return "", strings.TrimSpace(line)
	}
	fields := strings.SplitN(strings.TrimRight(line, "\n"), " ", 2)
	keyword = fields[0]
	if len(fields) > 1 {
		rest = strings.TrimSpace(fields[1])
	}
	return keyword, rest
}

// isContinuation reports whether lines[i] belongs to the same top-level
// keyword block as the line before it (i.e. it starts with whitespace).
func isContinuation(line string) bool {
	return len(line) > 0 && line[0] == ' '
}

func collectContinuation(lines []string, i int, first string) (string, int) {
	parts := []string{first}
	j := i + 1
	for j < len(lines) && isContinuation(lines[j]) {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
		j++
	}
	return strings.TrimSpace(strings.Join(parts, " ")), j
}

func parseLocus(rest string, c *feature.Construct) error {
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		return fmt.Errorf("genbank: malformed LOCUS line %q", rest)
	}
	c.Metadata.PlasmidName = fields[0]
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "circular":
			c.Topology = seq.Circular
		case "linear":
			c.Topology = seq.Linear
		}
	}
	last := fields[len(fields)-1]
	if len(last) == 3 && isAllLetters(last) {
		c.Metadata.Division = last
	}
	return nil
}

func isAllLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func parseSourceOrganism(lines []string, i int, rest string) (source, organism string, next int) {
	source = rest
	j := i + 1
	for j < len(lines) && isContinuation(lines[j]) {
		trimmed := strings.TrimSpace(lines[j])
		if strings.HasPrefix(trimmed, "ORGANISM") {
			organism = strings.TrimSpace(strings.TrimPrefix(trimmed, "ORGANISM"))
			j++
			// Taxonomy lines that follow are folded into organism for
			// round-trip simplicity; they carry no separate Construct field.
			for j < len(lines) && isContinuation(lines[j]) {
				j++
			}
			break
		}
		source = strings.TrimSpace(source + " " + trimmed)
		j++
	}
	return source, organism, j
}

func parseReference(lines []string, i int) (feature.Reference, int) {
	var ref feature.Reference
	j := i + 1
	for j < len(lines) && isContinuation(lines[j]) {
		trimmed := strings.TrimSpace(lines[j])
		keyword, rest := splitKeyword(trimmed)
		switch keyword {
		case "AUTHORS":
			ref.Authors = rest
		case "CONSRTM":
			ref.Consortium = rest
		case "TITLE":
			ref.Title = rest
		case "JOURNAL":
			ref.Journal = rest
		case "PUBMED":
			ref.PubMed = rest
		case "REMARK":
			ref.Remark = rest
		default:
			if ref.Title != "" {
				ref.Title = strings.TrimSpace(ref.Title + " " + trimmed)
			} else {
				ref.Description = strings.TrimSpace(ref.Description + " " + trimmed)
			}
		}
		j++
	}
	return ref, j
}

// featureLocationRegex matches `start..end` or `complement(start..end)`,
// the two location forms spec.md S4.6 requires support for.
var featureLocationRegex = regexp.MustCompile(`^(complement\()?(<?\d+)\.\.(>?\d+)\)?$`)

func parseLocation(loc string) (seq.RangeIncl, bool, error) {
	m := featureLocationRegex.FindStringSubmatch(strings.TrimSpace(loc))
	if m == nil {
		return seq.RangeIncl{}, false, fmt.Errorf("genbank: unsupported location %q", loc)
	}
	reverse := m[1] == "complement("
	start, err := strconv.Atoi(partialRegex.ReplaceAllString(m[2], ""))
	if err != nil {
		return seq.RangeIncl{}, false, fmt.Errorf("genbank: bad location start %q: %w", loc, err)
	}
	end, err := strconv.Atoi(partialRegex.ReplaceAllString(m[3], ""))
	if err != nil {
		return seq.RangeIncl{}, false, fmt.Errorf("genbank: bad location end %q: %w", loc, err)
	}
	// GenBank start is already 1-based in start..end notation; spec.md S4.6
	// calls for "+1" only when converting from the half-open form, which
	// start..end is not -- both bounds here are already 1-based inclusive.
	return seq.RangeIncl{Start: start, End: end}, reverse, nil
}

func parseFeatures(lines []string, i int, c *feature.Construct) (int, error) {
	j := i
	var curType, curLocation string
	var curQualifiers []feature.Note
	var curLabel string
	var curDirectionOverride feature.Direction
	haveDirectionOverride := false

	flush := func() error {
		if curType == "" {
			return nil
		}
		rng, reverse, err := parseLocation(curLocation)
		if err != nil {
			log.Warnf("genbank: skipping feature with bad location: %v", err)
			return nil
		}
		dir := feature.Forward
		if reverse {
			dir = feature.Reverse
		}
		if haveDirectionOverride {
			dir = curDirectionOverride
		}

		if curType == "primer_bind" {
			p := feature.Primer{Name: curLabel}
			s, err := c.FeatureSequence(feature.Feature{Range: rng, Direction: dir})
			if err == nil {
				p.Sequence = s
			}
			c.AddPrimer(p)
		} else {
			f := feature.Feature{
				Range:     rng,
				Type:      feature.TypeFromExternal(curType),
				Direction: dir,
				Label:     curLabel,
				Notes:     curQualifiers,
			}
			if err := c.AddFeature(f); err != nil {
				log.Warnf("genbank: skipping invalid feature range: %v", err)
			}
		}

		curType, curLocation, curLabel = "", "", ""
		curQualifiers = nil
		haveDirectionOverride = false
		return nil
	}

	for j < len(lines) {
		line := lines[j]
		if strings.TrimSpace(line) == "" {
			j++
			continue
		}
		if !isContinuation(line) {
			// top-level keyword (ORIGIN, etc.) ends the FEATURES block
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "/") {
			m := qualifierLine.FindStringSubmatch(trimmed)
			if m != nil {
				key := m[1]
				val := strings.Trim(m[2], `"`)
				switch key {
				case "label":
					curLabel = val
				case "direction":
					haveDirectionOverride = true
					if val == "right" {
						curDirectionOverride = feature.Forward
					} else {
						curDirectionOverride = feature.Reverse
					}
				default:
					curQualifiers = append(curQualifiers, feature.Note{Key: key, Value: val})
				}
			}
			j++
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) == 2 && (strings.Contains(fields[1], "..") || isDigits(fields[1])) {
			if err := flush(); err != nil {
				return j, err
			}
			curType = fields[0]
			curLocation = fields[1]
			j++
			continue
		}
		j++
	}
	if err := flush(); err != nil {
		return j, err
	}
	return j, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func parseOrigin(lines []string, i int, c *feature.Construct) int {
	var sb strings.Builder
	j := i
	for j < len(lines) {
		line := lines[j]
		if strings.TrimSpace(line) == "//" {
			break
		}
		fields := strings.Fields(line)
		for _, f := range fields {
			if isDigits(f) {
				continue
			}
			sb.WriteString(f)
		}
		j++
	}
	s, skipped := seq.FromStringLenient(sb.String())
	if skipped > 0 {
		log.Warnf("genbank: skipped %d non-nucleotide characters in ORIGIN", skipped)
	}
	c.Seq = s
	return j
}
