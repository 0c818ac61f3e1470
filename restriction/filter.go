package restriction

import intersect "github.com/juliangruber/go-intersect"

// UniqueCutters retains matches whose site count is exactly one
// (spec.md S4.4).
func UniqueCutters(matches []ReMatch) []ReMatch {
	var out []ReMatch
	for _, m := range matches {
		if m.SiteCount() == 1 {
			out = append(out, m)
		}
	}
	return out
}

// StickyEndsOnly retains matches whose enzyme leaves a non-blunt cut
// (spec.md S4.4).
func StickyEndsOnly(matches []ReMatch) []ReMatch {
	var out []ReMatch
	for _, m := range matches {
		if !m.Enzyme.IsBlunt() {
			out = append(out, m)
		}
	}
	return out
}

// CommonToAll retains enzymes (by name) present with at least one site in
// every one of the given per-sequence match sets (spec.md S4.4: "Common to
// multiple sequences"). It uses go-intersect to fold the name sets down to
// their common members, the same library the teacher's root synthesis.go
// reaches for when intersecting candidate sets.
func CommonToAll(perSequence [][]ReMatch) []ReMatch {
	if len(perSequence) == 0 {
		return nil
	}
	byName := make([]map[string]ReMatch, len(perSequence))
	nameLists := make([]interface{}, len(perSequence))
	for i, matches := range perSequence {
		m := map[string]ReMatch{}
		var names []interface{}
		for _, match := range matches {
			if match.SiteCount() == 0 {
				continue
			}
			m[match.Enzyme.Name] = match
			names = append(names, match.Enzyme.Name)
		}
		byName[i] = m
		nameLists[i] = names
	}

	common, _ := nameLists[0].([]interface{})
	for i := 1; i < len(nameLists); i++ {
		common = intersect.Simple(common, nameLists[i])
	}

	var out []ReMatch
	for _, n := range common {
		name, ok := n.(string)
		if !ok {
			continue
		}
		out = append(out, byName[0][name])
	}
	return out
}
