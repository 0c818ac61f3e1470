package restriction

import weightedrand "github.com/mroth/weightedrand"

// preferenceWeight gives well-behaved, commonly-stocked cloning enzymes a
// higher chance of being offered first when several candidates tie,
// mirroring the original implementation's enzyme preference table
// (original_source's backbones.rs/autocloning.rs hand-ranks a short list of
// "nice" enzymes ahead of obscure ones for autocloning suggestions).
var preferenceWeight = map[string]uint{
	"EcoRI":   10,
	"BamHI":   10,
	"HindIII": 10,
	"XhoI":    10,
	"NotI":    8,
	"XbaI":    8,
	"SalI":    8,
	"KpnI":    6,
	"PstI":    6,
	"SacI":    6,
}

const defaultPreferenceWeight = 1

// PreferredCandidate picks one enzyme from candidates, weighting toward the
// commonly-used cloning enzymes above via a weighted random draw (spec.md
// S4.4 backbone/insert candidate selection, generalized with a tie-break
// since in practice many candidates satisfy the filters equally).
func PreferredCandidate(candidates []ReMatch) (ReMatch, bool) {
	if len(candidates) == 0 {
		return ReMatch{}, false
	}
	choices := make([]weightedrand.Choice, len(candidates))
	for i, c := range candidates {
		w := preferenceWeight[c.Enzyme.Name]
		if w == 0 {
			w = defaultPreferenceWeight
		}
		choices[i] = weightedrand.Choice{Item: i, Weight: w}
	}
	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return ReMatch{}, false
	}
	idx := chooser.Pick().(int)
	return candidates[idx], true
}
