// Package feature defines the annotation and document model shared by every
// codec and engine in plasmidcore: features, primers, and the Construct
// ("generic" document) that carries them alongside sequence and metadata.
package feature

// Type is the closed set of feature kinds recognized by plasmidcore. It maps
// bijectively to the external type strings used by both GenBank and SnapGene
// (spec.md S6), modeled as a tagged enum per spec.md S9 rather than by
// subclassing.
type Type int

const (
	Generic Type = iota
	CodingRegion
	Gene
	Ori
	RibosomeBindSite
	Promoter
	PrimerBindSite
	LongTerminalRepeat
	Source
	Exon
	Transcript
	ProteinBind
	Terminator
)

// externalNames is the canonical external (GenBank & SnapGene) vocabulary
// string for each Type, per the table in spec.md S6.
var externalNames = map[Type]string{
	Generic:             "misc_feature",
	CodingRegion:        "CDS",
	Gene:                "gene",
	Ori:                 "rep_origin",
	RibosomeBindSite:    "rbs",
	Promoter:            "promoter",
	PrimerBindSite:      "primer_bind",
	LongTerminalRepeat:  "ltr",
	Source:              "source",
	Exon:                "exon",
	Transcript:          "transcript",
	ProteinBind:         "protein_bind",
	Terminator:          "terminator",
}

// externalToType inverts externalNames. "transcript" and "exon" both map
// back to themselves individually; anything not present here is Generic.
var externalToType = map[string]Type{
	"CDS":          CodingRegion,
	"gene":         Gene,
	"rep_origin":   Ori,
	"rbs":          RibosomeBindSite,
	"promoter":     Promoter,
	"primer_bind":  PrimerBindSite,
	"ltr":          LongTerminalRepeat,
	"misc_feature": Generic,
	"source":       Source,
	"exon":         Exon,
	"transcript":   Transcript,
	"protein_bind": ProteinBind,
	"terminator":   Terminator,
}

// ExternalName returns the GenBank/SnapGene vocabulary string for t.
func (t Type) ExternalName() string {
	if name, ok := externalNames[t]; ok {
		return name
	}
	return externalNames[Generic]
}

// TypeFromExternal maps a GenBank/SnapGene feature type string to a Type.
// Unrecognized strings map to Generic, per spec.md S6/S7 ("anything else" /
// "unknown feature types are recovered locally").
func TypeFromExternal(s string) Type {
	if t, ok := externalToType[s]; ok {
		return t
	}
	return Generic
}

// defaultColors gives every Type a default hex color, used unless a Feature
// sets ColorOverride.
var defaultColors = map[Type]string{
	Generic:            "#d3d3d3",
	CodingRegion:       "#f0a3a3",
	Gene:               "#a3c6f0",
	Ori:                "#c6a3f0",
	RibosomeBindSite:   "#f0dca3",
	Promoter:           "#a3f0c2",
	PrimerBindSite:     "#f0e6a3",
	LongTerminalRepeat: "#f0a3d8",
	Source:             "#cccccc",
	Exon:               "#a3e0f0",
	Transcript:         "#d0a3f0",
	ProteinBind:        "#f0c2a3",
	Terminator:         "#e0a3a3",
}

// DefaultColor returns t's default display color.
func (t Type) DefaultColor() string {
	if c, ok := defaultColors[t]; ok {
		return c
	}
	return defaultColors[Generic]
}
