package constants

import (
	"strings"
)

type MetalType string

const (
	MildSteel      MetalType = "mild_steel"
	StainlessSteel MetalType = "stainless_steel"
	Aluminium      MetalType = "aluminium"
	Brass          MetalType = "brass"
	Copper         MetalType = "copper"
	Bronze         MetalType = "bronze"
	GalvanisedSteel MetalType = "galvanised_steel"
	ToolSteel      MetalType = "tool_steel"
	CastIron       MetalType = "cast_iron"
	Zinc           MetalType = "zinc"
	UnknownMetal   MetalType = "unknown"
)

var allMetalTypes = []MetalType{
	MildSteel,
	StainlessSteel,
	Aluminium,
	Brass,
	Copper,
	Bronze,
	GalvanisedSteel,
	ToolSteel,
	CastIron,
	Zinc,
	UnknownMetal,
}

// MetalTypes returns the canonical metal type labels fed to the model prompt
// and accepted back from it.
func MetalTypes() []string {
	result := make([]string, len(allMetalTypes))
	for i, m := range allMetalTypes {
		result[i] = string(m)
	}
	return result
}

// CanonicalizeMetal maps a free-form label to a canonical metal type.
// The bool reports whether the input matched anything better than unknown.
func CanonicalizeMetal(input string) (MetalType, bool) {
	if input == "" {
		return UnknownMetal, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	// synonyms map
	synonyms := map[string]MetalType{
		"stainless":   StainlessSteel,
		"ss":          StainlessSteel,
		"304":         StainlessSteel,
		"316":         StainlessSteel,
		"aluminum":    Aluminium,
		"ally":        Aluminium,
		"alum":        Aluminium,
		"steel":       MildSteel,
		"ms":          MildSteel,
		"black_steel": MildSteel,
		"galv":        GalvanisedSteel,
		"galvanized":  GalvanisedSteel,
		"gal":         GalvanisedSteel,
	}

	if m, ok := synonyms[normalized]; ok {
		return m, true
	}

	for _, m := range allMetalTypes {
		if normalized == string(m) {
			return m, m != UnknownMetal
		}
	}

	return UnknownMetal, false
}
