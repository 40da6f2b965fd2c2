package constants

import "strings"

type PriceUnit string

const (
	PerMetre  PriceUnit = "per_metre"
	PerKg     PriceUnit = "per_kg"
	PerEach   PriceUnit = "per_each"
	PerSheet  PriceUnit = "per_sheet"
	PerLength PriceUnit = "per_length"
	PerTonne  PriceUnit = "per_tonne"
)

var allPriceUnits = []PriceUnit{
	PerMetre,
	PerKg,
	PerEach,
	PerSheet,
	PerLength,
	PerTonne,
}

func PriceUnits() []string {
	result := make([]string, len(allPriceUnits))
	for i, u := range allPriceUnits {
		result[i] = string(u)
	}
	return result
}

// CanonicalizePriceUnit maps supplier shorthand ("/m", "ea", "kg") to a
// canonical unit. Falls back to per_each when nothing matches.
func CanonicalizePriceUnit(input string) (PriceUnit, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.TrimPrefix(normalized, "/")
	normalized = strings.TrimPrefix(normalized, "per ")
	normalized = strings.TrimPrefix(normalized, "per_")

	synonyms := map[string]PriceUnit{
		"m":      PerMetre,
		"mtr":    PerMetre,
		"metre":  PerMetre,
		"meter":  PerMetre,
		"lm":     PerMetre,
		"kg":     PerKg,
		"kilo":   PerKg,
		"ea":     PerEach,
		"each":   PerEach,
		"item":   PerEach,
		"sheet":  PerSheet,
		"sht":    PerSheet,
		"length": PerLength,
		"len":    PerLength,
		"t":      PerTonne,
		"tonne":  PerTonne,
		"ton":    PerTonne,
	}

	if u, ok := synonyms[normalized]; ok {
		return u, true
	}
	for _, u := range allPriceUnits {
		if normalized == strings.TrimPrefix(string(u), "per_") || normalized == string(u) {
			return u, true
		}
	}
	return PerEach, false
}
