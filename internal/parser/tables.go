package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Locale tags accepted by Parse. Unknown tags fall back to English.
const (
	LocaleID = "id"
	LocaleEN = "en"
)

// unitAliases maps locale-specific unit spellings to canonical units.
// Container words (pack, bottle, bungkus, botol, ...) all collapse to "pcs".
var unitAliases = map[string]map[string]string{
	LocaleID: {
		"kg":        "kg",
		"kilo":      "kg",
		"kilogram":  "kg",
		"g":         "gram",
		"gr":        "gram",
		"gram":      "gram",
		"l":         "liter",
		"ltr":       "liter",
		"liter":     "liter",
		"ml":        "ml",
		"mililiter": "ml",
		"pcs":       "pcs",
		"pc":        "pcs",
		"buah":      "pcs",
		"biji":      "pcs",
		"butir":     "pcs",
		"bungkus":   "pcs",
		"botol":     "pcs",
		"kaleng":    "pcs",
		"pak":       "pcs",
		"lembar":    "pcs",
		"ikat":      "pcs",
		"sisir":     "pcs",
	},
	LocaleEN: {
		"kg":          "kg",
		"kilo":        "kg",
		"kilos":       "kg",
		"kilogram":    "kg",
		"kilograms":   "kg",
		"g":           "gram",
		"gram":        "gram",
		"grams":       "gram",
		"l":           "liter",
		"ltr":         "liter",
		"liter":       "liter",
		"liters":      "liter",
		"litre":       "liter",
		"litres":      "liter",
		"ml":          "ml",
		"milliliter":  "ml",
		"milliliters": "ml",
		"pcs":         "pcs",
		"pc":          "pcs",
		"piece":       "pcs",
		"pieces":      "pcs",
		"pack":        "pcs",
		"packs":       "pcs",
		"bottle":      "pcs",
		"bottles":     "pcs",
		"can":         "pcs",
		"cans":        "pcs",
		"box":         "pcs",
		"boxes":       "pcs",
		"bag":         "pcs",
		"bags":        "pcs",
	},
}

// numberWords maps locale-specific spelled-out quantities to values.
var numberWords = map[string]map[string]float64{
	LocaleID: {
		"satu":       1,
		"dua":        2,
		"tiga":       3,
		"empat":      4,
		"lima":       5,
		"enam":       6,
		"tujuh":      7,
		"delapan":    8,
		"sembilan":   9,
		"sepuluh":    10,
		"sebelas":    11,
		"seratus":    100,
		"setengah":   0.5,
		"seperempat": 0.25,
	},
	LocaleEN: {
		"one":     1,
		"two":     2,
		"three":   3,
		"four":    4,
		"five":    5,
		"six":     6,
		"seven":   7,
		"eight":   8,
		"nine":    9,
		"ten":     10,
		"eleven":  11,
		"twelve":  12,
		"half":    0.5,
		"quarter": 0.25,
		"a":       1,
		"an":      1,
	},
}

var commandVerbPattern = regexp.MustCompile(`^(?i:beli|tambahkan|tambah|catat|add|buy|note)\s+`)

func unitsFor(locale string) map[string]string {
	if units, ok := unitAliases[locale]; ok {
		return units
	}
	return unitAliases[LocaleEN]
}

func wordsFor(locale string) map[string]float64 {
	if words, ok := numberWords[locale]; ok {
		return words
	}
	return numberWords[LocaleEN]
}

// parseQuantity resolves a normalized token to a positive quantity, trying
// the locale's number-word table first, then a decimal literal. Indonesian
// accepts the comma decimal separator ("2,5"); both locales accept '.'.
func parseQuantity(tok, locale string) (float64, bool) {
	if tok == "" {
		return 0, false
	}
	if v, ok := wordsFor(locale)[tok]; ok {
		return v, true
	}
	lit := tok
	if locale == LocaleID {
		lit = strings.ReplaceAll(lit, ",", ".")
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

// stripCommandVerb removes one leading command verb ("beli susu" -> "susu").
// Verbs are only stripped at the start of the name, never mid-string.
func stripCommandVerb(name string) string {
	return commandVerbPattern.ReplaceAllString(name, "")
}
