package parser

import "strings"

// Result is the structured item recovered from a typed or transcribed
// shopping command.
type Result struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

const (
	defaultQuantity = 1
	defaultUnit     = "pcs"
	fallbackName    = "Item"
)

// Parse converts an utterance such as "telur 2 kilo" or "add milk 2 liters"
// into a structured item. It is a total function: absent signal degrades to
// defaults (quantity 1, unit "pcs") and the name falls back to "Item" only
// when the whole utterance was consumed by quantity/unit tokens.
//
// Quantity and unit phrases are short, fixed-vocabulary, and tail-anchored,
// so the parser scans from the end: last token as unit (fused "1kilo" split
// first, then whole-token alias lookup), then the preceding token as a
// quantity; with no unit, the last token is tried as a bare quantity.
func Parse(utterance, locale string) Result {
	res := Result{Quantity: defaultQuantity, Unit: defaultUnit}

	tokens := strings.Fields(strings.TrimSpace(utterance))
	if len(tokens) == 0 {
		return res
	}

	last := normalizeToken(tokens[len(tokens)-1])

	if qty, unit, ok := splitFused(last, locale); ok {
		res.Quantity = qty
		res.Unit = unit
		tokens = tokens[:len(tokens)-1]
	} else if unit, ok := lookupUnit(last, locale); ok {
		res.Unit = unit
		tokens = tokens[:len(tokens)-1]
		if len(tokens) > 0 {
			prev := normalizeToken(tokens[len(tokens)-1])
			if qty, ok := parseQuantity(prev, locale); ok {
				res.Quantity = qty
				tokens = tokens[:len(tokens)-1]
			}
		}
	} else if qty, ok := parseQuantity(last, locale); ok {
		res.Quantity = qty
		tokens = tokens[:len(tokens)-1]
	}

	name := stripCommandVerb(strings.Join(tokens, " "))
	if name == "" {
		name = fallbackName
	}
	res.Name = name
	return res
}

// normalizeToken lower-cases a token and strips one trailing '.' or ','.
func normalizeToken(tok string) string {
	tok = strings.ToLower(tok)
	if n := len(tok); n > 0 && (tok[n-1] == '.' || tok[n-1] == ',') {
		tok = tok[:n-1]
	}
	return tok
}

// splitFused handles tokens that concatenate a quantity and a unit with no
// separating space, e.g. "1kilo" or "2,5liter". The longest unit alias that
// is a proper suffix wins, provided the remaining prefix parses as a
// quantity. This rule is applied before whole-token unit lookup so that
// fused and spaced forms resolve identically everywhere.
func splitFused(tok, locale string) (float64, string, bool) {
	var (
		bestLen  int
		bestQty  float64
		bestUnit string
	)
	for alias, canonical := range unitsFor(locale) {
		if len(alias) >= len(tok) || !strings.HasSuffix(tok, alias) {
			continue
		}
		if len(alias) <= bestLen {
			continue
		}
		qty, ok := parseQuantity(tok[:len(tok)-len(alias)], locale)
		if !ok {
			continue
		}
		bestLen = len(alias)
		bestQty = qty
		bestUnit = canonical
	}
	if bestLen == 0 {
		return 0, "", false
	}
	return bestQty, bestUnit, true
}

func lookupUnit(tok, locale string) (string, bool) {
	canonical, ok := unitsFor(locale)[tok]
	return canonical, ok
}
