// Package display parses and re-formats the figures shown by animated
// counters: plain numbers ("+8.6"), percentages ("+8.6%") and currency
// shorthand ("124,5 M FCFA").
package display

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies which grammar a display string matched.
type Kind int

const (
	KindString Kind = iota
	KindCurrency
	KindPercentage
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindCurrency:
		return "currency"
	case KindPercentage:
		return "percentage"
	case KindNumber:
		return "number"
	default:
		return "string"
	}
}

// Target is a parsed display string. Value is the full numeric magnitude
// (multiplier applied); the remaining fields describe how to write a value
// back in the same shape.
type Target struct {
	Raw   string
	Kind  Kind
	Value float64

	// Prefix is the explicit sign as written, if any.
	Prefix string
	// Suffix is everything after the digits: "%", " M FCFA", ... For
	// KindString it holds the whole input.
	Suffix string

	Decimals        int
	Multiplier      float64
	MultiplierToken string
	CurrencyToken   string
	GroupSeparator  string
}

// Animatable reports whether the target has a numeric value to interpolate.
func (t Target) Animatable() bool {
	return t.Kind != KindString
}

var multipliers = map[string]float64{
	"K":   1_000,
	"M":   1_000_000,
	"Mds": 1_000_000,
	"B":   1_000_000_000,
}

const groupChars = " \u00a0\u202f"

var (
	currencyPattern   = regexp.MustCompile(`^(\d{1,3}(?:[ \x{00A0}\x{202F}]\d{3})+|\d+)(?:,(\d+))?(?: (Mds|M|K|B))?(?: (FCFA|F CFA|XOF))?$`)
	percentagePattern = regexp.MustCompile(`^([+-])?(\d+(?:\.(\d+))?)%$`)
	numberPattern     = regexp.MustCompile(`^([+-])?(\d+(?:\.(\d+))?)$`)
)

type matcher func(display string) (Target, bool)

// Grammars overlap (a bare "42" is both a number and a currency amount
// without unit), so the order is significant.
var matchers = []matcher{
	matchCurrency,
	matchPercentage,
	matchNumber,
}

// ParseTarget classifies display and extracts its numeric value. Strings
// matching no grammar come back as KindString with a zero value.
func ParseTarget(display string) Target {
	for _, match := range matchers {
		if t, ok := match(display); ok {
			return t
		}
	}
	return Target{
		Raw:    display,
		Kind:   KindString,
		Suffix: display,
	}
}

func matchCurrency(display string) (Target, bool) {
	m := currencyPattern.FindStringSubmatch(display)
	if m == nil {
		return Target{}, false
	}
	intPart, fracPart, multToken, currency := m[1], m[2], m[3], m[4]

	var sep string
	if i := strings.IndexAny(intPart, groupChars); i >= 0 {
		r, _ := utf8.DecodeRuneInString(intPart[i:])
		sep = string(r)
	}
	digits := strings.Map(func(r rune) rune {
		if strings.ContainsRune(groupChars, r) {
			return -1
		}
		return r
	}, intPart)
	if fracPart != "" {
		digits += "." + fracPart
	}
	amount, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Target{}, false
	}

	mult := 1.0
	if multToken != "" {
		mult = multipliers[multToken]
	}

	var suffix strings.Builder
	for _, tok := range []string{multToken, currency} {
		if tok != "" {
			suffix.WriteString(" " + tok)
		}
	}

	return Target{
		Raw:             display,
		Kind:            KindCurrency,
		Value:           amount * mult,
		Suffix:          suffix.String(),
		Decimals:        len(fracPart),
		Multiplier:      mult,
		MultiplierToken: multToken,
		CurrencyToken:   currency,
		GroupSeparator:  sep,
	}, true
}

func matchPercentage(display string) (Target, bool) {
	t, ok := matchSigned(percentagePattern, display)
	if !ok {
		return Target{}, false
	}
	t.Kind = KindPercentage
	t.Suffix = "%"
	return t, true
}

func matchNumber(display string) (Target, bool) {
	t, ok := matchSigned(numberPattern, display)
	if !ok {
		return Target{}, false
	}
	t.Kind = KindNumber
	return t, true
}

func matchSigned(pattern *regexp.Regexp, display string) (Target, bool) {
	m := pattern.FindStringSubmatch(display)
	if m == nil {
		return Target{}, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Target{}, false
	}
	if m[1] == "-" {
		v = -v
	}
	return Target{
		Raw:        display,
		Value:      v,
		Prefix:     m[1],
		Decimals:   len(m[3]),
		Multiplier: 1,
	}, true
}
