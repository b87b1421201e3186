package display

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency shorthand is written the French way: comma decimals, space-grouped thousands.
var amountLocale = language.French

// FormatValue writes current in the same grammar, unit and precision as
// original. Unparseable originals are returned unchanged.
func FormatValue(current float64, original string) string {
	return ParseTarget(original).Format(current)
}

// Format writes current back in the shape of t.
func (t Target) Format(current float64) string {
	if t.Kind == KindString {
		return t.Raw
	}
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return strconv.FormatFloat(current, 'f', -1, 64) + t.Suffix
	}

	switch t.Kind {
	case KindCurrency:
		if t.Multiplier > 1 {
			places := 0
			if t.Decimals > 0 {
				places = 1
			}
			return joinTokens(localized(current/t.Multiplier, places, t.GroupSeparator), t.MultiplierToken, t.CurrencyToken)
		}
		return joinTokens(localized(current, 0, t.GroupSeparator), t.CurrencyToken)
	case KindPercentage:
		return sign(current, t.Prefix) + fixed(math.Abs(current), 1) + "%"
	default:
		return sign(current, t.Prefix) + fixed(math.Abs(current), t.Decimals)
	}
}

// FormatAmount renders a base-currency amount with no decimals, e.g. "1 250 000 FCFA".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64) + " FCFA"
	}
	return localized(v, 0, " ") + " FCFA"
}

// sign keeps a written "-0.0" negative; other zeros take the explicit prefix.
func sign(v float64, prefix string) string {
	switch {
	case v < 0, v == 0 && math.Signbit(v) && prefix == "-":
		return "-"
	case prefix == "+":
		return "+"
	default:
		return ""
	}
}

// fixed rounds half away from zero, like locale number formatting does.
func fixed(v float64, places int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

func localized(v float64, places int, groupSep string) string {
	rounded := decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
	p := message.NewPrinter(amountLocale)
	s := p.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(places),
		number.MaxFractionDigits(places),
	))
	// Locale data groups with a (narrow) no-break space; keep whatever the
	// original string used, or nothing if it was ungrouped.
	return strings.NewReplacer("\u202f", groupSep, "\u00a0", groupSep, " ", groupSep).Replace(s)
}

func joinTokens(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
