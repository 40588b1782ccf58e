package finagent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	cryptoPriceRegex  = regexp.MustCompile(`CRYPTO: \S+ \| PRICE: \$(\d[\d,\.]*)`)
	stockPriceRegex   = regexp.MustCompile(`STOCK: \S+ \| PRICE: \$(\d[\d,\.]*)`)
	genericPriceRegex = regexp.MustCompile(`\$(\d[\d,\.]*)`)
)

// ExtractPrice pulls a dollar amount out of free-form model output.
// Format-specific patterns are tried in priority order: the crypto
// micro-format, then the stock micro-format, then any generic $ amount.
// When several generic amounts match, the largest is chosen on the
// assumption that the most prominent figure is the current price; this is
// a heuristic, not a guarantee.
func ExtractPrice(text string) Price {
	if m := cryptoPriceRegex.FindStringSubmatch(text); m != nil {
		if v, err := parseAmount(m[1]); err == nil {
			return Price{Value: v, OK: true}
		}
	}
	if m := stockPriceRegex.FindStringSubmatch(text); m != nil {
		if v, err := parseAmount(m[1]); err == nil {
			return Price{Value: v, OK: true}
		}
	}
	var best Price
	for _, m := range genericPriceRegex.FindAllStringSubmatch(text, -1) {
		v, err := parseAmount(m[1])
		if err != nil {
			continue
		}
		if !best.OK || v > best.Value {
			best = Price{Value: v, OK: true}
		}
	}
	return best
}

func parseAmount(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.TrimRight(s, ".")
	return strconv.ParseFloat(s, 64)
}
