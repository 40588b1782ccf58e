package finagent

import (
	"regexp"
	"sort"
	"strings"
)

// assetMapping translates common names and tickers to the canonical symbol
// the quote provider expects. Crypto assets map to their -USD pairs.
var assetMapping = map[string]string{
	"BTC":     "BTC-USD",
	"BITCOIN": "BTC-USD",
	"ETH":     "ETH-USD",
	"SOL":     "SOL-USD",
	"AAPL":    "AAPL",
	"TSLA":    "TSLA",
	"NVDA":    "NVDA",
}

// mappedKeys holds the mapping keys longest-first so that substring scans
// prefer the most specific match.
var mappedKeys = func() []string {
	keys := make([]string, 0, len(assetMapping))
	for k := range assetMapping {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var nonSymbolChars = regexp.MustCompile(`[^A-Z0-9-]`)

// ResolveTicker maps a free-text query to a best-effort canonical symbol.
// It tries an exact mapping hit, then a scan for a mapped asset mentioned
// anywhere in the query, and finally strips everything outside [A-Z0-9-]
// and treats the remainder as a literal ticker guess. Resolution never
// fails; a nonsensical symbol simply yields no data downstream.
func ResolveTicker(query string) string {
	q := strings.ToUpper(strings.TrimSpace(query))
	if sym, ok := assetMapping[q]; ok {
		return sym
	}
	cleaned := nonSymbolChars.ReplaceAllString(q, "")
	if sym, ok := assetMapping[cleaned]; ok {
		return sym
	}
	for _, key := range mappedKeys {
		if strings.Contains(q, key) {
			return assetMapping[key]
		}
	}
	return cleaned
}
