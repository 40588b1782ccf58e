// Package search provides SearchProvider implementations for the web and
// news retrieval agents.
//
// Three providers are available:
//
//   - DuckDuckGo scrapes the DuckDuckGo lite HTML interface. It needs no
//     API key and is the default, but it is rate limited to one query per
//     second globally and may break if the page layout changes.
//   - Tavily calls the Tavily search API and requires an API key.
//   - Brave calls the Brave Search API and requires an API key; requests
//     sharing a key are serialised to respect the 1 req/s limit.
//
// All providers cap results at five entries to keep prompt context small.
package search
