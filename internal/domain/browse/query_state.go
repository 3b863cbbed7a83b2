// internal/domain/browse/query_state.go

// Package browse canonicalizes storefront browsing intent (price range,
// sort, search, category) as a query string. The encoded string is the
// shareable page location: it is what gets persisted, and what the
// storefront is reloaded with.
package browse

import (
	"net/url"
	"strings"
)

// Recognized query keys. Any other key already present (notably
// "category") is passed through untouched.
const (
	KeyPriceMin = "price_min"
	KeyPriceMax = "price_max"
	KeySort     = "sort"
	KeySearch   = "search"
	KeyCategory = "category"
)

// SortNone is the canonical "no sort" sentinel; encoding it removes the
// sort key rather than storing it.
const SortNone = "0"

// Controls mirrors the filter/sort/search inputs as last read from the
// user. Empty strings mean "no constraint".
type Controls struct {
	PriceMin string
	PriceMax string
	Sort     string
	Search   string
}

// QueryState is the mutable mapping behind the page location. The zero
// value is unusable; construct via Parse.
type QueryState struct {
	values url.Values
}

// Parse builds a QueryState from a raw query string. Parsing is lenient:
// an unparsable fragment yields an empty state rather than an error, the
// same way a garbled address would.
func Parse(raw string) QueryState {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	v, err := url.ParseQuery(raw)
	if err != nil || v == nil {
		v = url.Values{}
	}
	return QueryState{values: v}
}

// Get returns the current value for key, empty when absent.
func (q QueryState) Get(key string) string {
	return q.values.Get(key)
}

// Sort returns the current sort code, SortNone when absent.
func (q QueryState) Sort() string {
	if s := q.values.Get(KeySort); s != "" {
		return s
	}
	return SortNone
}

// Encode returns the canonical query string (keys sorted, values escaped).
func (q QueryState) Encode() string {
	return q.values.Encode()
}

// ApplyAllFilters folds the current control values into the state: each
// recognized key is set when its control holds a non-neutral value and
// deleted otherwise. Unrelated keys (category and anything else already
// present) are left untouched.
func (q *QueryState) ApplyAllFilters(c Controls) {
	q.setOrDelete(KeyPriceMin, strings.TrimSpace(c.PriceMin))
	q.setOrDelete(KeyPriceMax, strings.TrimSpace(c.PriceMax))

	sortVal := strings.TrimSpace(c.Sort)
	if sortVal == SortNone {
		sortVal = ""
	}
	q.setOrDelete(KeySort, sortVal)

	// Search participates only when the control actually holds a query;
	// an empty search box does not clear a search already in the state.
	if s := strings.TrimSpace(c.Search); s != "" {
		q.values.Set(KeySearch, s)
	}
}

// ResetFilters deletes exactly the price range and sort keys. Category and
// search survive so a reset does not dump the user out of their context.
func (q *QueryState) ResetFilters() {
	q.values.Del(KeyPriceMin)
	q.values.Del(KeyPriceMax)
	q.values.Del(KeySort)
}

// SetCategory sets or clears the category context. Filter passes never
// touch it on their own.
func (q *QueryState) SetCategory(category string) {
	q.setOrDelete(KeyCategory, strings.TrimSpace(category))
}

// PerformSearch sets or deletes the search key from the trimmed input.
// Price filters are retained so a new search stays within the chosen
// price range.
func (q *QueryState) PerformSearch(input string) {
	q.setOrDelete(KeySearch, strings.TrimSpace(input))
}

func (q *QueryState) setOrDelete(key, val string) {
	if val == "" {
		q.values.Del(key)
		return
	}
	q.values.Set(key, val)
}
