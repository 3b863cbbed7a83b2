package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLenient(t *testing.T) {
	assert.Equal(t, "", Parse("").Encode())
	assert.Equal(t, "", Parse("   ").Encode())
	assert.Equal(t, "", Parse("%zz=broken").Encode(), "garbled input reads as empty state")

	q := Parse("?category=shoes&sort=2")
	assert.Equal(t, "shoes", q.Get(KeyCategory))
	assert.Equal(t, "2", q.Sort())
}

func TestSortDefaultsToNone(t *testing.T) {
	assert.Equal(t, SortNone, Parse("").Sort())
	assert.Equal(t, "3", Parse("sort=3").Sort())
}

func TestApplyAllFilters(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		controls Controls
		want     string
	}{
		{
			name:     "sets price range and sort",
			controls: Controls{PriceMin: "10", PriceMax: "50", Sort: "2"},
			want:     "price_max=50&price_min=10&sort=2",
		},
		{
			name:     "neutral sort removes the key",
			initial:  "sort=2",
			controls: Controls{Sort: "0"},
			want:     "",
		},
		{
			name:     "cleared price inputs delete their keys",
			initial:  "price_min=5&price_max=100&sort=1",
			controls: Controls{Sort: "1"},
			want:     "sort=1",
		},
		{
			name:     "category passes through untouched",
			initial:  "category=shoes&sort=2",
			controls: Controls{Sort: "2"},
			want:     "category=shoes&sort=2",
		},
		{
			name:     "unknown existing keys survive",
			initial:  "page=3&category=hats",
			controls: Controls{PriceMin: "7"},
			want:     "category=hats&page=3&price_min=7",
		},
		{
			name:     "search only set when non-empty",
			initial:  "search=boots",
			controls: Controls{PriceMin: "10"},
			want:     "price_min=10&search=boots",
		},
		{
			name:     "search control overrides existing search",
			initial:  "search=boots",
			controls: Controls{Search: "sandals"},
			want:     "search=sandals",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Parse(tt.initial)
			q.ApplyAllFilters(tt.controls)
			assert.Equal(t, tt.want, q.Encode())
		})
	}
}

func TestResetFilters(t *testing.T) {
	q := Parse("category=shoes&price_min=10&price_max=90&sort=4&search=boots")
	q.ResetFilters()
	assert.Equal(t, "category=shoes&search=boots", q.Encode())
}

func TestApplyThenReset(t *testing.T) {
	// apply, then reset: price and sort gone, category/search as before.
	q := Parse("category=shoes&search=boots")
	q.ApplyAllFilters(Controls{PriceMin: "10", PriceMax: "20", Sort: "2"})
	assert.Equal(t, "category=shoes&price_max=20&price_min=10&search=boots&sort=2", q.Encode())

	q.ResetFilters()
	assert.Equal(t, "category=shoes&search=boots", q.Encode())
}

func TestPerformSearch(t *testing.T) {
	q := Parse("price_min=10&category=shoes")

	q.PerformSearch("  winter boots ")
	assert.Equal(t, "winter boots", q.Get(KeySearch))
	// price filters survive a new search
	assert.Equal(t, "10", q.Get(KeyPriceMin))
	assert.Equal(t, "shoes", q.Get(KeyCategory))

	q.PerformSearch("   ")
	assert.Equal(t, "", q.Get(KeySearch))
	assert.Equal(t, "category=shoes&price_min=10", q.Encode())
}

func TestSetCategory(t *testing.T) {
	q := Parse("price_min=10&sort=2")

	q.SetCategory(" shoes ")
	assert.Equal(t, "category=shoes&price_min=10&sort=2", q.Encode())

	// filters never touch an assigned category
	q.ApplyAllFilters(Controls{PriceMin: "20"})
	assert.Equal(t, "shoes", q.Get(KeyCategory))

	q.SetCategory("")
	assert.Equal(t, "", q.Get(KeyCategory))
}
