package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProducts_ReferenceKnownCategories(t *testing.T) {
	slugs := make(map[string]struct{}, len(SeedCategories))
	for _, slug := range SeedCategories {
		slugs[slug] = struct{}{}
	}

	for _, sp := range seedProducts {
		_, ok := slugs[sp.categorySlug]
		assert.True(t, ok, "product %s references unknown category %s", sp.slug, sp.categorySlug)
	}
}

func TestSeedProducts_UniqueSlugs(t *testing.T) {
	seen := make(map[string]struct{}, len(seedProducts))

	for _, sp := range seedProducts {
		_, dup := seen[sp.slug]
		assert.False(t, dup, "duplicate seed slug %s", sp.slug)
		seen[sp.slug] = struct{}{}
	}
}

func TestSeedProducts_PricesParse(t *testing.T) {
	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		require.NoError(t, err, "seed price for %s", sp.slug)
		assert.True(t, price.IsPositive(), "seed price for %s must be positive", sp.slug)
		assert.Equal(t, sp.price, price.StringFixed(2), "seed price for %s carries two decimals", sp.slug)
	}
}

func TestSeedProducts_FeaturedCount(t *testing.T) {
	featured := 0
	for _, sp := range seedProducts {
		if sp.isFeatured {
			featured++
		}
	}

	// The home page shows three featured products; the demo data fills it exactly.
	assert.Equal(t, 3, featured)
}
