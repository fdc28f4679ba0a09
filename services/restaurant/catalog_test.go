package restaurant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSummary(t *testing.T) {
	c := NewCatalog(DefaultMenu())
	s := c.Summary()
	assert.Contains(t, s, "Butter Chicken")
	assert.Contains(t, s, "Dal Makhani")
	assert.Contains(t, s, "Paneer Tikka")
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(DefaultMenu())

	t.Run("ByCategory", func(t *testing.T) {
		got := c.Lookup("dessert")
		assert.Contains(t, got, "**Desserts**")
		assert.Contains(t, got, "Gulab Jamun — ₹220")
		assert.NotContains(t, got, "Butter Chicken")
	})

	t.Run("CategorySubstring", func(t *testing.T) {
		got := c.Lookup("starter")
		assert.Contains(t, got, "**Starters - Vegetarian**")
		assert.Contains(t, got, "**Starters - Non-Vegetarian**")
	})

	t.Run("ByTag", func(t *testing.T) {
		got := c.Lookup("vegan")
		assert.Contains(t, got, "Hara Bhara Kebab")
		assert.Contains(t, got, "Mango Sorbet")
	})

	t.Run("ByItemName", func(t *testing.T) {
		got := c.Lookup("biryani")
		assert.Contains(t, got, "Vegetable Biryani")
		assert.Contains(t, got, "Chicken Biryani")
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, c.Lookup("DESSERT"), c.Lookup("dessert"))
	})

	t.Run("NoMatch", func(t *testing.T) {
		got := c.Lookup("pizza")
		assert.Equal(t, "I couldn't find items matching that. We have Starters, Main Course, Desserts, and Beverages. Which would you like to explore?", got)
	})

	t.Run("TagFormatting", func(t *testing.T) {
		got := c.Lookup("beverage")
		assert.Contains(t, got, "- Mango Lassi — ₹180")
		assert.NotContains(t, got, "_()_")
	})
}
