package restaurant

import (
	"fmt"
	"strings"

	"lamaison/models"
)

// Catalog is the read-only menu catalog.
type Catalog struct {
	categories []models.MenuCategory
}

// NewCatalog wraps a categorized item list. Pass DefaultMenu() for the
// built-in data.
func NewCatalog(categories []models.MenuCategory) *Catalog {
	return &Catalog{categories: categories}
}

// Categories returns the full catalog.
func (c *Catalog) Categories() []models.MenuCategory {
	return c.categories
}

// Summary returns the short menu overview.
func (c *Catalog) Summary() string {
	return "We offer a mix of Indian and Continental cuisine, with popular vegetarian, non-vegetarian, and vegan options. Our specialties include Butter Chicken, Dal Makhani, and Paneer Tikka. Would you like recommendations or details on a specific category?"
}

// Lookup returns the formatted categories matching a category name, item
// name, or dietary tag. The query matches as a case-insensitive substring.
func (c *Catalog) Lookup(query string) string {
	q := strings.ToLower(query)

	var matched []models.MenuCategory
	for _, cat := range c.categories {
		if categoryMatches(cat, q) {
			matched = append(matched, cat)
		}
	}

	if len(matched) == 0 {
		return "I couldn't find items matching that. We have Starters, Main Course, Desserts, and Beverages. Which would you like to explore?"
	}

	sections := make([]string, 0, len(matched))
	for _, cat := range matched {
		sections = append(sections, formatCategory(cat))
	}
	return strings.Join(sections, "\n\n")
}

func categoryMatches(cat models.MenuCategory, q string) bool {
	if strings.Contains(strings.ToLower(cat.Category), q) {
		return true
	}
	for _, item := range cat.Items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
		for _, tag := range item.Tags {
			if strings.Contains(tag, q) {
				return true
			}
		}
	}
	return false
}

func formatCategory(cat models.MenuCategory) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**", cat.Category)
	for _, item := range cat.Items {
		fmt.Fprintf(&b, "\n- %s — %s", item.Name, item.Price)
		if len(item.Tags) > 0 {
			fmt.Fprintf(&b, " _(%s)_", strings.Join(item.Tags, ", "))
		}
	}
	return b.String()
}
