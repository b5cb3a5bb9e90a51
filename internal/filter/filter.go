// Package filter derives the storefront's filtered catalog view. Pure
// functions only; no network access.
package filter

import (
	"strings"

	"github.com/Charles0825/product-review-app-fs/internal/data/entity"
)

// Apply narrows the category list by an optional category name and an
// optional case-insensitive product-name substring. Empty inputs are no-ops.
// The two filters act on disjoint axes, so their order does not matter.
// The input slice is never mutated.
func Apply(categories []entity.Category, categoryName, search string) []entity.Category {
	filtered := make([]entity.Category, 0, len(categories))

	query := strings.ToLower(search)

	for _, category := range categories {
		if categoryName != "" && category.Name != categoryName {
			continue
		}

		if query == "" {
			filtered = append(filtered, category)
			continue
		}

		narrowed := category
		narrowed.Products = make([]entity.Product, 0, len(category.Products))
		for _, product := range category.Products {
			if strings.Contains(strings.ToLower(product.Name), query) {
				narrowed.Products = append(narrowed.Products, product)
			}
		}

		filtered = append(filtered, narrowed)
	}

	return filtered
}

// CategoryOptions returns the unique category names in first-seen order,
// used to populate the category dropdown.
func CategoryOptions(categories []entity.Category) []string {
	seen := make(map[string]struct{}, len(categories))
	options := make([]string, 0, len(categories))

	for _, category := range categories {
		if _, ok := seen[category.Name]; ok {
			continue
		}
		seen[category.Name] = struct{}{}
		options = append(options, category.Name)
	}

	return options
}
