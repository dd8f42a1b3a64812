package filter

import (
	"strings"

	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/utils"
)

// TabAll is the category tab that disables tab filtering. The only other tab
// is the hardcoded laptops tab.
const (
	TabAll     = "ALL"
	tabLaptops = "laptops"
)

// ProductFilters is the active predicate set for the products collection.
// A zero value (with Tab empty or ALL) matches everything.
type ProductFilters struct {
	Tab        string
	Title      string
	Brands     []string
	Categories []string
}

// Apply evaluates all predicates ANDed against one page of products.
func (f ProductFilters) Apply(items []models.ProductRecord) []models.ProductRecord {
	out := items

	if tab := utils.TrimOrEmpty(f.Tab); tab != "" && tab != TabAll {
		filtered := make([]models.ProductRecord, 0, len(out))
		for _, p := range out {
			if strings.ToLower(p.Category) == tabLaptops {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if title := strings.ToLower(utils.TrimOrEmpty(f.Title)); title != "" {
		filtered := make([]models.ProductRecord, 0, len(out))
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.Title), title) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if len(f.Brands) > 0 {
		wanted := map[string]bool{}
		for _, b := range f.Brands {
			wanted[b] = true
		}
		filtered := make([]models.ProductRecord, 0, len(out))
		for _, p := range out {
			if wanted[p.Brand] {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if len(f.Categories) > 0 {
		wanted := map[string]bool{}
		for _, c := range f.Categories {
			wanted[c] = true
		}
		filtered := make([]models.ProductRecord, 0, len(out))
		for _, p := range out {
			if wanted[p.Category] {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	return out
}
