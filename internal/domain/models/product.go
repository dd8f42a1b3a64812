package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductRecord is one row of the products collection. Price is kept as a
// decimal because the upstream reports currency-agnostic money values.
type ProductRecord struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
}

// SearchValues renders every field as text for the global search filter.
func (p ProductRecord) SearchValues() []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Title,
		p.Description,
		p.Price.String(),
		strconv.FormatFloat(p.DiscountPercentage, 'f', -1, 64),
		strconv.FormatFloat(p.Rating, 'f', -1, 64),
		strconv.Itoa(p.Stock),
		p.Brand,
		p.Category,
		p.Thumbnail,
	}
}

// ProductsPage is the upstream payload for one products fetch.
type ProductsPage struct {
	Products []ProductRecord `json:"products"`
	Total    int             `json:"total"`
}
