// Package view shapes filtered pages into render-ready table models: column
// descriptors, formatted rows, breadcrumb trails and pagination state.
package view

import (
	"strconv"

	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/pagination"
)

// Column describes one table column for a generic tabular renderer.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Crumb is one breadcrumb entry. Href is empty for the current page.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Row holds formatted cell values keyed by column key.
type Row map[string]any

// Table is the complete view model returned for one browse request. Rows is
// the filtered visible subset; Total stays the remote-reported count.
type Table struct {
	Breadcrumbs []Crumb             `json:"breadcrumbs"`
	Columns     []Column            `json:"columns"`
	Rows        []Row               `json:"rows"`
	Total       int                 `json:"total"`
	Loading     bool                `json:"loading"`
	Error       string              `json:"error,omitempty"`
	PageSize    int                 `json:"pageSize"`
	CurrentPage int                 `json:"currentPage"`
	SearchTerm  string              `json:"searchTerm"`
	Pagination  pagination.Sequence `json:"pagination"`
}

// Breadcrumbs builds the Home > section trail.
func Breadcrumbs(section string) []Crumb {
	return []Crumb{
		{Label: "Home", Href: "/"},
		{Label: section},
	}
}

// UserColumns lists the users table layout.
func UserColumns() []Column {
	return []Column{
		{Key: "firstName", Label: "FIRST NAME"},
		{Key: "lastName", Label: "LAST NAME"},
		{Key: "maidenName", Label: "MAIDEN NAME"},
		{Key: "age", Label: "AGE"},
		{Key: "gender", Label: "GENDER"},
		{Key: "email", Label: "EMAIL"},
		{Key: "username", Label: "USERNAME"},
		{Key: "bloodGroup", Label: "BLOODGROUP"},
		{Key: "eyeColor", Label: "EYECOLOR"},
	}
}

// UserRow formats one user record for display.
func UserRow(u models.UserRecord) Row {
	return Row{
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"maidenName": u.MaidenName,
		"age":        u.Age,
		"gender":     string(u.Gender),
		"email":      u.Email,
		"username":   u.Username,
		"bloodGroup": u.BloodGroup,
		"eyeColor":   u.EyeColor,
	}
}

// ProductColumns lists the products table layout.
func ProductColumns() []Column {
	return []Column{
		{Key: "title", Label: "TITLE"},
		{Key: "brand", Label: "BRAND"},
		{Key: "category", Label: "CATEGORY"},
		{Key: "price", Label: "PRICE"},
		{Key: "stock", Label: "STOCK"},
		{Key: "rating", Label: "RATING"},
		{Key: "discountPercentage", Label: "DISCOUNT %"},
	}
}

// ProductRow formats one product record for display. Price renders with a
// dollar sign and two decimals.
func ProductRow(p models.ProductRecord) Row {
	return Row{
		"title":              p.Title,
		"brand":              p.Brand,
		"category":           p.Category,
		"price":              "$" + p.Price.StringFixed(2),
		"stock":              p.Stock,
		"rating":             p.Rating,
		"discountPercentage": p.DiscountPercentage,
	}
}

// CellText renders a cell value as plain text for exports.
func CellText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
