package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/filter"
	"github.com/Rishikeshk9/astudio/internal/services"
	"github.com/Rishikeshk9/astudio/internal/utils"
)

func parseProductsQuery(c *gin.Context) services.ProductsQuery {
	q := services.ProductsQuery{
		Page:             QueryInt(c, "page", 0),
		PageSize:         QueryInt(c, "page_size", 0),
		Search:           c.Query("search"),
		UpstreamCategory: utils.TrimOrEmpty(c.Query("upstream_category")),
		Filters: filter.ProductFilters{
			Tab:        utils.TrimOrEmpty(c.Query("tab")),
			Title:      c.Query("title"),
			Brands:     utils.SplitList(c.Query("brand")),
			Categories: utils.SplitList(c.Query("category")),
		},
	}
	if q.Page < 0 {
		q.Page = 0
	}
	return q
}

// GET /api/products
func GetProducts(c *gin.Context) {
	q := parseProductsQuery(c)
	table := productsService().Browse(c.Request.Context(), q)
	c.JSON(http.StatusOK, table)
}

// GET /api/products/export.pdf
func ExportProductsPDF(c *gin.Context) {
	q := parseProductsQuery(c)
	table := productsService().Browse(c.Request.Context(), q)
	if table.Error != "" {
		RespondDomainError(c, domain.FetchError{Message: table.Error})
		return
	}

	pdf, err := services.RenderTablePDF("Products", table)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
