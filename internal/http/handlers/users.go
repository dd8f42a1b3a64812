package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/filter"
	"github.com/Rishikeshk9/astudio/internal/services"
	"github.com/Rishikeshk9/astudio/internal/utils"
)

func parseUsersQuery(c *gin.Context) (services.UsersQuery, error) {
	q := services.UsersQuery{
		Page:     QueryInt(c, "page", 0),
		PageSize: QueryInt(c, "page_size", 0),
		Search:   c.Query("search"),
		Filters: filter.UserFilters{
			Name:    c.Query("name"),
			Email:   c.Query("email"),
			Genders: utils.SplitList(c.Query("gender")),
		},
	}
	if q.Page < 0 {
		q.Page = 0
	}

	var err error
	if q.Filters.BirthFrom, err = parseDateParam(c, "birth_from"); err != nil {
		return q, err
	}
	if q.Filters.BirthTo, err = parseDateParam(c, "birth_to"); err != nil {
		return q, err
	}
	return q, nil
}

func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := utils.TrimOrEmpty(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return nil, domain.ValidationError{Field: name, Msg: "expected YYYY-MM-DD", Err: err}
	}
	return &t, nil
}

// GET /api/users
func GetUsers(c *gin.Context) {
	q, err := parseUsersQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	table := usersService().Browse(c.Request.Context(), q)
	c.JSON(http.StatusOK, table)
}

// GET /api/users/export.pdf
func ExportUsersPDF(c *gin.Context) {
	q, err := parseUsersQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	table := usersService().Browse(c.Request.Context(), q)
	if table.Error != "" {
		RespondDomainError(c, domain.FetchError{Message: table.Error})
		return
	}

	pdf, err := services.RenderTablePDF("Users", table)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="users.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
