package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishikeshk9/astudio/internal/config"
	"github.com/Rishikeshk9/astudio/internal/domain/models"
	"github.com/Rishikeshk9/astudio/internal/services"
	"github.com/Rishikeshk9/astudio/internal/upstream"
	"github.com/Rishikeshk9/astudio/internal/view"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/users":
			page := models.UsersPage{Total: 47}
			for i := skip; i < skip+limit && i < 47; i++ {
				page.Users = append(page.Users, models.UserRecord{
					ID:        i + 1,
					FirstName: fmt.Sprintf("First%d", i+1),
					Email:     fmt.Sprintf("user%d@example.com", i+1),
					Gender:    models.GenderOther,
					BirthDate: "2000-06-15",
				})
			}
			_ = json.NewEncoder(w).Encode(page)
		case "/products":
			page := models.ProductsPage{Total: 12}
			for i := skip; i < skip+limit && i < 12; i++ {
				page.Products = append(page.Products, models.ProductRecord{
					ID:       i + 1,
					Title:    fmt.Sprintf("Product %d", i+1),
					Brand:    "Apple",
					Category: "laptops",
				})
			}
			_ = json.NewEncoder(w).Encode(page)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.App.DefaultPageSize = 5
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	cfg.Upstream.BaseURL = srv.URL

	log := zerolog.Nop()
	client := upstream.New(cfg.Upstream, log)
	users := services.NewUsersService(client, cfg.App.DefaultPageSize, log)
	products := services.NewProductsService(client, cfg.App.DefaultPageSize, log)

	return NewRouter(cfg, log, users, products, client)
}

// newFailingRouter wires the full router against an upstream that rejects
// every request with a 500.
func newFailingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.App.DefaultPageSize = 5
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}
	cfg.Upstream.BaseURL = srv.URL

	log := zerolog.Nop()
	client := upstream.New(cfg.Upstream, log)
	users := services.NewUsersService(client, cfg.App.DefaultPageSize, log)
	products := services.NewProductsService(client, cfg.App.DefaultPageSize, log)

	return NewRouter(cfg, log, users, products, client)
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetUsersReturnsTableView(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/users?page=0&page_size=5")
	require.Equal(t, http.StatusOK, w.Code)

	var table view.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))

	assert.Equal(t, 47, table.Total)
	assert.Len(t, table.Rows, 5)
	assert.Equal(t, 10, table.Pagination.TotalPages)
	assert.Equal(t, "Users", table.Breadcrumbs[1].Label)
}

func TestGetUsersRejectsBadDate(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/users?birth_from=june-1st")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "birth_from")
}

func TestGetProductsAppliesTab(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/products?tab=Laptops")
	require.Equal(t, http.StatusOK, w.Code)

	var table view.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))

	assert.Equal(t, 12, table.Total)
	assert.Len(t, table.Rows, 5)
	assert.Equal(t, 0, table.CurrentPage)
}

func TestExportUsersPDF(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/users/export.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestUpstreamFailureReturnsBadGateway(t *testing.T) {
	r := newFailingRouter(t)

	w := doGet(r, "/api/upstream-check")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream_error")
	assert.Contains(t, w.Body.String(), "500")

	w = doGet(r, "/api/users/export.pdf")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "500")

	w = doGet(r, "/api/products/export.pdf")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBrowseKeepsUpstreamFailureInViewState(t *testing.T) {
	r := newFailingRouter(t)

	w := doGet(r, "/api/users")
	require.Equal(t, http.StatusOK, w.Code)

	var table view.Table
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &table))
	assert.Contains(t, table.Error, "500")
	assert.Empty(t, table.Rows)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/bogus")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}

func TestRoutesListing(t *testing.T) {
	r := newTestRouter(t)

	w := doGet(r, "/api/routes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/users")
	assert.Contains(t, w.Body.String(), "/api/products")
}
