package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rishikeshk9/astudio/internal/config"
	"github.com/Rishikeshk9/astudio/internal/domain"
)

const usersPayload = `{
	"users": [
		{"id": 1, "firstName": "Jane", "lastName": "Smith", "email": "jane@x.com", "gender": "female", "birthDate": "2000-06-15"},
		{"id": 2, "firstName": "John", "lastName": "Doe", "email": "john@y.org", "gender": "male", "birthDate": "1990-03-01"}
	],
	"total": 208
}`

const productsPayload = `{
	"products": [
		{"id": 1, "title": "MacBook Pro", "brand": "Apple", "category": "laptops", "price": 1749.9, "stock": 12, "rating": 4.57}
	],
	"total": 194
}`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.UpstreamConfig{BaseURL: srv.URL}, zerolog.Nop())
}

func TestFetchUsersSendsSkipAndLimit(t *testing.T) {
	var gotSkip, gotLimit string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		gotSkip = r.URL.Query().Get("skip")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersPayload))
	})

	page, err := c.FetchUsers(context.Background(), 10, 5)
	require.NoError(t, err)

	assert.Equal(t, "10", gotSkip)
	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, 208, page.Total)
	require.Len(t, page.Users, 2)
	assert.Equal(t, "Jane", page.Users[0].FirstName)
}

func TestFetchProductsForwardsCategory(t *testing.T) {
	var gotCategory string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		gotCategory = r.URL.Query().Get("category")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsPayload))
	})

	page, err := c.FetchProducts(context.Background(), 0, 5, "laptops")
	require.NoError(t, err)

	assert.Equal(t, "laptops", gotCategory)
	assert.Equal(t, 194, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "1749.9", page.Products[0].Price.String())
}

func TestFetchProductsOmitsEmptyCategory(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("category"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsPayload))
	})

	_, err := c.FetchProducts(context.Background(), 0, 5, "")
	require.NoError(t, err)
}

func TestFetchUsersServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.FetchUsers(context.Background(), 0, 5)
	require.Error(t, err)
	assert.True(t, domain.IsFetch(err))
	assert.Contains(t, err.Error(), "500")
}

func TestFetchUsersNetworkError(t *testing.T) {
	c := New(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())

	_, err := c.FetchUsers(context.Background(), 0, 5)
	require.Error(t, err)
	assert.True(t, domain.IsFetch(err))
}
