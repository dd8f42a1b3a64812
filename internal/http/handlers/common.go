package handlers

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Rishikeshk9/astudio/internal/http/middleware"
	"github.com/Rishikeshk9/astudio/internal/services"
)

var (
	depsMu   sync.RWMutex
	users    *services.UsersService
	products *services.ProductsService
)

// SetServices stores the browse services for the handler package.
func SetServices(u *services.UsersService, p *services.ProductsService) {
	depsMu.Lock()
	defer depsMu.Unlock()
	users = u
	products = p
}

func usersService() *services.UsersService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return users
}

func productsService() *services.ProductsService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return products
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// QueryInt parses an integer query parameter, falling back on absence or
// garbage. Trivial coercion only.
func QueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
