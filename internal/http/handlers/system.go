package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Rishikeshk9/astudio/internal/upstream"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine

	upstreamMu     sync.RWMutex
	upstreamClient *upstream.Client
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

// SetUpstream stores the upstream client used by the connectivity check.
func SetUpstream(c *upstream.Client) {
	upstreamMu.Lock()
	defer upstreamMu.Unlock()
	upstreamClient = c
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "astudio collection browser running"})
}

// UpstreamCheck verifies the remote data service is reachable.
func UpstreamCheck(c *gin.Context) {
	upstreamMu.RLock()
	client := upstreamClient
	upstreamMu.RUnlock()
	if client == nil {
		RespondError(c, http.StatusServiceUnavailable, "upstream client not configured", nil)
		return
	}

	page, err := client.FetchUsers(c.Request.Context(), 0, 1)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "upstream connection OK", "users_total": page.Total})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
