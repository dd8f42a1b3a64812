package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Rishikeshk9/astudio/internal/config"
	h "github.com/Rishikeshk9/astudio/internal/http/handlers"
	"github.com/Rishikeshk9/astudio/internal/http/middleware"
	"github.com/Rishikeshk9/astudio/internal/services"
	"github.com/Rishikeshk9/astudio/internal/upstream"
)

// NewRouter builds the gin engine with middleware and the API surface.
func NewRouter(cfg *config.Config, log zerolog.Logger, users *services.UsersService, products *services.ProductsService, client *upstream.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	h.SetServices(users, products)
	h.SetUpstream(client)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.GET("/upstream-check", h.UpstreamCheck)
		apiGroup.GET("/routes", h.Routes)

		usersGroup := apiGroup.Group("/users")
		usersGroup.GET("", h.GetUsers)
		usersGroup.GET("/export.pdf", h.ExportUsersPDF)

		productsGroup := apiGroup.Group("/products")
		productsGroup.GET("", h.GetProducts)
		productsGroup.GET("/export.pdf", h.ExportProductsPDF)
	}

	h.SetRouter(r)

	return r
}
