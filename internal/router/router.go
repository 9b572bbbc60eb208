package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafeapi/internal/config"
	"cafeapi/internal/middleware"
	"cafeapi/internal/modules/cafe"
	"cafeapi/internal/repository"
	"cafeapi/internal/web"
)

// New wires repository -> service -> handler and returns the engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	if cfg.GinMode != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	web.RegisterRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cafeRepo := repository.NewCafeRepository(db)
	cafeService := cafe.NewService(cafeRepo, cafe.WithStrictBooleans(cfg.StrictBooleans))
	cafeHandler := cafe.NewHandler(cafeService)
	cafeHandler.RegisterRoutes(&r.RouterGroup, middleware.APIKeyAuth(cfg.APIKey))

	return r
}
