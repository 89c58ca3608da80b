package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/reelfind/internal/handler"
	"github.com/user/reelfind/internal/middleware"
	"golang.org/x/time/rate"
)

// RegisterRoutes wires all endpoints.
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rate.NewLimiter(20, 40)))

	// ==================== movie proxy ====================
	movies := api.Group("/movies")
	movies.Use(middleware.OptionalAuth(h.Config.AppSecret))
	{
		movies.GET("/popular", h.Popular)
		movies.GET("/search", h.SearchMovies)
		movies.GET("/:id", h.MovieDetails)
		movies.GET("/:id/credits", h.MovieCredits)
	}

	// ==================== auth ====================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
	}
}
