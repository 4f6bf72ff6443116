package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the route table. Middleware order per route is
// explicit: error rendering wraps everything, auth runs only on the routes
// that need an identity.
func NewRouter(
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	githubHandler *GithubHandler,
	authMiddleware gin.HandlerFunc,
	errorMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/users", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", authMiddleware, authHandler.CurrentUser)

		prof := api.Group("/profile")
		{
			prof.GET("", profileHandler.List)
			prof.GET("/user/:user_id", profileHandler.GetByUserID)
			prof.GET("/github/:username", githubHandler.ListRepos)

			prof.GET("/me", authMiddleware, profileHandler.GetMe)
			prof.POST("", authMiddleware, profileHandler.Upsert)
			prof.DELETE("", authMiddleware, profileHandler.DeleteAccount)

			prof.PUT("/experience", authMiddleware, profileHandler.AddExperience)
			prof.DELETE("/experience/:experience_id", authMiddleware, profileHandler.RemoveExperience)

			prof.PUT("/education", authMiddleware, profileHandler.AddEducation)
			prof.DELETE("/education/:education_id", authMiddleware, profileHandler.RemoveEducation)
		}
	}

	return router
}
