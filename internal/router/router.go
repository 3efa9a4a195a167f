package router

import (
	"os"
	"time"

	"github.com/accvalongo/associa/internal/handlers"
	"github.com/accvalongo/associa/internal/middleware"
	"github.com/accvalongo/associa/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	templates := os.Getenv("TEMPLATES_DIR")

	if templates == "" {
		templates = "web/templates"
	}

	r.LoadHTMLGlob(templates + "/*.html")

	// Public pages and authentication
	r.GET("/", middleware.OptionalAuth(), handlers.Home)
	r.GET("/home", middleware.OptionalAuth(), handlers.Home)
	r.GET("/login", middleware.OptionalAuth(), handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	// Everything below requires a resolved session
	private := r.Group("", middleware.RequireAuth())
	{
		private.GET("/register", handlers.ShowRegister)
		private.POST("/register", handlers.Register)

		private.GET("/admin/associations", handlers.ManageAssociations)
		private.POST("/admin/associations", handlers.CreateAssociation)
		private.GET("/association/:id/edit", handlers.EditAssociation)
		private.POST("/association/:id/edit", handlers.UpdateAssociation)
		private.POST("/association/:id/delete", handlers.DeleteAssociation)

		private.GET("/association/:id/activities", handlers.ManageActivities)
		private.POST("/association/:id/activities", handlers.CreateActivity)
		private.GET("/activity/:id/edit", handlers.EditActivity)
		private.POST("/activity/:id/edit", handlers.UpdateActivity)
		private.POST("/activity/:id/delete", handlers.DeleteActivity)

		private.GET("/manage_users", handlers.ManageUsers)
		private.GET("/edit_user/:id", handlers.EditUser)
		private.POST("/edit_user/:id", handlers.UpdateUser)
		private.POST("/delete_user/:id", handlers.DeleteUser)
		private.GET("/create_association_user", handlers.ShowCreateAssociationUser)
		private.POST("/create_association_user", handlers.CreateAssociationUser)
	}

	// Read-only JSON API for the external frontend, restricted to the fixed
	// origin allow-list
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:  types.AllowedOrigins,
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/associations", handlers.APIListAssociations)
		api.GET("/activities", handlers.APIListActivities)
		api.GET("/association/:id", handlers.APIAssociationDetail)
	}

	return r
}
