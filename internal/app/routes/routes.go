package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mskustudx/studx/internal/app/controllers"
	"github.com/mskustudx/studx/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Material *controllers.MaterialController
	User     *controllers.UserController
	Health   *controllers.HealthController
	// LiveFeed is optional
	LiveFeed gin.HandlerFunc
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", c.Health.Ping)
	router.NoRoute(middleware.NoRoute())

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.OptionalAuth())

	v1.GET("/health", c.Health.Health)

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", c.Catalog.GetAllFaculties)
		faculties.GET("/:id", c.Catalog.GetFacultyByID)
		faculties.GET("/:id/courses", c.Catalog.GetFacultyCourses)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", c.Catalog.GetAllDepartments)
		departments.GET("/:id", c.Catalog.GetDepartmentByID)
		departments.GET("/:id/courses", c.Catalog.GetDepartmentCourses)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Catalog.GetAllCourses)
		courses.GET("/:id", c.Catalog.GetCourseByID)
		courses.GET("/:id/materials", c.Material.GetCourseMaterials)
		if c.LiveFeed != nil {
			courses.GET("/:id/live", c.LiveFeed)
		}
	}

	materials := v1.Group("/materials")
	{
		materials.GET("", c.Material.GetAllMaterials)
		materials.GET("/:id", c.Material.GetMaterialByID)
		materials.POST("/:id/vote", c.Material.Vote)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	users := v1.Group("/users")
	{
		users.GET("/:id", c.User.GetUser)
		users.GET("/:id/vote-status", c.User.GetVoteStatus)
		users.GET("/:id/recently-viewed", c.User.GetRecentlyViewed)
		users.GET("/:id/most-viewed", c.User.GetMostViewed)
		users.POST("/:id/views", c.User.RecordView)
		users.POST("/:id/liked-courses", c.User.LikeCourse)
		users.POST("/:id/disliked-courses", c.User.DislikeCourse)
	}

	// Paths served by earlier releases of the web client
	legacy := router.Group("")
	{
		legacy.GET("/faculty", c.Catalog.GetAllFaculties)
		legacy.GET("/courses", c.Catalog.GetAllCourses)
		legacy.GET("/api/materials", c.Material.GetAllMaterials)
	}
}
