package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"eduverse/internal/catalog"
	"eduverse/internal/domain"
	"eduverse/internal/guard"
	"eduverse/internal/infrastructure/security"
	"eduverse/internal/transport/http/handlers"
	"eduverse/internal/transport/http/middleware"
)

// NewRouter mounts the API. Protected groups are gated by the access guard
// with role allowlists mirroring the portal routes: /admin, /teacher and
// /student require their role, /courses any authenticated identity. The
// registry handler is nil when no database is configured; its routes are
// simply not mounted then.
func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	courseHandler *handlers.CourseHandler,
	registryHandler *handlers.RegistryHandler,
	g *guard.Guard,
	catalogStore *catalog.Store,
	tokens *security.TokenManager,
	limiter *middleware.RateLimiter,
	frontendURL string,
) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if frontendURL != "" {
		corsConfig.AllowOrigins = []string{frontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = frontendURL != ""
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthMiddleware(tokens), authHandler.Me)
		}

		courses := api.Group("/courses")
		courses.Use(middleware.RequireRoles(g), middleware.RequireCatalog(catalogStore))
		{
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.GetOne)
			courses.POST("", middleware.RequireRoles(g, domain.RoleTeacher, domain.RoleAdmin), courseHandler.Create)
			courses.PUT("/:id", middleware.RequireRoles(g, domain.RoleTeacher, domain.RoleAdmin), courseHandler.Update)
			courses.DELETE("/:id", middleware.RequireRoles(g, domain.RoleTeacher, domain.RoleAdmin), courseHandler.Delete)
			courses.POST("/:id/enroll", courseHandler.Enroll)
			courses.POST("/:id/unenroll", courseHandler.Unenroll)
		}

		student := api.Group("/student")
		student.Use(middleware.RequireRoles(g, domain.RoleStudent), middleware.RequireCatalog(catalogStore))
		{
			student.GET("/courses", courseHandler.EnrolledCourses)
		}

		teacher := api.Group("/teacher")
		teacher.Use(middleware.RequireRoles(g, domain.RoleTeacher), middleware.RequireCatalog(catalogStore))
		{
			teacher.GET("/courses", courseHandler.TeachingCourses)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRoles(g, domain.RoleAdmin))
		{
			admin.GET("/users", userHandler.List)
			admin.POST("/users", userHandler.Add)
			admin.PATCH("/users/:id/status", userHandler.UpdateStatus)
			admin.PATCH("/users/:id/department", userHandler.UpdateDepartment)
			admin.DELETE("/users/:id", userHandler.Delete)
			admin.GET("/stats", userHandler.Stats)

			if registryHandler != nil {
				registry := admin.Group("/registry")
				{
					registry.GET("/users", registryHandler.ListUsers)
					registry.POST("/users", registryHandler.CreateUser)
					registry.GET("/users/:id", registryHandler.GetUser)
					registry.DELETE("/users/:id", registryHandler.DeleteUser)

					registry.GET("/courses", registryHandler.ListCourses)
					registry.POST("/courses", registryHandler.CreateCourse)
					registry.PUT("/courses/:id", registryHandler.UpdateCourse)
					registry.DELETE("/courses/:id", registryHandler.DeleteCourse)

					registry.POST("/enrollments", registryHandler.Enroll)
					registry.GET("/enrollments/:userId", registryHandler.ListEnrollments)
					registry.DELETE("/enrollments/:userId/:courseId", registryHandler.Unenroll)
				}
			}
		}
	}

	return r
}
