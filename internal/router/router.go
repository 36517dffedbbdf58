package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/talentra/hrm-backend/internal/config"
	"github.com/talentra/hrm-backend/internal/handler"
	"github.com/talentra/hrm-backend/internal/middleware"
	"github.com/talentra/hrm-backend/internal/response"
	"github.com/talentra/hrm-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Department *handler.DepartmentHandler
	Employee   *handler.EmployeeHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict CORS to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response carries one.
	router.Use(response.RequestIDMiddleware())

	// Serve avatar files statically with aggressive caching (1 year).
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", "./uploads")
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "ok", nil)
	})

	// ─── Public auth routes ────────────────────────────────────────────
	router.POST("/auth/register", handlers.Auth.Register)
	router.POST("/auth/login", handlers.Auth.Login)

	// ─── Protected routes (bearer token) ───────────────────────────────
	protected := router.Group("/")
	protected.Use(middleware.RequireAuth(authService))
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/users", handlers.Auth.ListUsers)
			auth.GET("/user/:id", handlers.Auth.GetUser)
			auth.PUT("/update", handlers.Auth.UpdateProfile)
			auth.PUT("/updatepassword", handlers.Auth.ChangePassword)
			auth.POST("/updatephoto", handlers.Auth.UpdatePhoto)
			auth.POST("/deletephoto", handlers.Auth.DeletePhoto)
			auth.GET("/logout", handlers.Auth.Logout)
		}

		departments := protected.Group("/departments")
		{
			departments.GET("", handlers.Department.ListDepartments)
			departments.POST("", handlers.Department.CreateDepartment)
			departments.GET("/:id", handlers.Department.GetDepartment)
			departments.PUT("/:id", handlers.Department.UpdateDepartment)
			departments.DELETE("/:id", handlers.Department.DeleteDepartment)
		}

		employees := protected.Group("/employees")
		{
			employees.GET("", handlers.Employee.ListEmployees)
			employees.POST("", handlers.Employee.CreateEmployee)
			employees.GET("/:id", handlers.Employee.GetEmployee)
			employees.PUT("/:id", handlers.Employee.UpdateEmployee)
			employees.DELETE("/:id", handlers.Employee.DeleteEmployee)
		}

		protected.GET("/employeesall", handlers.Employee.AllEmployees)
		protected.GET("/employeesbydepartment", handlers.Employee.EmployeesByDepartment)
	}

	return router
}
