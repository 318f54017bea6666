// internal/api/routes/routes.go
package routes

import (
	"log"

	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	api := router.Group("/api")

	//Create handlers
	authHandler := handlers.NewAuthHandler(app.UserService)
	superadminHandler := handlers.NewSuperadminHandler(app.UserService, app.StatsService)
	recruiterHandler := handlers.NewRecruiterHandler(app.JobService, app.StatsService)
	applicantHandler := handlers.NewApplicantHandler(app.ApplicationService, app.StatsService)
	profileHandler := handlers.NewProfileHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.UserService, app.Validator)

	// --- Middleware ---
	sessionAuth := middleware.SessionAuth(app.Config.Session.Secret)
	optionalAuth := middleware.OptionalSessionAuth(app.Config.Session.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler, sessionAuth)
	RegisterSuperadminRoutes(api, superadminHandler, sessionAuth, app)
	RegisterRecruiterRoutes(api, recruiterHandler, sessionAuth, app)
	RegisterApplicantRoutes(api, applicantHandler, sessionAuth, app)
	RegisterProfileRoutes(api, profileHandler, sessionAuth)
	RegisterJobRoutes(api, jobHandler, applicationHandler, sessionAuth, optionalAuth, app)
	RegisterApplicationRoutes(api, applicationHandler, sessionAuth, app)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
