package server

import (
	"github.com/gin-gonic/gin"

	"tender-service/internal/auth"
	"tender-service/internal/files"
	"tender-service/internal/repository"
	"tender-service/internal/tenders"
	"tender-service/internal/users"
	filehandler "tender-service/services/files/handler"
	tenderhandler "tender-service/services/tenders/handler"
	userhandler "tender-service/services/users/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	store *repository.Store,
	resolver auth.Resolver,
	tenderService *tenders.Service,
	userService *users.Service,
	fileService *files.Service,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	tenderHandler := tenderhandler.NewTenderHandler(tenderService)
	userHandler := userhandler.NewUserHandler(userService)
	fileHandler := filehandler.NewFileHandler(fileService)

	router.POST("/users/register", userHandler.RegisterHandler)

	authed := router.Group("", AuthMiddleware(resolver, store))
	{
		authed.GET("/users/me", userHandler.SelfHandler)
		authed.PATCH("/users/me", userHandler.UpdateSelfHandler)

		tendersGroup := authed.Group("/tenders")
		{
			tendersGroup.GET("", tenderHandler.ListTendersHandler)
			tendersGroup.GET("/units", tenderHandler.UnitsHandler)
			tendersGroup.GET("/:id", tenderHandler.GetTenderHandler)
			tendersGroup.PATCH("/:id", tenderHandler.UpdateTenderHandler)
			tendersGroup.DELETE("/:id", tenderHandler.DeleteTenderHandler)

			tendersGroup.POST("/:id/files", fileHandler.UploadHandler)
			tendersGroup.GET("/:id/files/:name", fileHandler.DownloadHandler)
			tendersGroup.DELETE("/:id/files/:name", fileHandler.DeleteHandler)
		}

		authed.GET("/participants", tenderHandler.ParticipantsHandler)

		admin := authed.Group("/admin", RequireAdmin)
		{
			admin.GET("/tenders", tenderHandler.ListAllTendersHandler)
			admin.PUT("/tenders/:id", tenderHandler.AdminUpdateTenderHandler)
			admin.POST("/users/:id/tenders/:tenderId", tenderHandler.AdminAddTenderHandler)

			admin.POST("/tenders/:id/files", fileHandler.AdminUploadHandler)
			admin.GET("/tenders/:id/files/:name", fileHandler.AdminDownloadHandler)
			admin.DELETE("/tenders/:id/files/:name", fileHandler.AdminDeleteHandler)

			admin.GET("/users", userHandler.ListUsersHandler)
			admin.PATCH("/users/:id", userHandler.AdminUpdateUserHandler)
			admin.DELETE("/users/:id", userHandler.AdminDeleteUserHandler)
		}
	}

	return router
}
