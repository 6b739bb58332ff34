package api

import (
	"github.com/gin-gonic/gin"
	"wanderly/internal/api/controllers"
	"wanderly/pkg/middleware"
	"wanderly/pkg/utils"
)

func NewRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itineraryController, assistantController, tripController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController,
	adminController *controllers.AdminController) {

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	apiGroup := r.Group("/api")
	auth := middleware.JWTAuthMiddleware()

	accountGroup := apiGroup.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", auth, accountController.Me)

	itineraryGroup := apiGroup.Group("/itineraries", auth)
	itineraryGroup.GET("", itineraryController.List)
	itineraryGroup.POST("", itineraryController.Create)
	itineraryGroup.POST("/generate", itineraryController.Generate)
	itineraryGroup.GET("/:id", itineraryController.Get)
	itineraryGroup.PUT("/:id", itineraryController.Update)
	itineraryGroup.DELETE("/:id", itineraryController.Delete)
	itineraryGroup.GET("/:id/assistant", assistantController.Transcript)
	itineraryGroup.POST("/:id/assistant", assistantController.Command)

	apiGroup.POST("/assistant/interpret", assistantController.Interpret)

	tripGroup := apiGroup.Group("/trips")
	tripGroup.GET("/steps", tripController.Steps)
	tripGroup.GET("/options", tripController.Options)
	tripGroup.POST("/validate", tripController.Validate)
	tripGroup.POST("/compose", tripController.Compose)
	tripGroup.POST("/save", auth, tripController.Save)

	catalogGroup := apiGroup.Group("/catalog")
	catalogGroup.GET("/hotels", tripController.Hotels)
	catalogGroup.GET("/places", tripController.Places)
	catalogGroup.GET("/restaurants", tripController.Restaurants)

	adminGroup := apiGroup.Group("/admin", auth, middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.POST("/janitor/run", adminController.RunJanitor)
}
