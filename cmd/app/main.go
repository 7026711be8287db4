package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/cmd/fx/account_fx"
	"wander/cmd/fx/controllers_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/destination_fx"
	"wander/cmd/fx/forum_fx"
	"wander/cmd/fx/group_fx"
	"wander/cmd/fx/mail_fx"
	"wander/cmd/fx/memcache_fx"
	"wander/cmd/fx/sos_fx"
	"wander/cmd/fx/trip_fx"
	"wander/cmd/fx/weather_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,

		account_fx.Module,
		trip_fx.Module,
		forum_fx.Module,
		group_fx.Module,
		destination_fx.Module,
		weather_fx.Module,
		sos_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountsController *controllers.AccountsController,
	tripsController *controllers.TripsController,
	forumController *controllers.ForumController,
	groupsController *controllers.GroupsController,
	destinationsController *controllers.DestinationsController,
	weatherController *controllers.WeatherController,
	sosController *controllers.SOSController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountsController,
		tripsController,
		forumController,
		groupsController,
		destinationsController,
		weatherController,
		sosController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountsController *controllers.AccountsController,
	tripsController *controllers.TripsController,
	forumController *controllers.ForumController,
	groupsController *controllers.GroupsController,
	destinationsController *controllers.DestinationsController,
	weatherController *controllers.WeatherController,
	sosController *controllers.SOSController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", accountsController.Login)
	authGroup.POST("/signup", accountsController.SignUp)
	authGroup.POST("/forgot-password", accountsController.ForgotPassword)
	authGroup.POST("/reset-password", accountsController.ResetPassword)

	accountsGroup := r.Group("/accounts", middleware.JWTAuthMiddleware())
	accountsGroup.GET("/me", accountsController.GetProfile)

	tripsGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripsController.CreateTrip)
	tripsGroup.GET("", tripsController.ListMyTrips)
	tripsGroup.GET("/:tripId", tripsController.GetTripDetail)
	tripsGroup.PATCH("/:tripId/status", tripsController.UpdateTripStatus)
	tripsGroup.POST("/:tripId/join", tripsController.JoinTrip)
	tripsGroup.POST("/:tripId/routes", tripsController.AddRoute)
	tripsGroup.POST("/:tripId/routes/import", tripsController.ImportRoutes)
	tripsGroup.POST("/:tripId/routes/:routeId/costs", tripsController.AddCost)
	tripsGroup.DELETE("/:tripId/routes/:routeId/costs/:costId", tripsController.DeleteCost)

	forumGroup := r.Group("/forum")
	forumGroup.GET("/posts", forumController.ListPosts)
	forumGroup.GET("/posts/:postId", forumController.GetPostDetail)
	forumGroup.POST("/posts", middleware.JWTAuthMiddleware(), forumController.CreatePost)
	forumGroup.POST("/posts/:postId/comments", middleware.JWTAuthMiddleware(), forumController.AddComment)
	forumGroup.POST("/posts/:postId/like", middleware.JWTAuthMiddleware(), forumController.ToggleLike)

	groupsGroup := r.Group("/groups")
	groupsGroup.GET("", groupsController.SearchGroups)
	groupsGroup.GET("/:groupId", groupsController.GetGroup)
	groupsGroup.POST("", middleware.JWTAuthMiddleware(), groupsController.CreateGroup)
	groupsGroup.POST("/:groupId/join", middleware.JWTAuthMiddleware(), groupsController.JoinGroup)
	groupsGroup.POST("/:groupId/leave", middleware.JWTAuthMiddleware(), groupsController.LeaveGroup)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.SearchDestinations)
	destinationsGroup.GET("/:destinationId", destinationsController.GetDestinationById)

	r.GET("/weather", weatherController.GetCurrentWeather)

	sosGroup := r.Group("/sos", middleware.JWTAuthMiddleware())
	sosGroup.POST("/contacts", sosController.AddContact)
	sosGroup.GET("/contacts", sosController.ListContacts)
	sosGroup.DELETE("/contacts/:contactId", sosController.DeleteContact)
	sosGroup.POST("/trigger", sosController.TriggerSOS)
}
