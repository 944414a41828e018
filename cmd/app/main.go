package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"wayfare/cmd/fx/account_fx"
	"wayfare/cmd/fx/controllers_fx"
	"wayfare/cmd/fx/db_fx"
	"wayfare/cmd/fx/itinerary_fx"
	"wayfare/cmd/fx/trip_fx"
	"wayfare/cmd/fx/weather_fx"
	"wayfare/internal/api/controllers"
	"wayfare/pkg/config"
	"wayfare/pkg/middleware"
	"wayfare/pkg/utils"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		weather_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	cfg *config.Config,
	jwtMaker *utils.JWTMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendOrigin))

	RegisterRoutes(r, jwtMaker,
		accountController, itineraryController, tripController, weatherController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtMaker *utils.JWTMaker,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	weatherController *controllers.WeatherController,
	chatController *controllers.ChatController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Trip Planner API!"})
	})

	r.POST("/trip/itinerary", itineraryController.CreateItinerary)
	r.GET("/weather/:city", weatherController.GetWeather)
	r.POST("/chat", chatController.Chat)

	apiGroup := r.Group("/api")
	apiGroup.POST("/register", accountController.Register)
	apiGroup.POST("/login", accountController.Login)

	userGroup := apiGroup.Group("/user")
	userGroup.Use(middleware.JWTAuthMiddleware(jwtMaker))
	userGroup.GET("/profile", tripController.GetProfile)
	userGroup.GET("/trips", tripController.ListTrips)
	userGroup.POST("/trips", tripController.SaveTrip)
}
