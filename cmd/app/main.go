package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/clients_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/textgen_fx"
	"voyago/cmd/fx/transport_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		clients_fx.Module,
		textgen_fx.Module,
		transport_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,
		trip_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	transportController *controllers.TransportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, transportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	transportController *controllers.TransportController) {

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", accountController.Register)
	authGroup.POST("/login", accountController.Login)

	tripsGroup := api.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("", tripController.GetTrips)
	tripsGroup.GET("/:tripId", tripController.GetTripById)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)

	transportGroup := api.Group("/transport")
	transportGroup.Use(middleware.JWTAuthMiddleware())
	transportGroup.GET("/flights", transportController.GetFlights)
	transportGroup.GET("/trains", transportController.GetTrains)
}
