package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyagemind/cmd/fx/export_fx"
	"voyagemind/cmd/fx/itinerary_fx"
	"voyagemind/cmd/fx/weather_fx"
	"voyagemind/internal/api/controllers"
	"voyagemind/pkg/middleware"
	"voyagemind/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		weather_fx.Module,
		itinerary_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, weatherController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController) {

	api := r.Group("/api")
	api.GET("/health", controllers.HealthHandler)
	api.POST("/generate-itinerary", itineraryController.GenerateItineraryHandler)
	api.GET("/weather", weatherController.GetWeatherHandler)
	api.POST("/export/pdf", exportController.ExportPDFHandler)
	api.POST("/export/calendar", exportController.ExportCalendarHandler)
	api.POST("/share/link", exportController.CreateShareLinkHandler)
	api.GET("/shared/:id", exportController.GetSharedHandler)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Endpoint not found")
	})
}
