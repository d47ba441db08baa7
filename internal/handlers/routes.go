package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-registry-api/internal/config"
	"car-registry-api/internal/repositories"
)

// RouterConfig holds the dependencies needed to wire the HTTP routes.
type RouterConfig struct {
	Config        *config.Config
	CarRepository repositories.CarRepository
	Logger        *logrus.Logger
}

// SetupRoutes configures all API routes on the given engine.
func SetupRoutes(router *gin.Engine, rc *RouterConfig) {
	carHandler := NewCarHandler(rc.CarRepository, rc.Logger)

	// Swagger documentation
	if rc.Config.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Liveness probe
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Success:     true,
			Message:     "API is running",
			Environment: rc.Config.Environment,
		})
	})

	cars := router.Group("/cars")
	{
		cars.GET("", carHandler.ListCars)
		cars.POST("", carHandler.CreateCar)
		cars.GET("/:id", carHandler.GetCar)
		cars.PUT("/:id", carHandler.UpdateCar)
		cars.DELETE("/:id", carHandler.DeleteCar)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse(errRouteNotFound))
	})
}
