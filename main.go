package main

import (
	"log"
	"net/http"
	"os"

	"zomestay-backend/config"
	"zomestay-backend/jobs"
	"zomestay-backend/models"
	"zomestay-backend/routes"
	"zomestay-backend/services"
	"zomestay-backend/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Property{}, &models.RoomType{}, &models.Room{}, &models.MealPlan{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: appLogger,
	})
	mealPlanService := services.NewMealPlanService(services.MealPlanServiceOptions{
		DB:     config.DB,
		Redis:  config.RedisClient,
		Logger: appLogger,
	})
	jobs.RegisterCacheWarmer(roomService)
	jobs.RegisterCacheWarmer(mealPlanService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
