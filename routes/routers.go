package routes

import (
	"zomestay-backend/constants"
	"zomestay-backend/controllers"
	middlewares "zomestay-backend/middleware"
	"zomestay-backend/services"
	"zomestay-backend/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes đăng ký toàn bộ route của API
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	roomService := services.NewRoomService(services.RoomServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: appLogger,
	})
	mealPlanService := services.NewMealPlanService(services.MealPlanServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: appLogger,
	})
	quoteService := services.NewQuoteService(services.QuoteServiceOptions{
		Rooms:  roomService,
		Meals:  mealPlanService,
		Logger: appLogger,
	})

	quoteController := controllers.NewQuoteController(quoteService)
	roomController := controllers.NewRoomController(roomService)
	mealPlanController := controllers.NewMealPlanController(mealPlanService)

	v1 := router.Group("/api/v1")
	v1.POST("/quote", quoteController.CreateQuote)

	v1.GET("/rooms", roomController.GetRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	v1.GET("/mealplans", mealPlanController.GetMealPlans)
	v1.POST("/mealplans", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleReceptionist), mealPlanController.UpsertMealPlan)
	v1.DELETE("/mealplans/:id", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), mealPlanController.DeleteMealPlan)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
