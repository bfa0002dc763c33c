package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ruzaikr/table-booking/internal/config"
	"github.com/ruzaikr/table-booking/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	reservationHandler := handlers.NewReservationHandler(db, rdb, cfg)
	tableHandler := handlers.NewTableHandler(db)

	api := r.Group("/api/v1")
	{
		api.POST("/reservations", reservationHandler.Create)
		api.GET("/reservations", reservationHandler.ListByDate)
		api.GET("/availability", reservationHandler.Availability)
		api.GET("/tables", tableHandler.List)
	}
}
