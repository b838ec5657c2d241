package routes

import (
	"hotel-booking/controllers"
	middlewares "hotel-booking/middleware"
	"hotel-booking/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.RequestLogger())

	roomController := controllers.NewRoomController(db, redisCli, cld)
	bookingController := controllers.NewBookingController(db, redisCli, notification.NewMelodyService(m))

	v1 := router.Group("/api/v1")

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", roomController.DeleteRoom)

	v1.GET("/bookings", bookingController.GetAllBookings)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", bookingController.UpdateBooking)
	v1.DELETE("/bookings/:id", bookingController.DeleteBooking)
	v1.GET("/bookings/user/:email", bookingController.GetBookingsByGuest)
}
