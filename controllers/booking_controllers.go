package controllers

import (
	"log"
	"time"

	"hotel-booking/config"
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"
	"hotel-booking/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	service  *services.BookingService
	notifier notification.Service
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, notifier notification.Service) BookingController {
	return BookingController{
		DB:       db,
		Redis:    redisCli,
		service:  services.NewBookingService(db),
		notifier: notifier,
	}
}

// CreateBooking tạo booking mới, gửi email xác nhận và thông báo websocket
func (b BookingController) CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu đầu vào không hợp lệ: "+err.Error())
		return
	}

	booking, err := b.service.Create(&request)
	if err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateBookingCaches(config.Ctx, b.Redis)

	// Email và websocket chỉ là thông báo, lỗi không chặn response
	go func() {
		if err := services.SendBookingEmail(booking); err != nil {
			log.Printf("Lỗi khi gửi email xác nhận booking %d: %v", booking.ID, err)
		}
	}()
	b.notifyBookingEvent(booking)

	response.Success(c, booking)
}

// GetAllBookings lấy danh sách booking, mới nhất xếp trước, có cache Redis
func (b BookingController) GetAllBookings(c *gin.Context) {
	var bookings []dto.BookingResponse

	if b.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, b.Redis, services.CacheKeyBookings, &bookings); err == nil && len(bookings) > 0 {
			response.SuccessWithTotal(c, bookings, len(bookings))
			return
		}
	}

	bookings, err := b.service.GetAll()
	if err != nil {
		handleAppError(c, err)
		return
	}

	if b.Redis != nil {
		if err := services.SetToRedis(config.Ctx, b.Redis, services.CacheKeyBookings, bookings, 5*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, bookings, len(bookings))
}

// GetBookingDetail lấy một booking theo id
func (b BookingController) GetBookingDetail(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := b.service.GetByID(id)
	if err != nil {
		handleAppError(c, err)
		return
	}

	response.Success(c, booking)
}

// GetBookingsByGuest lấy các booking của một khách theo email
func (b BookingController) GetBookingsByGuest(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		response.BadRequest(c, "Email không được để trống")
		return
	}

	bookings, err := b.service.GetByGuestEmail(email)
	if err != nil {
		handleAppError(c, err)
		return
	}

	response.SuccessWithTotal(c, bookings, len(bookings))
}

// UpdateBooking cập nhật status và/hoặc specialRequests của booking
func (b BookingController) UpdateBooking(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var request dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu đầu vào không hợp lệ: "+err.Error())
		return
	}

	booking, err := b.service.Update(id, &request)
	if err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateBookingCaches(config.Ctx, b.Redis)
	b.notifyBookingEvent(booking)

	response.Success(c, booking)
}

// DeleteBooking xóa booking, phòng liên quan trở về trạng thái trống
func (b BookingController) DeleteBooking(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	if err := b.service.Delete(id); err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateBookingCaches(config.Ctx, b.Redis)
	response.Success(c, gin.H{"id": id})
}

func (b BookingController) notifyBookingEvent(booking *dto.BookingResponse) {
	if b.notifier == nil {
		return
	}
	message := notification.NewBookingMessageBuilder(booking.ID, booking.RoomNumber, booking.Status).Build()
	if err := b.notifier.SendMessage(message); err != nil {
		log.Printf("Lỗi khi gửi thông báo booking %d: %v", booking.ID, err)
	}
}
