package controllers

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"hotel-booking/config"
	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/services"
	"hotel-booking/validator"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
	service    *services.RoomService
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) RoomController {
	return RoomController{
		DB:         db,
		Redis:      redisCli,
		Cloudinary: cld,
		service:    services.NewRoomService(db),
	}
}

// CreateRoom tạo phòng mới từ form multipart, ảnh upload lên Cloudinary
func (r RoomController) CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBind(&request); err != nil {
		response.BadRequest(c, "Dữ liệu đầu vào không hợp lệ: "+err.Error())
		return
	}

	if err := validator.ValidateRoomInput(&request); err != nil {
		handleAppError(c, err)
		return
	}

	// specialFeatures gửi dạng chuỗi phân cách bằng dấu phẩy
	features := []string{}
	if request.SpecialFeatures != "" {
		for _, f := range strings.Split(request.SpecialFeatures, ",") {
			if trimmed := strings.TrimSpace(f); trimmed != "" {
				features = append(features, trimmed)
			}
		}
	}

	imageURLs := []string{}
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		files := form.File["images"]
		if len(files) > 0 {
			if r.Cloudinary == nil {
				log.Printf("Cloudinary chưa được cấu hình, bỏ qua upload ảnh")
			} else {
				urls, err := services.UploadRoomImages(c.Request.Context(), r.Cloudinary, files)
				if err != nil {
					handleAppError(c, err)
					return
				}
				imageURLs = urls
			}
		}
	}

	featuresJSON, _ := json.Marshal(features)
	imagesJSON, _ := json.Marshal(imageURLs)

	status := request.Status
	if status == "" {
		status = constants.RoomStatusAvailable
	}

	room := models.Room{
		RoomNumber:      request.RoomNumber,
		RoomType:        request.RoomType,
		PricePerNight:   request.PricePerNight,
		Status:          status,
		SpecialFeatures: featuresJSON,
		Images:          imagesJSON,
	}

	if err := r.service.Create(&room); err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, r.Redis)
	response.Success(c, convertToRoomResponse(&room))
}

// GetAllRooms lấy danh sách tất cả phòng, có cache Redis
func (r RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	if r.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, r.Redis, services.CacheKeyRooms, &rooms); err == nil && len(rooms) > 0 {
			response.SuccessWithTotal(c, convertToRoomResponses(rooms), len(rooms))
			return
		}
	}

	rooms, err := r.service.GetAll()
	if err != nil {
		handleAppError(c, err)
		return
	}

	if r.Redis != nil {
		if err := services.SetToRedis(config.Ctx, r.Redis, services.CacheKeyRooms, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, convertToRoomResponses(rooms), len(rooms))
}

// GetAvailableRooms lấy danh sách phòng đang trống, có cache Redis
func (r RoomController) GetAvailableRooms(c *gin.Context) {
	var rooms []models.Room

	if r.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, r.Redis, services.CacheKeyRoomsAvailable, &rooms); err == nil && len(rooms) > 0 {
			response.SuccessWithTotal(c, convertToRoomResponses(rooms), len(rooms))
			return
		}
	}

	rooms, err := r.service.GetAvailable()
	if err != nil {
		handleAppError(c, err)
		return
	}

	if r.Redis != nil {
		if err := services.SetToRedis(config.Ctx, r.Redis, services.CacheKeyRoomsAvailable, rooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng trống vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, convertToRoomResponses(rooms), len(rooms))
}

// GetRoomDetail lấy thông tin một phòng theo id
func (r RoomController) GetRoomDetail(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	room, err := r.service.GetByID(id)
	if err != nil {
		handleAppError(c, err)
		return
	}

	response.Success(c, convertToRoomResponse(room))
}

// UpdateRoom cập nhật thông tin phòng, chỉ các field có trong request
func (r RoomController) UpdateRoom(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu đầu vào không hợp lệ: "+err.Error())
		return
	}

	room, err := r.service.Update(id, &request)
	if err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, r.Redis)
	response.Success(c, convertToRoomResponse(room))
}

// DeleteRoom xóa phòng theo id
func (r RoomController) DeleteRoom(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	if err := r.service.Delete(id); err != nil {
		handleAppError(c, err)
		return
	}

	services.InvalidateRoomCaches(config.Ctx, r.Redis)
	response.Success(c, gin.H{"id": id})
}

// parseIDParam đọc param :id thành uint
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// handleAppError ánh xạ AppError sang HTTP status tương ứng
func handleAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		log.Printf("Lỗi không xác định: %v", err)
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeRoomNotFound, errors.ErrCodeBookingNotFound:
		response.NotFound(c, appErr.Message)
	case errors.ErrCodeRoomNumberExists, errors.ErrCodeRoomNotAvailable, errors.ErrCodeDatesOverlap:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError, errors.ErrCodeUploadFailed:
		log.Printf("Lỗi hệ thống: %v", appErr)
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

func convertToRoomResponse(room *models.Room) dto.RoomResponse {
	features := []string{}
	if len(room.SpecialFeatures) > 0 {
		if err := json.Unmarshal(room.SpecialFeatures, &features); err != nil {
			log.Printf("Lỗi khi đọc danh sách tiện ích của phòng %d: %v", room.RoomId, err)
		}
	}

	images := []string{}
	if len(room.Images) > 0 {
		if err := json.Unmarshal(room.Images, &images); err != nil {
			log.Printf("Lỗi khi đọc danh sách ảnh của phòng %d: %v", room.RoomId, err)
		}
	}

	return dto.RoomResponse{
		RoomId:          room.RoomId,
		RoomNumber:      room.RoomNumber,
		RoomType:        room.RoomType,
		PricePerNight:   room.PricePerNight,
		Status:          room.Status,
		SpecialFeatures: features,
		Images:          images,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
}

func convertToRoomResponses(rooms []models.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, convertToRoomResponse(&rooms[i]))
	}
	return responses
}
