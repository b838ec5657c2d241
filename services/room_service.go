package services

import (
	"encoding/json"
	stderrors "errors"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/services/logger"

	"gorm.io/gorm"
)

// RoomService xử lý logic liên quan đến phòng
type RoomService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// Create tạo phòng mới, số phòng phải chưa tồn tại
func (s *RoomService) Create(room *models.Room) error {
	var existing models.Room
	err := s.db.Where("room_number = ?", room.RoomNumber).First(&existing).Error
	if err == nil {
		return errors.NewAppError(errors.ErrCodeRoomNumberExists, "Số phòng "+room.RoomNumber+" đã tồn tại", nil)
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra số phòng", err)
	}

	if err := s.db.Create(room).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo phòng", err)
	}

	s.logger.Info("Đã tạo phòng %s (id=%d)", room.RoomNumber, room.RoomId)
	return nil
}

// GetAll lấy tất cả phòng, không đảm bảo thứ tự
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách phòng", err)
	}
	return rooms, nil
}

// GetAvailable lấy các phòng đang ở trạng thái Available
func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Where("status = ?", constants.RoomStatusAvailable).Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách phòng trống", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin phòng", err)
	}
	return &room, nil
}

// Update cập nhật phòng, chỉ áp dụng các field có giá trị trong request.
// Đổi status ở đây là thao tác admin override, không đối chiếu với booking đang hoạt động.
func (s *RoomService) Update(id uint, request *dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if request.RoomNumber != "" && request.RoomNumber != room.RoomNumber {
		var existing models.Room
		err := s.db.Where("room_number = ?", request.RoomNumber).First(&existing).Error
		if err == nil {
			return nil, errors.NewAppError(errors.ErrCodeRoomNumberExists, "Số phòng "+request.RoomNumber+" đã tồn tại", nil)
		}
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra số phòng", err)
		}
		room.RoomNumber = request.RoomNumber
	}

	if request.RoomType != "" {
		room.RoomType = request.RoomType
	}

	if request.PricePerNight > 0 {
		room.PricePerNight = request.PricePerNight
	}

	if request.Status != "" {
		room.Status = request.Status
		if err := room.ValidateStatus(); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái phòng không hợp lệ: "+request.Status, nil)
		}
	}

	if len(request.SpecialFeatures) > 0 {
		featuresJSON, err := json.Marshal(request.SpecialFeatures)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xử lý danh sách tiện ích", err)
		}
		room.SpecialFeatures = featuresJSON
	}

	if len(request.Images) > 0 {
		imagesJSON, err := json.Marshal(request.Images)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xử lý danh sách ảnh", err)
		}
		room.Images = imagesJSON
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật phòng", err)
	}

	return room, nil
}

// Delete xóa phòng vô điều kiện. Booking đang tham chiếu phòng không bị đụng tới.
func (s *RoomService) Delete(id uint) error {
	room, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.Room{}, room.RoomId).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa phòng", err)
	}

	s.logger.Info("Đã xóa phòng %s (id=%d)", room.RoomNumber, room.RoomId)
	return nil
}
