package services

import (
	stderrors "errors"
	"sync"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/services/logger"
	"hotel-booking/validator"

	"gorm.io/gorm"
)

// BookingService gom toàn bộ vòng đời booking về một chỗ:
// tạo, cập nhật trạng thái, truy vấn và xóa đều đi qua đây
// để việc đồng bộ trạng thái phòng chỉ có một đường đi.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger

	// roomLocks giữ mutex theo từng phòng, chặn hai request
	// cùng đặt một phòng lọt qua bước kiểm tra trùng ngày
	mu        sync.Mutex
	roomLocks map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		db:        db,
		logger:    logger.NewDefaultLogger(logger.InfoLevel),
		roomLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *BookingService) lockForRoom(roomID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.roomLocks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomID] = lock
	}
	return lock
}

// Create tạo booking mới cho một phòng.
// Giữ lock theo phòng trong suốt transaction: kiểm tra phòng trống,
// kiểm tra trùng ngày với các booking còn hiệu lực, tính tiền theo số đêm,
// tạo booking ở trạng thái Pending rồi chuyển phòng sang Reserved.
func (s *BookingService) Create(request *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	nights, err := validator.ValidateBookingInput(request)
	if err != nil {
		return nil, err
	}

	lock := s.lockForRoom(request.RoomID)
	lock.Lock()
	defer lock.Unlock()

	var booking models.Booking
	var room models.Room

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, request.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin phòng", err)
		}

		if room.Status != constants.RoomStatusAvailable {
			return errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng "+room.RoomNumber+" hiện không trống", nil)
		}

		// Hai khoảng [a1,a2) và [b1,b2) giao nhau khi a1 < b2 và b1 < a2,
		// trùng ngày trả với ngày nhận của booking khác thì vẫn hợp lệ
		var overlapping int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", request.RoomID, constants.ActiveBookingStatuses).
			Where("check_in_date < ? AND check_out_date > ?", request.CheckOutDate, request.CheckInDate).
			Count(&overlapping).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra trùng ngày", err)
		}
		if overlapping > 0 {
			return errors.NewAppError(errors.ErrCodeDatesOverlap, "Phòng đã có booking trong khoảng ngày này", nil)
		}

		booking = models.Booking{
			RoomID:          request.RoomID,
			GuestName:       request.GuestName,
			GuestEmail:      request.GuestEmail,
			GuestPhone:      request.GuestPhone,
			GuestAddress:    request.GuestAddress,
			CheckInDate:     request.CheckInDate,
			CheckOutDate:    request.CheckOutDate,
			TotalGuests:     request.TotalGuests,
			TotalAmount:     room.PricePerNight * float64(nights),
			Status:          constants.BookingStatusPending,
			SpecialRequests: request.SpecialRequests,
			PaymentMethod:   request.PaymentMethod,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo booking", err)
		}

		if err := tx.Model(&models.Room{}).Where("room_id = ?", room.RoomId).
			Update("status", constants.RoomStatusReserved).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái phòng", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("Đã tạo booking %d cho phòng %s (%s -> %s)", booking.ID, room.RoomNumber, booking.CheckInDate, booking.CheckOutDate)
	response := buildBookingResponse(&booking, room.RoomNumber)
	return &response, nil
}

// Update cập nhật booking: status và/hoặc specialRequests.
// Status được chuẩn hóa không phân biệt hoa thường trước khi lưu,
// đổi status thì đồng bộ luôn trạng thái phòng theo bảng ánh xạ.
func (s *BookingService) Update(id uint, request *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	if request.Status == nil && request.SpecialRequests == nil {
		return nil, errors.NewAppError(errors.ErrCodeEmptyUpdate, "Không có trường nào để cập nhật", nil)
	}

	var newStatus string
	if request.Status != nil {
		normalized, ok := models.NormalizeBookingStatus(*request.Status)
		if !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái booking không hợp lệ: "+*request.Status, nil)
		}
		newStatus = normalized
	}

	var booking models.Booking

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin booking", err)
		}

		if newStatus != "" {
			booking.Status = newStatus
		}
		if request.SpecialRequests != nil {
			booking.SpecialRequests = *request.SpecialRequests
		}

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật booking", err)
		}

		if newStatus != "" {
			if roomStatus, ok := models.RoomStatusFor(newStatus); ok {
				// Phòng có thể đã bị xóa, khi đó chỉ cập nhật booking
				if err := tx.Model(&models.Room{}).Where("room_id = ?", booking.RoomID).
					Update("status", roomStatus).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái phòng", err)
				}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.Info("Đã cập nhật booking %d (status=%s)", booking.ID, booking.Status)
	response := buildBookingResponse(&booking, s.roomNumberFor(booking.RoomID))
	return &response, nil
}

// GetByID lấy một booking kèm số phòng
func (s *BookingService) GetByID(id uint) (*dto.BookingResponse, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin booking", err)
	}

	response := buildBookingResponse(&booking, s.roomNumberFor(booking.RoomID))
	return &response, nil
}

// GetAll lấy tất cả booking, mới nhất xếp trước
func (s *BookingService) GetAll() ([]dto.BookingResponse, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách booking", err)
	}
	return s.buildBookingResponses(bookings), nil
}

// GetByGuestEmail lấy các booking của một khách theo email, mới nhất xếp trước
func (s *BookingService) GetByGuestEmail(email string) ([]dto.BookingResponse, error) {
	var bookings []models.Booking
	if err := s.db.Where("guest_email = ?", email).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách booking theo email", err)
	}
	return s.buildBookingResponses(bookings), nil
}

// Delete xóa booking và trả phòng về Available bất kể trạng thái booking
func (s *BookingService) Delete(id uint) error {
	var booking models.Booking

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy thông tin booking", err)
		}

		if err := tx.Model(&models.Room{}).Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusAvailable).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái phòng", err)
		}

		if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa booking", err)
		}

		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.logger.Info("Đã xóa booking %d, phòng %d trở về trạng thái trống", booking.ID, booking.RoomID)
	return nil
}

// roomNumberFor lấy số phòng theo id, trả về "Unknown" nếu phòng đã bị xóa
func (s *BookingService) roomNumberFor(roomID uint) string {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return "Unknown"
	}
	return room.RoomNumber
}

// buildBookingResponses ghép số phòng cho từng booking,
// phòng chỉ cần truy vấn một lần cho mỗi id
func (s *BookingService) buildBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	roomNumbers := make(map[uint]string)
	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		number, ok := roomNumbers[bookings[i].RoomID]
		if !ok {
			number = s.roomNumberFor(bookings[i].RoomID)
			roomNumbers[bookings[i].RoomID] = number
		}
		responses = append(responses, buildBookingResponse(&bookings[i], number))
	}
	return responses
}

func buildBookingResponse(booking *models.Booking, roomNumber string) dto.BookingResponse {
	return dto.BookingResponse{
		ID:              booking.ID,
		RoomID:          booking.RoomID,
		RoomNumber:      roomNumber,
		GuestName:       booking.GuestName,
		GuestEmail:      booking.GuestEmail,
		GuestPhone:      booking.GuestPhone,
		GuestAddress:    booking.GuestAddress,
		CheckInDate:     booking.CheckInDate,
		CheckOutDate:    booking.CheckOutDate,
		TotalGuests:     booking.TotalGuests,
		TotalAmount:     booking.TotalAmount,
		Status:          booking.Status,
		SpecialRequests: booking.SpecialRequests,
		PaymentMethod:   booking.PaymentMethod,
		CreatedAt:       booking.CreatedAt,
	}
}
