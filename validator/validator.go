package validator

import (
	"regexp"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
)

// ValidateRoomInput kiểm tra dữ liệu đầu vào của phòng
func ValidateRoomInput(req *dto.CreateRoomRequest) error {
	if req.RoomNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số phòng không được để trống", nil)
	}

	if req.RoomType == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Loại phòng không được để trống", nil)
	}

	if req.PricePerNight <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng phải lớn hơn 0", nil)
	}

	if req.Status != "" && !isValidRoomStatus(req.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái phòng không hợp lệ: "+req.Status, nil)
	}

	return nil
}

// ValidateBookingInput kiểm tra dữ liệu đầu vào của booking.
// Trả về số đêm nếu hợp lệ.
func ValidateBookingInput(req *dto.CreateBookingRequest) (int, error) {
	if req.RoomID == 0 {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if req.GuestName == "" {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if !isValidEmail(req.GuestEmail) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}

	if req.GuestPhone == "" {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}

	if req.TotalGuests < 1 || req.TotalGuests > 10 {
		return 0, errors.NewAppError(errors.ErrCodeValidation, "Số khách phải từ 1 đến 10", nil)
	}

	if req.PaymentMethod == "" {
		return 0, errors.NewAppError(errors.ErrCodeRequiredField, "Phương thức thanh toán không được để trống", nil)
	}

	checkIn, err := time.Parse(models.DateLayout, req.CheckInDate)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ, dùng định dạng YYYY-MM-DD", err)
	}

	checkOut, err := time.Parse(models.DateLayout, req.CheckOutDate)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ, dùng định dạng YYYY-MM-DD", err)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nights, nil
}

func isValidRoomStatus(status string) bool {
	for _, s := range constants.RoomStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
