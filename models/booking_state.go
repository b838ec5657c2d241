package models

import (
	"strings"

	"hotel-booking/constants"
)

// DateLayout định dạng ngày lưu trong booking (chỉ ngày, không có giờ)
const DateLayout = "2006-01-02"

// bookingStatusMap chuẩn hóa chuỗi trạng thái không phân biệt hoa thường,
// chấp nhận cả dạng gạch dưới ("checked_in")
var bookingStatusMap = map[string]string{
	"pending":     constants.BookingStatusPending,
	"confirmed":   constants.BookingStatusConfirmed,
	"checked in":  constants.BookingStatusCheckedIn,
	"checked out": constants.BookingStatusCheckedOut,
	"checked_in":  constants.BookingStatusCheckedIn,
	"checked_out": constants.BookingStatusCheckedOut,
	"cancelled":   constants.BookingStatusCancelled,
}

// roomStatusMap ánh xạ trạng thái booking sang trạng thái phòng tương ứng
var roomStatusMap = map[string]string{
	constants.BookingStatusCancelled:  constants.RoomStatusAvailable,
	constants.BookingStatusCheckedOut: constants.RoomStatusAvailable,
	constants.BookingStatusConfirmed:  constants.RoomStatusReserved,
	constants.BookingStatusCheckedIn:  constants.RoomStatusOccupied,
	constants.BookingStatusPending:    constants.RoomStatusReserved,
}

// NormalizeBookingStatus chuẩn hóa trạng thái booking từ input người dùng.
// Trả về false nếu không khớp trạng thái nào.
func NormalizeBookingStatus(raw string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	status, ok := bookingStatusMap[normalized]
	return status, ok
}

// RoomStatusFor trả về trạng thái phòng tương ứng với trạng thái booking
func RoomStatusFor(bookingStatus string) (string, bool) {
	status, ok := roomStatusMap[bookingStatus]
	return status, ok
}

// IsActiveBookingStatus kiểm tra trạng thái booking còn giữ phòng hay không
func IsActiveBookingStatus(status string) bool {
	for _, s := range constants.ActiveBookingStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// DateRangesOverlap kiểm tra hai khoảng ngày [a1,a2) và [b1,b2) có giao nhau không.
// Ngày ở định dạng YYYY-MM-DD nên so sánh chuỗi tương đương so sánh ngày.
func DateRangesOverlap(a1, a2, b1, b2 string) bool {
	return a1 < b2 && b1 < a2
}
