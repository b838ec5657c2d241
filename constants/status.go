package constants

// Room status
const (
	RoomStatusAvailable   = "Available"
	RoomStatusReserved    = "Reserved"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// Booking status
const (
	BookingStatusPending    = "Pending"
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "Checked In"
	BookingStatusCheckedOut = "Checked Out"
	BookingStatusCancelled  = "Cancelled"
)

// RoomStatuses danh sách trạng thái phòng hợp lệ
var RoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusReserved,
	RoomStatusOccupied,
	RoomStatusMaintenance,
}

// BookingStatuses danh sách trạng thái booking hợp lệ
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusCheckedOut,
	BookingStatusCancelled,
}

// ActiveBookingStatuses các trạng thái còn giữ phòng, dùng khi kiểm tra trùng ngày
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}
