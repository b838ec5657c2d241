package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking
type CreateBookingRequest struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required"`
	GuestPhone      string `json:"guestPhone" binding:"required"`
	GuestAddress    string `json:"guestAddress" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	TotalGuests     int    `json:"totalGuests" binding:"required,gte=1,lte=10"`
	SpecialRequests string `json:"specialRequests"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// UpdateBookingRequest là DTO cho request cập nhật booking.
// Dùng con trỏ để phân biệt field không gửi và field gửi giá trị rỗng.
type UpdateBookingRequest struct {
	Status          *string `json:"status"`
	SpecialRequests *string `json:"specialRequests"`
}

// BookingResponse là DTO cho response của booking, kèm số phòng để hiển thị
type BookingResponse struct {
	ID              uint      `json:"id"`
	RoomID          uint      `json:"roomId"`
	RoomNumber      string    `json:"roomNumber"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	GuestAddress    string    `json:"guestAddress"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	TotalGuests     int       `json:"totalGuests"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"specialRequests"`
	PaymentMethod   string    `json:"paymentMethod"`
	CreatedAt       time.Time `json:"createdAt"`
}
