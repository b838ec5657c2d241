package models

import (
	"time"
)

// Booking tham chiếu phòng theo RoomID, không khai báo khóa ngoại:
// xóa phòng không xóa các booking đang tham chiếu.
type Booking struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RoomID          uint      `json:"roomId" gorm:"index"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail" gorm:"index"`
	GuestPhone      string    `json:"guestPhone"`
	GuestAddress    string    `json:"guestAddress"`
	CheckInDate     string    `json:"checkInDate"`
	CheckOutDate    string    `json:"checkOutDate"`
	TotalGuests     int       `json:"totalGuests"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status" gorm:"index"`
	SpecialRequests string    `json:"specialRequests"`
	PaymentMethod   string    `json:"paymentMethod"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
