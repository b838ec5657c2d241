package dto

import "time"

// CreateRoomRequest là DTO cho form tạo phòng (multipart).
// SpecialFeatures nhận chuỗi phân tách bằng dấu phẩy, ảnh nhận qua file form.
type CreateRoomRequest struct {
	RoomNumber      string  `form:"roomNumber" binding:"required"`
	RoomType        string  `form:"roomType" binding:"required"`
	PricePerNight   float64 `form:"pricePerNight" binding:"required,gt=0"`
	Status          string  `form:"status"`
	SpecialFeatures string  `form:"specialFeatures"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng, chỉ áp dụng field có giá trị
type UpdateRoomRequest struct {
	RoomNumber      string   `json:"roomNumber"`
	RoomType        string   `json:"roomType"`
	PricePerNight   float64  `json:"pricePerNight"`
	Status          string   `json:"status"`
	SpecialFeatures []string `json:"specialFeatures"`
	Images          []string `json:"images"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	RoomId          uint      `json:"id"`
	RoomNumber      string    `json:"roomNumber"`
	RoomType        string    `json:"roomType"`
	PricePerNight   float64   `json:"pricePerNight"`
	Status          string    `json:"status"`
	SpecialFeatures []string  `json:"specialFeatures"`
	Images          []string  `json:"images"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
