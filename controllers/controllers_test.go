package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-booking/constants"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}, &models.Booking{}))

	// không Redis, không Cloudinary: controller phải chạy được không cache
	roomController := NewRoomController(db, nil, nil)
	bookingController := NewBookingController(db, nil, notification.NewMelodyService(melody.New()))

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/available", roomController.GetAvailableRooms)
	v1.POST("/rooms", roomController.CreateRoom)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", roomController.UpdateRoom)
	v1.DELETE("/rooms/:id", roomController.DeleteRoom)
	v1.GET("/bookings", bookingController.GetAllBookings)
	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", bookingController.UpdateBooking)
	v1.DELETE("/bookings/:id", bookingController.DeleteBooking)
	v1.GET("/bookings/user/:email", bookingController.GetBookingsByGuest)

	return router, db
}

func postRoomForm(t *testing.T, router *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rooms", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPut, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func roomForm(number string) map[string]string {
	return map[string]string{
		"roomNumber":      number,
		"roomType":        "Deluxe",
		"pricePerNight":   "100",
		"specialFeatures": "wifi, ban công",
	}
}

func bookingPayload(roomID uint, checkIn, checkOut string) map[string]interface{} {
	return map[string]interface{}{
		"roomId":        roomID,
		"guestName":     "Nguyen Van A",
		"guestEmail":    "guest@example.com",
		"guestPhone":    "0901234567",
		"guestAddress":  "Ha Noi",
		"checkInDate":   checkIn,
		"checkOutDate":  checkOut,
		"totalGuests":   2,
		"paymentMethod": "cash",
	}
}

func TestRoomEndpoints(t *testing.T) {
	t.Run("tạo phòng từ form multipart", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := postRoomForm(t, router, roomForm("101"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeResponse(t, w)
		assert.Equal(t, 1, resp.Code)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "101", data["roomNumber"])
		assert.Equal(t, constants.RoomStatusAvailable, data["status"])
		assert.Equal(t, []interface{}{"wifi", "ban công"}, data["specialFeatures"])
	})

	t.Run("trùng số phòng trả về 409", func(t *testing.T) {
		router, _ := setupRouter(t)

		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		w := postRoomForm(t, router, roomForm("101"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("id không hợp lệ trả về 400", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := get(router, "/api/v1/rooms/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("phòng không tồn tại trả về 404", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := get(router, "/api/v1/rooms/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cập nhật một phần", func(t *testing.T) {
		router, _ := setupRouter(t)

		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)

		w := putJSON(router, "/api/v1/rooms/1", map[string]interface{}{"pricePerNight": 150})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decodeResponse(t, w).Data.(map[string]interface{})
		assert.Equal(t, 150.0, data["pricePerNight"])
		assert.Equal(t, "101", data["roomNumber"])
	})
}

func TestBookingEndpoints(t *testing.T) {
	t.Run("đặt phòng 3 đêm giá 100 thì tổng tiền 300", func(t *testing.T) {
		router, db := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)

		w := postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decodeResponse(t, w).Data.(map[string]interface{})
		assert.Equal(t, 300.0, data["totalAmount"])
		assert.Equal(t, constants.BookingStatusPending, data["status"])
		assert.Equal(t, "101", data["roomNumber"])

		var room models.Room
		require.NoError(t, db.First(&room, 1).Error)
		assert.Equal(t, constants.RoomStatusReserved, room.Status)
	})

	t.Run("phòng đang Reserved trả về 409", func(t *testing.T) {
		router, _ := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)

		require.Equal(t, http.StatusOK,
			postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13")).Code)

		w := postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-10-01", "2026-10-05"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("ngày không hợp lệ trả về 400", func(t *testing.T) {
		router, _ := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)

		w := postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-13", "2026-09-10"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cập nhật status không hợp lệ trả về 400", func(t *testing.T) {
		router, _ := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		require.Equal(t, http.StatusOK,
			postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13")).Code)

		w := putJSON(router, "/api/v1/bookings/1", map[string]interface{}{"status": "done"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cập nhật rỗng trả về 400", func(t *testing.T) {
		router, _ := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		require.Equal(t, http.StatusOK,
			postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13")).Code)

		w := putJSON(router, "/api/v1/bookings/1", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("checked_in chuyển phòng sang Occupied", func(t *testing.T) {
		router, db := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		require.Equal(t, http.StatusOK,
			postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13")).Code)

		w := putJSON(router, "/api/v1/bookings/1", map[string]interface{}{"status": "checked_in"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := decodeResponse(t, w).Data.(map[string]interface{})
		assert.Equal(t, constants.BookingStatusCheckedIn, data["status"])

		var room models.Room
		require.NoError(t, db.First(&room, 1).Error)
		assert.Equal(t, constants.RoomStatusOccupied, room.Status)
	})

	t.Run("xóa booking trả phòng về Available", func(t *testing.T) {
		router, db := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		require.Equal(t, http.StatusOK,
			postJSON(router, "/api/v1/bookings", bookingPayload(1, "2026-09-10", "2026-09-13")).Code)

		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/bookings/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var room models.Room
		require.NoError(t, db.First(&room, 1).Error)
		assert.Equal(t, constants.RoomStatusAvailable, room.Status)

		assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/bookings/1").Code)
	})

	t.Run("lọc booking theo email khách", func(t *testing.T) {
		router, _ := setupRouter(t)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("101")).Code)
		require.Equal(t, http.StatusOK, postRoomForm(t, router, roomForm("102")).Code)

		payload := bookingPayload(1, "2026-09-10", "2026-09-13")
		payload["guestEmail"] = "a@example.com"
		require.Equal(t, http.StatusOK, postJSON(router, "/api/v1/bookings", payload).Code)

		payload = bookingPayload(2, "2026-09-10", "2026-09-13")
		payload["guestEmail"] = "b@example.com"
		require.Equal(t, http.StatusOK, postJSON(router, "/api/v1/bookings", payload).Code)

		w := get(router, "/api/v1/bookings/user/a@example.com")
		require.Equal(t, http.StatusOK, w.Code)

		var resp response.ResponseTotal
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)

		bookings := resp.Data.([]interface{})
		require.Len(t, bookings, 1)
		assert.Equal(t, "a@example.com", bookings[0].(map[string]interface{})["guestEmail"])
	})

	t.Run("booking không tồn tại trả về 404", func(t *testing.T) {
		router, _ := setupRouter(t)
		for _, path := range []string{"/api/v1/bookings/999"} {
			assert.Equal(t, http.StatusNotFound, get(router, path).Code, path)
		}

		w := putJSON(router, "/api/v1/bookings/999", map[string]interface{}{"status": "confirmed"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
