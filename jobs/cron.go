package jobs

import (
	"log"
	"time"

	"hotel-booking/constants"
	"hotel-booking/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy đồng bộ trạng thái phòng lúc: %v", now)
		if err := ReconcileRoomStatuses(db); err != nil {
			log.Printf("Lỗi khi đồng bộ trạng thái phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// ReconcileRoomStatuses trả về Available các phòng đang Reserved hoặc Occupied
// nhưng không còn booking nào giữ phòng. Phòng Maintenance không đụng tới.
func ReconcileRoomStatuses(db *gorm.DB) error {
	var rooms []models.Room
	err := db.Where("status IN ?", []string{constants.RoomStatusReserved, constants.RoomStatusOccupied}).
		Find(&rooms).Error
	if err != nil {
		return err
	}

	released := 0
	for i := range rooms {
		var active int64
		err := db.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", rooms[i].RoomId, constants.ActiveBookingStatuses).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			continue
		}

		err = db.Model(&models.Room{}).Where("room_id = ?", rooms[i].RoomId).
			Update("status", constants.RoomStatusAvailable).Error
		if err != nil {
			return err
		}
		released++
	}

	if released > 0 {
		log.Printf("Đã trả %d phòng về trạng thái trống", released)
	}
	return nil
}
