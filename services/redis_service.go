package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key cho danh sách phòng và booking
const (
	CacheKeyRooms          = "rooms:all"
	CacheKeyRoomsAvailable = "rooms:available"
	CacheKeyBookings       = "bookings:all"
)

// GetFromRedis lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return err
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidateRoomCaches xóa các cache liên quan đến phòng sau khi ghi
func InvalidateRoomCaches(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, CacheKeyRooms)
	_ = DeleteFromRedis(ctx, rdb, CacheKeyRoomsAvailable)
}

// InvalidateBookingCaches xóa cache booking và cả cache phòng
// vì booking làm thay đổi trạng thái phòng
func InvalidateBookingCaches(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, CacheKeyBookings)
	InvalidateRoomCaches(ctx, rdb)
}
