package config

import (
	"fmt"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

var Cloudinary *cloudinary.Cloudinary

func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	LoadEnv()

	ConnectDB()

	cld, err := ConnectCloudinary()
	if err != nil {
		return fmt.Errorf("failed to connect to Cloudinary: %v", err)
	}
	Cloudinary = cld

	RedisClient, err = ConnectRedis()
	if err != nil {
		// Cache không bắt buộc, thiếu Redis thì đọc thẳng DB
		log.Printf("Warning: không kết nối được Redis, chạy không cache: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
	return nil
}

// InitWebSocket gắn endpoint websocket để broadcast sự kiện booking
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/api/v1/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
