package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Không tìm thấy file .env, dùng biến môi trường hệ thống...")
	}
}

// Config lấy giá trị biến môi trường theo key
func Config(key string) string {
	return os.Getenv(key)
}

// ConfigOr lấy biến môi trường, trả về fallback nếu chưa đặt
func ConfigOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
