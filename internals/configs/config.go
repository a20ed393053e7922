package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// UploadEndpoint is the external blob-upload collaborator. File-storage
	// internals live behind it; this service only hands URLs around.
	UploadEndpoint string

	// MaxUploadMB caps a single picked file on the client side.
	MaxUploadMB int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	UploadEndpoint = GetEnv("UPLOAD_ENDPOINT", "/api/upload")
	MaxUploadMB = GetEnvInt("MAX_UPLOAD_MB", 5)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
