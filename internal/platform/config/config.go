package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AdminName     string
	AdminEmail    string
	AdminPassword string

	NotifyQueueName  string
	NotifyWebhookURL string

	ChatAPIKey         string
	ChatModel          string
	ChatLockKeyPrefix  string
	ChatLockTTLSeconds int
	ChatTabAllRoles    bool
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		JWTKey:             []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:             time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "user"),
		DBPassword:         getEnv("DB_PASSWORD", "password"),
		DBName:             getEnv("DB_NAME", "smartpg_db"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		AdminName:          getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:         getEnv("ADMIN_EMAIL", "admin@pg.com"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		NotifyQueueName:    getEnv("NOTIFY_QUEUE_NAME", "notification_events_queue"),
		NotifyWebhookURL:   getEnv("NOTIFY_WEBHOOK_URL", ""),
		ChatAPIKey:         getEnv("CHAT_API_KEY", ""),
		ChatModel:          getEnv("CHAT_MODEL", "gpt-4o-mini"),
		ChatLockKeyPrefix:  getEnv("CHAT_LOCK_KEY_PREFIX", "chat_reply_lock:"),
		ChatLockTTLSeconds: getEnvAsInt("CHAT_LOCK_TTL_SECONDS", 60),
		ChatTabAllRoles:    getEnvAsBool("CHAT_TAB_ALL_ROLES", false),
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}
