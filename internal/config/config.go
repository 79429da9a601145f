package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"threadboard/internal/model"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ServerPort string

	JWTSecret string

	Comment CommentConfig
}

// CommentConfig carries the thread limits enforced at creation time.
type CommentConfig struct {
	MaxContentLength   int
	MaxReplyDepth      int
	MaxCommentsPerPost int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8004"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		ServerPort: serverPort,

		JWTSecret: os.Getenv("JWT_SECRET"),

		Comment: CommentConfig{
			MaxContentLength:   envInt("MAX_CONTENT_LENGTH", model.DefaultMaxContentLength),
			MaxReplyDepth:      envInt("MAX_REPLY_DEPTH", model.DefaultMaxReplyDepth),
			MaxCommentsPerPost: envInt("MAX_COMMENTS_PER_POST", model.DefaultMaxCommentsPerPost),
		},
	}, nil
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
