package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken       string
	DBDSN          string
	RootAdminID    int64
	SchoolName     string
	Environment    string
	MigrationsPath string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		DBDSN:          os.Getenv("DB_DSN"),
		SchoolName:     os.Getenv("SCHOOL_NAME"),
		Environment:    os.Getenv("ENV"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.SchoolName == "" {
		cfg.SchoolName = "Моя школа"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Проверяем обязательные поля
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	// ROOT_ADMIN обязателен: без него некому создавать учителей
	rootAdmin := os.Getenv("ROOT_ADMIN")
	if rootAdmin == "" {
		return nil, fmt.Errorf("ROOT_ADMIN is required but not set")
	}

	id, err := strconv.ParseInt(rootAdmin, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ROOT_ADMIN must be a valid integer: %w", err)
	}
	cfg.RootAdminID = id

	return cfg, nil
}
