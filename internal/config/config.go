package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App  *App
		DB   *DB
		HTTP *HTTP
	}

	App struct {
		Name string
		Env  string
	}

	DB struct {
		Path string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "ride-planner"),
		Env:  os.Getenv("APP_ENV"),
	}

	db := &DB{
		Path: getEnv("DB_PATH", "./rideplanner.sqlite3"),
	}

	http := &HTTP{
		Env:            os.Getenv("APP_ENV"),
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		URL:            os.Getenv("HTTP_URL"),
	}

	return &Container{
		App:  app,
		DB:   db,
		HTTP: http,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
