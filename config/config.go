package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads .env into the process environment. A missing file is
// fine in deployed environments where variables come from the host.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
