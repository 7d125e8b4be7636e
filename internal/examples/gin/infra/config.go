package infra

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr   string
	DBPath string
}

// LoadConfig reads the configuration from the environment. Values in an
// optional .env file are loaded first, without overriding variables that are
// already set.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		Addr:   env("APP_ADDR", ":8080"),
		DBPath: env("APP_DB_PATH", "./database.db"),
	}, nil
}

func env(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
