package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// TokenVar is the environment variable the auth token is seeded from.
const TokenVar = "GH_TOKEN"

func Token() string {
	return os.Getenv(TokenVar)
}

// LoadDotenv loads variables from the given files into the process
// environment without overriding ones already set. Missing files are
// skipped; with no arguments ".env" is tried.
func LoadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
