package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnv reads .env from the working directory, falling back to
// ~/.forge.env. Variables already set in the process win.
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		home, err := os.UserHomeDir()
		if err == nil {
			godotenv.Load(filepath.Join(home, ".forge.env"))
		}
	}
}
