package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/docport/internal/flagx"
)

// loadEnvFile loads variables from an env file into the process environment
// before env.Parse runs. The path comes from the -c/-config flags; without
// them a ".env" in the working directory is used when present. A missing
// file is not an error.
func loadEnvFile() {
	path := flagx.EnvFileFlags()

	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return
		}
		path = ".env"
	}

	_ = godotenv.Load(path)
}
