package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	CodePrefix  string
	SeedOnInit  bool
	ExportSheet string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
		return def
	}
	seed, err := strconv.ParseBool(get("SEED_ON_INIT", "false"))
	if err != nil {
		log.Printf("[cfg] SEED_ON_INIT=%q is not a bool, using false", os.Getenv("SEED_ON_INIT"))
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "alqualis.db"),
		CodePrefix:  get("CODE_PREFIX", "CDANF"),
		SeedOnInit:  seed,
		ExportSheet: get("EXPORT_SHEET", "Plantações"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
