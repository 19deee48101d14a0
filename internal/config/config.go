package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDSN       string
	CatalogFile string
	LogFile     string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "vitrine.db" // sqlite file in project root
	}
	catalogFile := os.Getenv("CATALOG_FILE")
	if catalogFile == "" {
		catalogFile = "./data/apple_catalog.json"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./vitrine.log" // default log sink in project root
	}

	cfg := Config{Port: port, DBDSN: dsn, CatalogFile: catalogFile, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s CATALOG_FILE=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.CatalogFile, cfg.LogFile)
	return cfg
}
