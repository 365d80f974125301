package main

import (
	"flag"
	"fmt"
	"log"

	"qrforge/internal/platform/config"
	"qrforge/internal/platform/database"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sqliteCfg := cfg.Storage.SQLite
	if *dbPath != "" {
		sqliteCfg.Path = *dbPath
	}

	db, err := database.Open(sqliteCfg)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", sqliteCfg.Path, err)
	}
	defer db.Close()

	if err := database.Migrate(db, *direction); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Migration completed successfully")
}
