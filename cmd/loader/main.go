// Command loader performs the one-time import of the dialogue corpus CSV
// files into the configured database.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/user/movielines/internal/config"
	"github.com/user/movielines/internal/repository"
	"github.com/user/movielines/internal/service"
)

func main() {
	dataDir := flag.String("data", ".", "directory holding movies.csv, characters.csv, conversations.csv and lines.csv")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system environment")
	}
	cfg := config.Load()

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	loader := service.NewCorpusLoader(repository.NewDBStore(db))
	if err := loader.Import(*dataDir); err != nil {
		log.Fatalf("corpus import failed: %v", err)
	}
}
