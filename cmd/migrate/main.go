package main

import (
	"unicatalog/internal/app/catalog"
	"unicatalog/internal/app/dsn"
	"unicatalog/internal/app/repository"
	"unicatalog/internal/app/snapshot"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	// Получение DSN строки подключения
	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	c, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, err := snapshot.New(dsnStr)
	if err != nil {
		log.Fatal(err)
	}

	log.Info("Connected to database successfully")

	if err = store.Migrate(); err != nil {
		log.Fatal(err)
	}

	rows := repository.New(c).ToDBRows()
	if err = store.Replace(rows); err != nil {
		log.Fatalf("Failed to save snapshot: %v", err)
	}

	log.Infof("Database snapshot completed: %d universities", len(rows))
}
