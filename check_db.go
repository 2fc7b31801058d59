package main

import (
	"fmt"

	"unicatalog/internal/app/dsn"
	"unicatalog/internal/app/snapshot"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	store, err := snapshot.New(dsnStr)
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	rows, err := store.List()
	if err != nil {
		logrus.Fatal("Failed to get universities:", err)
	}

	fmt.Println("Universities in database:")
	for _, row := range rows {
		fmt.Printf("%2d. %s: %s (%s, %s, %.1f)\n", row.Position, row.ID, row.Name, row.City, row.Type, row.Rating)
	}
}
