package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"unicatalog/internal/app/catalog"
	"unicatalog/internal/app/config"
	"unicatalog/internal/app/storage"

	log "github.com/sirupsen/logrus"
)

// Загружает фото вузов из локальной папки в MinIO под именами photo_filename
func main() {
	dir := flag.String("dir", "university_photos", "папка с фотографиями")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	if cfg.MinIO.Endpoint == "" {
		log.Fatal("MINIO_ENDPOINT is empty. Check your .env file")
	}

	c, err := catalog.LoadFile(cfg.Catalog.DataFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket, cfg.MinIO.UseSSL, cfg.MinIO.PresignTTL)
	if err != nil {
		log.Fatal(err)
	}

	uploaded, skipped := 0, 0
	for _, u := range c.All() {
		data, err := os.ReadFile(filepath.Join(*dir, u.PhotoFilename))
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnf("%s: фото %s не найдено, пропускаем", u.ID, u.PhotoFilename)
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("%s: %v", u.ID, err)
		}

		if err := client.UploadFile(ctx, data, u.PhotoFilename); err != nil {
			log.Fatalf("%s: %v", u.ID, err)
		}
		uploaded++
	}

	log.Infof("Photos uploaded: %d, skipped: %d", uploaded, skipped)
}
