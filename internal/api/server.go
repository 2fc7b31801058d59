package api

import (
	"context"
	"time"

	"unicatalog/internal/app/catalog"
	"unicatalog/internal/app/config"
	"unicatalog/internal/app/handler"
	"unicatalog/internal/app/middleware"
	"unicatalog/internal/app/redis"
	"unicatalog/internal/app/repository"
	"unicatalog/internal/app/storage"
	"unicatalog/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const startupTimeout = 15 * time.Second

func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	c, err := catalog.LoadFile(cfg.Catalog.DataFile)
	if err != nil {
		logrus.Fatalf("ошибка загрузки каталога: %v", err)
	}
	repo := repository.New(c)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	photos := newPhotos(ctx, cfg)

	r := NewRouter(cfg)
	app := pkg.NewApp(cfg, r, handler.NewHandler(repo, photos), handler.NewAPIHandler(repo, photos))
	app.RunApp()
}

// NewRouter создает gin с общими middleware
func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(cfg.CORS.AllowOrigins) == 0 || cfg.CORS.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	return r
}

// newPhotos подключает MinIO и Redis, если они настроены.
// Без них все фото отдаются заглушкой.
func newPhotos(ctx context.Context, cfg *config.Config) *storage.Photos {
	if cfg.MinIO.Endpoint == "" {
		logrus.Warn("MinIO не настроен, фото вузов отдаются заглушкой")
		return storage.NewPhotos(nil, nil, 0)
	}

	minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket, cfg.MinIO.UseSSL, cfg.MinIO.PresignTTL)
	if err != nil {
		logrus.Errorf("ошибка подключения к MinIO: %v", err)
		return storage.NewPhotos(nil, nil, 0)
	}

	if cfg.Redis.Host == "" {
		return storage.NewPhotos(minioClient, nil, 0)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Errorf("ошибка подключения к Redis, кэш ссылок отключен: %v", err)
		return storage.NewPhotos(minioClient, nil, 0)
	}

	return storage.NewPhotos(minioClient, redisClient, cfg.Redis.PhotoURLTTL)
}
