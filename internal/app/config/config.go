package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Catalog     CatalogConfig
	CORS        CORSConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
}

type CatalogConfig struct {
	DataFile string // пусто - встроенный каталог
}

type CORSConfig struct {
	AllowOrigins []string
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
	PhotoURLTTL time.Duration
}

type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PresignTTL time.Duration
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"
)

const (
	defaultBucket     = "university-photos"
	defaultPresignTTL = time.Hour
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("CORS.AllowOrigins", []string{"*"})

	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warnf("config file %s not found, using defaults", configName)
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if err = cfg.loadEnv(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

// loadEnv дополняет конфиг секретами из окружения.
// Redis и MinIO необязательны: без хоста сервис работает без них.
func (cfg *Config) loadEnv() error {
	var err error

	cfg.Redis.Host = os.Getenv(envRedisHost)
	if cfg.Redis.Host != "" {
		cfg.Redis.Port = 6379
		if p := os.Getenv(envRedisPort); p != "" {
			cfg.Redis.Port, err = strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("redis port must be int value: %w", err)
			}
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	if v := os.Getenv(envMinIOEndpoint); v != "" {
		cfg.MinIO.Endpoint = v
	}
	if v := os.Getenv(envMinIOAccessKey); v != "" {
		cfg.MinIO.AccessKey = v
	}
	if v := os.Getenv(envMinIOSecretKey); v != "" {
		cfg.MinIO.SecretKey = v
	}
	if v := os.Getenv(envMinIOBucket); v != "" {
		cfg.MinIO.Bucket = v
	}
	if v := os.Getenv(envMinIOUseSSL); v != "" {
		cfg.MinIO.UseSSL, err = strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("minio use ssl must be bool value: %w", err)
		}
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = defaultBucket
	}
	if cfg.MinIO.PresignTTL <= 0 {
		cfg.MinIO.PresignTTL = defaultPresignTTL
	}

	// кэш ссылки должен истекать раньше самой ссылки
	if cfg.Redis.PhotoURLTTL <= 0 || cfg.Redis.PhotoURLTTL >= cfg.MinIO.PresignTTL {
		cfg.Redis.PhotoURLTTL = cfg.MinIO.PresignTTL * 5 / 6
	}

	return nil
}
