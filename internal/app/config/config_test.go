package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadEnvWithoutServices(t *testing.T) {
	t.Setenv(envRedisHost, "")
	t.Setenv(envMinIOEndpoint, "")
	t.Setenv(envMinIOBucket, "")
	t.Setenv(envMinIOUseSSL, "")

	cfg := &Config{}
	if err := cfg.loadEnv(); err != nil {
		t.Fatalf("loadEnv() error: %v", err)
	}

	if cfg.Redis.Host != "" || cfg.MinIO.Endpoint != "" {
		t.Errorf("expected services disabled, got %+v %+v", cfg.Redis, cfg.MinIO)
	}
	if cfg.MinIO.Bucket != defaultBucket || cfg.MinIO.PresignTTL != defaultPresignTTL {
		t.Errorf("unexpected minio defaults: %+v", cfg.MinIO)
	}
	if cfg.Redis.PhotoURLTTL != 50*time.Minute {
		t.Errorf("photo url ttl = %v", cfg.Redis.PhotoURLTTL)
	}
}

func TestLoadEnvServices(t *testing.T) {
	t.Setenv(envRedisHost, "redis.local")
	t.Setenv(envRedisPort, "6380")
	t.Setenv(envRedisPass, "secret")
	t.Setenv(envMinIOEndpoint, "minio.local:9000")
	t.Setenv(envMinIOAccessKey, "access")
	t.Setenv(envMinIOSecretKey, "key")
	t.Setenv(envMinIOBucket, "photos")
	t.Setenv(envMinIOUseSSL, "true")

	cfg := &Config{}
	cfg.MinIO.PresignTTL = 2 * time.Hour
	cfg.Redis.PhotoURLTTL = 30 * time.Minute
	if err := cfg.loadEnv(); err != nil {
		t.Fatalf("loadEnv() error: %v", err)
	}

	if cfg.Redis.Host != "redis.local" || cfg.Redis.Port != 6380 || cfg.Redis.Password != "secret" {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.MinIO.Endpoint != "minio.local:9000" || cfg.MinIO.Bucket != "photos" || !cfg.MinIO.UseSSL {
		t.Errorf("unexpected minio config: %+v", cfg.MinIO)
	}
	if cfg.Redis.PhotoURLTTL != 30*time.Minute {
		t.Errorf("configured ttl overwritten: %v", cfg.Redis.PhotoURLTTL)
	}
}

func TestLoadEnvRedisDefaultPort(t *testing.T) {
	t.Setenv(envRedisHost, "redis.local")
	t.Setenv(envRedisPort, "")
	t.Setenv(envMinIOUseSSL, "")

	cfg := &Config{}
	if err := cfg.loadEnv(); err != nil {
		t.Fatalf("loadEnv() error: %v", err)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("port = %d", cfg.Redis.Port)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv(envRedisHost, "redis.local")
	t.Setenv(envRedisPort, "six")
	t.Setenv(envMinIOUseSSL, "")
	if err := (&Config{}).loadEnv(); err == nil {
		t.Error("expected error for non-numeric redis port")
	}

	t.Setenv(envRedisPort, "6379")
	t.Setenv(envMinIOUseSSL, "maybe")
	if err := (&Config{}).loadEnv(); err == nil {
		t.Error("expected error for non-bool MINIO_USE_SSL")
	}
}

func TestNewConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := `ServiceHost = "127.0.0.1"
ServicePort = 9090

[Catalog]
DataFile = "custom.toml"

[MinIO]
PresignTTL = "30m"
`
	if err := os.WriteFile(filepath.Join(dir, "test_config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("CONFIG_NAME", "test_config")
	t.Setenv(envRedisHost, "")
	t.Setenv(envMinIOEndpoint, "")
	t.Setenv(envMinIOUseSSL, "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error: %v", err)
	}

	if cfg.ServiceHost != "127.0.0.1" || cfg.ServicePort != 9090 {
		t.Errorf("unexpected service address: %s:%d", cfg.ServiceHost, cfg.ServicePort)
	}
	if cfg.Catalog.DataFile != "custom.toml" {
		t.Errorf("data file = %s", cfg.Catalog.DataFile)
	}
	if cfg.MinIO.PresignTTL != 30*time.Minute || cfg.Redis.PhotoURLTTL != 25*time.Minute {
		t.Errorf("ttl: presign %v, cache %v", cfg.MinIO.PresignTTL, cfg.Redis.PhotoURLTTL)
	}
}
