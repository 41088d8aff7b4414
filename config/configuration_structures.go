package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
}

type AdminConfig struct {
	AdminToken string `yaml:"admin_token"`
}

// ShareConfig : публичный адрес, который встраивается в share-ссылки и QR-коды
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// TTL : времена жизни в системе
// MediaDays — срок жизни медиа-записи по умолчанию, если клиент его не указал.
// PresignSeconds — срок жизни pre-signed GET URL (всегда обрезается по expires_at записи).
// CacheSeconds — срок жизни записи в кэше Redis.
type TTL struct {
	MediaDays      int `yaml:"media_days"`
	PresignSeconds int `yaml:"presign_seconds"`
	CacheSeconds   int `yaml:"cache_seconds"`
}
