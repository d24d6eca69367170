package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	OTP      OTPConfig
	SMS      SMSConfig
	Catalog  CatalogConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type RedisConfig struct {
	Addrs      []string
	Password   string
	UseCluster bool
}

type JWTConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// OTPConfig controls the two expiry windows of phone verification.
type OTPConfig struct {
	Length    int
	TTL       time.Duration
	VerifyTTL time.Duration
}

type SMSConfig struct {
	APIKey      string
	BaseURL     string
	Template    string
	HTTPTimeout time.Duration
}

type CatalogConfig struct {
	APIKey      string
	BaseURL     string
	HTTPTimeout time.Duration
	ActorsCount int
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

// Load reads config/flicks.yaml when present and lets environment variables
// override every key (DB_HOST overrides db.host). A missing file is fine, an
// unreadable one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("flicks")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8010")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "flicks")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("db.query_timeout", 10*time.Second)

	v.SetDefault("redis.addrs", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.use_cluster", false)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "flicks-backend")
	v.SetDefault("jwt.access_ttl", time.Hour)
	v.SetDefault("jwt.refresh_ttl", 24*time.Hour)

	v.SetDefault("otp.length", 5)
	v.SetDefault("otp.ttl", time.Minute)
	v.SetDefault("otp.verify_ttl", 30*time.Minute)

	v.SetDefault("sms.api_key", "")
	v.SetDefault("sms.base_url", "https://api.kavenegar.com/v1")
	v.SetDefault("sms.template", "verify")
	v.SetDefault("sms.http_timeout", 10*time.Second)

	v.SetDefault("imdb.api_key", "")
	v.SetDefault("imdb.base_url", "https://imdb-api.com")
	v.SetDefault("imdb.http_timeout", 30*time.Second)
	v.SetDefault("imdb.actors_count", 10)

	v.SetDefault("aws.endpoint", "localhost:9000")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("aws.bucket", "flicks")
	v.SetDefault("aws.default_region", "us-east-1")
	v.SetDefault("aws.use_ssl", false)
	v.SetDefault("aws.url", "http://localhost:9000/flicks")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetString("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetString("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			DBName:          v.GetString("db.name"),
			SSLMode:         v.GetString("db.sslmode"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
			QueryTimeout:    v.GetDuration("db.query_timeout"),
		},
		Redis: RedisConfig{
			Addrs:      splitList(v.GetString("redis.addrs")),
			Password:   v.GetString("redis.password"),
			UseCluster: v.GetBool("redis.use_cluster"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			Issuer:     v.GetString("jwt.issuer"),
			AccessTTL:  v.GetDuration("jwt.access_ttl"),
			RefreshTTL: v.GetDuration("jwt.refresh_ttl"),
		},
		OTP: OTPConfig{
			Length:    v.GetInt("otp.length"),
			TTL:       v.GetDuration("otp.ttl"),
			VerifyTTL: v.GetDuration("otp.verify_ttl"),
		},
		SMS: SMSConfig{
			APIKey:      v.GetString("sms.api_key"),
			BaseURL:     v.GetString("sms.base_url"),
			Template:    v.GetString("sms.template"),
			HTTPTimeout: v.GetDuration("sms.http_timeout"),
		},
		Catalog: CatalogConfig{
			APIKey:      v.GetString("imdb.api_key"),
			BaseURL:     v.GetString("imdb.base_url"),
			HTTPTimeout: v.GetDuration("imdb.http_timeout"),
			ActorsCount: v.GetInt("imdb.actors_count"),
		},
		MinIO: MinIOConfig{
			Endpoint:        v.GetString("aws.endpoint"),
			AccessKeyID:     v.GetString("aws.access_key_id"),
			SecretAccessKey: v.GetString("aws.secret_access_key"),
			BucketName:      v.GetString("aws.bucket"),
			Region:          v.GetString("aws.default_region"),
			UseSSL:          v.GetBool("aws.use_ssl"),
			PublicURL:       v.GetString("aws.url"),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return c.Database.DSN()
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if len(c.Redis.Addrs) == 0 {
		return fmt.Errorf("REDIS_ADDRS is required")
	}
	if c.SMS.APIKey == "" {
		return fmt.Errorf("SMS_API_KEY is required for OTP delivery")
	}
	if c.Catalog.APIKey == "" {
		return fmt.Errorf("IMDB_API_KEY is required")
	}
	if c.MinIO.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
	}
	if c.MinIO.SecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
