package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "configs/app.yaml"

type Settings struct {
	Server   ServerSettings   `yaml:"server"`
	Mongo    MongoSettings    `yaml:"mongo"`
	Redis    RedisSettings    `yaml:"redis"`
	RabbitMQ RabbitMQSettings `yaml:"rabbitmq"`
	Uploads  UploadSettings   `yaml:"uploads"`
	Auth     AuthSettings     `yaml:"auth"`
}

type ServerSettings struct {
	Port                string   `yaml:"port"`
	ReadTimeoutSeconds  int      `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `yaml:"write_timeout_seconds"`
	AllowedOrigins      []string `yaml:"allowed_origins"`
}

type MongoSettings struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisSettings struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	LocalCacheSize  int64  `yaml:"local_cache_size"`
}

type RabbitMQSettings struct {
	URL   string `yaml:"url"`
	Queue string `yaml:"queue"`
}

type UploadSettings struct {
	Dir           string `yaml:"dir"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type AuthSettings struct {
	JWTKey          string `yaml:"jwt_key"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

func defaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Port:                "8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
			AllowedOrigins:      []string{"*"},
		},
		Mongo: MongoSettings{
			Database: "dream_nest",
		},
		Redis: RedisSettings{
			CacheTTLMinutes: 10,
			LocalCacheSize:  1000,
		},
		RabbitMQ: RabbitMQSettings{
			Queue: "dream_nest_events",
		},
		Uploads: UploadSettings{
			Dir:           "public/",
			PublicBaseURL: "http://localhost:8080/public",
		},
		Auth: AuthSettings{
			TokenTTLMinutes: 15,
		},
	}
}

// Load builds the settings from defaults, the optional YAML file at path and
// finally the environment (a .env file is loaded first when present).
func Load(path string) (*Settings, error) {
	cfg := defaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			log.Printf("Config file %s not found, using defaults and environment", path)
		default:
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment or config file")
	}
	return cfg, nil
}

func (s *Settings) applyEnv() error {
	setString(&s.Server.Port, "PORT")
	setString(&s.Mongo.URI, "MONGOURI")
	setString(&s.Mongo.Database, "DB")
	setString(&s.Redis.Addr, "REDIS_ADD")
	setString(&s.Redis.Password, "REDIS_PASS")
	setString(&s.RabbitMQ.URL, "RABBITMQ_URL")
	setString(&s.RabbitMQ.Queue, "RABBITMQ_QUEUE")
	setString(&s.Uploads.Dir, "UPLOAD_DIR")
	setString(&s.Uploads.PublicBaseURL, "PUBLIC_BASE_URL")
	setString(&s.Auth.JWTKey, "JWT_KEY")

	if err := setInt(&s.Redis.CacheTTLMinutes, "CACHE_TTL_MINUTES"); err != nil {
		return err
	}
	return setInt(&s.Auth.TokenTTLMinutes, "TOKEN_TTL_MINUTES")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
