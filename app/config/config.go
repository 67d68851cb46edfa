package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`

	DB    *sql.DB       `yaml:"-"`
	Cache *redis.Client `yaml:"-"`
}

type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	Timezone string `yaml:"timezone"`
}

type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	SSLMode      string `yaml:"sslmode"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	AccessExpiry  time.Duration `yaml:"access_expiry"`
	RefreshExpiry time.Duration `yaml:"refresh_expiry"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var current *Config

// Load reads the yaml config file and applies environment overrides.
// A missing file is not an error; the defaults plus environment are
// enough to boot a development instance.
func Load(path string) (*Config, error) {
	cfg := &Config{
		App:    AppConfig{Name: "academy-console", Env: "development", Timezone: "Asia/Seoul"},
		Server: ServerConfig{Port: 8080, ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second},
		Database: DatabaseConfig{
			Host: "localhost", Port: 5432, User: "postgres", Name: "academy",
			SSLMode: "disable", MaxOpenConns: 25, MaxIdleConns: 5,
		},
		Redis:   RedisConfig{Host: "localhost", Port: 6379},
		Auth:    AuthConfig{AccessExpiry: 30 * time.Minute, RefreshExpiry: 14 * 24 * time.Hour},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		// A present-but-unreadable file is a deploy mistake; booting
		// on defaults would mask it.
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "academy-console-dev-secret" // development only
	}

	current = cfg
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = p
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
}

// ConnString builds the lib/pq keyword/value connection string.
func (d DatabaseConfig) ConnString() string {
	s := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Name, d.SSLMode)
	if d.Password != "" {
		s += " password=" + d.Password
	}
	return s
}

// InitDB opens the Postgres pool and verifies connectivity.
func (c *Config) InitDB() error {
	db, err := sql.Open("postgres", c.Database.ConnString())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(c.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Database.MaxIdleConns)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	c.DB = db
	return nil
}

// InitRedis connects the cache client used for scoreboard rankings
// and the refresh-token store.
func (c *Config) InitRedis() {
	c.Cache = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port),
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	})
}

func GetDB() *sql.DB {
	return current.DB
}

func GetCache() *redis.Client {
	return current.Cache
}

func Get() *Config {
	return current
}
