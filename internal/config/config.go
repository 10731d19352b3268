package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverFile  = "file"
	DriverMySQL = "mysql"
	DriverRedis = "redis"
)

// Config holds every runtime setting. Values come from an optional YAML file
// first, then environment variables (including .env) override them.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Store StoreConfig `yaml:"store"`
}

type AppConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type StoreConfig struct {
	Driver string      `yaml:"driver"` // file, mysql, redis
	File   string      `yaml:"file"`
	DSN    string      `yaml:"dsn"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// LoadDotEnv loads .env into the process environment if the file exists.
// It reports whether a file was loaded.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304 -- path is provided by the operator
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.App.Port, "APP_PORT")
	setString(&c.App.Env, "APP_ENV")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.File, "BLOG_POSTS_FILE")
	setString(&c.Store.DSN, "DB_DSN")
	setString(&c.Store.Redis.Addr, "REDIS_ADDR")
	setString(&c.Store.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Store.Redis.Key, "REDIS_KEY")

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB must be an integer, got %q", v)
		}
		c.Store.Redis.DB = db
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == "" {
		c.App.Port = "5001"
	}
	if c.App.Env == "" {
		c.App.Env = EnvDevelopment
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DriverFile
	}
	if c.Store.File == "" {
		c.Store.File = "blog_posts.json"
	}
	if c.Store.Redis.Key == "" {
		c.Store.Redis.Key = "blog:posts"
	}
}

// Validate checks the driver and its required settings.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("app.port must be numeric, got %q", c.App.Port)
	}
	if c.App.Env != EnvDevelopment && c.App.Env != EnvProduction {
		return fmt.Errorf("app.env must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.App.Env)
	}

	switch c.Store.Driver {
	case DriverFile:
		if c.Store.File == "" {
			return errors.New("store.file cannot be empty")
		}
	case DriverMySQL:
		if c.Store.DSN == "" {
			return errors.New("DB_DSN is not set")
		}
	case DriverRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is not set")
		}
		if c.Store.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative, got %d", c.Store.Redis.DB)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.App.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
