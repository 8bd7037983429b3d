package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	MemoryStorage = "memory"
	DiskStorage   = "disk"
	RedisStorage  = "redis"
)

// Config holds everything the service needs to start.
type Config struct {
	ListenAddress string   `yaml:"listen_address"`
	Shop          string   `yaml:"shop"`
	Storage       string   `yaml:"storage"` // memory, disk or redis
	DataDir       string   `yaml:"data_dir"`
	FrontendUrl   string   `yaml:"frontend_url"`
	CorsOrigins   []string `yaml:"cors_origins"`

	Redis   RedisConfig   `yaml:"redis"`
	Rabbit  RabbitConfig  `yaml:"rabbit"`
	Logging LoggingConfig `yaml:"logging"`
}

type RedisConfig struct {
	Url      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// RabbitConfig enables change events when Url is set.
type RabbitConfig struct {
	Url    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		ListenAddress: ":5000",
		Shop:          "gildedrose",
		Storage:       MemoryStorage,
		DataDir:       "data",
		FrontendUrl:   "http://localhost:5182/",
		CorsOrigins:   []string{"http://localhost:5182", "http://127.0.0.1:5182"},
		Rabbit: RabbitConfig{
			Prefix: "gildedrose",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the optional YAML file at path and then applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment:
//
//	LISTEN_ADDRESS, SHOP, STORAGE, DATA_DIR, FRONTEND_URL, CORS_ORIGINS
//	REDIS_URL, REDIS_PASSWORD, REDIS_DB
//	RABBIT_URL, RABBIT_PREFIX
//	LOG_LEVEL, LOG_DEVELOPMENT
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	str := func(curr *string, env string) {
		if v, ok := lookup(env); ok && v != "" {
			*curr = v
		}
	}
	str(&c.ListenAddress, "LISTEN_ADDRESS")
	str(&c.Shop, "SHOP")
	str(&c.Storage, "STORAGE")
	str(&c.DataDir, "DATA_DIR")
	str(&c.FrontendUrl, "FRONTEND_URL")
	str(&c.Redis.Url, "REDIS_URL")
	str(&c.Redis.Password, "REDIS_PASSWORD")
	str(&c.Rabbit.Url, "RABBIT_URL")
	str(&c.Rabbit.Prefix, "RABBIT_PREFIX")
	str(&c.Logging.Level, "LOG_LEVEL")

	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		c.CorsOrigins = origins
	}
	if v, ok := lookup("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Redis.DB = n
		}
	}
	if v, ok := lookup("LOG_DEVELOPMENT"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Development = b
		}
	}
	// a redis url without an explicit storage choice means redis storage
	if _, ok := lookup("STORAGE"); !ok && c.Redis.Url != "" && c.Storage == MemoryStorage {
		c.Storage = RedisStorage
	}
}

func (c *Config) Validate() error {
	switch c.Storage {
	case MemoryStorage:
	case DiskStorage:
		if c.DataDir == "" {
			return fmt.Errorf("disk storage requires a data dir")
		}
	case RedisStorage:
		if c.Redis.Url == "" {
			return fmt.Errorf("redis storage requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Shop == "" {
		return fmt.Errorf("shop name is required")
	}
	return nil
}

// AllowsOrigin reports whether the frontend at origin may call the API.
func (c *Config) AllowsOrigin(origin string) bool {
	for _, o := range c.CorsOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}
