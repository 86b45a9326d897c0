package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every runtime parameter of the application.
type Config struct {
	HTTP     HTTPConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
}

type HTTPConfig struct {
	Port int
}

// StorageConfig selects the snapshot backend.
// Backend is one of: memory | sqlite | postgres | redis.
type StorageConfig struct {
	Backend string
	Path    string // sqlite file path
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Host string
	Port int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
	Enabled  bool
	UseTLS   bool
}

// Load reads a two-level YAML file without external packages; sections are
// `http:`, `storage:`, `database:`, `redis:`, `rabbitmq:` with flat k:v pairs.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the configuration file: %w", err)
	}
	defer file.Close()

	cfg := defaults()
	scanner := bufio.NewScanner(file)

	var section string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			section = strings.TrimSuffix(line, ":")
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch section {
		case "http":
			if key == "port" {
				cfg.HTTP.Port = atoi(value, cfg.HTTP.Port)
			}
		case "storage":
			switch key {
			case "backend":
				cfg.Storage.Backend = value
			case "path":
				cfg.Storage.Path = value
			}
		case "database":
			switch key {
			case "host":
				cfg.Database.Host = value
			case "port":
				cfg.Database.Port = atoi(value, 5432)
			case "user":
				cfg.Database.User = value
			case "password":
				cfg.Database.Password = value
			case "database":
				cfg.Database.Database = value
			case "sslmode":
				if value != "" {
					cfg.Database.SSLMode = value
				}
			}
		case "redis":
			switch key {
			case "host":
				cfg.Redis.Host = value
			case "port":
				cfg.Redis.Port = atoi(value, 6379)
			}
		case "rabbitmq":
			switch key {
			case "host":
				cfg.RabbitMQ.Host = value
			case "port":
				cfg.RabbitMQ.Port = atoi(value, 5672)
			case "user":
				cfg.RabbitMQ.User = value
			case "password":
				cfg.RabbitMQ.Password = value
			case "vhost":
				if value != "" {
					cfg.RabbitMQ.VHost = value
				}
			case "enabled":
				cfg.RabbitMQ.Enabled = value == "true"
			case "use_tls":
				cfg.RabbitMQ.UseTLS = value == "true"
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		HTTP:     HTTPConfig{Port: 3000},
		Storage:  StorageConfig{Backend: "memory", Path: "smartfood.db"},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable"},
		Redis:    RedisConfig{Port: 6379},
		RabbitMQ: RabbitMQConfig{Port: 5672, VHost: "/"},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "memory", "sqlite":
	case "postgres":
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Database == "" {
			return fmt.Errorf("database config incomplete for postgres backend")
		}
	case "redis":
		if c.Redis.Host == "" {
			return fmt.Errorf("redis config incomplete for redis backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.Host == "" {
		return fmt.Errorf("rabbitmq enabled but host is empty")
	}
	return nil
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
