package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Approval ApprovalConfig `mapstructure:"approval"`
	Queue    QueueConfig    `mapstructure:"queue"`
	Events   EventsConfig   `mapstructure:"events"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// RedisConfig holds shared key-value store configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// ApprovalConfig holds the large-grant review settings
type ApprovalConfig struct {
	Threshold int64 `mapstructure:"threshold"`
}

// QueueConfig holds the batch ban queue settings
type QueueConfig struct {
	Policy        string `mapstructure:"policy"` // blocking | failfast
	Capacity      int    `mapstructure:"capacity"`
	RatePerSecond int    `mapstructure:"ratePerSecond"`
	Workers       int    `mapstructure:"workers"`
	MaxBatchSize  int    `mapstructure:"maxBatchSize"`
}

// EventsConfig holds optional outward event bridges
type EventsConfig struct {
	KafkaBrokers []string `mapstructure:"kafkaBrokers"`
	KafkaTopic   string   `mapstructure:"kafkaTopic"`
	WebhookURL   string   `mapstructure:"webhookURL"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// ApprovalThreshold returns the configured threshold with its default
func (c *Config) ApprovalThreshold() int64 {
	if c.Approval.Threshold > 0 {
		return c.Approval.Threshold
	}
	return 5000
}

// MaxBatchSize returns the largest accepted batch-ban request
func (c *Config) MaxBatchSize() int {
	if c.Queue.MaxBatchSize > 0 {
		return c.Queue.MaxBatchSize
	}
	return 500
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("GM_ADMIN_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
