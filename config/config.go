package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Store    StoreConfig    `mapstructure:"store"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Rewards  RewardsConfig  `mapstructure:"rewards"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory, postgres
}

// ProviderConfig points one wallet backend at its extension bridge.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`     // xverse, legacy
	Endpoint string `mapstructure:"endpoint"` // JSON-RPC bridge URL
}

type WalletConfig struct {
	Network               string           `mapstructure:"network"` // mainnet, testnet, signet
	AppName               string           `mapstructure:"app_name"`
	ConnectMessage        string           `mapstructure:"connect_message"`
	Providers             []ProviderConfig `mapstructure:"providers"` // priority order
	RequestTimeout        time.Duration    `mapstructure:"request_timeout"`
	AdvisoryBalanceCheck  bool             `mapstructure:"advisory_balance_check"`
	AccountPollInterval   time.Duration    `mapstructure:"account_poll_interval"`
	ConnectAttemptTimeout time.Duration    `mapstructure:"connect_attempt_timeout"`
}

type RewardsConfig struct {
	ContributionRetries int           `mapstructure:"contribution_retries"`
	ProcessedEventTTL   time.Duration `mapstructure:"processed_event_ttl"`
	FeedDefaultLimit    int           `mapstructure:"feed_default_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BB_ (BitBuddy).
// Nested keys use underscore: BB_DATABASE_HOST, BB_WALLET_NETWORK, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "bitbuddy")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("store.driver", StoreMemory)
	v.SetDefault("wallet.network", "mainnet")
	v.SetDefault("wallet.app_name", "BitBuddy")
	v.SetDefault("wallet.connect_message", "Connect your wallet to BitBuddy")
	v.SetDefault("wallet.providers", []map[string]string{
		{"name": "xverse", "endpoint": "http://127.0.0.1:18420/rpc"},
		{"name": "legacy", "endpoint": "http://127.0.0.1:18421/rpc"},
	})
	v.SetDefault("wallet.request_timeout", "2m")
	v.SetDefault("wallet.advisory_balance_check", true)
	v.SetDefault("wallet.account_poll_interval", "5s")
	v.SetDefault("wallet.connect_attempt_timeout", "3m")
	v.SetDefault("rewards.contribution_retries", 5)
	v.SetDefault("rewards.processed_event_ttl", "24h")
	v.SetDefault("rewards.feed_default_limit", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BB_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars and defaults can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if len(c.Wallet.Providers) == 0 {
		return fmt.Errorf("at least one wallet provider must be configured")
	}
	for i, p := range c.Wallet.Providers {
		if p.Name == "" || p.Endpoint == "" {
			return fmt.Errorf("wallet provider %d: name and endpoint are required", i)
		}
	}
	if c.Rewards.ContributionRetries < 1 {
		return fmt.Errorf("rewards.contribution_retries must be at least 1")
	}
	return nil
}
