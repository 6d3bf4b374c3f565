package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Oracle     OracleConfig     `mapstructure:"oracle"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Log        LogConfig        `mapstructure:"log"`
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
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// OracleConfig configures the live price feed.
type OracleConfig struct {
	StreamURL        string        `mapstructure:"stream_url"`
	Pairs            []string      `mapstructure:"pairs"`
	ReconnectBackoff time.Duration `mapstructure:"reconnect_backoff"`
	StaleAfter       time.Duration `mapstructure:"stale_after"`
}

// SettlementConfig bounds the settlement engine's retry behaviour.
type SettlementConfig struct {
	OracleWait      time.Duration `mapstructure:"oracle_wait"`       // total window to wait for a fresh price
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`     // initial re-schedule delay after a ledger failure
	MaxRetryBackoff time.Duration `mapstructure:"max_retry_backoff"` // backoff ceiling
	AlertAfter      int           `mapstructure:"alert_after"`       // attempts before escalating to operator log
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TTP_ (Timed Trading Platform).
// Nested keys use underscore: TTP_DATABASE_HOST, TTP_ORACLE_STREAM_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "timed_trading")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", 24*time.Hour)
	v.SetDefault("jwt.issuer", "timed-trading-platform")
	v.SetDefault("oracle.stream_url", "wss://stream.binance.com:9443/stream")
	v.SetDefault("oracle.pairs", []string{
		"btcusdt", "ethusdt", "solusdt", "bnbusdt", "xrpusdt",
		"dogeusdt", "adausdt", "avaxusdt", "dotusdt", "linkusdt",
	})
	v.SetDefault("oracle.reconnect_backoff", "3s")
	v.SetDefault("oracle.stale_after", "15s")
	v.SetDefault("settlement.oracle_wait", "10s")
	v.SetDefault("settlement.retry_backoff", "2s")
	v.SetDefault("settlement.max_retry_backoff", "1m")
	v.SetDefault("settlement.alert_after", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TTP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
