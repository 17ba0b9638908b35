package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	NSQ       NSQConfig       `mapstructure:"nsq"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	WebSocket WebSocketConfig `mapstructure:"websocket"`
	Presence  PresenceConfig  `mapstructure:"presence"`
	Risk      RiskConfig      `mapstructure:"risk"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       int           `mapstructure:"rate_limit"` // requests per RateLimitPeriod per client, 0 disables
	RateLimitPeriod time.Duration `mapstructure:"rate_limit_period"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	PoolSize int           `mapstructure:"pool_size"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	Address       string   `mapstructure:"address"`
	LookupAddrs   []string `mapstructure:"lookup_addrs"`
	AlertTopic    string   `mapstructure:"alert_topic"`
	RecorderGroup string   `mapstructure:"recorder_channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	Expiration int    `mapstructure:"expiration"` // minutes
	Required   bool   `mapstructure:"required"`
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level     string `mapstructure:"level"`
	FilePath  string `mapstructure:"file_path"`
	AccessLog string `mapstructure:"access_log"`
}

// WebSocketConfig tunes the per-connection transport
type WebSocketConfig struct {
	SendBuffer     int           `mapstructure:"send_buffer"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	PongTimeout    time.Duration `mapstructure:"pong_timeout"`
	MaxMessageSize int64         `mapstructure:"max_message_size"`
}

// PresenceConfig tunes the ingestion dispatch loop
type PresenceConfig struct {
	QueueSize        int           `mapstructure:"queue_size"`
	SinkBuffer       int           `mapstructure:"sink_buffer"`
	SinkTimeout      time.Duration `mapstructure:"sink_timeout"`
	BreakerThreshold uint32        `mapstructure:"breaker_threshold"` // consecutive sink failures before a store is skipped
	BreakerTimeout   time.Duration `mapstructure:"breaker_timeout"`
}

// RiskConfig tunes the server-side zone provider
type RiskConfig struct {
	GeohashPrecision uint `mapstructure:"geohash_precision"`
	ZonesPerCell     int  `mapstructure:"zones_per_cell"`
}
