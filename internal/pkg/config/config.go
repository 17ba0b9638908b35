package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/spf13/viper"
)

// defaults holds every known key so that environment overrides are picked up by Unmarshal
var defaults = map[string]interface{}{
	"app.name":    "safetrail",
	"app.env":     "local",
	"app.debug":   false,
	"app.version": "development",

	"server.host":              "",
	"server.port":              9990,
	"server.read_timeout":      15 * time.Second,
	"server.write_timeout":     15 * time.Second,
	"server.shutdown_timeout":  30 * time.Second,
	"server.rate_limit":        0,
	"server.rate_limit_period": time.Minute,

	"database.enabled":    false,
	"database.host":       "localhost",
	"database.port":       5432,
	"database.username":   "postgres",
	"database.password":   "",
	"database.database":   "safetrail",
	"database.ssl_mode":   "disable",
	"database.max_conns":  10,
	"database.idle_conns": 2,

	"redis.enabled":   false,
	"redis.host":      "localhost",
	"redis.port":      6379,
	"redis.password":  "",
	"redis.db":        0,
	"redis.pool_size": 10,
	"redis.ttl":       10 * time.Minute,

	"nsq.enabled":          false,
	"nsq.address":          "localhost:4150",
	"nsq.lookup_addrs":     []string{},
	"nsq.alert_topic":      "tourist.panic",
	"nsq.recorder_channel": "alert-recorder",

	"jwt.secret":     "",
	"jwt.issuer":     "safetrail",
	"jwt.expiration": 60,
	"jwt.required":   false,

	"logger.level":      "info",
	"logger.file_path":  "",
	"logger.access_log": "",

	"websocket.send_buffer":      64,
	"websocket.write_timeout":    10 * time.Second,
	"websocket.pong_timeout":     60 * time.Second,
	"websocket.max_message_size": 8192,

	"presence.queue_size":        256,
	"presence.sink_buffer":       1024,
	"presence.sink_timeout":      2 * time.Second,
	"presence.breaker_threshold": 5,
	"presence.breaker_timeout":   30 * time.Second,

	"risk.geohash_precision": 5,
	"risk.zones_per_cell":    8,
}

// InitConfig loads configuration from an optional YAML file and the environment.
// Environment variables use the upper-cased key with dots replaced, e.g. SERVER_PORT.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func validate(cfg *models.Config) error {
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", cfg.Server.Port)
	}
	if cfg.JWT.Required && cfg.JWT.Secret == "" {
		return errors.New("jwt.secret is required when jwt.required is set")
	}
	if cfg.Risk.GeohashPrecision == 0 || cfg.Risk.GeohashPrecision > 12 {
		return fmt.Errorf("risk.geohash_precision must be within 1..12, got %d", cfg.Risk.GeohashPrecision)
	}
	if cfg.Presence.QueueSize <= 0 || cfg.Presence.SinkBuffer <= 0 {
		return errors.New("presence queue and sink sizes must be positive")
	}
	return nil
}

// GetEnv returns the environment variable or a default value
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
