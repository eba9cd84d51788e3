package config

import (
	"fmt"
	"strings"

	"mindmate_backend/internal/assessment"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Log        LogConfig        `mapstructure:"log"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Session    SessionConfig    `mapstructure:"session"`
	Assessment AssessmentConfig `mapstructure:"assessment"`

	// 配置文件所在目录，用于热加载（非配置文件字段）
	Dir string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ServiceName       string `mapstructure:"service_name"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

type AssessmentConfig struct {
	Thresholds assessment.Thresholds `mapstructure:"thresholds"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "mindmate")

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("session.ttl_minutes", 30)

	d := assessment.DefaultThresholds()
	v.SetDefault("assessment.thresholds.maintenance_max", d.MaintenanceMax)
	v.SetDefault("assessment.thresholds.stress_management_max", d.StressManagementMax)
	v.SetDefault("assessment.thresholds.resilient_insight_max", d.ResilientInsightMax)
	v.SetDefault("assessment.thresholds.foundation_insight_max", d.FoundationInsightMax)
}

// LoadConfig 读取 path 目录下的 config.yaml；文件不存在时使用默认值
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MINDMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.port", "MINDMATE_PORT")
	v.BindEnv("server.mode", "MINDMATE_SERVER_MODE")

	// Log
	v.BindEnv("log.file", "MINDMATE_LOG_FILE")

	// Tracing
	v.BindEnv("tracing.enabled", "MINDMATE_TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "MINDMATE_TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Dir = path

	if err := cfg.Assessment.Thresholds.Validate(); err != nil {
		return nil, err
	}

	if cfg.RateLimit.MaxRequests <= 0 || cfg.RateLimit.WindowMinutes <= 0 {
		return nil, fmt.Errorf("rate_limit.max_requests and rate_limit.window_minutes must be positive")
	}

	if cfg.Session.TTLMinutes <= 0 {
		return nil, fmt.Errorf("session.ttl_minutes must be positive, got %d", cfg.Session.TTLMinutes)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.CollectorEndpoint == "" {
		return nil, fmt.Errorf("tracing.collector_endpoint is required when tracing is enabled")
	}

	return &cfg, nil
}
