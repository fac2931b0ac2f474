// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable the api and migrate binaries need.
type Config struct {
	GRPCAddr string
	OpsAddr  string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	LockoutThreshold int
	LockoutDuration  time.Duration

	MFAChallengeTTL time.Duration
	MFAMaxAttempts  int

	LoginRatePerMinute int

	Version string
	Commit  string
}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("GRPC_ADDR", ":9090")
	v.SetDefault("OPS_ADDR", ":8081")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "authgrid")
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "720h")
	v.SetDefault("LOCKOUT_THRESHOLD", 5)
	v.SetDefault("LOCKOUT_DURATION", "15m")
	v.SetDefault("MFA_CHALLENGE_TTL", "300s")
	v.SetDefault("MFA_MAX_ATTEMPTS", 3)
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("VERSION", "dev")
	v.SetDefault("COMMIT", "none")

	cfg := &Config{
		GRPCAddr:           v.GetString("GRPC_ADDR"),
		OpsAddr:            v.GetString("OPS_ADDR"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		AccessTokenTTL:     v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:    v.GetDuration("REFRESH_TOKEN_TTL"),
		LockoutThreshold:   v.GetInt("LOCKOUT_THRESHOLD"),
		LockoutDuration:    v.GetDuration("LOCKOUT_DURATION"),
		MFAChallengeTTL:    v.GetDuration("MFA_CHALLENGE_TTL"),
		MFAMaxAttempts:     v.GetInt("MFA_MAX_ATTEMPTS"),
		LoginRatePerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
		Version:            v.GetString("VERSION"),
		Commit:             v.GetString("COMMIT"),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.LockoutThreshold <= 0 {
		return fmt.Errorf("LOCKOUT_THRESHOLD must be positive")
	}
	if c.MFAMaxAttempts <= 0 {
		return fmt.Errorf("MFA_MAX_ATTEMPTS must be positive")
	}
	return nil
}
