package config

import (
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetInt(key string) int
	GetString(key string) string
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	_ = cfg.BindEnv("backend.api_prefix", "BACKEND_API_PREFIX")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("redis.username", "REDIS_USERNAME")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.db", "REDIS_DB")
	_ = cfg.BindEnv("redis.prefix", "REDIS_PREFIX")
	_ = cfg.BindEnv("session.ttl", "SESSION_TTL")
	_ = cfg.BindEnv("session.cookie", "SESSION_COOKIE")
	_ = cfg.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	_ = cfg.BindEnv("log.level", "LOG_LEVEL")

	cfg.SetDefault("server.port", ":3000")
	cfg.SetDefault("backend.base_url", "http://localhost:8080")
	cfg.SetDefault("backend.api_prefix", "/api")
	cfg.SetDefault("redis.addrs", []string{"localhost:6379"})
	cfg.SetDefault("redis.prefix", "promoadmin")
	cfg.SetDefault("session.ttl", "24h")
	cfg.SetDefault("session.cookie", "portal_session")
	cfg.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	cfg.SetDefault("log.level", "debug")

	return &config{cfg: cfg}
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}
