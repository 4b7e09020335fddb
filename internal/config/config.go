package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server    ServerConfig
	App       AppConfig
	Upstream  UpstreamConfig
	Cosmetic  CosmeticConfig
	KeepAlive KeepAliveConfig
	Cache     CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"3000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"./public"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"epic-relay-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// UpstreamConfig holds the remote service endpoints and the outbound client settings.
type UpstreamConfig struct {
	AccountURL string        `envconfig:"ACCOUNT_SERVICE_URL" default:"https://account-public-service-prod.ol.epicgames.com"`
	PartyURL   string        `envconfig:"PARTY_SERVICE_URL" default:"https://party-service-prod.ol.epicgames.com"`
	CatalogURL string        `envconfig:"COSMETICS_API_URL" default:"https://fortnite-api.com"`
	Timeout    time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`

	// ClientCredentials is the base64 "client_id:secret" pair used for the device_auth grant.
	ClientCredentials string `envconfig:"GAME_CLIENT_CREDENTIALS" default:"MzQ0NmNkNzI2OTRjNGE0NDg1ZDgxYjc3YWRiYjIxNDE6OTIwOWQ0YTVlMjVhNDU3ZmI5YjA3NDg5ZDMxM2I0MWE="`
	LoginURL          string `envconfig:"EXCHANGE_LOGIN_URL" default:"https://www.epicgames.com/id/exchange"`
}

// CosmeticConfig holds cosmetic resolution settings.
type CosmeticConfig struct {
	// StrictLookup rejects skin names the catalog does not know instead of
	// forwarding the raw name to the party service.
	StrictLookup bool `envconfig:"COSMETIC_STRICT_LOOKUP" default:"true"`
}

// KeepAliveConfig holds the self-ping settings.
type KeepAliveConfig struct {
	URL      string        `envconfig:"KEEPALIVE_URL" default:""` // empty disables the pinger
	Interval time.Duration `envconfig:"KEEPALIVE_INTERVAL" default:"5m"`
	Timeout  time.Duration `envconfig:"KEEPALIVE_TIMEOUT" default:"30s"`
}

// CacheConfig holds cosmetic lookup cache settings.
type CacheConfig struct {
	Type string        `envconfig:"CACHE_TYPE" default:"none"` // none, memory, or redis
	TTL  time.Duration `envconfig:"CACHE_TTL" default:"6h"`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (c *CacheConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Enabled reports whether the keep-alive pinger should run.
func (k *KeepAliveConfig) Enabled() bool {
	return k.URL != "" && k.Interval > 0
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.Cache.Type {
	case "none", "memory", "redis":
	default:
		return nil, fmt.Errorf("unsupported CACHE_TYPE %q", cfg.Cache.Type)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
