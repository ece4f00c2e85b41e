package config

import (
	"time"
)

type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Backend  BackendConfig `yaml:"backend"`
	Auth     AuthConfig    `yaml:"auth"`
	OIDC     OIDCConfig    `yaml:"oidc"`
	Log      LogConfig     `yaml:"log"`
	CORS     CORSConfig    `yaml:"cors"`
	Sessions SessionConfig `yaml:"sessions"`
	Redis    *RedisConfig  `yaml:"redis"`
}

// DefaultConfig returns a config populated with every section's defaults.
// Required fields (backend host and service token) are left empty.
func DefaultConfig() *Config {
	return &Config{
		Server:   DefaultServerConfig,
		Backend:  DefaultBackendConfig,
		Auth:     DefaultAuthConfig,
		OIDC:     DefaultOIDCConfig,
		Log:      DefaultLogConfig,
		CORS:     DefaultCORSConfig,
		Sessions: DefaultSessionConfig,
	}
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	Environment string             `yaml:"environment"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port:        8080,
	Environment: "production",
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// BackendConfig configures outbound calls to the collection backend. Host and
// ServiceToken are required; every outbound request carries the service token
// alongside the caller's bearer token.
type BackendConfig struct {
	Host         string        `yaml:"host"`
	ServiceToken string        `yaml:"service_token"`
	Timeout      time.Duration `yaml:"timeout"`
}

var DefaultBackendConfig = BackendConfig{
	Timeout: 0, // one-shot calls, platform default
}

type AuthConfig struct {
	// TrustedProxyHeader is the header the upstream load balancer uses to
	// inject the end user's access token.
	TrustedProxyHeader string   `yaml:"trusted_proxy_header"`
	AdminUsers         []string `yaml:"admin_users"`
}

var DefaultAuthConfig = AuthConfig{
	TrustedProxyHeader: "X-Amzn-Oidc-Accesstoken",
}

type OIDCConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:8080"},
	AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
