package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvBackendHost         = "CONSOLE_BACKEND_HOST"
	EnvBackendServiceToken = "CONSOLE_BACKEND_SERVICE_TOKEN"
	EnvAdminUsers          = "CONSOLE_ADMIN_USERS"
	EnvEnvironment         = "CONSOLE_ENVIRONMENT"
	EnvOIDCClientID        = "CONSOLE_OIDC_CLIENT_ID"
	EnvOIDCClientSecret    = "CONSOLE_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL       = "CONSOLE_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL     = "CONSOLE_OIDC_REDIRECT_URL"
	EnvRedisPassword       = "CONSOLE_REDIS_PASSWORD"
	EnvRedisUsername       = "CONSOLE_REDIS_USERNAME"
)

func applyEnvironmentOverrides(config *Config) {
	if host := os.Getenv(EnvBackendHost); host != "" {
		config.Backend.Host = host
	}

	if token := os.Getenv(EnvBackendServiceToken); token != "" {
		config.Backend.ServiceToken = token
	}

	if admins := os.Getenv(EnvAdminUsers); admins != "" {
		config.Auth.AdminUsers = splitAndTrim(admins, ",")
	}

	if env := os.Getenv(EnvEnvironment); env != "" {
		config.Server.Environment = env
	}

	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		config.OIDC.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateBackendConfig()
	if err != nil {
		return err
	}

	err = config.validateAuthConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Environment == "" {
		c.Server.Environment = DefaultServerConfig.Environment
	}

	switch c.Server.Environment {
	case "local", "production":
	default:
		return fmt.Errorf("server environment must be 'local' or 'production', got %q", c.Server.Environment)
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port == 0 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
		if c.Server.Debug.Port == c.Server.Port {
			return fmt.Errorf("debug server port must differ from the main server port")
		}
	}

	return nil
}

func (c *Config) validateBackendConfig() error {
	if c.Backend.Host == "" {
		return fmt.Errorf("backend host is required (set backend.host or %s)", EnvBackendHost)
	}

	parsed, err := url.Parse(c.Backend.Host)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend host must be an absolute URL, got %q", c.Backend.Host)
	}

	if c.Backend.ServiceToken == "" {
		return fmt.Errorf("backend service token is required (set backend.service_token or %s)", EnvBackendServiceToken)
	}

	return nil
}

func (c *Config) validateAuthConfig() error {
	if c.Auth.TrustedProxyHeader == "" {
		c.Auth.TrustedProxyHeader = DefaultAuthConfig.TrustedProxyHeader
	}

	for _, email := range c.Auth.AdminUsers {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("auth admin_users entry %q is not an email address", email)
		}
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	// The login flow only runs locally; in production the load balancer
	// injects the token and these settings are unused.
	if c.Server.Environment != "local" {
		return nil
	}

	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client_id is required in local mode")
	}

	if c.OIDC.IssuerURL == "" {
		return fmt.Errorf("oidc issuer_url is required in local mode")
	}

	if c.OIDC.RedirectURI == "" {
		return fmt.Errorf("oidc redirect_url is required in local mode")
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format)
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	}

	switch c.Sessions.Store {
	case "memory":
	case "redis":
		if c.Redis == nil || c.Redis.Address == "" && c.Redis.Sentinel == nil {
			return fmt.Errorf("sessions store is 'redis' but no redis address or sentinel is configured")
		}
	default:
		return fmt.Errorf("sessions store must be 'memory' or 'redis', got %q", c.Sessions.Store)
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}

	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}

	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}

	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

// IsAdminUser reports whether the email is on the configured admin allowlist.
func (c *Config) IsAdminUser(email string) bool {
	for _, admin := range c.Auth.AdminUsers {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
