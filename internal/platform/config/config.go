package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultEnvironment     = "local"
	defaultTenant          = "storefront"
	defaultQueryLimit      = 10
	defaultQueryMaxLimit   = 100
	defaultCacheMaxAge     = 5 * time.Minute
	defaultRemoteTimeout   = 2 * time.Second
	defaultRemoteCacheSize = 256
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Environment   string
	Server        ServerConfig
	Content       ContentConfig
	Observability ObservabilityConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ContentConfig controls how content requests are scoped and served.
type ContentConfig struct {
	DefaultTenant string
	DefaultLocale string
	// TenantAliases maps public tenant slugs to tenant ids.
	TenantAliases     map[string]string
	QueryDefaultLimit int
	QueryMaxLimit     int
	CacheMaxAge       time.Duration
	// RemoteTimeout bounds calls to the remote content fallback.
	RemoteTimeout time.Duration
	// RemoteCacheSize caps remote lookups kept for CacheMaxAge. Zero disables the cache.
	RemoteCacheSize int
}

// ObservabilityConfig holds tracing parameters.
type ObservabilityConfig struct {
	TraceProjectID string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles configuration from defaults, .env overrides, environment variables and
// explicit maps, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Environment: strings.ToLower(stringWithDefault(lookup, "CONTENT_ENVIRONMENT", defaultEnvironment)),
		Server: ServerConfig{
			Port:            stringWithDefault(lookup, "CONTENT_SERVER_PORT", defaultPort),
			ReadTimeout:     durationWithDefault(lookup, "CONTENT_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "CONTENT_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "CONTENT_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "CONTENT_SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Content: ContentConfig{
			DefaultTenant:     strings.TrimSpace(stringWithDefault(lookup, "CONTENT_DEFAULT_TENANT", defaultTenant)),
			DefaultLocale:     strings.TrimSpace(stringWithDefault(lookup, "CONTENT_DEFAULT_LOCALE", "")),
			TenantAliases:     mapWithDefault(lookup, "CONTENT_TENANT_ALIASES"),
			QueryDefaultLimit: intWithDefault(lookup, "CONTENT_QUERY_DEFAULT_LIMIT", defaultQueryLimit),
			QueryMaxLimit:     intWithDefault(lookup, "CONTENT_QUERY_MAX_LIMIT", defaultQueryMaxLimit),
			CacheMaxAge:       durationWithDefault(lookup, "CONTENT_CACHE_MAX_AGE", defaultCacheMaxAge),
			RemoteTimeout:     durationWithDefault(lookup, "CONTENT_REMOTE_TIMEOUT", defaultRemoteTimeout),
			RemoteCacheSize:   intWithDefault(lookup, "CONTENT_REMOTE_CACHE_SIZE", defaultRemoteCacheSize),
		},
		Observability: ObservabilityConfig{
			TraceProjectID: stringWithDefault(lookup, "CONTENT_TRACE_PROJECT_ID", ""),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var invalid []string
	if cfg.Server.Port == "" {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}
	if cfg.Content.DefaultTenant == "" {
		invalid = append(invalid, "Content.DefaultTenant")
	}
	if cfg.Content.QueryMaxLimit <= 0 {
		invalid = append(invalid, "Content.QueryMaxLimit")
	}
	if cfg.Content.QueryDefaultLimit <= 0 || cfg.Content.QueryDefaultLimit > cfg.Content.QueryMaxLimit {
		invalid = append(invalid, "Content.QueryDefaultLimit")
	}
	if cfg.Content.CacheMaxAge < 0 {
		invalid = append(invalid, "Content.CacheMaxAge")
	}
	if cfg.Content.RemoteTimeout <= 0 {
		invalid = append(invalid, "Content.RemoteTimeout")
	}
	if cfg.Content.RemoteCacheSize < 0 {
		invalid = append(invalid, "Content.RemoteCacheSize")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// mapWithDefault parses "key=value" pairs separated by commas. Keys are lower-cased.
func mapWithDefault(lookup func(string) (string, bool), key string) map[string]string {
	values := make(map[string]string)
	raw, ok := lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return values
	}
	for _, entry := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		values[name] = value
	}
	return values
}
