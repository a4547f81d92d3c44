package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultStorageProvider    = "firestore"
	defaultSlowQueryThreshold = 200 * time.Millisecond
	defaultAnalyticsProvider  = "noop"
	defaultSessionCookieName  = "portfolio_session"
	defaultSessionLifetime    = 24 * time.Hour
	defaultBooksPageSize      = 20
	maxBooksPageSize          = 100
	defaultLocale             = "en"
	defaultFirebaseRequestURI = "http://localhost"

	defaultFirebaseTokenEndpoint = "https://securetoken.googleapis.com/v1/token"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration for identity and document storage
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Storage selects the document storage backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Analytics configuration for event publishing
	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Session configuration for the browser session cookie
	Session *SessionConfig `json:"session" yaml:"session"`

	// Books configuration for catalog listings
	Books *BooksConfig `json:"books" yaml:"books"`

	// Site configuration for localized pages
	Site *SiteConfig `json:"site" yaml:"site"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for authentication and Firestore
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Web API key used by the Identity Toolkit REST endpoints
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// Identity Toolkit endpoint override, e.g. the auth emulator
	AuthEndpoint string `json:"authEndpoint" yaml:"authEndpoint"`

	// Secure Token endpoint that exchanges refresh tokens for new ID tokens
	TokenEndpoint string `json:"tokenEndpoint" yaml:"tokenEndpoint"`

	// Firestore database ID, "(default)" when empty
	DatabaseID string `json:"databaseId" yaml:"databaseId"`

	// Redirect URI reported to the identity provider for federated sign-in
	RequestURI string `json:"requestUri" yaml:"requestUri"`
}

// StorageConfig defines which backend stores books and settings
type StorageConfig struct {
	// Provider type: "firestore" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// AutoMigrate creates the postgres tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold is the postgres query duration logged as slow
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AnalyticsConfig defines Pub/Sub configuration for analytics events
type AnalyticsConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// SessionConfig defines the browser session cookie
type SessionConfig struct {
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	Lifetime     time.Duration `json:"lifetime" yaml:"lifetime"`
	IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// BooksConfig defines catalog listing limits
type BooksConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
}

// SiteConfig defines localization of user-facing messages
type SiteConfig struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// LoadWithEnv loads <currEnv>.yaml from the first search path that has it, then overlays
// environment variables. Env keys are matched to the YAML keys case-insensitively, so
// SESSION_COOKIENAME overrides session.cookieName.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	fromFile := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// findConfigFile looks for name in the working directory, then in each relative path.
func findConfigFile(name string, relPaths []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(relPaths) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range relPaths {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", name)
}

// New loads config.yaml, fills defaults and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects settings that applyDefaults cannot repair.
func validate(cfg *Config) error {
	if cfg.Books.DefaultPageSize > maxBooksPageSize {
		return errors.Errorf("books.defaultPageSize must be at most %d", maxBooksPageSize)
	}
	if cfg.Session.IdleTimeout > cfg.Session.Lifetime {
		return errors.New("session.idleTimeout must not exceed session.lifetime")
	}
	if !slices.Contains(cfg.Site.Locales, cfg.Site.DefaultLocale) {
		return errors.Errorf("site.locales must include the default locale %q", cfg.Site.DefaultLocale)
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.RequestURI == "" {
		cfg.Firebase.RequestURI = defaultFirebaseRequestURI
	}
	if cfg.Firebase.TokenEndpoint == "" {
		cfg.Firebase.TokenEndpoint = defaultFirebaseTokenEndpoint
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = defaultStorageProvider
	}
	if cfg.Storage.SlowQueryThreshold <= 0 {
		cfg.Storage.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{}
	}
	if cfg.Analytics.Provider == "" {
		cfg.Analytics.Provider = defaultAnalyticsProvider
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.Lifetime <= 0 {
		cfg.Session.Lifetime = defaultSessionLifetime
	}

	if cfg.Books == nil {
		cfg.Books = &BooksConfig{}
	}
	if cfg.Books.DefaultPageSize <= 0 {
		cfg.Books.DefaultPageSize = defaultBooksPageSize
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	if cfg.Site.DefaultLocale == "" {
		cfg.Site.DefaultLocale = defaultLocale
	}
	if len(cfg.Site.Locales) == 0 {
		cfg.Site.Locales = []string{cfg.Site.DefaultLocale}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
