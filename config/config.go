package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
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
	defaultHTTPPort           = 3000
	defaultSQLitePath         = "/tmp/test.db"
	defaultTokenTTL           = 24 * time.Hour
)

// Config is the full application configuration.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	// Postgres is the structured connection block; used only when Database.URL is empty.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth AuthConfig `json:"auth" yaml:"auth"`
}

// DatabaseConfig selects the relational store.
// Precedence: URL (postgres DSN), then the Postgres block, then the SQLite file.
type DatabaseConfig struct {
	URL          string   `json:"url" yaml:"url"`
	ReplicaURLs  []string `json:"replicaUrls" yaml:"replicaUrls"`
	SQLitePath   string   `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate  bool     `json:"autoMigrate" yaml:"autoMigrate"`
	MaxOpenConns int      `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns int      `json:"maxIdleConns" yaml:"maxIdleConns"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	TokenSecret  string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL     time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
	RequireToken bool          `json:"requireToken" yaml:"requireToken"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv reads <name>.yaml from the first search directory that has it,
// then overlays environment variables. Extra dirs are relative to the working
// directory so commands and tests can run from any package.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locateConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	// SECTION_SOME_KEY lands on section.someKey when the YAML already has the
	// section. Unrelated process variables (PATH, ENV, POSTGRES_PASSWORD for a
	// sidecar, ...) are dropped.
	fromYAML := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return envOverlayKey(key, fromYAML), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func locateConfigFile(fileName string, dirs []string) (string, error) {
	candidates := []string{defaultPath}
	if len(dirs) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(pwd, dir))
		}
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, fileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", fileName, candidates)
}

// decoderConfig matches keys case-insensitively, since env overrides of
// unknown keys arrive lower-cased, and parses durations like "24h".
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

// New loads config.yaml and overlays the environment on top of it.
func New() (*Config, error) {
	loadDotEnv()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// loadDotEnv copies .env and .env.local into the process environment.
// Variables already set in the environment win; missing files are ignored.
func loadDotEnv() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// applyEnvOverrides maps the conventional deployment variables that do not
// follow the SECTION_KEY naming used by the koanf env provider.
func applyEnvOverrides(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.HTTP.Port = p
		}
	}

	if url := strings.TrimSpace(os.Getenv("DATABASE_URL")); url != "" {
		cfg.Database.URL = url
	}

	if replicas := os.Getenv("DATABASE_REPLICA_URLS"); replicas != "" {
		cfg.Database.ReplicaURLs = cfg.Database.ReplicaURLs[:0]
		for _, r := range strings.Split(replicas, ",") {
			if r = strings.TrimSpace(r); r != "" {
				cfg.Database.ReplicaURLs = append(cfg.Database.ReplicaURLs, r)
			}
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Database.SQLitePath) == "" {
		cfg.Database.SQLitePath = defaultSQLitePath
	}

	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
}

// envOverlayKey returns the config key an environment variable overrides, or
// "" when it must be ignored: its section is not in the YAML, or it would
// replace a YAML section with a scalar.
func envOverlayKey(rawKey string, existing map[string]any) string {
	key := canonicalizeEnvKey(rawKey, existing)
	if key == "" {
		return ""
	}

	segments := strings.Split(key, ".")
	if _, ok := existing[segments[0]]; !ok {
		return ""
	}

	var node any = existing
	for _, segment := range segments {
		section, ok := node.(map[string]any)
		if !ok {
			// A parent is a scalar in the YAML.
			return ""
		}
		child, found := section[segment]
		if !found {
			// New leaf under an existing section.
			return key
		}
		node = child
	}

	if _, isSection := node.(map[string]any); isSection {
		return ""
	}

	return key
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
