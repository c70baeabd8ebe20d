// Package config loads the application configuration from YAML plus
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath     = "."
	defaultDBPath     = "study_tracker.db"
	defaultTrustTTL   = 30 * 24 * time.Hour
	defaultSessionTTL = 12 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SQLite struct {
		// Path of the local database file. Everything lives in one file:
		// auth tables and domain tables alike.
		Path string `json:"path" yaml:"path"`
	} `json:"sqlite" yaml:"sqlite"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Projection maps the four projection tiers onto phase labels of the
	// seeded catalog. The historical defaults ("A".."D") do not match any
	// seeded label, which reproduces the reference behavior of the projection
	// always falling through to the lowest tier until explicitly configured.
	Projection ProjectionConfig `json:"projection" yaml:"projection"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// PasswordHash is the reference hash of the single shared secret.
	// A "$2" prefix selects bcrypt; anything else is treated as a sha256 hex
	// digest for compatibility with previously issued hashes.
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`

	// AllowInsecureFallback enables the historical development password when
	// no hash is configured. Startup fails without it. Never enable this on
	// an exposed deployment.
	AllowInsecureFallback bool `json:"allowInsecureFallback" yaml:"allowInsecureFallback"`

	// TrustTTL is how long a device trust record stays valid after a login
	// that opted into persistence.
	TrustTTL time.Duration `json:"trustTTL" yaml:"trustTTL"`

	// SessionTTL is the token lifetime for logins that decline to be
	// remembered. Short by design: it approximates a browser session.
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
}

// ProjectionConfig names the phase labels checked by the four projection tiers.
type ProjectionConfig struct {
	PhaseA string `json:"phaseA" yaml:"phaseA"`
	PhaseB string `json:"phaseB" yaml:"phaseB"`
	PhaseC string `json:"phaseC" yaml:"phaseC"`
	PhaseD string `json:"phaseD" yaml:"phaseD"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: AUTH_PASSWORDHASH -> auth.passwordHash (not auth.passwordhash)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.SQLite.Path) == "" {
		cfg.SQLite.Path = defaultDBPath
	}
	if cfg.Auth.TrustTTL <= 0 {
		cfg.Auth.TrustTTL = defaultTrustTTL
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = defaultSessionTTL
	}
	cfg.Projection = cfg.Projection.withDefaults()

	return cfg, nil
}

// withDefaults fills unset tiers with the historical phase keys.
func (p ProjectionConfig) withDefaults() ProjectionConfig {
	if p.PhaseA == "" {
		p.PhaseA = "A"
	}
	if p.PhaseB == "" {
		p.PhaseB = "B"
	}
	if p.PhaseC == "" {
		p.PhaseC = "C"
	}
	if p.PhaseD == "" {
		p.PhaseD = "D"
	}

	return p
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
