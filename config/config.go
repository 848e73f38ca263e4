// Package config loads the application configuration from a YAML file with
// environment-variable overrides. No other package reads files or env vars
// for configuration directly.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."
	defaultEnv  = "local"
)

// Config holds all application configuration, populated once at startup and
// passed to the rest of the application through dependency injection.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// BaseURL is the public URL of the site, used to build share links.
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// Log controls log output format and verbosity.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration.
type AuthConfig struct {
	// AdminKey is the static shared admin credential carried in the
	// X-Admin-Key header. It grants the admin verdict without a token.
	AdminKey string `json:"adminKey" yaml:"adminKey"`

	// SecretKey signs session tokens. When empty, an ephemeral key is
	// generated at startup and tokens do not survive restarts.
	SecretKey string `json:"secretKey" yaml:"secretKey"`

	// AccessTokenTTL is the lifetime of issued session tokens.
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`

	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// ModerateComments holds new comments for approval instead of
	// publishing them immediately.
	ModerateComments bool `json:"moderateComments" yaml:"moderateComments"`

	// SeedAdmin is the account created on first boot when no user exists.
	SeedAdmin SeedAdminConfig `json:"seedAdmin" yaml:"seedAdmin"`
}

// SeedAdminConfig describes the default admin account.
type SeedAdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// QRCodeConfig defines share QR code generation settings.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// New loads the configuration for the environment named by APP_ENV
// (default "local"), applying env-var overrides on top of the YAML file.
func New() (*Config, error) {
	currEnv := os.Getenv("APP_ENV")
	if currEnv == "" {
		currEnv = defaultEnv
	}

	cfg, err := LoadWithEnv[Config](currEnv, "config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
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
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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

	// Load environment variables on top of the file values
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// AUTH_ADMINKEY -> auth.adminkey; matching against struct
			// fields is case-insensitive below.
			return envKeyToPath(k), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// envKeyToPath converts an environment variable name to a koanf key path,
// e.g. POSTGRES_HOST -> postgres.host.
func envKeyToPath(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "_", ".")
}
