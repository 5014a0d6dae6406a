package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"school/internal/pkg/errs"
	"school/internal/pkg/telemetry"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SCHOOL_"

type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	DB        DBConfig        `koanf:"db"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Cleanup   CleanupConfig   `koanf:"cleanup"`
	Commands  CommandsConfig  `koanf:"commands"`
}

type HTTPConfig struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DBConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SslMode  string `koanf:"sslmode"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type TelemetryConfig struct {
	ServiceName string `koanf:"service_name"`
	Exporter    string `koanf:"exporter"`
}

type CleanupConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Schedule  string `koanf:"schedule"`
	BatchSize uint   `koanf:"batch_size"`
}

type CommandsConfig struct {
	// CompensationWorkers bounds concurrent macro compensations across the service.
	CompensationWorkers int `koanf:"compensation_workers"`
}

// DSN returns the postgres connection URL.
func (c DBConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SslMode}}.Encode(),
	}
	return u.String()
}

func defaults() map[string]any {
	return map[string]any{
		"http.port":             8080,
		"http.shutdown_timeout": "10s",

		"db.host":     "localhost",
		"db.port":     5432,
		"db.user":     "postgres",
		"db.password": "",
		"db.name":     "school",
		"db.sslmode":  "disable",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.service_name": "school",
		"telemetry.exporter":     telemetry.ExporterNone,

		"cleanup.enabled":    true,
		"cleanup.schedule":   "0 */5 * * * *",
		"cleanup.batch_size": 100,

		"commands.compensation_workers": 4,
	}
}

// LoadConfig reads configuration, later layers winning: defaults, the
// optional YAML file at path, .env, then SCHOOL_ environment variables.
//
//	SCHOOL_DB_HOST              -> db.host
//	SCHOOL_HTTP_SHUTDOWN_TIMEOUT -> http.shutdown_timeout
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envLookup := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		envLookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errList []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("http.port", c.HTTP.Port, 1, 65535))
	}
	if c.DB.Host == "" {
		errList = append(errList, errs.NewValueIsRequiredError("db.host"))
	}
	if c.DB.Name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("db.name"))
	}
	if c.Telemetry.Exporter != telemetry.ExporterStdout && c.Telemetry.Exporter != telemetry.ExporterNone {
		errList = append(errList, errs.NewValueIsInvalidError("telemetry.exporter"))
	}
	if c.Cleanup.Enabled && c.Cleanup.BatchSize == 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("cleanup.batch_size", c.Cleanup.BatchSize, 1, "unbounded"))
	}
	if c.Commands.CompensationWorkers < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"commands.compensation_workers", c.Commands.CompensationWorkers, 0, "unbounded"))
	}
	return errors.Join(errList...)
}
