// Package config loads daemon settings from YAML, the environment and .env
// files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Session  SessionConfig  `yaml:"session"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	NATS     NATSConfig     `yaml:"nats"`
	Server   ServerConfig   `yaml:"server"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// SessionConfig drives both the lease and the on-page countdown. Duration is
// the single value for the lease lifetime and the countdown budget.
type SessionConfig struct {
	Duration          time.Duration `yaml:"duration" validate:"gt=0"`
	LowTimeThreshold  time.Duration `yaml:"low_time_threshold" validate:"gt=0,ltfield=Duration"`
	LockCheckInterval time.Duration `yaml:"lock_check_interval" validate:"gt=0"`
	Tick              time.Duration `yaml:"tick" validate:"gt=0,ltefield=Duration"`
	LandingPath       string        `yaml:"landing_path" validate:"required,startswith=/"`
	// pages that are not active are dropped after this long without a poll
	PageIdleTimeout   time.Duration `yaml:"page_idle_timeout" validate:"gt=0"`
}

type StoreConfig struct {
	Driver        string        `yaml:"driver" validate:"oneof=bolt memory redis"`
	Path          string        `yaml:"path" validate:"required_if=Driver bolt"`
	RedisURL      string        `yaml:"redis_url" validate:"required_if=Driver redis"`
	SweepInterval time.Duration `yaml:"sweep_interval" validate:"gt=0"`
}

type DatabaseConfig struct {
	// empty means the in-memory order store
	URL      string `yaml:"url"`
	SeedFile string `yaml:"seed_file"`
	Migrate  bool   `yaml:"migrate"`
}

type NATSConfig struct {
	// empty means lease events are only logged
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subject_prefix" validate:"required"`
	Stream        string `yaml:"stream" validate:"required"`
}

type ServerConfig struct {
	GRPCAddr      string   `yaml:"grpc_addr" validate:"required"`
	HTTPAddr      string   `yaml:"http_addr" validate:"required"`
	CORSOrigins   []string `yaml:"cors_origins"`
	PublicBaseURL string   `yaml:"public_base_url" validate:"required,url"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type LogConfig struct {
	Level   string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Console bool   `yaml:"console"`
}

func Default() Config {
	return Config{
		Session: SessionConfig{
			Duration:          2 * time.Hour,
			LowTimeThreshold:  5 * time.Minute,
			LockCheckInterval: 60 * time.Second,
			Tick:              time.Second,
			LandingPath:       "/",
			PageIdleTimeout:   10 * time.Minute,
		},
		Store: StoreConfig{
			Driver:        "bolt",
			Path:          "./data",
			SweepInterval: time.Minute,
		},
		Database: DatabaseConfig{
			Migrate: true,
		},
		NATS: NATSConfig{
			SubjectPrefix: "zapdine",
			Stream:        "ZAPDINE_LEASES",
		},
		Server: ServerConfig{
			GRPCAddr:      ":9000",
			HTTPAddr:      ":8080",
			CORSOrigins:   []string{"*"},
			PublicBaseURL: "http://localhost:8080",
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// LoadDotEnv loads .env files into the environment. Missing files are not
// an error.
func LoadDotEnv(paths ...string) error {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load builds the config from defaults, the YAML file at path (skipped when
// path is empty) and ZAPDINE_* environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Config.Session.Duration -> session.duration
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prev := s[i-1]
			nextLower := i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z'
			if prev >= 'a' && prev <= 'z' || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func applyEnv(cfg *Config) error {
	var err error
	setDuration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" && err == nil {
			d, perr := time.ParseDuration(v)
			if perr != nil {
				err = fmt.Errorf("%s: %w", key, perr)
				return
			}
			*dst = d
		}
	}
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" && err == nil {
			b, perr := strconv.ParseBool(v)
			if perr != nil {
				err = fmt.Errorf("%s: %w", key, perr)
				return
			}
			*dst = b
		}
	}

	setDuration("ZAPDINE_SESSION_DURATION", &cfg.Session.Duration)
	setDuration("ZAPDINE_LOW_TIME_THRESHOLD", &cfg.Session.LowTimeThreshold)
	setDuration("ZAPDINE_LOCK_CHECK_INTERVAL", &cfg.Session.LockCheckInterval)
	setDuration("ZAPDINE_TICK", &cfg.Session.Tick)
	setString("ZAPDINE_LANDING_PATH", &cfg.Session.LandingPath)
	setDuration("ZAPDINE_PAGE_IDLE_TIMEOUT", &cfg.Session.PageIdleTimeout)

	setString("ZAPDINE_STORE_DRIVER", &cfg.Store.Driver)
	setString("ZAPDINE_STORE_PATH", &cfg.Store.Path)
	setString("ZAPDINE_REDIS_URL", &cfg.Store.RedisURL)
	setDuration("ZAPDINE_SWEEP_INTERVAL", &cfg.Store.SweepInterval)

	setString("DATABASE_URL", &cfg.Database.URL)
	setString("ZAPDINE_SEED_FILE", &cfg.Database.SeedFile)
	setBool("ZAPDINE_MIGRATE", &cfg.Database.Migrate)

	setString("NATS_URL", &cfg.NATS.URL)
	setString("ZAPDINE_NATS_SUBJECT_PREFIX", &cfg.NATS.SubjectPrefix)

	setString("ZAPDINE_GRPC_ADDR", &cfg.Server.GRPCAddr)
	setString("ZAPDINE_HTTP_ADDR", &cfg.Server.HTTPAddr)
	setString("ZAPDINE_PUBLIC_BASE_URL", &cfg.Server.PublicBaseURL)
	if v := os.Getenv("ZAPDINE_CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = splitList(v)
	}

	setString("JWT_SECRET", &cfg.Auth.JWTSecret)

	setString("ZAPDINE_LOG_LEVEL", &cfg.Log.Level)
	setBool("ZAPDINE_LOG_CONSOLE", &cfg.Log.Console)

	return err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
