package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// Backends understood by Open.
const (
	BackendDisk   = "disk"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config describes where the board lives and how it is written.
type Config interface {
	BasePath() string
	Backend() string
	Key() string
	Throttle() time.Duration
	RedisAddr() string
	RedisPrefix() string
	BoardSize() (width, height float64)
	LogLevel() string
}

// LoadConfig reads .taskboard.yaml from $TASKBOARD_CONFIG_PATH or the
// working directory, then TASKBOARD_* environment variables. A missing file
// is fine.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.taskboard")
	v.SetDefault("backend", BackendDisk)
	v.SetDefault("key", StorageKey)
	v.SetDefault("throttle", DefaultThrottle.String())
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.prefix", "taskboard:")
	v.SetDefault("board.width", 1200)
	v.SetDefault("board.height", 800)
	v.SetDefault("log.level", "warn")

	v.SetConfigName(".taskboard") // .yaml is implicit
	v.SetEnvPrefix("TASKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TASKBOARD_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	backend := strings.ToLower(v.GetString("backend"))
	switch backend {
	case BackendDisk, BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("store: unknown backend %q", backend)
	}

	return &fileConfig{
		Path:   path,
		Store:  backend,
		Slot:   v.GetString("key"),
		Wait:   v.GetDuration("throttle"),
		Redis:  v.GetString("redis.addr"),
		Prefix: v.GetString("redis.prefix"),
		Width:  v.GetFloat64("board.width"),
		Height: v.GetFloat64("board.height"),
		Level:  v.GetString("log.level"),
	}, nil
}

type fileConfig struct {
	Path   string        `json:"path"`
	Store  string        `json:"backend"`
	Slot   string        `json:"key"`
	Wait   time.Duration `json:"throttle"`
	Redis  string        `json:"redisAddr"`
	Prefix string        `json:"redisPrefix"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Level  string        `json:"logLevel"`
}

func (f *fileConfig) BasePath() string              { return f.Path }
func (f *fileConfig) Backend() string               { return f.Store }
func (f *fileConfig) Key() string                   { return f.Slot }
func (f *fileConfig) Throttle() time.Duration       { return f.Wait }
func (f *fileConfig) RedisAddr() string             { return f.Redis }
func (f *fileConfig) RedisPrefix() string           { return f.Prefix }
func (f *fileConfig) BoardSize() (float64, float64) { return f.Width, f.Height }
func (f *fileConfig) LogLevel() string              { return f.Level }

// Open builds a Store for cfg, loading the config when cfg is nil.
func Open(cfg Config, logger *log.Logger, opts ...Option) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	var slot Slot
	switch cfg.Backend() {
	case BackendRedis:
		slot = NewRedisSlot(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()}), cfg.RedisPrefix())
	case BackendMemory:
		slot = NewMemorySlot(0)
	default:
		if cfg.BasePath() == "" {
			return nil, errors.New("store: base path unknown")
		}
		slot = NewDiskSlot(cfg.BasePath())
	}

	base := []Option{
		WithKey(cfg.Key()),
		WithThrottle(cfg.Throttle()),
		WithLogger(logger),
	}
	return New(slot, append(base, opts...)...), nil
}
