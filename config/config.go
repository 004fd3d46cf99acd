package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"
	StorageBackendSQLite = "sqlite"
)

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Storage struct {
	Backend       string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"sqlite"`
	CollectionKey string `yaml:"collection_key" env:"STORAGE_COLLECTION_KEY" env-default:"chatbots"`
	SQLitePath    string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"bot-designer.db"`
}

type Redis struct {
	Endpoint string `yaml:"endpoint" env:"REDIS_ENDPOINT" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type Telegram struct {
	TelegramAPIToken   string  `env:"TELEGRAM_APITOKEN"`
	AllowedTelegramIDs []int64 `yaml:"allowed_telegram_ids" env:"ALLOWED_TELEGRAM_ID" env-separator:","`
	IsNotPublic        bool    `yaml:"is_not_public" env:"TELEGRAM_IS_NOT_PUBLIC"`
	Workers            int     `yaml:"workers" env:"TELEGRAM_WORKERS" env-default:"4"`
}

type Session struct {
	IdleTimeout             time.Duration `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
	SweepInterval           time.Duration `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"`
	NotifyUserOnIdleTimeout bool          `yaml:"notify_user_on_idle_timeout" env:"SESSION_NOTIFY_ON_IDLE_TIMEOUT"`
}

type Config struct {
	Log      Log      `yaml:"log"`
	Storage  Storage  `yaml:"storage"`
	Redis    Redis    `yaml:"redis"`
	Telegram Telegram `yaml:"telegram"`
	Session  Session  `yaml:"session"`
}

// LoadConfig reads cfgPath and then the environment. An empty path reads the environment only.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if cfgPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
