package app

import (
	"context"
	"errors"
	"fmt"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/bot-designer/config"
	in_memory "github.com/iamvkosarev/bot-designer/internal/storage/in-memory"
	key_value "github.com/iamvkosarev/bot-designer/internal/storage/key-value"
	"github.com/iamvkosarev/bot-designer/internal/storage/sqlite"
	"github.com/iamvkosarev/bot-designer/internal/usecase"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	ErrMissingTelegramToken  = errors.New("telegram api token is not set")
)

// NewBotStorage opens the configured backend. The returned func releases it.
func NewBotStorage(cfg *config.Config) (usecase.BotStorage, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		return in_memory.NewCollectionStorage(), func() error { return nil }, nil
	case config.StorageBackendRedis:
		rdb := redis.NewClient(
			&redis.Options{
				Addr:     cfg.Redis.Endpoint,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			},
		)
		return key_value.NewCollectionStorage(rdb, cfg.Storage.CollectionKey), rdb.Close, nil
	case config.StorageBackendSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get sqlite connection: %w", err)
		}
		return sqlite.NewCollectionStorage(db, cfg.Storage.CollectionKey), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorageBackend, cfg.Storage.Backend)
	}
}

// NewBotUsecase builds the bot usecase on top of the configured storage.
func NewBotUsecase(cfg *config.Config) (*usecase.BotUsecase, func() error, error) {
	botStorage, closeStorage, err := NewBotStorage(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("backend", cfg.Storage.Backend).Debug("bot storage opened")
	return usecase.NewBotUsecase(
		usecase.BotUsecaseDeps{
			BotStorage: botStorage,
		},
	), closeStorage, nil
}

// Run serves the Telegram design wizard until ctx is done.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Telegram.TelegramAPIToken == "" {
		return ErrMissingTelegramToken
	}

	bot, err := api.NewBotAPI(cfg.Telegram.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("failed to create new bot: %w", err)
	}
	log.Infof("Authorized on account %s", bot.Self.UserName)

	botUsecase, closeStorage, err := NewBotUsecase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open bot storage: %w", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.WithError(err).Error("failed to close bot storage")
		}
	}()

	telegramUsecase, err := usecase.NewTelegramUsecase(
		cfg.Telegram, cfg.Session, usecase.TelegramUsecaseDeps{
			Bot:      bot,
			Bots:     botUsecase,
			Sessions: usecase.NewSessionUsecase(cfg.Session),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram usecase: %w", err)
	}

	return telegramUsecase.Run(ctx)
}
