package key_value

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/iamvkosarev/bot-designer/internal/storage"
	"github.com/redis/go-redis/v9"
)

// KeyValue is the part of the redis client the storage needs.
type KeyValue interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CollectionStorage keeps the whole bot collection as one JSON value under a single key.
type CollectionStorage struct {
	rdb KeyValue
	key string
}

func NewCollectionStorage(rdb KeyValue, key string) *CollectionStorage {
	if key == "" {
		key = storage.DefaultCollectionKey
	}
	return &CollectionStorage{
		rdb: rdb,
		key: key,
	}
}

func (c *CollectionStorage) Load(ctx context.Context) ([]model.BotRecord, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return make([]model.BotRecord, 0), nil
		}
		return nil, fmt.Errorf("failed to get bot collection %s: %w", c.key, err)
	}
	records, err := storage.DecodeCollection(raw)
	if err != nil {
		return records, fmt.Errorf("failed to decode bot collection %s: %w", c.key, err)
	}
	return records, nil
}

func (c *CollectionStorage) Save(ctx context.Context, records []model.BotRecord) error {
	raw, err := storage.EncodeCollection(records)
	if err != nil {
		return err
	}
	if err = c.rdb.Set(ctx, c.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bot collection %s: %w", c.key, err)
	}
	return nil
}
