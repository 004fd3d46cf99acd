package in_memory

import (
	"context"
	"sync"

	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/iamvkosarev/bot-designer/internal/storage"
)

// CollectionStorage keeps the encoded collection in memory, so loads never
// share state with earlier saves.
type CollectionStorage struct {
	mu  sync.Mutex
	raw []byte
}

func NewCollectionStorage() *CollectionStorage {
	return &CollectionStorage{}
}

func (c *CollectionStorage) Load(_ context.Context) ([]model.BotRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return storage.DecodeCollection(c.raw)
}

func (c *CollectionStorage) Save(_ context.Context, records []model.BotRecord) error {
	raw, err := storage.EncodeCollection(records)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raw = raw
	return nil
}
