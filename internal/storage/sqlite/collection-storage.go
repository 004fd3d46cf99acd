package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/iamvkosarev/bot-designer/internal/storage"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// localRecord is one named value of the local store.
type localRecord struct {
	Name      string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (localRecord) TableName() string {
	return "local_records"
}

func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormsqlite.Open(path), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	if err = db.AutoMigrate(&localRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local records: %w", err)
	}
	return db, nil
}

type CollectionStorage struct {
	db  *gorm.DB
	key string
}

func NewCollectionStorage(db *gorm.DB, key string) *CollectionStorage {
	if key == "" {
		key = storage.DefaultCollectionKey
	}
	return &CollectionStorage{
		db:  db,
		key: key,
	}
}

func (c *CollectionStorage) Load(ctx context.Context) ([]model.BotRecord, error) {
	var record localRecord
	err := c.db.WithContext(ctx).Where("name = ?", c.key).Take(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return make([]model.BotRecord, 0), nil
		}
		return nil, fmt.Errorf("failed to get bot collection %s: %w", c.key, err)
	}
	records, err := storage.DecodeCollection([]byte(record.Value))
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
	record := localRecord{
		Name:      c.key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}
	err = c.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		},
	).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save bot collection %s: %w", c.key, err)
	}
	return nil
}
