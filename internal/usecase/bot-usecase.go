package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/iamvkosarev/bot-designer/internal/draft"
	"github.com/iamvkosarev/bot-designer/internal/model"
	log "github.com/sirupsen/logrus"
)

var (
	ErrDuplicateBotID = errors.New("bot id already exists")
)

// BotStorage loads and replaces the whole bot collection.
type BotStorage interface {
	Load(ctx context.Context) ([]model.BotRecord, error)
	Save(ctx context.Context, records []model.BotRecord) error
}

type BotUsecaseDeps struct {
	BotStorage BotStorage
	Assembler  *draft.Assembler
}

type BotUsecase struct {
	BotUsecaseDeps
	// serialises load-append-save within the process
	mu sync.Mutex
}

func NewBotUsecase(deps BotUsecaseDeps) *BotUsecase {
	if deps.Assembler == nil {
		deps.Assembler = draft.NewAssembler()
	}
	return &BotUsecase{
		BotUsecaseDeps: deps,
	}
}

// Commit validates d, assembles a record from it and appends the record to the collection.
// A *model.ValidationError is returned unwrapped.
func (b *BotUsecase) Commit(ctx context.Context, d model.BotDraft) (model.BotRecord, error) {
	if err := draft.Validate(d); err != nil {
		return model.BotRecord{}, err
	}
	if !catalog.IsModelCompatible(d.LLMProvider, d.LLMModel) {
		log.WithFields(
			log.Fields{
				"provider": d.LLMProvider,
				"model":    d.LLMModel,
			},
		).Warn("model is not offered by the selected provider")
	}

	record := b.Assembler.Assemble(d)
	if err := b.appendRecord(ctx, record); err != nil {
		return model.BotRecord{}, fmt.Errorf("failed to save bot %s: %w", record.Name, err)
	}
	log.WithFields(
		log.Fields{
			"bot_id": record.ID,
			"name":   record.Name,
		},
	).Info("bot saved")
	return record, nil
}

func (b *BotUsecase) ListBots(ctx context.Context) ([]model.BotRecord, error) {
	records, err := b.BotStorage.Load(ctx)
	if err != nil {
		return records, fmt.Errorf("failed to load bots: %w", err)
	}
	return records, nil
}

// appendRecord never overwrites a collection it could not read: a corrupted
// collection fails the commit instead of being replaced.
func (b *BotUsecase) appendRecord(ctx context.Context, record model.BotRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.BotStorage.Load(ctx)
	if err != nil {
		if errors.Is(err, model.ErrCollectionCorrupted) {
			log.WithError(err).Error("refusing to overwrite unreadable bot collection")
		}
		return fmt.Errorf("failed to load bots: %w", err)
	}
	for _, existing := range records {
		if existing.ID == record.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateBotID, record.ID)
		}
	}
	records = append(records, record)
	return b.BotStorage.Save(ctx, records)
}
