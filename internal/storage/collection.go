// Package storage holds the wire format shared by the bot collection backends.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iamvkosarev/bot-designer/internal/model"
)

// DefaultCollectionKey names the record that holds every saved bot.
const DefaultCollectionKey = "chatbots"

// DecodeCollection parses a stored collection. Empty input is an empty collection.
// Malformed input yields an empty collection together with model.ErrCollectionCorrupted,
// so callers can tell "nothing saved yet" from "saved data is unreadable".
func DecodeCollection(raw []byte) ([]model.BotRecord, error) {
	records := make([]model.BotRecord, 0)
	if len(bytes.TrimSpace(raw)) == 0 {
		return records, nil
	}
	var decoded []model.BotRecord
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return records, fmt.Errorf("%w: %w", model.ErrCollectionCorrupted, err)
	}
	return append(records, decoded...), nil
}

func EncodeCollection(records []model.BotRecord) ([]byte, error) {
	if records == nil {
		records = make([]model.BotRecord, 0)
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bot collection: %w", err)
	}
	return raw, nil
}
