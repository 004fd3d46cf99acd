package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/iamvkosarev/bot-designer/config"
	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDraftYAML = `
template: customer-support
fields:
  agentName: HelpDeskBot
  maxTokens: 9000
theme: aqua-splash
faq:
  - question: Do you ship abroad?
    answer: Yes, to most countries.
queries:
  - Track my order
`

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func useSQLiteStorage(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", config.StorageBackendSQLite)
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "bots.db"))
}

func TestCreateAndListBots(t *testing.T) {
	useSQLiteStorage(t)
	draftPath := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(draftPath, []byte(testDraftYAML), 0o600))

	out, err := executeCommand(t, "create", "-f", draftPath)
	require.NoError(t, err)

	var record model.BotRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, "HelpDeskBot", record.Name)
	assert.Equal(t, 4000, record.Settings.MaxTokens)
	assert.Len(t, record.Settings.FAQItems, 1)
	assert.Len(t, record.Settings.PredefinedQueries, 1)

	out, err = executeCommand(t, "bots", "-o", "json")
	require.NoError(t, err)
	var records []model.BotRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)

	out, err = executeCommand(t, "bots")
	require.NoError(t, err)
	assert.Contains(t, out, "HelpDeskBot")
}

func TestCreateRequiresFile(t *testing.T) {
	useSQLiteStorage(t)

	_, err := executeCommand(t, "create")
	assert.ErrorIs(t, err, ErrMissingDraftFile)
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	useSQLiteStorage(t)
	draftPath := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(draftPath, []byte("fields:\n  agentName: Bo\n"), 0o600))

	_, err := executeCommand(t, "create", "-f", draftPath)

	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "agentName", validationErr.Field)
}

func TestCatalogCommands(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", config.StorageBackendMemory)

	out, err := executeCommand(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "customer-support")

	out, err = executeCommand(t, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "#1f2937")

	out, err = executeCommand(t, "models", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Claude-3 Sonnet")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := executeCommand(t, "themes", "--log-level", "loud")
	assert.Error(t, err)
}
