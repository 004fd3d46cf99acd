package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/iamvkosarev/bot-designer/internal/app"
	"github.com/iamvkosarev/bot-designer/internal/draft"
	"github.com/iamvkosarev/bot-designer/internal/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ErrMissingDraftFile = errors.New("draft file is required")

func newBotsCommand(opts *rootOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "bots",
		Short: "List the saved bots",
		RunE: func(cmd *cobra.Command, args []string) error {
			bots, closeStorage, err := app.NewBotUsecase(opts.cfg)
			if err != nil {
				return err
			}
			defer closeWithLog(closeStorage)

			records, err := bots.ListBots(cmd.Context())
			if err != nil {
				return err
			}
			switch output {
			case "json":
				return printJSON(cmd, records)
			case "", "table":
				fmt.Fprintln(cmd.OutOrStdout(), renderBots(records))
				return nil
			default:
				return fmt.Errorf("invalid output format: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format; available options are 'table' and 'json'")
	return cmd
}

func renderBots(records []model.BotRecord) string {
	rows := make([][]string, 0)
	for _, record := range records {
		rows = append(
			rows, []string{
				record.ID, record.Name, string(record.Status), record.Settings.LLMModel,
				strconv.Itoa(len(record.Settings.FAQItems)), record.CreatedAt.Format("2006-01-02 15:04"),
			},
		)
	}
	return renderTable([]string{"ID", "Name", "Status", "Model", "FAQ", "Created"}, rows)
}

func newCreateCommand(opts *rootOptions) *cobra.Command {
	var draftPath string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate a YAML draft and save it as a new bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if draftPath == "" {
				return ErrMissingDraftFile
			}
			data, err := os.ReadFile(draftPath)
			if err != nil {
				return fmt.Errorf("failed to read draft file: %w", err)
			}
			file, err := draft.ParseFile(data)
			if err != nil {
				return err
			}
			session, err := file.NewSession()
			if err != nil {
				return err
			}

			bots, closeStorage, err := app.NewBotUsecase(opts.cfg)
			if err != nil {
				return err
			}
			defer closeWithLog(closeStorage)

			record, err := bots.Commit(cmd.Context(), session.Draft())
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
	cmd.Flags().StringVarP(&draftPath, "file", "f", "", "Path to the YAML draft")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func closeWithLog(closeFunc func() error) {
	if err := closeFunc(); err != nil {
		log.WithError(err).Error("failed to close bot storage")
	}
}
