package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(
			func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			},
		).
		Headers(headers...).
		Rows(rows...).
		String()
}

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the bot templates a draft can start from",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderTemplates())
			return nil
		},
	}
}

func renderTemplates() string {
	rows := make([][]string, 0)
	for _, template := range catalog.Templates() {
		rows = append(
			rows, []string{
				template.ID, template.Icon + " " + template.Name, template.Details.BotName,
				strings.Join(template.Tags, ", "),
			},
		)
	}
	return renderTable([]string{"ID", "Template", "Bot name", "Tags"}, rows)
}

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the appearance theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderThemes())
			return nil
		},
	}
}

func renderThemes() string {
	rows := make([][]string, 0)
	for _, theme := range catalog.Themes() {
		rows = append(
			rows, []string{
				theme.ID, theme.Name, theme.PrimaryColor, theme.BackgroundColor, theme.MainTextColor,
			},
		)
	}
	return renderTable([]string{"ID", "Name", "Primary", "Background", "Text"}, rows)
}

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the language models offered per provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderModels())
			return nil
		},
	}
}

func renderModels() string {
	rows := make([][]string, 0)
	for _, languageModel := range catalog.Models() {
		rows = append(
			rows, []string{languageModel.Name, string(languageModel.Provider), languageModel.APIModel},
		)
	}
	return renderTable([]string{"Model", "Provider", "API model"}, rows)
}
