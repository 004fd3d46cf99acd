package catalog

import (
	"errors"

	"github.com/iamvkosarev/bot-designer/internal/model"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

type ThemePreset struct {
	ID              string
	Name            string
	PrimaryColor    string
	BackgroundColor string
	MainTextColor   string
	BotMessageBg    string
	BotMessageText  string
	UserMessageBg   string
	UserMessageText string
}

const DefaultThemeID = "lavender-dream"

var themePresets = []ThemePreset{
	{
		ID:              "lavender-dream",
		Name:            "Lavender Dream",
		PrimaryColor:    "#7a5af5",
		BackgroundColor: "#ffffff",
		MainTextColor:   "#000000",
		BotMessageBg:    "#f3f4f6",
		BotMessageText:  "#000000",
		UserMessageBg:   "#7a5af5",
		UserMessageText: "#ffffff",
	},
	{
		ID:              "midnight-violet",
		Name:            "Midnight Violet",
		PrimaryColor:    "#7c3aed",
		BackgroundColor: "#1f2937",
		MainTextColor:   "#ffffff",
		BotMessageBg:    "#374151",
		BotMessageText:  "#ffffff",
		UserMessageBg:   "#7c3aed",
		UserMessageText: "#ffffff",
	},
	{
		ID:              "amber-glow",
		Name:            "Amber Glow",
		PrimaryColor:    "#f59e0b",
		BackgroundColor: "#fef3c7",
		MainTextColor:   "#92400e",
		BotMessageBg:    "#fef3c7",
		BotMessageText:  "#92400e",
		UserMessageBg:   "#f59e0b",
		UserMessageText: "#ffffff",
	},
	{
		ID:              "royal-indigo",
		Name:            "Royal Indigo",
		PrimaryColor:    "#6366f1",
		BackgroundColor: "#e0e7ff",
		MainTextColor:   "#3730a3",
		BotMessageBg:    "#e0e7ff",
		BotMessageText:  "#3730a3",
		UserMessageBg:   "#6366f1",
		UserMessageText: "#ffffff",
	},
	{
		ID:              "aqua-splash",
		Name:            "Aqua Splash",
		PrimaryColor:    "#06b6d4",
		BackgroundColor: "#cffafe",
		MainTextColor:   "#0e7490",
		BotMessageBg:    "#cffafe",
		BotMessageText:  "#0e7490",
		UserMessageBg:   "#06b6d4",
		UserMessageText: "#ffffff",
	},
	{
		ID:              model.CustomThemeID,
		Name:            "Custom",
		PrimaryColor:    "#7a5af5",
		BackgroundColor: "#ffffff",
		MainTextColor:   "#000000",
		BotMessageBg:    "#f3f4f6",
		BotMessageText:  "#000000",
		UserMessageBg:   "#7a5af5",
		UserMessageText: "#ffffff",
	},
}

func Themes() []ThemePreset {
	return append([]ThemePreset(nil), themePresets...)
}

func ThemeByID(id string) (ThemePreset, error) {
	for _, theme := range themePresets {
		if theme.ID == id {
			return theme, nil
		}
	}
	return ThemePreset{}, ErrThemeNotFound
}

// ApplyTo copies the preset colors into appearance and marks the preset as selected.
// Font and border radius are left alone.
func (t ThemePreset) ApplyTo(appearance model.Appearance) model.Appearance {
	appearance.SelectedTheme = t.ID
	appearance.PrimaryColor = t.PrimaryColor
	appearance.BackgroundColor = t.BackgroundColor
	appearance.MainTextColor = t.MainTextColor
	appearance.BotMessageBg = t.BotMessageBg
	appearance.BotMessageText = t.BotMessageText
	appearance.UserMessageBg = t.UserMessageBg
	appearance.UserMessageText = t.UserMessageText
	return appearance
}
