package catalog

import (
	"strings"
	"testing"

	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByID(t *testing.T) {
	theme, err := ThemeByID("midnight-violet")
	require.NoError(t, err)
	assert.Equal(t, "#1f2937", theme.BackgroundColor)

	_, err = ThemeByID("neon")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestThemesAreCopied(t *testing.T) {
	themes := Themes()
	require.Len(t, themes, 6)
	themes[0].Name = "changed"

	assert.NotEqual(t, "changed", Themes()[0].Name)
}

func TestApplyToKeepsFontAndRadius(t *testing.T) {
	theme, err := ThemeByID(DefaultThemeID)
	require.NoError(t, err)

	appearance := theme.ApplyTo(
		model.Appearance{
			SelectedTheme: "midnight-violet",
			FontFamily:    model.FontRoboto,
			BorderRadius:  12,
		},
	)

	assert.Equal(t, DefaultThemeID, appearance.SelectedTheme)
	assert.Equal(t, theme.PrimaryColor, appearance.PrimaryColor)
	assert.Equal(t, theme.UserMessageText, appearance.UserMessageText)
	assert.Equal(t, model.FontRoboto, appearance.FontFamily)
	assert.Equal(t, 12, appearance.BorderRadius)
}

func TestTemplateByID(t *testing.T) {
	template, err := TemplateByID("customer-support")
	require.NoError(t, err)
	assert.Equal(t, "SupportBot", template.Details.BotName)

	_, err = TemplateByID("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Len(t, Templates(), 6)
}

func TestGuidelinesText(t *testing.T) {
	template, err := TemplateByID("customer-support")
	require.NoError(t, err)

	text := template.GuidelinesText()

	assert.True(t, strings.HasPrefix(text, "As a customer support bot, your primary goal"))
	assert.Contains(t, text, "\n1. "+template.Details.Guidelines[0])
	assert.Contains(t, text, "\n"+"2. "+template.Details.Guidelines[1])
}

func TestModels(t *testing.T) {
	assert.Len(t, Models(), 5)
	assert.Len(t, ModelsForProvider(model.LLMProviderAnthropic), 2)
	assert.Empty(t, ModelsForProvider(model.LLMProviderCohere))

	gpt4, ok := ModelByName("GPT-4")
	require.True(t, ok)
	assert.Equal(t, "gpt-4", gpt4.APIModel)

	assert.True(t, IsModelCompatible(model.LLMProviderOpenAI, "GPT-4 Turbo"))
	assert.False(t, IsModelCompatible(model.LLMProviderAnthropic, "GPT-4"))
	assert.False(t, IsModelCompatible(model.LLMProviderOpenAI, "unknown"))
}
