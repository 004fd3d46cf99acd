package draft

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/iamvkosarev/bot-designer/internal/model"
)

type lengthRule struct {
	field Field
	value func(d model.BotDraft) string
	limit int
	label string
}

// Minimum lengths are checked first, in form order, so the first reported
// problem is the first one the user meets.
var minLengthRules = []lengthRule{
	{FieldAgentName, func(d model.BotDraft) string { return d.AgentName }, AgentNameMinLength, "Agent name"},
	{
		FieldAgentDescription, func(d model.BotDraft) string { return d.AgentDescription }, AgentDescriptionMinLength,
		"Agent description",
	},
	{
		FieldWelcomeMessage, func(d model.BotDraft) string { return d.WelcomeMessage }, WelcomeMessageMinLength,
		"Welcome message",
	},
	{FieldGuidelines, func(d model.BotDraft) string { return d.Guidelines }, GuidelinesMinLength, "Agent guidelines"},
}

var maxLengthRules = []lengthRule{
	{FieldAgentName, func(d model.BotDraft) string { return d.AgentName }, AgentNameMaxLength, "Agent name"},
	{
		FieldAgentDescription, func(d model.BotDraft) string { return d.AgentDescription }, AgentDescriptionMaxLength,
		"Agent description",
	},
	{
		FieldWelcomeMessage, func(d model.BotDraft) string { return d.WelcomeMessage }, WelcomeMessageMaxLength,
		"Welcome message",
	},
	{FieldGuidelines, func(d model.BotDraft) string { return d.Guidelines }, GuidelinesMaxLength, "Agent guidelines"},
}

// Validate returns the first constraint d violates as a *model.ValidationError, or nil.
func Validate(d model.BotDraft) error {
	for _, rule := range minLengthRules {
		if trimmedLength(rule.value(d)) < rule.limit {
			return invalid(rule.field, fmt.Sprintf("%s must be at least %d characters long", rule.label, rule.limit))
		}
	}
	for _, rule := range maxLengthRules {
		if trimmedLength(rule.value(d)) > rule.limit {
			return invalid(rule.field, fmt.Sprintf("%s must be at most %d characters long", rule.label, rule.limit))
		}
	}
	if d.MaxTokens < MaxTokensMin || d.MaxTokens > MaxTokensMax {
		return invalid(FieldMaxTokens, fmt.Sprintf("Max tokens must be between %d and %d", MaxTokensMin, MaxTokensMax))
	}
	if !(d.Temperature >= TemperatureMin && d.Temperature <= TemperatureMax) {
		return invalid(
			FieldTemperature, fmt.Sprintf("Temperature must be between %.1f and %.1f", TemperatureMin, TemperatureMax),
		)
	}
	if !d.LLMProvider.Valid() {
		return invalid(FieldLLMProvider, fmt.Sprintf("Unsupported LLM provider %q", d.LLMProvider))
	}
	if strings.TrimSpace(d.LLMModel) == "" {
		return invalid(FieldLLMModel, "LLM model must be selected")
	}
	if !d.Personality.Valid() {
		return invalid(FieldPersonality, fmt.Sprintf("Unsupported personality %q", d.Personality))
	}
	if !d.DefaultLanguage.Valid() {
		return invalid(FieldDefaultLanguage, fmt.Sprintf("Unsupported language %q", d.DefaultLanguage))
	}
	return validateAppearance(d.Appearance)
}

func validateAppearance(appearance model.Appearance) error {
	if _, err := catalog.ThemeByID(appearance.SelectedTheme); err != nil {
		return invalid(Field("appearance.selectedTheme"), fmt.Sprintf("Unknown theme %q", appearance.SelectedTheme))
	}
	if !appearance.FontFamily.Valid() {
		return invalid(
			Field("appearance."+AppearanceFontFamily), fmt.Sprintf("Unsupported font %q", appearance.FontFamily),
		)
	}
	if appearance.BorderRadius < BorderRadiusMin || appearance.BorderRadius > BorderRadiusMax {
		return invalid(
			Field("appearance."+AppearanceBorderRadius),
			fmt.Sprintf("Border radius must be between %d and %d", BorderRadiusMin, BorderRadiusMax),
		)
	}
	return nil
}

func invalid(field Field, message string) error {
	return &model.ValidationError{
		Field:   string(field),
		Message: message,
	}
}

func trimmedLength(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}
