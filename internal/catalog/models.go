package catalog

import (
	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/sashabaranov/go-openai"
)

// LanguageModel is a model offered in the designer. Name is what drafts store,
// APIModel is the identifier the provider's API expects.
type LanguageModel struct {
	Name     string
	Provider model.LLMProvider
	APIModel string
}

var languageModels = []LanguageModel{
	{Name: "GPT-3.5 Turbo", Provider: model.LLMProviderOpenAI, APIModel: openai.GPT3Dot5Turbo},
	{Name: "GPT-4", Provider: model.LLMProviderOpenAI, APIModel: openai.GPT4},
	{Name: "GPT-4 Turbo", Provider: model.LLMProviderOpenAI, APIModel: openai.GPT4Turbo},
	{Name: "Claude-3 Haiku", Provider: model.LLMProviderAnthropic, APIModel: "claude-3-haiku-20240307"},
	{Name: "Claude-3 Sonnet", Provider: model.LLMProviderAnthropic, APIModel: "claude-3-sonnet-20240229"},
}

func Models() []LanguageModel {
	return append([]LanguageModel(nil), languageModels...)
}

func ModelsForProvider(provider model.LLMProvider) []LanguageModel {
	models := make([]LanguageModel, 0)
	for _, languageModel := range languageModels {
		if languageModel.Provider == provider {
			models = append(models, languageModel)
		}
	}
	return models
}

func ModelByName(name string) (LanguageModel, bool) {
	for _, languageModel := range languageModels {
		if languageModel.Name == name {
			return languageModel, true
		}
	}
	return LanguageModel{}, false
}

// IsModelCompatible reports whether the named model belongs to provider.
// Models missing from the catalog are never compatible.
func IsModelCompatible(provider model.LLMProvider, name string) bool {
	languageModel, ok := ModelByName(name)
	return ok && languageModel.Provider == provider
}
