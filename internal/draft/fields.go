package draft

type Field string

const (
	FieldAgentName            = Field("agentName")
	FieldAgentDescription     = Field("agentDescription")
	FieldWelcomeMessage       = Field("welcomeMessage")
	FieldGuidelines           = Field("guidelines")
	FieldLLMProvider          = Field("llmProvider")
	FieldLLMModel             = Field("llmModel")
	FieldMaxTokens            = Field("maxTokens")
	FieldTemperature          = Field("temperature")
	FieldPersonality          = Field("personality")
	FieldDefaultLanguage      = Field("defaultLanguage")
	FieldHumanizeConversation = Field("humanizeConversation")
	FieldEnableHelpDesk       = Field("enableHelpDesk")
	FieldEnableDataCollection = Field("enableDataCollection")
)

type AppearanceField string

const (
	AppearancePrimaryColor    = AppearanceField("primaryColor")
	AppearanceBackgroundColor = AppearanceField("backgroundColor")
	AppearanceMainTextColor   = AppearanceField("mainTextColor")
	AppearanceBotMessageBg    = AppearanceField("botMessageBg")
	AppearanceBotMessageText  = AppearanceField("botMessageText")
	AppearanceUserMessageBg   = AppearanceField("userMessageBg")
	AppearanceUserMessageText = AppearanceField("userMessageText")
	AppearanceFontFamily      = AppearanceField("fontFamily")
	AppearanceBorderRadius    = AppearanceField("borderRadius")
)

// Length limits are counted in runes of the trimmed value.
const (
	AgentNameMinLength        = 3
	AgentNameMaxLength        = 50
	AgentDescriptionMinLength = 10
	AgentDescriptionMaxLength = 500
	WelcomeMessageMinLength   = 20
	WelcomeMessageMaxLength   = 500
	GuidelinesMinLength       = 50
	GuidelinesMaxLength       = 10000

	MaxTokensMin   = 50
	MaxTokensMax   = 4000
	TemperatureMin = 0.0
	TemperatureMax = 2.0

	BorderRadiusMin = 0
	BorderRadiusMax = 20
)

func Fields() []Field {
	return []Field{
		FieldAgentName, FieldAgentDescription, FieldWelcomeMessage, FieldGuidelines,
		FieldLLMProvider, FieldLLMModel, FieldMaxTokens, FieldTemperature,
		FieldPersonality, FieldDefaultLanguage, FieldHumanizeConversation,
		FieldEnableHelpDesk, FieldEnableDataCollection,
	}
}

func AppearanceFields() []AppearanceField {
	return []AppearanceField{
		AppearancePrimaryColor, AppearanceBackgroundColor, AppearanceMainTextColor,
		AppearanceBotMessageBg, AppearanceBotMessageText, AppearanceUserMessageBg,
		AppearanceUserMessageText, AppearanceFontFamily, AppearanceBorderRadius,
	}
}
