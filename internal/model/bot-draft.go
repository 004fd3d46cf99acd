package model

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PredefinedQuery struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}

// CustomThemeID marks appearance that is not tied to a preset.
const CustomThemeID = "custom"

type Appearance struct {
	SelectedTheme   string     `json:"selectedTheme"`
	PrimaryColor    string     `json:"primaryColor"`
	BackgroundColor string     `json:"backgroundColor"`
	MainTextColor   string     `json:"mainTextColor"`
	BotMessageBg    string     `json:"botMessageBg"`
	BotMessageText  string     `json:"botMessageText"`
	UserMessageBg   string     `json:"userMessageBg"`
	UserMessageText string     `json:"userMessageText"`
	FontFamily      FontFamily `json:"fontFamily"`
	BorderRadius    int        `json:"borderRadius"`
}

// BotDraft is the in-progress bot configuration of one creation session.
type BotDraft struct {
	AgentName        string `json:"agentName"`
	AgentDescription string `json:"agentDescription"`

	WelcomeMessage string `json:"welcomeMessage"`
	Guidelines     string `json:"guidelines"`

	LLMProvider LLMProvider `json:"llmProvider"`
	LLMModel    string      `json:"llmModel"`
	MaxTokens   int         `json:"maxTokens"`
	Temperature float64     `json:"temperature"`

	Personality          Personality `json:"personality"`
	DefaultLanguage      Language    `json:"defaultLanguage"`
	HumanizeConversation bool        `json:"humanizeConversation"`

	EnableHelpDesk bool      `json:"enableHelpDesk"`
	FAQItems       []FAQItem `json:"faqItems"`

	EnableDataCollection bool `json:"enableDataCollection"`

	PredefinedQueries []PredefinedQuery `json:"predefinedQueries"`

	Appearance Appearance `json:"appearance"`
}

// Clone returns a copy that shares no list storage with d.
func (d BotDraft) Clone() BotDraft {
	d.FAQItems = CloneFAQItems(d.FAQItems)
	d.PredefinedQueries = ClonePredefinedQueries(d.PredefinedQueries)
	return d
}

func CloneFAQItems(items []FAQItem) []FAQItem {
	return append(make([]FAQItem, 0, len(items)), items...)
}

func ClonePredefinedQueries(queries []PredefinedQuery) []PredefinedQuery {
	return append(make([]PredefinedQuery, 0, len(queries)), queries...)
}
