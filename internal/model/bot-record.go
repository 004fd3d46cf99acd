package model

import "time"

type BotStatus string

const (
	BotStatusDraft = BotStatus("draft")
)

type NodeType string

const (
	NodeTypeStart   = NodeType("start")
	NodeTypeMessage = NodeType("message")
)

type NodePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type NodeData struct {
	Label   string `json:"label"`
	Message string `json:"message,omitempty"`
}

type FlowNode struct {
	ID          string       `json:"id"`
	Type        NodeType     `json:"type"`
	Position    NodePosition `json:"position"`
	Data        NodeData     `json:"data"`
	Connections []string     `json:"connections"`
}

type FlowConnection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Flow struct {
	Nodes       []FlowNode       `json:"nodes"`
	Connections []FlowConnection `json:"connections"`
}

type RecordAppearance struct {
	PrimaryColor    string     `json:"primaryColor"`
	BackgroundColor string     `json:"backgroundColor"`
	TextColor       string     `json:"textColor"`
	FontFamily      FontFamily `json:"fontFamily"`
	BorderRadius    int        `json:"borderRadius"`
}

type BotSettings struct {
	WelcomeMessage        string            `json:"welcomeMessage"`
	FallbackMessage       string            `json:"fallbackMessage"`
	EnableTypingIndicator bool              `json:"enableTypingIndicator"`
	ResponseDelay         int               `json:"responseDelay"`
	LLMProvider           LLMProvider       `json:"llmProvider"`
	LLMModel              string            `json:"llmModel"`
	MaxTokens             int               `json:"maxTokens"`
	Temperature           float64           `json:"temperature"`
	Personality           Personality       `json:"personality"`
	DefaultLanguage       Language          `json:"defaultLanguage"`
	HumanizeConversation  bool              `json:"humanizeConversation"`
	EnableHelpDesk        bool              `json:"enableHelpDesk"`
	FAQItems              []FAQItem         `json:"faqItems"`
	EnableDataCollection  bool              `json:"enableDataCollection"`
	PredefinedQueries     []PredefinedQuery `json:"predefinedQueries"`
	Guidelines            string            `json:"guidelines"`
}

// BotRecord is the persisted bot definition.
type BotRecord struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      BotStatus        `json:"status"`
	Flow        Flow             `json:"flow"`
	Appearance  RecordAppearance `json:"appearance"`
	Settings    BotSettings      `json:"settings"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
