package draft

import (
	"time"

	"github.com/google/uuid"
	"github.com/iamvkosarev/bot-designer/internal/model"
)

const (
	FallbackMessage = "I'm sorry, I didn't understand that. Could you please rephrase?"
	ResponseDelayMS = 1000

	StartNodeID   = "start"
	WelcomeNodeID = "welcome"
)

type Assembler struct {
	NewID func() string
	Now   func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{
		NewID: NewBotID,
		Now:   time.Now,
	}
}

func NewBotID() string {
	return "bot-" + uuid.NewString()
}

// Assemble builds a record with a fresh id stamped with the current time.
// d must already have passed Validate.
func (a *Assembler) Assemble(d model.BotDraft) model.BotRecord {
	return Assemble(d, a.NewID(), a.Now())
}

// Assemble is the deterministic core of Assembler: the same draft, id and time
// always produce the same record.
func Assemble(d model.BotDraft, id string, now time.Time) model.BotRecord {
	now = now.UTC()
	return model.BotRecord{
		ID:          id,
		Name:        d.AgentName,
		Description: d.AgentDescription,
		Status:      model.BotStatusDraft,
		Flow:        welcomeFlow(d.WelcomeMessage),
		Appearance: model.RecordAppearance{
			PrimaryColor:    d.Appearance.PrimaryColor,
			BackgroundColor: d.Appearance.BackgroundColor,
			TextColor:       d.Appearance.MainTextColor,
			FontFamily:      d.Appearance.FontFamily,
			BorderRadius:    d.Appearance.BorderRadius,
		},
		Settings: model.BotSettings{
			WelcomeMessage:        d.WelcomeMessage,
			FallbackMessage:       FallbackMessage,
			EnableTypingIndicator: true,
			ResponseDelay:         ResponseDelayMS,
			LLMProvider:           d.LLMProvider,
			LLMModel:              d.LLMModel,
			MaxTokens:             d.MaxTokens,
			Temperature:           d.Temperature,
			Personality:           d.Personality,
			DefaultLanguage:       d.DefaultLanguage,
			HumanizeConversation:  d.HumanizeConversation,
			EnableHelpDesk:        d.EnableHelpDesk,
			FAQItems:              model.CloneFAQItems(d.FAQItems),
			EnableDataCollection:  d.EnableDataCollection,
			PredefinedQueries:     model.ClonePredefinedQueries(d.PredefinedQueries),
			Guidelines:            d.Guidelines,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func welcomeFlow(welcomeMessage string) model.Flow {
	return model.Flow{
		Nodes: []model.FlowNode{
			{
				ID:          StartNodeID,
				Type:        model.NodeTypeStart,
				Position:    model.NodePosition{X: 100, Y: 100},
				Data:        model.NodeData{Label: "Start"},
				Connections: []string{WelcomeNodeID},
			},
			{
				ID:          WelcomeNodeID,
				Type:        model.NodeTypeMessage,
				Position:    model.NodePosition{X: 300, Y: 100},
				Data:        model.NodeData{Label: "Welcome Message", Message: welcomeMessage},
				Connections: make([]string, 0),
			},
		},
		Connections: []model.FlowConnection{
			{From: StartNodeID, To: WelcomeNodeID},
		},
	}
}
