package draft

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/iamvkosarev/bot-designer/internal/model"
)

var (
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidFieldValue    = errors.New("invalid field value")
	ErrEmptyFAQItem         = errors.New("faq question and answer must not be empty")
	ErrEmptyPredefinedQuery = errors.New("predefined query must not be empty")
)

// Staging holds list inputs that were typed but not added yet.
type Staging struct {
	FAQQuestion string
	FAQAnswer   string
	Query       string
}

// Session owns one BotDraft for the lifetime of a creation session.
// It is not safe for concurrent use.
type Session struct {
	draft   model.BotDraft
	staging Staging
	newID   func() string
}

func NewSession() *Session {
	return &Session{
		draft: DefaultDraft(),
		newID: uuid.NewString,
	}
}

// NewSessionFromTemplate seeds the identity and prompt fields from template;
// every other field keeps its default.
func NewSessionFromTemplate(template catalog.BotTemplate) *Session {
	s := NewSession()
	s.draft.AgentName = template.Details.BotName
	s.draft.AgentDescription = template.Details.BotDescription
	s.draft.WelcomeMessage = template.Details.GreetingMessage
	s.draft.Guidelines = template.GuidelinesText()
	return s
}

func DefaultDraft() model.BotDraft {
	theme, _ := catalog.ThemeByID(catalog.DefaultThemeID)
	return model.BotDraft{
		AgentName:         "Verbly-Bot",
		AgentDescription:  "This is a bot description used for your convenience",
		WelcomeMessage:    "Hello from i'm an ai agent, how can I assist you today?",
		Guidelines:        "Write the prompt for the agent",
		LLMProvider:       model.LLMProviderOpenAI,
		LLMModel:          "GPT-3.5 Turbo",
		MaxTokens:         150,
		Temperature:       0.2,
		Personality:       model.PersonalityCasual,
		DefaultLanguage:   model.LanguageEnglish,
		FAQItems:          make([]model.FAQItem, 0),
		PredefinedQueries: make([]model.PredefinedQuery, 0),
		Appearance: theme.ApplyTo(
			model.Appearance{
				FontFamily:   model.FontInter,
				BorderRadius: 8,
			},
		),
	}
}

func (s *Session) Draft() model.BotDraft {
	return s.draft.Clone()
}

func (s *Session) Staging() Staging {
	return s.staging
}

// UpdateField replaces one top-level field from its textual form. Values are not
// validated; strings are cut and numbers clamped to the limits of their input widgets.
func (s *Session) UpdateField(field Field, value string) error {
	switch field {
	case FieldAgentName:
		s.draft.AgentName = truncate(value, AgentNameMaxLength)
	case FieldAgentDescription:
		s.draft.AgentDescription = truncate(value, AgentDescriptionMaxLength)
	case FieldWelcomeMessage:
		s.draft.WelcomeMessage = truncate(value, WelcomeMessageMaxLength)
	case FieldGuidelines:
		s.draft.Guidelines = truncate(value, GuidelinesMaxLength)
	case FieldLLMProvider:
		s.draft.LLMProvider = model.ParseLLMProvider(value)
	case FieldLLMModel:
		s.draft.LLMModel = strings.TrimSpace(value)
	case FieldMaxTokens:
		maxTokens, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidFieldValue, field, err)
		}
		s.draft.MaxTokens = min(max(maxTokens, MaxTokensMin), MaxTokensMax)
	case FieldTemperature:
		temperature, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidFieldValue, field, err)
		}
		if math.IsNaN(temperature) {
			return fmt.Errorf("%w %s: not a number", ErrInvalidFieldValue, field)
		}
		s.draft.Temperature = min(max(temperature, TemperatureMin), TemperatureMax)
	case FieldPersonality:
		s.draft.Personality = model.ParsePersonality(value)
	case FieldDefaultLanguage:
		s.draft.DefaultLanguage = model.ParseLanguage(value)
	case FieldHumanizeConversation, FieldEnableHelpDesk, FieldEnableDataCollection:
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidFieldValue, field, err)
		}
		switch field {
		case FieldHumanizeConversation:
			s.draft.HumanizeConversation = enabled
		case FieldEnableHelpDesk:
			s.draft.EnableHelpDesk = enabled
		default:
			s.draft.EnableDataCollection = enabled
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// UpdateAppearanceField replaces one appearance value. The selected theme is kept
// even when a color no longer matches it.
func (s *Session) UpdateAppearanceField(field AppearanceField, value string) error {
	appearance := &s.draft.Appearance
	value = strings.TrimSpace(value)
	switch field {
	case AppearancePrimaryColor:
		appearance.PrimaryColor = value
	case AppearanceBackgroundColor:
		appearance.BackgroundColor = value
	case AppearanceMainTextColor:
		appearance.MainTextColor = value
	case AppearanceBotMessageBg:
		appearance.BotMessageBg = value
	case AppearanceBotMessageText:
		appearance.BotMessageText = value
	case AppearanceUserMessageBg:
		appearance.UserMessageBg = value
	case AppearanceUserMessageText:
		appearance.UserMessageText = value
	case AppearanceFontFamily:
		appearance.FontFamily = model.ParseFontFamily(value)
	case AppearanceBorderRadius:
		radius, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrInvalidFieldValue, field, err)
		}
		appearance.BorderRadius = min(max(radius, BorderRadiusMin), BorderRadiusMax)
	default:
		return fmt.Errorf("%w: appearance.%s", ErrUnknownField, field)
	}
	return nil
}

// SelectTheme forks the preset colors into the draft. An unknown id leaves the draft as is.
func (s *Session) SelectTheme(themeID string) error {
	theme, err := catalog.ThemeByID(themeID)
	if err != nil {
		return fmt.Errorf("failed to select theme %q: %w", themeID, err)
	}
	s.draft.Appearance = theme.ApplyTo(s.draft.Appearance)
	return nil
}

func (s *Session) StageFAQQuestion(question string) {
	s.staging.FAQQuestion = question
}

func (s *Session) StageFAQAnswer(answer string) {
	s.staging.FAQAnswer = answer
}

func (s *Session) StageQuery(query string) {
	s.staging.Query = query
}

func (s *Session) AddFAQItem(question, answer string) (model.FAQItem, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return model.FAQItem{}, ErrEmptyFAQItem
	}
	item := model.FAQItem{
		ID:       s.freshID(),
		Question: question,
		Answer:   answer,
	}
	s.draft.FAQItems = append(s.draft.FAQItems, item)
	s.staging.FAQQuestion = ""
	s.staging.FAQAnswer = ""
	return item, nil
}

func (s *Session) RemoveFAQItem(id string) bool {
	for i, item := range s.draft.FAQItems {
		if item.ID == id {
			s.draft.FAQItems = append(s.draft.FAQItems[:i:i], s.draft.FAQItems[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Session) AddPredefinedQuery(query string) (model.PredefinedQuery, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.PredefinedQuery{}, ErrEmptyPredefinedQuery
	}
	item := model.PredefinedQuery{
		ID:    s.freshID(),
		Query: query,
	}
	s.draft.PredefinedQueries = append(s.draft.PredefinedQueries, item)
	s.staging.Query = ""
	return item, nil
}

func (s *Session) RemovePredefinedQuery(id string) bool {
	for i, item := range s.draft.PredefinedQueries {
		if item.ID == id {
			s.draft.PredefinedQueries = append(s.draft.PredefinedQueries[:i:i], s.draft.PredefinedQueries[i+1:]...)
			return true
		}
	}
	return false
}

// freshID returns an id not used by any item of either list.
func (s *Session) freshID() string {
	for {
		id := s.newID()
		if !s.hasItemID(id) {
			return id
		}
	}
}

func (s *Session) hasItemID(id string) bool {
	for _, item := range s.draft.FAQItems {
		if item.ID == id {
			return true
		}
	}
	for _, item := range s.draft.PredefinedQueries {
		if item.ID == id {
			return true
		}
	}
	return false
}

func truncate(value string, maxLength int) string {
	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength])
}
