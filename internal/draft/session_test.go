package draft

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequenceIDs(ids ...string) func() string {
	next := 0
	return func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}
}

func TestNewSessionDefaults(t *testing.T) {
	d := NewSession().Draft()

	assert.Equal(t, "Verbly-Bot", d.AgentName)
	assert.Equal(t, model.LLMProviderOpenAI, d.LLMProvider)
	assert.Equal(t, "GPT-3.5 Turbo", d.LLMModel)
	assert.Equal(t, 150, d.MaxTokens)
	assert.Equal(t, 0.2, d.Temperature)
	assert.Equal(t, catalog.DefaultThemeID, d.Appearance.SelectedTheme)
	assert.Equal(t, "#7a5af5", d.Appearance.PrimaryColor)
	assert.Equal(t, model.FontInter, d.Appearance.FontFamily)
	assert.Equal(t, 8, d.Appearance.BorderRadius)
	assert.Empty(t, d.FAQItems)
	assert.Empty(t, d.PredefinedQueries)
}

func TestNewSessionFromTemplate(t *testing.T) {
	template, err := catalog.TemplateByID("customer-support")
	require.NoError(t, err)

	d := NewSessionFromTemplate(template).Draft()

	assert.Equal(t, "SupportBot", d.AgentName)
	assert.Equal(t, template.Details.BotDescription, d.AgentDescription)
	assert.Equal(t, template.Details.GreetingMessage, d.WelcomeMessage)
	assert.Contains(t, d.Guidelines, "1. Always be polite, patient, and professional")
	assert.Equal(t, model.LLMProviderOpenAI, d.LLMProvider)
	assert.NoError(t, Validate(d))
}

func TestUpdateField(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		value   string
		check   func(t *testing.T, d model.BotDraft)
		wantErr error
	}{
		{
			name:  "agent name is stored as typed",
			field: FieldAgentName,
			value: " SupportBot ",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, " SupportBot ", d.AgentName) },
		},
		{
			name:  "agent name is cut to its max length",
			field: FieldAgentName,
			value: strings.Repeat("я", 60),
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, strings.Repeat("я", 50), d.AgentName) },
		},
		{
			name:  "guidelines below minimum are accepted",
			field: FieldGuidelines,
			value: "short",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, "short", d.Guidelines) },
		},
		{
			name:  "provider is matched case-insensitively",
			field: FieldLLMProvider,
			value: "anthropic",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, model.LLMProviderAnthropic, d.LLMProvider) },
		},
		{
			name:  "max tokens below range is clamped",
			field: FieldMaxTokens,
			value: "10",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, MaxTokensMin, d.MaxTokens) },
		},
		{
			name:  "max tokens above range is clamped",
			field: FieldMaxTokens,
			value: "5000",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, MaxTokensMax, d.MaxTokens) },
		},
		{
			name:  "temperature is clamped",
			field: FieldTemperature,
			value: "3.5",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, 2.0, d.Temperature) },
		},
		{
			name:  "flag is parsed",
			field: FieldEnableHelpDesk,
			value: "true",
			check: func(t *testing.T, d model.BotDraft) { assert.True(t, d.EnableHelpDesk) },
		},
		{
			name:  "unknown personality is kept for the validator",
			field: FieldPersonality,
			value: "Grumpy",
			check: func(t *testing.T, d model.BotDraft) { assert.Equal(t, model.Personality("Grumpy"), d.Personality) },
		},
		{
			name:    "non numeric max tokens",
			field:   FieldMaxTokens,
			value:   "many",
			wantErr: ErrInvalidFieldValue,
		},
		{
			name:    "temperature that is not a number",
			field:   FieldTemperature,
			value:   "NaN",
			wantErr: ErrInvalidFieldValue,
		},
		{
			name:    "unknown field",
			field:   Field("avatar"),
			value:   "x",
			wantErr: ErrUnknownField,
		},
	}
	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				s := NewSession()
				err := s.UpdateField(tt.field, tt.value)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Equal(t, DefaultDraft(), s.Draft())
					return
				}
				require.NoError(t, err)
				tt.check(t, s.Draft())
			},
		)
	}
}

func TestUpdateAppearanceFieldKeepsSelectedTheme(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectTheme("amber-glow"))

	require.NoError(t, s.UpdateAppearanceField(AppearancePrimaryColor, "#123456"))
	require.NoError(t, s.UpdateAppearanceField(AppearanceBorderRadius, "99"))

	appearance := s.Draft().Appearance
	assert.Equal(t, "amber-glow", appearance.SelectedTheme)
	assert.Equal(t, "#123456", appearance.PrimaryColor)
	assert.Equal(t, "#fef3c7", appearance.BackgroundColor)
	assert.Equal(t, BorderRadiusMax, appearance.BorderRadius)

	assert.ErrorIs(t, s.UpdateAppearanceField(AppearanceField("shadow"), "1"), ErrUnknownField)
}

func TestSelectTheme(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.UpdateAppearanceField(AppearanceFontFamily, "Roboto"))

	require.NoError(t, s.SelectTheme("midnight-violet"))
	once := s.Draft().Appearance
	require.NoError(t, s.SelectTheme("midnight-violet"))
	twice := s.Draft().Appearance

	assert.Equal(t, once, twice)
	assert.Equal(t, "midnight-violet", once.SelectedTheme)
	assert.Equal(t, "#1f2937", once.BackgroundColor)
	assert.Equal(t, "#374151", once.BotMessageBg)
	assert.Equal(t, model.FontRoboto, once.FontFamily)
	assert.Equal(t, 8, once.BorderRadius)
}

func TestSelectUnknownTheme(t *testing.T) {
	s := NewSession()
	before := s.Draft()

	err := s.SelectTheme("neon-nights")

	assert.ErrorIs(t, err, catalog.ErrThemeNotFound)
	assert.Equal(t, before, s.Draft())
}

func TestAddFAQItem(t *testing.T) {
	s := NewSession()
	s.StageFAQQuestion("How do I reset my password?")
	s.StageFAQAnswer("   ")

	_, err := s.AddFAQItem(s.Staging().FAQQuestion, s.Staging().FAQAnswer)
	assert.ErrorIs(t, err, ErrEmptyFAQItem)
	assert.Empty(t, s.Draft().FAQItems)
	assert.Equal(t, "How do I reset my password?", s.Staging().FAQQuestion)

	s.StageFAQAnswer("  Use the link on the login page.  ")
	item, err := s.AddFAQItem(s.Staging().FAQQuestion, s.Staging().FAQAnswer)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Use the link on the login page.", item.Answer)
	assert.Equal(t, []model.FAQItem{item}, s.Draft().FAQItems)
	assert.Equal(t, Staging{}, s.Staging())
}

func TestAddedItemsGetUniqueIDs(t *testing.T) {
	s := NewSession()
	s.newID = sequenceIDs("a", "a", "b", "b", "c")

	faq, err := s.AddFAQItem("q", "a")
	require.NoError(t, err)
	query, err := s.AddPredefinedQuery("What are your opening hours?")
	require.NoError(t, err)
	second, err := s.AddFAQItem("q2", "a2")
	require.NoError(t, err)

	assert.Equal(t, "a", faq.ID)
	assert.Equal(t, "b", query.ID)
	assert.Equal(t, "c", second.ID)
}

func TestManyItemsNeverShareIDs(t *testing.T) {
	s := NewSession()
	for i := 0; i < 100; i++ {
		_, err := s.AddFAQItem(fmt.Sprintf("q%d", i), "a")
		require.NoError(t, err)
	}
	seen := make(map[string]struct{})
	for _, item := range s.Draft().FAQItems {
		_, dup := seen[item.ID]
		require.False(t, dup, "duplicate id %s", item.ID)
		seen[item.ID] = struct{}{}
	}
}

func TestRemoveFAQItem(t *testing.T) {
	s := NewSession()
	first, err := s.AddFAQItem("q1", "a1")
	require.NoError(t, err)
	second, err := s.AddFAQItem("q2", "a2")
	require.NoError(t, err)

	assert.True(t, s.RemoveFAQItem(first.ID))
	assert.False(t, s.RemoveFAQItem(first.ID))
	assert.False(t, s.RemoveFAQItem("missing"))
	assert.Equal(t, []model.FAQItem{second}, s.Draft().FAQItems)
}

func TestPredefinedQueries(t *testing.T) {
	s := NewSession()
	s.StageQuery("  ")
	_, err := s.AddPredefinedQuery(s.Staging().Query)
	assert.ErrorIs(t, err, ErrEmptyPredefinedQuery)

	s.StageQuery(" Track my order ")
	query, err := s.AddPredefinedQuery(s.Staging().Query)
	require.NoError(t, err)
	assert.Equal(t, "Track my order", query.Query)
	assert.Empty(t, s.Staging().Query)

	assert.True(t, s.RemovePredefinedQuery(query.ID))
	assert.False(t, s.RemovePredefinedQuery(query.ID))
	assert.Empty(t, s.Draft().PredefinedQueries)
}

func TestDraftIsACopy(t *testing.T) {
	s := NewSession()
	_, err := s.AddFAQItem("q", "a")
	require.NoError(t, err)

	d := s.Draft()
	d.FAQItems[0].Question = "changed"
	d.AgentName = "changed"

	assert.Equal(t, "q", s.Draft().FAQItems[0].Question)
	assert.Equal(t, "Verbly-Bot", s.Draft().AgentName)
}
