package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/iamvkosarev/bot-designer/config"
	"github.com/iamvkosarev/bot-designer/internal/catalog"
	"github.com/iamvkosarev/bot-designer/internal/draft"
	"github.com/iamvkosarev/bot-designer/internal/model"
	"github.com/iamvkosarev/bot-designer/pkg/local"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
)

const (
	CommandStart     = "start"
	CommandHelp      = "help"
	CommandNew       = "new"
	CommandTemplates = "templates"
	CommandThemes    = "themes"
	CommandSet       = "set"
	CommandColor     = "color"
	CommandFAQ       = "faq"
	CommandUnFAQ     = "unfaq"
	CommandQuery     = "query"
	CommandUnQuery   = "unquery"
	CommandDraft     = "draft"
	CommandSave      = "save"
	CommandBots      = "bots"
	CommandCancel    = "cancel"

	CallbackTemplate    = "template"
	CallbackUseTemplate = "use"
	CallbackTheme       = "theme"

	maxButtonsInRow = 2
)

// TelegramBot is the subset of *api.BotAPI the wizard talks to.
type TelegramBot interface {
	Send(c api.Chattable) (api.Message, error)
	Request(c api.Chattable) (*api.APIResponse, error)
	GetUpdatesChan(config api.UpdateConfig) api.UpdatesChannel
	StopReceivingUpdates()
}

type TelegramUsecaseDeps struct {
	Bot      TelegramBot
	Bots     *BotUsecase
	Sessions *SessionUsecase
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	cfg          config.Telegram
	sessionCfg   config.Session
	allowedUsers map[int64]struct{}
}

func NewTelegramUsecase(
	cfg config.Telegram, sessionCfg config.Session, deps TelegramUsecaseDeps,
) (*TelegramUsecase, error) {
	allowedUsers := make(map[int64]struct{})
	for _, userID := range cfg.AllowedTelegramIDs {
		allowedUsers[userID] = struct{}{}
	}

	_, err := deps.Bot.Request(
		api.NewSetMyCommands(
			[]api.BotCommand{
				{Command: CommandNew, Description: "Start a draft from scratch"},
				{Command: CommandTemplates, Description: "Start a draft from a template"},
				{Command: CommandThemes, Description: "Pick a color theme"},
				{Command: CommandDraft, Description: "Show the current draft"},
				{Command: CommandSave, Description: "Validate and save the bot"},
				{Command: CommandBots, Description: "List saved bots"},
				{Command: CommandCancel, Description: "Drop the current draft"},
				{Command: CommandHelp, Description: "Get help"},
			}...,
		),
	)
	if err != nil {
		return nil, err
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		cfg:                 cfg,
		sessionCfg:          sessionCfg,
		allowedUsers:        allowedUsers,
	}, nil
}

// Run handles updates until ctx is done or the update channel closes.
func (t *TelegramUsecase) Run(ctx context.Context) error {
	u := api.NewUpdate(0)
	u.Timeout = 60

	updates := t.Bot.GetUpdatesChan(u)

	workers := pool.New().WithMaxGoroutines(max(t.cfg.Workers, 1))
	wg := conc.NewWaitGroup()
	defer func() {
		workers.Wait()
		wg.Wait()
	}()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wg.Go(
		func() {
			t.expireIdleSessions(ctx)
		},
	)

	for {
		select {
		case <-ctx.Done():
			t.Bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			workers.Go(
				func() {
					t.handleUpdate(ctx, update)
				},
			)
		}
	}
}

func (t *TelegramUsecase) expireIdleSessions(ctx context.Context) {
	interval := t.sessionCfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.notifyExpired(t.Sessions.ExpireIdle())
		}
	}
}

func (t *TelegramUsecase) notifyExpired(expired []ExpiredChat) {
	for _, chat := range expired {
		log.WithField("chat_id", chat.ChatID).Debug("draft expired")
		if t.sessionCfg.NotifyUserOnIdleTimeout {
			t.sendMessageAndHandleErr(chat.ChatID, TextDraftExpired.Text(chat.Language))
		}
	}
}

func (t *TelegramUsecase) handleUpdate(ctx context.Context, update api.Update) {
	if update.Message != nil {
		if err := t.handleMessage(ctx, update.Message); err != nil {
			log.WithError(err).Error("error handling message")
		}
	}
	if update.CallbackQuery != nil {
		if err := t.handleCallbackQuery(update.CallbackQuery); err != nil {
			log.WithError(err).Error("error handling callback query")
		}
	}
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, message *api.Message) error {
	chatID := message.Chat.ID
	language := local.Eng
	if message.From != nil {
		language = local.ParseLanguage(message.From.LanguageCode)
	}
	if !t.isAllowed(chatID) {
		t.sendMessageAndHandleErr(chatID, TextNoAccess.Text(language))
		return nil
	}

	state := t.Sessions.Acquire(chatID)
	defer state.Release()
	state.Language = language

	if message.IsCommand() {
		return t.handleCommand(ctx, state, message.Command(), strings.TrimSpace(message.CommandArguments()))
	}
	t.handleText(state, message.Text)
	return nil
}

func (t *TelegramUsecase) handleCommand(ctx context.Context, state *ChatState, command, args string) error {
	switch command {
	case CommandStart, CommandHelp:
		t.reply(state, TextHelp)
	case CommandNew:
		state.Start(draft.NewSession())
		t.reply(state, TextDraftStarted)
	case CommandTemplates:
		return t.sendTemplatesKeyboard(state)
	case CommandBots:
		return t.sendBots(ctx, state)
	case CommandCancel:
		state.Discard()
		t.reply(state, TextDraftDropped)
	case CommandThemes, CommandSet, CommandColor, CommandFAQ, CommandUnFAQ,
		CommandQuery, CommandUnQuery, CommandDraft, CommandSave:
		if state.Session == nil {
			t.reply(state, TextNoDraft)
			return nil
		}
		return t.handleDraftCommand(ctx, state, command, args)
	default:
		t.reply(state, TextUnknown)
	}
	return nil
}

func (t *TelegramUsecase) handleDraftCommand(ctx context.Context, state *ChatState, command, args string) error {
	session := state.Session
	state.Mode = InputModeNone
	switch command {
	case CommandThemes:
		return t.sendThemesKeyboard(state)
	case CommandSet:
		field, value, ok := splitFieldArgs(args)
		if !ok {
			t.reply(state, TextFieldUsage, command)
			return nil
		}
		if err := session.UpdateField(draft.Field(field), value); err != nil {
			t.reply(state, TextFieldError, err)
			return nil
		}
		t.reply(state, TextFieldUpdated, field)
	case CommandColor:
		field, value, ok := splitFieldArgs(args)
		if !ok {
			t.reply(state, TextFieldUsage, command)
			return nil
		}
		if err := session.UpdateAppearanceField(draft.AppearanceField(field), value); err != nil {
			t.reply(state, TextFieldError, err)
			return nil
		}
		t.reply(state, TextFieldUpdated, field)
	case CommandFAQ:
		question, answer, found := strings.Cut(args, "|")
		switch {
		case found:
			t.addFAQItem(state, question, answer)
		case args != "":
			session.StageFAQQuestion(args)
			state.Mode = InputModeFAQAnswer
			t.reply(state, TextSendAnswer)
		default:
			state.Mode = InputModeFAQQuestion
			t.reply(state, TextSendQuestion)
		}
	case CommandUnFAQ:
		t.replyRemoved(state, session.RemoveFAQItem(args))
	case CommandQuery:
		if args == "" {
			state.Mode = InputModeQuery
			t.reply(state, TextSendQuery)
			return nil
		}
		t.addPredefinedQuery(state, args)
	case CommandUnQuery:
		t.replyRemoved(state, session.RemovePredefinedQuery(args))
	case CommandDraft:
		t.sendMessageAndHandleErr(state.ChatID, prepareDraftSummary(state.Language, session.Draft()))
	case CommandSave:
		return t.saveDraft(ctx, state)
	}
	return nil
}

func (t *TelegramUsecase) handleText(state *ChatState, text string) {
	if state.Session == nil {
		t.reply(state, TextUseCommands)
		return
	}
	switch state.Mode {
	case InputModeFAQQuestion:
		state.Session.StageFAQQuestion(text)
		state.Mode = InputModeFAQAnswer
		t.reply(state, TextSendAnswer)
	case InputModeFAQAnswer:
		state.Session.StageFAQAnswer(text)
		staging := state.Session.Staging()
		t.addFAQItem(state, staging.FAQQuestion, staging.FAQAnswer)
	case InputModeQuery:
		state.Session.StageQuery(text)
		t.addPredefinedQuery(state, state.Session.Staging().Query)
	default:
		t.reply(state, TextUseCommands)
	}
}

func (t *TelegramUsecase) handleCallbackQuery(query *api.CallbackQuery) error {
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID
	callback := api.NewCallback(query.ID, "")
	if _, err := t.Bot.Request(callback); err != nil {
		return fmt.Errorf("failed to request callback: %w", err)
	}

	language := local.Eng
	if query.From != nil {
		language = local.ParseLanguage(query.From.LanguageCode)
	}
	if !t.isAllowed(chatID) {
		t.sendMessageAndHandleErr(chatID, TextNoAccess.Text(language))
		return nil
	}

	state := t.Sessions.Acquire(chatID)
	defer state.Release()
	state.Language = language

	kind, id, _ := strings.Cut(query.Data, ":")
	switch kind {
	case CallbackTemplate:
		template, err := catalog.TemplateByID(id)
		if err != nil {
			t.reply(state, TextNotFound)
			return nil
		}
		return t.sendTemplatePreview(state, template)
	case CallbackUseTemplate:
		template, err := catalog.TemplateByID(id)
		if err != nil {
			t.reply(state, TextNotFound)
			return nil
		}
		state.Start(draft.NewSessionFromTemplate(template))
		t.reply(state, TextTemplateUsed, template.Name)
	case CallbackTheme:
		if state.Session == nil {
			t.reply(state, TextNoDraft)
			return nil
		}
		if err := state.Session.SelectTheme(id); err != nil {
			if errors.Is(err, catalog.ErrThemeNotFound) {
				t.reply(state, TextNotFound)
				return nil
			}
			return err
		}
		theme, _ := catalog.ThemeByID(id)
		t.reply(state, TextThemeSelected, theme.Name)
	default:
		t.reply(state, TextUnknown)
	}
	return nil
}

func (t *TelegramUsecase) addFAQItem(state *ChatState, question, answer string) {
	state.Mode = InputModeNone
	item, err := state.Session.AddFAQItem(question, answer)
	if err != nil {
		t.reply(state, TextFAQEmpty)
		return
	}
	t.reply(state, TextFAQAdded, item.ID)
}

func (t *TelegramUsecase) addPredefinedQuery(state *ChatState, query string) {
	state.Mode = InputModeNone
	item, err := state.Session.AddPredefinedQuery(query)
	if err != nil {
		t.reply(state, TextQueryEmpty)
		return
	}
	t.reply(state, TextQueryAdded, item.ID)
}

func (t *TelegramUsecase) saveDraft(ctx context.Context, state *ChatState) error {
	record, err := t.Bots.Commit(ctx, state.Session.Draft())
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			t.reply(state, TextInvalidDraft, validationErr.Message)
			return nil
		}
		t.reply(state, TextServerError)
		return fmt.Errorf("failed to commit draft: %w", err)
	}
	state.Discard()
	t.reply(state, TextSaved, record.Name, record.ID)
	return nil
}

func (t *TelegramUsecase) sendBots(ctx context.Context, state *ChatState) error {
	bots, err := t.Bots.ListBots(ctx)
	if err != nil {
		t.reply(state, TextServerError)
		return fmt.Errorf("failed to list bots: %w", err)
	}
	t.sendMessageAndHandleErr(state.ChatID, prepareBotsList(state.Language, bots))
	return nil
}

func (t *TelegramUsecase) sendTemplatesKeyboard(state *ChatState) error {
	buttons := make([]api.InlineKeyboardButton, 0)
	for _, template := range catalog.Templates() {
		buttons = append(
			buttons,
			api.NewInlineKeyboardButtonData(
				template.Icon+" "+template.Name, callbackData(CallbackTemplate, template.ID),
			),
		)
	}
	return t.sendKeyboard(state.ChatID, TextSelectTmpl.Text(state.Language), buttons)
}

func (t *TelegramUsecase) sendThemesKeyboard(state *ChatState) error {
	buttons := make([]api.InlineKeyboardButton, 0)
	for _, theme := range catalog.Themes() {
		buttons = append(buttons, api.NewInlineKeyboardButtonData(theme.Name, callbackData(CallbackTheme, theme.ID)))
	}
	return t.sendKeyboard(state.ChatID, TextSelectTheme.Text(state.Language), buttons)
}

// sendTemplatePreview only acknowledges the choice; the draft is seeded when
// the user presses the "use" button.
func (t *TelegramUsecase) sendTemplatePreview(state *ChatState, template catalog.BotTemplate) error {
	text := TextTemplateFmt.Format(
		state.Language,
		template.Icon,
		template.Name,
		template.Description,
		template.Details.BotName,
		template.Details.GreetingMessage,
		template.GuidelinesText(),
	)
	buttons := []api.InlineKeyboardButton{
		api.NewInlineKeyboardButtonData(
			TextUseTemplate.Text(state.Language), callbackData(CallbackUseTemplate, template.ID),
		),
	}
	return t.sendKeyboard(state.ChatID, text, buttons)
}

func (t *TelegramUsecase) sendKeyboard(chatID int64, text string, buttons []api.InlineKeyboardButton) error {
	inlineRows := make([][]api.InlineKeyboardButton, 0)
	for start := 0; start < len(buttons); start += maxButtonsInRow {
		inlineRows = append(inlineRows, buttons[start:min(start+maxButtonsInRow, len(buttons))])
	}
	msg := api.NewMessage(chatID, text)
	msg.ReplyMarkup = api.NewInlineKeyboardMarkup(inlineRows...)
	if _, err := t.Bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to bot: %w", err)
	}
	return nil
}

func (t *TelegramUsecase) isAllowed(chatID int64) bool {
	if !t.cfg.IsNotPublic {
		return true
	}
	_, ok := t.allowedUsers[chatID]
	return ok
}

func (t *TelegramUsecase) replyRemoved(state *ChatState, removed bool) {
	if removed {
		t.reply(state, TextRemoved)
		return
	}
	t.reply(state, TextNotFound)
}

func (t *TelegramUsecase) reply(state *ChatState, text local.TextSet, a ...any) {
	t.sendMessageAndHandleErr(state.ChatID, text.Format(state.Language, a...))
}

func (t *TelegramUsecase) sendMessageAndHandleErr(chatID int64, message string) {
	if _, err := t.Bot.Send(api.NewMessage(chatID, message)); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("failed to send new message to bot")
	}
}

func callbackData(kind, id string) string {
	return kind + ":" + id
}

func splitFieldArgs(args string) (string, string, bool) {
	field, value, _ := strings.Cut(args, " ")
	if field == "" {
		return "", "", false
	}
	return field, strings.TrimSpace(value), true
}

func prepareDraftSummary(language local.Language, d model.BotDraft) string {
	result := strings.Builder{}
	result.WriteString(
		TextDraftSummary.Format(
			language,
			d.AgentName, d.AgentDescription, d.WelcomeMessage, d.Guidelines,
			d.LLMProvider, d.LLMModel, apiModelLabel(language, d), d.MaxTokens, d.Temperature,
			d.Personality, d.DefaultLanguage, d.HumanizeConversation,
			d.Appearance.SelectedTheme, d.Appearance.PrimaryColor, d.Appearance.BackgroundColor,
			d.Appearance.FontFamily, d.Appearance.BorderRadius,
			d.EnableHelpDesk, d.EnableDataCollection,
		),
	)
	for _, item := range d.FAQItems {
		result.WriteString(TextDraftFAQItem.Format(language, item.ID, item.Question, item.Answer))
	}
	for _, query := range d.PredefinedQueries {
		result.WriteString(TextDraftQuery.Format(language, query.ID, query.Query))
	}
	return result.String()
}

// apiModelLabel names the identifier the provider's API expects for the draft's model.
func apiModelLabel(language local.Language, d model.BotDraft) string {
	if !catalog.IsModelCompatible(d.LLMProvider, d.LLMModel) {
		return TextModelNotOffered.Text(language)
	}
	languageModel, _ := catalog.ModelByName(d.LLMModel)
	return languageModel.APIModel
}

func prepareBotsList(language local.Language, bots []model.BotRecord) string {
	result := strings.Builder{}
	result.WriteString(TextBotsFmt.Format(language, len(bots)))
	for i, bot := range bots {
		result.WriteString(
			fmt.Sprintf(
				"%v) %s [%s] %s, %s\n", i+1, bot.Name, bot.Status, bot.Settings.LLMModel, bot.ID,
			),
		)
	}
	return result.String()
}
