package usecase

import "github.com/iamvkosarev/bot-designer/pkg/local"

var (
	TextHelp = local.NewSet(
		"I help you design a chatbot.\n\n"+
			"/new - start a draft from scratch\n"+
			"/templates - start from a template\n"+
			"/themes - pick a color theme\n"+
			"/set <field> <value> - change a field (agentName, agentDescription, welcomeMessage, guidelines, "+
			"llmProvider, llmModel, maxTokens, temperature, personality, defaultLanguage, humanizeConversation, "+
			"enableHelpDesk, enableDataCollection)\n"+
			"/color <field> <value> - change an appearance value\n"+
			"/faq [question | answer] - add an FAQ item\n"+
			"/unfaq <id> - remove an FAQ item\n"+
			"/query [text] - add a predefined query\n"+
			"/unquery <id> - remove a predefined query\n"+
			"/draft - show the current draft\n"+
			"/save - validate and save the bot\n"+
			"/bots - list saved bots\n"+
			"/cancel - drop the current draft",
		local.NewTrans(
			local.Rus,
			"Я помогу спроектировать чат-бота.\n\n"+
				"/new - новый черновик с нуля\n"+
				"/templates - начать с шаблона\n"+
				"/themes - выбрать цветовую тему\n"+
				"/set <поле> <значение> - изменить поле\n"+
				"/color <поле> <значение> - изменить оформление\n"+
				"/faq [вопрос | ответ] - добавить вопрос FAQ\n"+
				"/unfaq <id> - удалить вопрос FAQ\n"+
				"/query [текст] - добавить готовый запрос\n"+
				"/unquery <id> - удалить готовый запрос\n"+
				"/draft - показать черновик\n"+
				"/save - проверить и сохранить бота\n"+
				"/bots - список сохранённых ботов\n"+
				"/cancel - удалить черновик",
		),
	)
	TextNoAccess      = local.NewSet("You are not allowed to use this bot", local.NewTrans(local.Rus, "У вас нет доступа к этому боту"))
	TextServerError   = local.NewSet("Something went wrong. Try later", local.NewTrans(local.Rus, "Что-то пошло не так. Попробуйте позже"))
	TextUnknown       = local.NewSet("I don't know that command", local.NewTrans(local.Rus, "Я не знаю такой команды"))
	TextUseCommands   = local.NewSet("Use /help to see what I can do", local.NewTrans(local.Rus, "Отправьте /help, чтобы увидеть команды"))
	TextNoDraft       = local.NewSet("There is no draft yet. Use /new or /templates", local.NewTrans(local.Rus, "Черновика нет. Используйте /new или /templates"))
	TextDraftStarted  = local.NewSet("New draft started. Use /draft to review it", local.NewTrans(local.Rus, "Черновик создан. Используйте /draft для просмотра"))
	TextDraftDropped  = local.NewSet("Draft dropped", local.NewTrans(local.Rus, "Черновик удалён"))
	TextDraftExpired  = local.NewSet("Your draft was dropped after a period of inactivity", local.NewTrans(local.Rus, "Черновик удалён из-за неактивности"))
	TextFieldUpdated  = local.NewSet("%s updated", local.NewTrans(local.Rus, "Поле %s обновлено"))
	TextFieldUsage    = local.NewSet("Usage: /%s <field> <value>", local.NewTrans(local.Rus, "Формат: /%s <поле> <значение>"))
	TextFieldError    = local.NewSet("Can't update the field: %v", local.NewTrans(local.Rus, "Не удалось изменить поле: %v"))
	TextSelectTmpl    = local.NewSet("Select a template", local.NewTrans(local.Rus, "Выберите шаблон"))
	TextTemplateFmt   = local.NewSet("Selected template: %s %s\n\n%s\n\nBot name: %s\nGreeting: %s\n\n%s", local.NewTrans(local.Rus, "Выбран шаблон: %s %s\n\n%s\n\nИмя бота: %s\nПриветствие: %s\n\n%s"))
	TextUseTemplate   = local.NewSet("Use this template", local.NewTrans(local.Rus, "Использовать шаблон"))
	TextTemplateUsed  = local.NewSet("Draft seeded from %s. Use /draft to review it", local.NewTrans(local.Rus, "Черновик заполнен из шаблона %s. Используйте /draft для просмотра"))
	TextNotFound      = local.NewSet("Not found", local.NewTrans(local.Rus, "Не найдено"))
	TextSelectTheme   = local.NewSet("Select a theme", local.NewTrans(local.Rus, "Выберите тему"))
	TextThemeSelected = local.NewSet("Theme %s applied", local.NewTrans(local.Rus, "Тема %s применена"))
	TextSendQuestion  = local.NewSet("Send the FAQ question", local.NewTrans(local.Rus, "Отправьте вопрос"))
	TextSendAnswer    = local.NewSet("Send the answer", local.NewTrans(local.Rus, "Отправьте ответ"))
	TextFAQAdded      = local.NewSet("FAQ item added, id %s", local.NewTrans(local.Rus, "Вопрос добавлен, id %s"))
	TextFAQEmpty      = local.NewSet("Question and answer must not be empty", local.NewTrans(local.Rus, "Вопрос и ответ не должны быть пустыми"))
	TextSendQuery     = local.NewSet("Send the query text", local.NewTrans(local.Rus, "Отправьте текст запроса"))
	TextQueryAdded    = local.NewSet("Query added, id %s", local.NewTrans(local.Rus, "Запрос добавлен, id %s"))
	TextQueryEmpty    = local.NewSet("Query must not be empty", local.NewTrans(local.Rus, "Запрос не должен быть пустым"))
	TextRemoved       = local.NewSet("Removed", local.NewTrans(local.Rus, "Удалено"))
	TextInvalidDraft  = local.NewSet("The bot can't be saved: %s", local.NewTrans(local.Rus, "Бота нельзя сохранить: %s"))
	TextSaved         = local.NewSet("Bot \"%s\" saved with id %s", local.NewTrans(local.Rus, "Бот \"%s\" сохранён, id %s"))
	TextDraftSummary  = local.NewSet(
		"Name: %s\nDescription: %s\nWelcome message: %s\nGuidelines: %s\n"+
			"Model: %s / %s (%s), max tokens %d, temperature %v\n"+
			"Personality: %s, language: %s, humanize: %v\n"+
			"Theme: %s, primary %s, background %s, font %s, radius %d\n"+
			"Help desk: %v, data collection: %v\n",
		local.NewTrans(
			local.Rus,
			"Имя: %s\nОписание: %s\nПриветствие: %s\nИнструкции: %s\n"+
				"Модель: %s / %s (%s), макс. токенов %d, температура %v\n"+
				"Характер: %s, язык: %s, очеловечивание: %v\n"+
				"Тема: %s, основной %s, фон %s, шрифт %s, скругление %d\n"+
				"Служба поддержки: %v, сбор данных: %v\n",
		),
	)
	TextDraftFAQItem    = local.NewSet("FAQ [%s] %s - %s\n", local.NewTrans(local.Rus, "Вопрос [%s] %s - %s\n"))
	TextDraftQuery      = local.NewSet("Query [%s] %s\n", local.NewTrans(local.Rus, "Запрос [%s] %s\n"))
	TextModelNotOffered = local.NewSet("not offered by the provider", local.NewTrans(local.Rus, "не предлагается провайдером"))
	TextBotsFmt         = local.NewSet("Now you have %d bots.\n", local.NewTrans(local.Rus, "Сохранено ботов: %d.\n"))
)
