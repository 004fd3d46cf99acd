package model

import "strings"

type LLMProvider string

const (
	LLMProviderOpenAI    = LLMProvider("OpenAI")
	LLMProviderAnthropic = LLMProvider("Anthropic")
	LLMProviderGoogle    = LLMProvider("Google")
	LLMProviderCohere    = LLMProvider("Cohere")
)

type Personality string

const (
	PersonalityCasual       = Personality("Casual")
	PersonalityProfessional = Personality("Professional")
	PersonalityFriendly     = Personality("Friendly")
	PersonalityFormal       = Personality("Formal")
	PersonalityEnthusiastic = Personality("Enthusiastic")
)

type Language string

const (
	LanguageEnglish    = Language("English")
	LanguageSpanish    = Language("Spanish")
	LanguageFrench     = Language("French")
	LanguageGerman     = Language("German")
	LanguageItalian    = Language("Italian")
	LanguagePortuguese = Language("Portuguese")
	LanguageChinese    = Language("Chinese")
	LanguageJapanese   = Language("Japanese")
)

type FontFamily string

const (
	FontInter      = FontFamily("Inter")
	FontRoboto     = FontFamily("Roboto")
	FontOpenSans   = FontFamily("Open Sans")
	FontLato       = FontFamily("Lato")
	FontPoppins    = FontFamily("Poppins")
	FontMontserrat = FontFamily("Montserrat")
)

var (
	llmProviders  = []LLMProvider{LLMProviderOpenAI, LLMProviderAnthropic, LLMProviderGoogle, LLMProviderCohere}
	personalities = []Personality{
		PersonalityCasual, PersonalityProfessional, PersonalityFriendly, PersonalityFormal, PersonalityEnthusiastic,
	}
	languages = []Language{
		LanguageEnglish, LanguageSpanish, LanguageFrench, LanguageGerman,
		LanguageItalian, LanguagePortuguese, LanguageChinese, LanguageJapanese,
	}
	fontFamilies = []FontFamily{FontInter, FontRoboto, FontOpenSans, FontLato, FontPoppins, FontMontserrat}
)

func LLMProviders() []LLMProvider {
	return append([]LLMProvider(nil), llmProviders...)
}

func Personalities() []Personality {
	return append([]Personality(nil), personalities...)
}

func Languages() []Language {
	return append([]Language(nil), languages...)
}

func FontFamilies() []FontFamily {
	return append([]FontFamily(nil), fontFamilies...)
}

// ParseLLMProvider matches s case-insensitively. Unknown values are returned
// as-is so the validator can report them.
func ParseLLMProvider(s string) LLMProvider {
	return parseOption(s, llmProviders)
}

func ParsePersonality(s string) Personality {
	return parseOption(s, personalities)
}

func ParseLanguage(s string) Language {
	return parseOption(s, languages)
}

func ParseFontFamily(s string) FontFamily {
	return parseOption(s, fontFamilies)
}

func (p LLMProvider) Valid() bool { return containsOption(p, llmProviders) }

func (p Personality) Valid() bool { return containsOption(p, personalities) }

func (l Language) Valid() bool { return containsOption(l, languages) }

func (f FontFamily) Valid() bool { return containsOption(f, fontFamilies) }

func parseOption[T ~string](s string, options []T) T {
	s = strings.TrimSpace(s)
	for _, option := range options {
		if strings.EqualFold(string(option), s) {
			return option
		}
	}
	return T(s)
}

func containsOption[T ~string](value T, options []T) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
