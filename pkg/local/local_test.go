package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Rus, ParseLanguage("ru"))
	assert.Equal(t, Rus, ParseLanguage("RU-ru"))
	assert.Equal(t, Eng, ParseLanguage("en-GB"))
	assert.Equal(t, Eng, ParseLanguage("de"))
	assert.Equal(t, Eng, ParseLanguage(""))
}

func TestTextSet(t *testing.T) {
	set := NewSet("Saved bot %s", NewTrans(Rus, "Бот %s сохранён"))

	assert.Equal(t, "Saved bot %s", set.Text(Eng))
	assert.Equal(t, "Бот bot-1 сохранён", set.Format(Rus, "bot-1"))
	assert.Equal(t, "Saved bot bot-1", set.Format(Eng, "bot-1"))
	assert.Equal(t, "Saved bot bot-1", set.DefaultFormat("bot-1"))
}
