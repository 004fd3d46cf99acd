package usecase

import (
	"testing"
	"time"

	"github.com/iamvkosarev/bot-designer/config"
	"github.com/iamvkosarev/bot-designer/internal/draft"
	"github.com/iamvkosarev/bot-designer/pkg/local"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestSessionUsecase(idleTimeout time.Duration) (*SessionUsecase, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	sessions := NewSessionUsecase(config.Session{IdleTimeout: idleTimeout})
	sessions.now = clock.Now
	return sessions, clock
}

func TestAcquireKeepsStatePerChat(t *testing.T) {
	sessions, _ := newTestSessionUsecase(time.Minute)

	state := sessions.Acquire(1)
	state.Start(draft.NewSession())
	state.Mode = InputModeQuery
	state.Release()

	state = sessions.Acquire(1)
	assert.NotNil(t, state.Session)
	assert.Equal(t, InputModeQuery, state.Mode)
	state.Release()

	other := sessions.Acquire(2)
	assert.Nil(t, other.Session)
	assert.Equal(t, local.Eng, other.Language)
	other.Release()
}

func TestExpireIdleDiscardsOldDrafts(t *testing.T) {
	sessions, clock := newTestSessionUsecase(10 * time.Minute)

	state := sessions.Acquire(1)
	state.Start(draft.NewSession())
	state.Language = local.Rus
	state.Release()

	clock.now = clock.now.Add(5 * time.Minute)
	fresh := sessions.Acquire(2)
	fresh.Start(draft.NewSession())
	fresh.Release()

	clock.now = clock.now.Add(6 * time.Minute)
	expired := sessions.ExpireIdle()

	require.Len(t, expired, 1)
	assert.Equal(t, ExpiredChat{ChatID: 1, Language: local.Rus}, expired[0])

	state = sessions.Acquire(1)
	assert.Nil(t, state.Session)
	state.Release()
	fresh = sessions.Acquire(2)
	assert.NotNil(t, fresh.Session)
	fresh.Release()
}

func TestExpireIdleForgetsIdleChats(t *testing.T) {
	sessions, clock := newTestSessionUsecase(time.Minute)

	for chatID := int64(1); chatID <= 3; chatID++ {
		sessions.Acquire(chatID).Release()
	}
	withDraft := sessions.Acquire(4)
	withDraft.Start(draft.NewSession())
	withDraft.Release()
	require.Equal(t, 4, sessions.Len())

	clock.now = clock.now.Add(2 * time.Minute)
	expired := sessions.ExpireIdle()

	require.Len(t, expired, 1)
	assert.Equal(t, int64(4), expired[0].ChatID)
	assert.Zero(t, sessions.Len())
	assert.True(t, withDraft.removed)

	state := sessions.Acquire(4)
	assert.NotSame(t, withDraft, state)
	assert.Nil(t, state.Session)
	assert.False(t, state.removed)
	state.Release()
	assert.Equal(t, 1, sessions.Len())
}

func TestExpireIdleSkipsBusyChats(t *testing.T) {
	sessions, clock := newTestSessionUsecase(time.Minute)

	state := sessions.Acquire(1)
	state.Start(draft.NewSession())
	clock.now = clock.now.Add(time.Hour)

	assert.Empty(t, sessions.ExpireIdle())
	assert.NotNil(t, state.Session)
	state.Release()
}

func TestExpireIdleDisabled(t *testing.T) {
	sessions, clock := newTestSessionUsecase(0)

	state := sessions.Acquire(1)
	state.Start(draft.NewSession())
	state.Release()
	clock.now = clock.now.Add(24 * time.Hour)

	assert.Empty(t, sessions.ExpireIdle())
}
