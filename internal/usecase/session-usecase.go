package usecase

import (
	"sync"
	"time"

	"github.com/iamvkosarev/bot-designer/config"
	"github.com/iamvkosarev/bot-designer/internal/draft"
	"github.com/iamvkosarev/bot-designer/pkg/local"
)

// InputMode tells how the next plain text message of a chat is used.
type InputMode int8

const (
	InputModeNone = InputMode(iota)
	InputModeFAQQuestion
	InputModeFAQAnswer
	InputModeQuery
)

// ChatState is the wizard state of one chat. It is only touched between
// SessionUsecase.Acquire and Release.
type ChatState struct {
	mu             sync.Mutex
	ChatID         int64
	Session        *draft.Session
	Mode           InputMode
	Language       local.Language
	LastActiveTime time.Time
	// set once the registry has dropped the state
	removed bool
}

func (c *ChatState) Start(session *draft.Session) {
	c.Session = session
	c.Mode = InputModeNone
}

func (c *ChatState) Discard() {
	c.Session = nil
	c.Mode = InputModeNone
}

func (c *ChatState) Release() {
	c.mu.Unlock()
}

type ExpiredChat struct {
	ChatID   int64
	Language local.Language
}

type SessionUsecase struct {
	cfg   config.Session
	now   func() time.Time
	mu    sync.Mutex
	chats map[int64]*ChatState
}

func NewSessionUsecase(cfg config.Session) *SessionUsecase {
	return &SessionUsecase{
		cfg:   cfg,
		now:   time.Now,
		chats: make(map[int64]*ChatState),
	}
}

// Acquire returns the locked state of chatID, creating it on first use.
func (s *SessionUsecase) Acquire(chatID int64) *ChatState {
	for {
		s.mu.Lock()
		state, ok := s.chats[chatID]
		if !ok {
			state = &ChatState{
				ChatID:   chatID,
				Language: local.Eng,
			}
			s.chats[chatID] = state
		}
		s.mu.Unlock()

		state.mu.Lock()
		if !state.removed {
			state.LastActiveTime = s.now()
			return state
		}
		state.mu.Unlock()
	}
}

// ExpireIdle discards drafts idle for longer than the configured timeout and
// forgets idle chats. Chats that are being handled right now are skipped.
func (s *SessionUsecase) ExpireIdle() []ExpiredChat {
	if s.cfg.IdleTimeout <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expired := make([]ExpiredChat, 0)
	for chatID, state := range s.chats {
		if !state.mu.TryLock() {
			continue
		}
		if state.LastActiveTime.Add(s.cfg.IdleTimeout).Before(now) {
			if state.Session != nil {
				state.Discard()
				expired = append(
					expired, ExpiredChat{
						ChatID:   chatID,
						Language: state.Language,
					},
				)
			}
			state.removed = true
			delete(s.chats, chatID)
		}
		state.mu.Unlock()
	}
	return expired
}

// Len reports how many chats are tracked.
func (s *SessionUsecase) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chats)
}
