package application

import (
	"strings"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

// ChatService owns chat-session actions while the friends tab is active.
type ChatService struct {
	session *domain.Session
	cache   *Cache
	clock   ports.Clock
}

func NewChatService(session *domain.Session, cache *Cache, clock ports.Clock) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ChatService{session: session, cache: cache, clock: clock}
}

// Open activates a chat thread. Only valid while on the friends tab.
func (s *ChatService) Open(id domain.ChatID) error {
	if !s.session.LoggedIn {
		return domain.ErrNotLoggedIn
	}
	if s.session.ActiveTab != domain.TabFriends {
		return domain.ErrNoActiveChat
	}

	s.session.ActiveChatID = id
	return nil
}

// Send appends an outgoing message with the current wall-clock time in HH:MM.
func (s *ChatService) Send(text string) error {
	if !s.session.LoggedIn {
		return domain.ErrNotLoggedIn
	}
	if !s.session.ChatOpen() {
		return domain.ErrNoActiveChat
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyInput
	}

	id := s.session.ActiveChatID
	s.cache.Chats[id] = append(s.cache.Chats[id], domain.ChatMessage{
		Sender: domain.SenderMe,
		Text:   text,
		Time:   s.clock.Now().Format("15:04"),
	})

	return nil
}

// Transcript returns the active chat's messages, or nil when no chat is open.
func (s *ChatService) Transcript() []domain.ChatMessage {
	if !s.session.ChatOpen() {
		return nil
	}
	return s.cache.Chats[s.session.ActiveChatID]
}
