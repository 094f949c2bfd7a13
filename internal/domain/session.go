package domain

// Tab identifies a top-level view the navigation controller can route to.
type Tab string

const (
	TabExplore       Tab = "explore"
	TabAdopt         Tab = "adopt"
	TabSearch        Tab = "search"
	TabNotifications Tab = "notifications"
	TabFriends       Tab = "friends"
	TabProfile       Tab = "profile"
	TabEditProfile   Tab = "edit-profile"
)

// ChatID identifies a chat thread. The zero value means no chat is open.
type ChatID int

// Session holds the current identity and navigation position. ActiveChatID is
// non-zero only while ActiveTab is TabFriends; any tab switch clears it.
type Session struct {
	LoggedIn     bool
	Profile      Profile
	ActiveTab    Tab
	ActiveChatID ChatID
}

func (s *Session) ChatOpen() bool {
	return s.ActiveChatID != 0
}

// SessionRecord is the durable slice of a session: the auth token marker and
// the profile, both persisted across restarts.
type SessionRecord struct {
	Token   string
	Profile Profile
}

func (r SessionRecord) LoggedIn() bool {
	return r.Token != ""
}
