package domain

type Sender string

const (
	SenderMe   Sender = "me"
	SenderThem Sender = "them"
)

type ChatMessage struct {
	Sender Sender
	Text   string
	Time   string
}

type Contact struct {
	ID         ChatID
	Name       string
	LastMsg    string
	AvatarSeed string
	Online     bool
}
