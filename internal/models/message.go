package models

// Message is the classifier's view of an inbound chat message. It carries only
// what the predicates and the moderation workflows need; the full platform
// update stays behind the telegram_bot package.
type Message struct {
	ChatID        int64
	MessageID     int64
	UserID        int64
	UserFirstName string
	ChatTitle     string
	ChatUsername  string // public @username of the chat, empty for private groups
	Text          string
	FromChannel   bool // true when the message was forwarded from a channel
	IsGroup       bool
}
