package moderation

// TelegramAPI is the platform boundary consumed by the moderation workflows.
// Every call is a bounded-latency RPC whose timeout/retry policy belongs to
// the client behind the interface; the workflows only decide what a failure
// means for the case being handled.
type TelegramAPI interface {
	// ForwardMessage copies a message into another chat and returns the id of
	// the forwarded message.
	ForwardMessage(toChatID, fromChatID, messageID int64) (int64, error)
	// SendMessage posts a plain text message and returns its id.
	SendMessage(chatID int64, text string) (int64, error)
	// SendReply posts a text reply to an existing message.
	SendReply(chatID, replyToMessageID int64, text string) error
	// SendMarkdown posts a Markdown-formatted message.
	SendMarkdown(chatID int64, text string) error
	// SendDecisionPrompt posts the "Is this message spam?" prompt with the
	// Spam / No Spam buttons and returns the prompt's message id.
	SendDecisionPrompt(chatID, replyToMessageID int64, text, spamPayload, noSpamPayload string) (int64, error)
	// DeleteMessage removes a message from a chat.
	DeleteMessage(chatID, messageID int64) error
	// BanChatMember removes a user from a chat.
	BanChatMember(chatID, userID int64) error
	// EditMessageText replaces the text of an existing message.
	EditMessageText(chatID, messageID int64, text string) error
	// AnswerCallback acknowledges a callback query with the given text.
	AnswerCallback(callbackID, text string) error
	// LeaveChat makes the bot leave a chat.
	LeaveChat(chatID int64) error
	// GetChatAdministrators returns the user ids of a chat's administrators.
	GetChatAdministrators(chatID int64) ([]int64, error)
}
