package telegram_bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Client wraps the Telegram Bot API behind the platform boundary consumed by
// the moderation workflows.
type Client struct {
	api    *tgbotapi.BotAPI
	logger *zap.Logger
}

// NewClient authorizes against the Bot API and returns the platform client.
func NewClient(token string, logger *zap.Logger) (*Client, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	return &Client{
		api:    botAPI,
		logger: logger,
	}, nil
}

// ForwardMessage copies a message into another chat and returns the id of the
// forwarded message.
func (c *Client) ForwardMessage(toChatID, fromChatID, messageID int64) (int64, error) {
	forwarded, err := c.api.Send(tgbotapi.NewForward(toChatID, fromChatID, int(messageID)))
	if err != nil {
		return 0, err
	}
	return int64(forwarded.MessageID), nil
}

// SendMessage posts a plain text message and returns its id.
func (c *Client) SendMessage(chatID int64, text string) (int64, error) {
	sent, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return int64(sent.MessageID), nil
}

// SendReply posts a text reply to an existing message.
func (c *Client) SendReply(chatID, replyToMessageID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = int(replyToMessageID)
	_, err := c.api.Send(msg)
	return err
}

// SendMarkdown posts a Markdown-formatted message.
func (c *Client) SendMarkdown(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.api.Send(msg)
	return err
}

// SendDecisionPrompt posts the decision prompt with the Spam / No Spam buttons
// and returns the prompt's message id.
func (c *Client) SendDecisionPrompt(chatID, replyToMessageID int64, text, spamPayload, noSpamPayload string) (int64, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = int(replyToMessageID)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Spam", spamPayload),
			tgbotapi.NewInlineKeyboardButtonData("No Spam", noSpamPayload),
		),
	)

	sent, err := c.api.Send(msg)
	if err != nil {
		return 0, err
	}
	return int64(sent.MessageID), nil
}

// DeleteMessage removes a message from a chat.
func (c *Client) DeleteMessage(chatID, messageID int64) error {
	_, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, int(messageID)))
	return err
}

// BanChatMember removes a user from a chat.
func (c *Client) BanChatMember(chatID, userID int64) error {
	_, err := c.api.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	})
	return err
}

// EditMessageText replaces the text of an existing message.
func (c *Client) EditMessageText(chatID, messageID int64, text string) error {
	_, err := c.api.Send(tgbotapi.NewEditMessageText(chatID, int(messageID), text))
	return err
}

// AnswerCallback acknowledges a callback query with the given text.
func (c *Client) AnswerCallback(callbackID, text string) error {
	_, err := c.api.Request(tgbotapi.NewCallback(callbackID, text))
	return err
}

// LeaveChat makes the bot leave a chat.
func (c *Client) LeaveChat(chatID int64) error {
	_, err := c.api.Request(tgbotapi.LeaveChatConfig{ChatID: chatID})
	return err
}

// GetChatAdministrators returns the user ids of a chat's administrators.
func (c *Client) GetChatAdministrators(chatID int64) ([]int64, error) {
	members, err := c.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(members))
	for _, member := range members {
		if member.User != nil {
			ids = append(ids, member.User.ID)
		}
	}
	return ids, nil
}
