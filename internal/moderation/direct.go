package moderation

import (
	"fmt"

	"go.uber.org/zap"

	"modbot/internal/models"
)

const leaveChatText = "I am currently only for private use! Goodbye!"

// Actions covers the verdicts that bypass the registry and act on the
// classifier's output immediately.
type Actions struct {
	api            TelegramAPI
	adminChannelID int64
	logger         *zap.Logger
}

// NewActions creates the direct-action handlers.
func NewActions(api TelegramAPI, adminChannelID int64, logger *zap.Logger) *Actions {
	return &Actions{
		api:            api,
		adminChannelID: adminChannelID,
		logger:         logger,
	}
}

// SpamDetected removes a message classified as definite spam and bans its
// sender. The two platform calls are independently best-effort: a failed ban
// must not keep the message alive and vice versa.
func (a *Actions) SpamDetected(msg models.Message) {
	if err := a.api.BanChatMember(msg.ChatID, msg.UserID); err != nil {
		a.logger.Warn("Not able to kick user",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int64("user_id", msg.UserID),
			zap.Error(err),
		)
	}

	if err := a.api.DeleteMessage(msg.ChatID, msg.MessageID); err != nil {
		a.logger.Warn("Not able to delete message",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int64("message_id", msg.MessageID),
			zap.Error(err),
		)
	}
}

// LeaveChat replies once explaining the private-use policy and leaves the
// chat. Terminal for that chat; no state is kept.
func (a *Actions) LeaveChat(msg models.Message) {
	if err := a.api.SendReply(msg.ChatID, msg.MessageID, leaveChatText); err != nil {
		a.logger.Warn("Failed to send leave notice",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
	}

	a.logger.Info("Leaving group",
		zap.String("chat_title", msg.ChatTitle),
		zap.Int64("chat_id", msg.ChatID),
	)

	if err := a.api.LeaveChat(msg.ChatID); err != nil {
		a.logger.Error("Failed to leave chat",
			zap.Int64("chat_id", msg.ChatID),
			zap.Error(err),
		)
	}
}

// NotifyAdminMention relays an admin call to the admin channel with a direct
// link to the message. Chats without a public username have no linkable
// messages, so those are skipped.
func (a *Actions) NotifyAdminMention(msg models.Message) {
	if msg.ChatUsername == "" {
		return
	}

	text := fmt.Sprintf(
		"*Someone needs an admin!*\n\n*Chat:* %s\n*Name:* %s\n\n[Direct Link](https://t.me/%s/%d)",
		msg.ChatTitle,
		msg.UserFirstName,
		msg.ChatUsername,
		msg.MessageID,
	)

	if err := a.api.SendMarkdown(a.adminChannelID, text); err != nil {
		a.logger.Warn("Failed to notify admin channel about mention",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int64("message_id", msg.MessageID),
			zap.Error(err),
		)
	}
}
