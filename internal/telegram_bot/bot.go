package telegram_bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"modbot/internal/classifier"
	"modbot/internal/models"
	"modbot/internal/moderation"
)

// Bot drives the long-poll update loop: group messages go through the
// classifier into the matching moderation path, button presses go to the
// decision resolver.
type Bot struct {
	client     *Client
	classifier *classifier.Classifier
	escalator  *moderation.Escalator
	resolver   *moderation.Resolver
	actions    *moderation.Actions
	logger     *zap.Logger
}

// NewBot wires the update loop to the moderation components.
func NewBot(
	client *Client,
	cls *classifier.Classifier,
	escalator *moderation.Escalator,
	resolver *moderation.Resolver,
	actions *moderation.Actions,
	logger *zap.Logger,
) *Bot {
	return &Bot{
		client:     client,
		classifier: cls,
		escalator:  escalator,
		resolver:   resolver,
		actions:    actions,
		logger:     logger,
	}
}

// Start begins listening for updates from Telegram until the context is done.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.client.api.GetUpdatesChan(u)

	b.logger.Info("Telegram bot started, waiting for updates...")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Telegram bot shutting down...")
			b.client.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.CallbackQuery != nil {
				b.handleCallbackQuery(update.CallbackQuery)
			} else if update.Message != nil {
				b.handleMessage(update.Message)
			}
		}
	}
}

// handleMessage classifies an inbound group message and dispatches it.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	msg, ok := toModel(message)
	if !ok || !msg.IsGroup {
		return
	}

	verdict := b.classifier.Classify(msg)

	switch verdict {
	case models.VerdictLeaveChat:
		b.actions.LeaveChat(msg)
	case models.VerdictDefiniteSpam:
		b.actions.SpamDetected(msg)
	case models.VerdictAdminMention:
		b.actions.NotifyAdminMention(msg)
	case models.VerdictNeedsReview:
		if err := b.escalator.Escalate(msg); err != nil {
			b.logger.Error("Failed to escalate message",
				zap.Int64("chat_id", msg.ChatID),
				zap.Int64("message_id", msg.MessageID),
				zap.Error(err),
			)
		}
	}
}

// handleCallbackQuery turns a button press into a decision event.
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.From == nil || query.Message == nil {
		return
	}

	event := moderation.DecisionEvent{
		ActorID:         query.From.ID,
		ActorFirstName:  query.From.FirstName,
		PromptChatID:    query.Message.Chat.ID,
		PromptMessageID: int64(query.Message.MessageID),
		CallbackID:      query.ID,
		Payload:         query.Data,
	}

	if err := b.resolver.Resolve(event); err != nil {
		b.logger.Error("Failed to resolve decision event",
			zap.Int64("user_id", event.ActorID),
			zap.String("payload", event.Payload),
			zap.Error(err),
		)
	}
}

// toModel maps a platform message onto the classifier's view of it.
func toModel(message *tgbotapi.Message) (models.Message, bool) {
	if message.From == nil || message.Chat == nil {
		return models.Message{}, false
	}

	text := message.Text
	if text == "" {
		text = message.Caption
	}

	return models.Message{
		ChatID:        message.Chat.ID,
		MessageID:     int64(message.MessageID),
		UserID:        message.From.ID,
		UserFirstName: message.From.FirstName,
		ChatTitle:     message.Chat.Title,
		ChatUsername:  message.Chat.UserName,
		Text:          text,
		FromChannel:   message.ForwardFromChat != nil && message.ForwardFromChat.IsChannel(),
		IsGroup:       message.Chat.IsGroup() || message.Chat.IsSuperGroup(),
	}, true
}
