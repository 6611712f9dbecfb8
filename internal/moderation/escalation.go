package moderation

import (
	"fmt"

	"go.uber.org/zap"

	"modbot/internal/callback"
	"modbot/internal/incidents"
	"modbot/internal/models"
)

const decisionPromptText = "Is this message spam?"

// Escalator turns a needs-review verdict into an open incident: the flagged
// message is forwarded to the admin channel together with a decision prompt,
// and the case is registered for exactly one later resolution.
type Escalator struct {
	api            TelegramAPI
	registry       *incidents.Registry
	adminChannelID int64
	logger         *zap.Logger
}

// NewEscalator creates a new escalation workflow.
func NewEscalator(api TelegramAPI, registry *incidents.Registry, adminChannelID int64, logger *zap.Logger) *Escalator {
	return &Escalator{
		api:            api,
		registry:       registry,
		adminChannelID: adminChannelID,
		logger:         logger,
	}
}

// Escalate posts the flagged message and its decision prompt to the admin
// channel and opens the incident. The registry is touched only after both
// platform calls succeed, so a failed post never leaves an incident registered
// for a prompt that does not exist.
func (e *Escalator) Escalate(msg models.Message) error {
	key := models.Incident{ChatID: msg.ChatID, MessageID: msg.MessageID}
	if e.registry.Contains(key) {
		e.logger.Debug("Incident already open, skipping escalation",
			zap.Int64("chat_id", msg.ChatID),
			zap.Int64("message_id", msg.MessageID),
		)
		return nil
	}

	forwardedID, err := e.api.ForwardMessage(e.adminChannelID, msg.ChatID, msg.MessageID)
	if err != nil {
		return fmt.Errorf("forward flagged message: %w", err)
	}

	spamPayload := callback.Encode(msg.UserID, msg.ChatID, msg.MessageID, callback.ActionSpam)
	noSpamPayload := callback.Encode(msg.UserID, msg.ChatID, msg.MessageID, callback.ActionNoSpam)

	promptID, err := e.api.SendDecisionPrompt(e.adminChannelID, forwardedID, decisionPromptText, spamPayload, noSpamPayload)
	if err != nil {
		return fmt.Errorf("send decision prompt: %w", err)
	}

	e.registry.Append(models.Incident{
		ChatID:                msg.ChatID,
		MessageID:             msg.MessageID,
		AdminChannelMessageID: promptID,
	})

	e.logger.Info("Message escalated for review",
		zap.Int64("chat_id", msg.ChatID),
		zap.Int64("message_id", msg.MessageID),
		zap.Int64("user_id", msg.UserID),
		zap.Int64("prompt_message_id", promptID),
	)
	return nil
}
