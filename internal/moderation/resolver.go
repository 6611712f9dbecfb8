package moderation

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"modbot/internal/callback"
	"modbot/internal/incidents"
	"modbot/internal/models"
)

const incidentNotFoundText = "The incident couldn't be found!"

// DecisionStore persists resolved incidents for the audit trail. The resolver
// works without one; a nil store disables auditing.
type DecisionStore interface {
	Insert(record models.DecisionRecord) error
}

// DecisionEvent is one admin button press, as delivered by the platform.
type DecisionEvent struct {
	ActorID         int64  // user who pressed the button
	ActorFirstName  string // used in the resolution report
	PromptChatID    int64  // chat holding the decision prompt (the admin channel)
	PromptMessageID int64  // the decision prompt itself
	CallbackID      string // callback query id to acknowledge
	Payload         string // encoded (user, chat, message, action)
}

// Resolver consumes decision events and brings each incident to closure
// exactly once.
type Resolver struct {
	api      TelegramAPI
	registry *incidents.Registry
	admins   *AdminSet
	store    DecisionStore
	logger   *zap.Logger
}

// NewResolver creates a new decision resolver.
func NewResolver(api TelegramAPI, registry *incidents.Registry, admins *AdminSet, store DecisionStore, logger *zap.Logger) *Resolver {
	return &Resolver{
		api:      api,
		registry: registry,
		admins:   admins,
		store:    store,
		logger:   logger,
	}
}

// Resolve handles one decision event. Platform failures are folded into the
// prompt text and never abort the remaining steps; the only hard failure is a
// malformed payload, which poisons that single event and nothing else.
func (r *Resolver) Resolve(event DecisionEvent) error {
	// Only admins are allowed to decide. No user-visible reply: answering
	// would confirm to outsiders that the button does something.
	if !r.admins.Contains(event.ActorID) {
		r.logger.Error("Non-admin pressed a decision button",
			zap.Int64("user_id", event.ActorID),
			zap.String("payload", event.Payload),
		)
		return nil
	}

	decision, err := callback.Decode(event.Payload)
	if err != nil {
		return fmt.Errorf("decode decision payload: %w", err)
	}

	// Single atomic claim: of two racing clicks for the same incident exactly
	// one gets the stored incident, the other lands here with not-found.
	claimKey := models.Incident{ChatID: decision.ChatID, MessageID: decision.MessageID}
	claimed, err := r.registry.Handle(claimKey)
	if errors.Is(err, incidents.ErrIncidentNotFound) {
		r.editPrompt(event, incidentNotFoundText)
		r.answerCallback(event, incidentNotFoundText)
		return nil
	}
	if err != nil {
		return fmt.Errorf("claim incident: %w", err)
	}

	switch decision.Action {
	case callback.ActionSpam:
		r.resolveSpam(event, decision, claimed)
	case callback.ActionNoSpam:
		r.resolveNoSpam(event, decision, claimed)
	}
	return nil
}

func (r *Resolver) resolveSpam(event DecisionEvent, decision callback.Decision, claimed models.Incident) {
	text := "Message is spam. I deleted it."
	if err := r.api.DeleteMessage(decision.ChatID, decision.MessageID); err != nil {
		text = "Not able to delete message! Maybe already deleted!"
		r.logger.Warn("Not able to delete message. Maybe already deleted or I'm not an admin!",
			zap.Int64("chat_id", decision.ChatID),
			zap.Int64("message_id", decision.MessageID),
			zap.Error(err),
		)
	}

	text = fmt.Sprintf("Incident handled by %s\n%s", event.ActorFirstName, text)
	r.editPrompt(event, text)
	r.answerCallback(event, text)

	if err := r.api.BanChatMember(decision.ChatID, decision.UserID); err != nil {
		text += "\nCouldn't kick user! Maybe he already left!"
		r.editPrompt(event, text)
		r.logger.Warn("Not able to kick user. Maybe he already left or I'm not an admin!",
			zap.Int64("chat_id", decision.ChatID),
			zap.Int64("user_id", decision.UserID),
			zap.Error(err),
		)
	}

	r.audit(event, decision, claimed, text)
}

func (r *Resolver) resolveNoSpam(event DecisionEvent, decision callback.Decision, claimed models.Incident) {
	text := fmt.Sprintf("Incident handled by %s\nNo spam. Keeping the message!", event.ActorFirstName)
	r.editPrompt(event, text)
	r.answerCallback(event, text)

	r.audit(event, decision, claimed, text)
}

func (r *Resolver) editPrompt(event DecisionEvent, text string) {
	if err := r.api.EditMessageText(event.PromptChatID, event.PromptMessageID, text); err != nil {
		r.logger.Warn("Failed to edit decision prompt",
			zap.Int64("chat_id", event.PromptChatID),
			zap.Int64("message_id", event.PromptMessageID),
			zap.Error(err),
		)
	}
}

func (r *Resolver) answerCallback(event DecisionEvent, text string) {
	if err := r.api.AnswerCallback(event.CallbackID, text); err != nil {
		r.logger.Warn("Failed to answer callback query",
			zap.String("callback_id", event.CallbackID),
			zap.Error(err),
		)
	}
}

func (r *Resolver) audit(event DecisionEvent, decision callback.Decision, claimed models.Incident, outcome string) {
	r.logger.Info("Incident resolved",
		zap.Int64("chat_id", claimed.ChatID),
		zap.Int64("message_id", claimed.MessageID),
		zap.Int64("prompt_message_id", claimed.AdminChannelMessageID),
		zap.String("action", string(decision.Action)),
		zap.Int64("resolved_by", event.ActorID),
	)

	if r.store == nil {
		return
	}

	record := models.DecisionRecord{
		ID:         uuid.NewString(),
		ChatID:     claimed.ChatID,
		MessageID:  claimed.MessageID,
		UserID:     decision.UserID,
		Action:     string(decision.Action),
		ResolvedBy: event.ActorID,
		Outcome:    outcome,
		CreatedAt:  time.Now().UTC(),
	}
	if err := r.store.Insert(record); err != nil {
		r.logger.Warn("Failed to write decision audit record", zap.Error(err))
	}
}
