// Package classifier decides what the bot should do with an inbound group
// message. Rules are evaluated in registration order and the first match wins,
// so the broadest gates (is this chat allowed at all?) come first and the
// soft signals that need a human decision come last.
package classifier

import "modbot/internal/models"

// Rule pairs a pure predicate over a message with the verdict it produces.
type Rule struct {
	Name    string
	Matches func(models.Message) bool
	Verdict models.Verdict
}

// Classifier evaluates an ordered rule chain.
type Classifier struct {
	rules []Rule
}

// New creates a classifier with the given rule chain.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Default builds the standard chain: unknown chats are left, channel forwards
// and join links are removed outright, admin mentions are relayed, and bare
// @username mentions go to the admin panel for review.
func Default(allowedChats []int64) *Classifier {
	allowed := make(map[int64]bool, len(allowedChats))
	for _, chatID := range allowedChats {
		allowed[chatID] = true
	}

	return New([]Rule{
		{
			Name:    "allowed_chats",
			Matches: func(m models.Message) bool { return !allowed[m.ChatID] },
			Verdict: models.VerdictLeaveChat,
		},
		{
			Name:    "channel_forward",
			Matches: IsChannelForward,
			Verdict: models.VerdictDefiniteSpam,
		},
		{
			Name:    "join_chat_link",
			Matches: HasJoinChatLink,
			Verdict: models.VerdictDefiniteSpam,
		},
		{
			Name:    "admin_mention",
			Matches: MentionsAdmin,
			Verdict: models.VerdictAdminMention,
		},
		{
			Name:    "username_mention",
			Matches: HasUsernameMention,
			Verdict: models.VerdictNeedsReview,
		},
	})
}

// Classify returns the verdict of the first matching rule, or benign when no
// rule matches.
func (c *Classifier) Classify(message models.Message) models.Verdict {
	for _, rule := range c.rules {
		if rule.Matches(message) {
			return rule.Verdict
		}
	}
	return models.VerdictBenign
}
