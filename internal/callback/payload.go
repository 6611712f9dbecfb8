// Package callback implements the decision-event payload carried in the
// inline-button callback data: "{user_id}_{chat_id}_{message_id}_{action}".
// The format is pinned by Telegram's 64-byte callback-data limit; everything
// else in the bot goes through Encode/Decode so the format could be swapped
// without touching the resolver.
package callback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPayload indicates a corrupted or forged callback payload. A
// well-formed prompt never produces one, so the resolver treats it as a hard
// failure of that single event.
var ErrMalformedPayload = errors.New("malformed callback payload")

// Action is the admin's decision carried in the payload.
type Action string

const (
	ActionSpam   Action = "spam"
	ActionNoSpam Action = "nospam"
)

// Decision is the decoded payload of a decision button press.
type Decision struct {
	UserID    int64
	ChatID    int64
	MessageID int64
	Action    Action
}

// Encode builds the callback payload for a decision button.
func Encode(userID, chatID, messageID int64, action Action) string {
	return fmt.Sprintf("%d_%d_%d_%s", userID, chatID, messageID, action)
}

// Decode parses a callback payload produced by Encode. IDs are numeric and
// never contain underscores, so the payload splits into exactly four parts.
func Decode(payload string) (Decision, error) {
	parts := strings.Split(payload, "_")
	if len(parts) != 4 {
		return Decision{}, fmt.Errorf("%w: %q", ErrMalformedPayload, payload)
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: user id %q", ErrMalformedPayload, parts[0])
	}
	chatID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: chat id %q", ErrMalformedPayload, parts[1])
	}
	messageID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: message id %q", ErrMalformedPayload, parts[2])
	}

	action := Action(parts[3])
	if action != ActionSpam && action != ActionNoSpam {
		return Decision{}, fmt.Errorf("%w: action %q", ErrMalformedPayload, parts[3])
	}

	return Decision{
		UserID:    userID,
		ChatID:    chatID,
		MessageID: messageID,
		Action:    action,
	}, nil
}
