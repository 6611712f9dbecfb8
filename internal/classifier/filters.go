package classifier

import (
	"regexp"
	"strings"

	"modbot/internal/models"
)

var (
	joinChatLinkRe    = regexp.MustCompile(`(?i)(?:t\.me|telegram\.me)/(?:joinchat/|\+)[A-Za-z0-9_-]+`)
	usernameMentionRe = regexp.MustCompile(`@[A-Za-z0-9_]{5,32}`)
)

// IsChannelForward matches messages forwarded into the group from a channel,
// the signature move of broadcast spam.
func IsChannelForward(m models.Message) bool {
	return m.FromChannel
}

// HasJoinChatLink matches invite links to other chats.
func HasJoinChatLink(m models.Message) bool {
	return joinChatLinkRe.MatchString(m.Text)
}

// MentionsAdmin matches messages calling for an admin.
func MentionsAdmin(m models.Message) bool {
	lower := strings.ToLower(m.Text)
	return strings.Contains(lower, "@admin") || strings.Contains(lower, "@admins")
}

// HasUsernameMention matches messages carrying any @username mention. These
// may be harmless, so they only go to review instead of straight removal.
func HasUsernameMention(m models.Message) bool {
	return usernameMentionRe.MatchString(m.Text)
}
