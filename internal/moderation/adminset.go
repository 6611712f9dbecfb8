package moderation

import (
	"go.uber.org/zap"
)

// AdminSet is the process-wide set of user ids authorized to issue decisions.
// It is built once at startup and read-only afterwards, so lookups need no
// synchronization.
type AdminSet struct {
	ids map[int64]bool
}

// NewAdminSet builds the set from the statically configured ids plus the
// administrator roster of every configured chat. A chat whose roster cannot be
// fetched is logged and skipped; the bot is probably not a member there.
func NewAdminSet(api TelegramAPI, staticAdmins, chats []int64, logger *zap.Logger) *AdminSet {
	ids := make(map[int64]bool, len(staticAdmins))
	for _, id := range staticAdmins {
		ids[id] = true
	}

	for _, chatID := range chats {
		admins, err := api.GetChatAdministrators(chatID)
		if err != nil {
			logger.Error("Couldn't fetch admins. Are you sure the bot is member of the chat?",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			continue
		}
		for _, id := range admins {
			ids[id] = true
		}
	}

	return &AdminSet{ids: ids}
}

// Contains reports whether the user is authorized to issue decisions.
func (s *AdminSet) Contains(userID int64) bool {
	return s.ids[userID]
}

// IDs returns the member ids in no particular order.
func (s *AdminSet) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
