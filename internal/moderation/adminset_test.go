package moderation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAdminSetMergesStaticAndFetchedAdmins(t *testing.T) {
	api := newFakeAPI()
	api.adminsByChat[testChatID] = []int64{100, 200}

	admins := NewAdminSet(api, []int64{testAdminID}, []int64{testChatID}, zap.NewNop())

	assert.True(t, admins.Contains(testAdminID))
	assert.True(t, admins.Contains(100))
	assert.True(t, admins.Contains(200))
	assert.False(t, admins.Contains(999))
	assert.Len(t, admins.IDs(), 3)
}

func TestAdminSetSkipsChatsItCannotRead(t *testing.T) {
	api := newFakeAPI()
	api.adminsErr[testChatID] = errors.New("bot is not a member")
	api.adminsByChat[-200] = []int64{300}

	admins := NewAdminSet(api, []int64{testAdminID}, []int64{testChatID, -200}, zap.NewNop())

	assert.True(t, admins.Contains(testAdminID))
	assert.True(t, admins.Contains(300))
	assert.Len(t, admins.IDs(), 2)
}
