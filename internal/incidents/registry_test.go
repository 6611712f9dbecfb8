package incidents

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modbot/internal/models"
)

func TestAppendThenContainsThenHandle(t *testing.T) {
	registry := NewRegistry()
	incident := models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900}

	require.True(t, registry.Append(incident))
	assert.True(t, registry.Contains(incident))

	handled, err := registry.Handle(incident)
	require.NoError(t, err)
	assert.Equal(t, incident, handled)
	assert.False(t, registry.Contains(incident))
}

func TestHandleWithBareKeyReturnsStoredMetadata(t *testing.T) {
	registry := NewRegistry()
	registry.Append(models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900})

	// A lookup key built from callback data has no admin channel message id.
	handled, err := registry.Handle(models.Incident{ChatID: -100, MessageID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(900), handled.AdminChannelMessageID)
}

func TestHandleUnknownKeyLeavesRegistryUnchanged(t *testing.T) {
	registry := NewRegistry()
	registry.Append(models.Incident{ChatID: -100, MessageID: 7})

	_, err := registry.Handle(models.Incident{ChatID: -100, MessageID: 8})
	assert.ErrorIs(t, err, ErrIncidentNotFound)
	assert.Equal(t, 1, registry.Len())
}

func TestAppendKeepsFirstOnDuplicateKey(t *testing.T) {
	registry := NewRegistry()
	require.True(t, registry.Append(models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900}))
	require.False(t, registry.Append(models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 901}))

	handled, err := registry.Handle(models.Incident{ChatID: -100, MessageID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(900), handled.AdminChannelMessageID)
}

func TestIdentityIgnoresAdminChannelMessageID(t *testing.T) {
	a := models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900}
	b := models.Incident{ChatID: -100, MessageID: 7}
	assert.Equal(t, a.Key(), b.Key())

	c := models.Incident{ChatID: -100, MessageID: 8}
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSnapshotAndLen(t *testing.T) {
	registry := NewRegistry()
	registry.Append(models.Incident{ChatID: -100, MessageID: 1})
	registry.Append(models.Incident{ChatID: -100, MessageID: 2})
	registry.Append(models.Incident{ChatID: -200, MessageID: 1})

	assert.Equal(t, 3, registry.Len())
	assert.Len(t, registry.Snapshot(), 3)
}

func TestConcurrentHandleClaimsExactlyOnce(t *testing.T) {
	registry := NewRegistry()
	registry.Append(models.Incident{ChatID: -100, MessageID: 7, AdminChannelMessageID: 900})

	const claimers = 16
	var wg sync.WaitGroup
	wins := make(chan models.Incident, claimers)
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if claimed, err := registry.Handle(models.Incident{ChatID: -100, MessageID: 7}); err == nil {
				wins <- claimed
			}
		}()
	}
	wg.Wait()
	close(wins)

	claimed := make([]models.Incident, 0, 1)
	for incident := range wins {
		claimed = append(claimed, incident)
	}
	require.Len(t, claimed, 1)
	assert.Equal(t, int64(900), claimed[0].AdminChannelMessageID)
	assert.Equal(t, 0, registry.Len())
}
