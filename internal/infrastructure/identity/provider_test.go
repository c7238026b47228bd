package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider_CurrentUser(t *testing.T) {
	p := NewStaticProvider()

	_, ok := p.CurrentUser()
	assert.False(t, ok)

	p.SignIn(User{ID: "user-1", DisplayName: "Trail Gear Co"})
	u, ok := p.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "user-1", u.ID)

	p.SignOut()
	_, ok = p.CurrentUser()
	assert.False(t, ok)
}

func TestStaticProvider_OnChange(t *testing.T) {
	p := NewStaticProvider()

	var events []bool
	unsubscribe := p.OnChange(func(_ User, signedIn bool) {
		events = append(events, signedIn)
	})

	p.SignIn(User{ID: "user-1"})
	p.SignOut()
	require.Equal(t, []bool{true, false}, events)

	unsubscribe()
	p.SignIn(User{ID: "user-2"})
	assert.Len(t, events, 2, "unsubscribed callback never fires again")
}
