package navigation

import (
	"testing"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathMappingIsTotalBijection(t *testing.T) {
	tabs := []domain.Tab{
		domain.TabExplore,
		domain.TabAdopt,
		domain.TabSearch,
		domain.TabNotifications,
		domain.TabFriends,
		domain.TabProfile,
		domain.TabEditProfile,
	}

	seen := make(map[string]domain.Tab, len(tabs))
	for _, tab := range tabs {
		path := PathFor(tab)
		_, dup := seen[path]
		require.False(t, dup, "path %q mapped twice", path)
		seen[path] = tab

		assert.Equal(t, tab, TabFor(path))
	}
}

func TestPathMappingDefaults(t *testing.T) {
	assert.Equal(t, "/", PathFor(domain.Tab("settings")))
	assert.Equal(t, domain.TabExplore, TabFor("/does-not-exist"))
}

func TestNewControllerNormalizesUnknownStartPath(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/bogus")

	assert.Equal(t, domain.TabExplore, sess.ActiveTab)
	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, Entry{Tab: domain.TabExplore, Path: "/"}, c.Current())
}

func TestNewControllerResolvesKnownStartPath(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/messages")

	assert.Equal(t, domain.TabFriends, sess.ActiveTab)
	assert.Equal(t, 1, c.Depth())
}

func TestSwitchTabPushesExactlyOneEntryAndRenders(t *testing.T) {
	sess := &domain.Session{}
	renders, scrolls := 0, 0
	c := NewController(sess, "/",
		WithRenderFunc(func() { renders++ }),
		WithScrollReset(func() { scrolls++ }),
	)

	c.SwitchTab(domain.TabAdopt, true)
	c.SwitchTab(domain.TabProfile, true)

	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, domain.TabProfile, sess.ActiveTab)
	assert.Equal(t, 2, renders)
	assert.Equal(t, 2, scrolls)
}

func TestSwitchTabWithoutPushKeepsDepth(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/")

	c.SwitchTab(domain.TabSearch, false)

	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, domain.TabSearch, sess.ActiveTab)
}

func TestBackRestoresPreviousTabWithoutGrowingStack(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/")
	c.SwitchTab(domain.TabAdopt, true)

	depth := c.Depth()
	c.Back()

	assert.Equal(t, domain.TabExplore, sess.ActiveTab)
	assert.Equal(t, depth, c.Depth())
}

func TestBackForwardRoundTrip(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/")
	c.SwitchTab(domain.TabNotifications, true)

	c.Back()
	require.Equal(t, domain.TabExplore, sess.ActiveTab)

	c.Forward()
	assert.Equal(t, domain.TabNotifications, sess.ActiveTab)
	assert.Equal(t, 2, c.Depth())
}

func TestBackAtStackBottomIsNoOp(t *testing.T) {
	sess := &domain.Session{}
	renders := 0
	c := NewController(sess, "/", WithRenderFunc(func() { renders++ }))

	c.Back()

	assert.Equal(t, domain.TabExplore, sess.ActiveTab)
	assert.Equal(t, 1, c.Depth())
	assert.Zero(t, renders)
}

func TestBackClosesChatBeforePoppingHistory(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/")
	c.SwitchTab(domain.TabFriends, true)
	sess.ActiveChatID = 1

	c.Back()
	assert.Equal(t, domain.TabFriends, sess.ActiveTab, "first back only closes the chat")
	assert.False(t, sess.ChatOpen())
	assert.Equal(t, 2, c.Depth())

	c.Back()
	assert.Equal(t, domain.TabExplore, sess.ActiveTab)
}

func TestSwitchTabClearsActiveChat(t *testing.T) {
	sess := &domain.Session{ActiveTab: domain.TabFriends, ActiveChatID: 1}
	c := NewController(sess, "/messages")
	sess.ActiveChatID = 1

	c.SwitchTab(domain.TabExplore, true)

	assert.False(t, sess.ChatOpen())
}

func TestSwitchTabAfterBackDropsForwardEntries(t *testing.T) {
	sess := &domain.Session{}
	c := NewController(sess, "/")
	c.SwitchTab(domain.TabAdopt, true)
	c.SwitchTab(domain.TabSearch, true)
	c.Back()
	c.Back()

	c.SwitchTab(domain.TabProfile, true)

	assert.Equal(t, 2, c.Depth())
	c.Forward()
	assert.Equal(t, domain.TabProfile, sess.ActiveTab, "forward history was rewritten")
}
