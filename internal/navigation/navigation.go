// Package navigation owns the tab↔path mapping and the history stack: tab
// switches push entries, back/forward navigation re-resolves the tab from the
// entry path and re-renders without pushing.
package navigation

import "github.com/instanimals/instanimals-cli/internal/domain"

var tabPaths = map[domain.Tab]string{
	domain.TabExplore:       "/",
	domain.TabAdopt:         "/adopt",
	domain.TabSearch:        "/search",
	domain.TabNotifications: "/notifications",
	domain.TabFriends:       "/messages",
	domain.TabProfile:       "/profile",
	domain.TabEditProfile:   "/edit-profile",
}

var pathTabs = func() map[string]domain.Tab {
	m := make(map[string]domain.Tab, len(tabPaths))
	for tab, path := range tabPaths {
		m[path] = tab
	}
	return m
}()

// PathFor returns the canonical path for a tab; unknown tabs map to "/".
func PathFor(tab domain.Tab) string {
	if path, ok := tabPaths[tab]; ok {
		return path
	}
	return "/"
}

// TabFor resolves a path to its tab; unknown paths map to the explore tab.
func TabFor(path string) domain.Tab {
	if tab, ok := pathTabs[path]; ok {
		return tab
	}
	return domain.TabExplore
}

// Entry is one history stack entry.
type Entry struct {
	Tab  domain.Tab
	Path string
}

// Controller mutates the session's navigation fields and owns the history
// stack. The render and scroll-reset hooks are optional; a nil hook is a
// no-op so the controller stays usable in tests without a screen.
type Controller struct {
	session   *domain.Session
	entries   []Entry
	index     int
	render    func()
	scrollTop func()
}

type Option func(*Controller)

func WithRenderFunc(render func()) Option {
	return func(c *Controller) { c.render = render }
}

func WithScrollReset(scrollTop func()) Option {
	return func(c *Controller) { c.scrollTop = scrollTop }
}

// NewController resolves the starting tab from startPath, defaulting to
// explore for unrecognized paths, and seeds the history stack with a single
// normalized entry (replace semantics: depth stays 1).
func NewController(session *domain.Session, startPath string, opts ...Option) *Controller {
	tab := TabFor(startPath)
	session.ActiveTab = tab
	session.ActiveChatID = 0

	c := &Controller{
		session: session,
		entries: []Entry{{Tab: tab, Path: PathFor(tab)}},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SwitchTab activates a tab, clears any open chat, and (when push is true)
// pushes a history entry, dropping any forward entries. Every call re-renders
// and resets scroll.
func (c *Controller) SwitchTab(tab domain.Tab, push bool) {
	c.session.ActiveTab = tab
	c.session.ActiveChatID = 0

	if push {
		c.entries = append(c.entries[:c.index+1], Entry{Tab: tab, Path: PathFor(tab)})
		c.index = len(c.entries) - 1
	}

	c.doRender()
	c.doScrollTop()
}

// Back closes an open chat without touching the history stack; otherwise it
// performs a native history pop.
func (c *Controller) Back() {
	if c.session.ChatOpen() {
		c.session.ActiveChatID = 0
		c.doRender()
		return
	}

	if c.index == 0 {
		return
	}
	c.index--
	c.dispatch()
}

// Forward re-enters the next history entry, if any.
func (c *Controller) Forward() {
	if c.index >= len(c.entries)-1 {
		return
	}
	c.index++
	c.dispatch()
}

// dispatch applies the current entry after a back/forward pop: the tab is
// re-resolved from the entry path, any chat is closed, and no entry is pushed.
func (c *Controller) dispatch() {
	entry := c.entries[c.index]
	c.session.ActiveTab = TabFor(entry.Path)
	c.session.ActiveChatID = 0

	c.doRender()
	c.doScrollTop()
}

// Depth is the history stack size; it grows by exactly one per pushing
// SwitchTab and never on init or pop dispatch.
func (c *Controller) Depth() int {
	return len(c.entries)
}

func (c *Controller) Current() Entry {
	return c.entries[c.index]
}

func (c *Controller) doRender() {
	if c.render != nil {
		c.render()
	}
}

func (c *Controller) doScrollTop() {
	if c.scrollTop != nil {
		c.scrollTop()
	}
}
