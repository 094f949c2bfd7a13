// Package appview projects the session and domain cache onto a terminal
// frame. Every mutation re-renders the full content region; views are pure
// functions of state.
package appview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
)

var tabTitles = map[domain.Tab]string{
	domain.TabExplore:       "Explore",
	domain.TabAdopt:         "Find Shelters",
	domain.TabSearch:        "Search",
	domain.TabNotifications: "Activity",
	domain.TabFriends:       "Messages",
	domain.TabProfile:       "My Profile",
	domain.TabEditProfile:   "Edit Profile",
}

// HeaderTitle resolves the header text: "Chat" while a chat is open,
// "Instanimals" when logged out, otherwise the active tab's static title.
func HeaderTitle(session *domain.Session) string {
	if session.ChatOpen() {
		return "Chat"
	}
	if !session.LoggedIn {
		return "Instanimals"
	}
	return tabTitles[session.ActiveTab]
}

// BackVisible reports whether the back affordance is shown: always, except
// on the explore tab with no chat open, and never when logged out.
func BackVisible(session *domain.Session) bool {
	if !session.LoggedIn {
		return false
	}
	return session.ActiveTab != domain.TabExplore || session.ChatOpen()
}

// FormatShelterName turns a raw handle like "Happy_Paws" or
// "sanJoseAnimalCare" into spaced Title Case.
func FormatShelterName(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(raw[i-1])
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte(' ')
			}
		}
		if r == '_' || r == '-' {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Sink receives complete rendered frames.
type Sink interface {
	Write(frame string)
}

// Engine renders the whole app for the current session and cache. A nil sink
// makes Render a silent no-op, mirroring a missing mount point.
type Engine struct {
	session *domain.Session
	cache   *application.Cache
	sink    Sink
	styles  styles
}

func NewEngine(session *domain.Session, cache *application.Cache, sink Sink) *Engine {
	return &Engine{
		session: session,
		cache:   cache,
		sink:    sink,
		styles:  newStyles(),
	}
}

func (e *Engine) Render() {
	if e.sink == nil {
		return
	}
	e.sink.Write(e.View())
}

// View builds the full frame: header, then the content region for the
// active tab (or the gate when logged out).
func (e *Engine) View() string {
	lines := []string{e.header()}

	if !e.session.LoggedIn {
		lines = append(lines, renderGate(e.styles))
	} else {
		lines = append(lines, e.content())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (e *Engine) header() string {
	title := e.styles.title.Render(HeaderTitle(e.session))
	if BackVisible(e.session) {
		return lipgloss.JoinHorizontal(lipgloss.Top, e.styles.back.Render("‹ back"), "  ", title)
	}
	return title
}

func (e *Engine) content() string {
	s := e.styles
	switch e.session.ActiveTab {
	case domain.TabExplore:
		return renderExplore(e.cache, s)
	case domain.TabAdopt:
		return renderAdopt(e.cache, s)
	case domain.TabSearch:
		return renderSearch(e.cache, s)
	case domain.TabNotifications:
		return renderNotifications(e.cache.Notifications, s)
	case domain.TabFriends:
		if e.session.ChatOpen() {
			return renderChat(e.cache.Chats[e.session.ActiveChatID], s)
		}
		return renderContacts(e.cache.Contacts, s)
	case domain.TabProfile:
		return renderProfile(e.session.Profile, s)
	case domain.TabEditProfile:
		return renderEditProfile(e.session.Profile, s)
	default:
		return renderExplore(e.cache, s)
	}
}

var gatePreviews = []string{"Buddy", "Luna", "Max", "Rocky"}

func renderGate(s styles) string {
	lines := []string{
		s.lock.Render("🔒 " + strings.Join(gatePreviews, "  ")),
		s.sectionTitle.Render("Find animals near you"),
		s.body.Render("Join Instanimals to see adoptable pets, connect with local shelters, and help animals in need."),
		s.cta.Render("Log in or sign up to continue."),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderExplore(cache *application.Cache, s styles) string {
	if !cache.AnimalsLoaded {
		return s.empty.Render("● ● ●")
	}
	if len(cache.Animals) == 0 {
		return s.empty.Render("No animals found. Try again later.")
	}

	cards := make([]string, 0, len(cache.Animals))
	for _, a := range cache.Animals {
		cards = append(cards, renderAnimalCard(a, cache, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

const captionLimit = 220

func renderAnimalCard(a domain.Animal, cache *application.Cache, s styles) string {
	shelter := a.ShelterName
	if shelter == "" {
		shelter = "Local Shelter"
	}

	head := s.name.Render(shelter)
	if a.Location != "" {
		head += "  " + s.handle.Render(a.Location)
	}
	if label := a.Urgency.Label(); label != "" {
		head += "  " + s.urgencyBadge(label).Render(label+" Urgency")
	}

	lines := []string{head, s.title.Render(a.Name)}

	meta := joinNonEmpty(" · ", a.Age, a.Size, a.Gender)
	if a.Breeds != "" {
		meta = joinNonEmpty("  ", s.meta.Render(a.Breeds), s.meta.Render(meta))
	} else if meta != "" {
		meta = s.meta.Render(meta)
	}
	if meta != "" {
		lines = append(lines, meta)
	}

	if caption := truncate(a.Description, captionLimit); caption != "" {
		lines = append(lines, s.body.Render(caption))
	}

	star := "☆ Star"
	starStyle := s.action
	if cache.StarredAnimals[a.ID] {
		star = "★ Starred"
		starStyle = s.liked
	}
	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		starStyle.Render(star), "  ",
		s.action.Render(fmt.Sprintf("Comment (%d)", len(cache.AnimalComments[a.ID]))), "  ",
		s.action.Render("Share"), "  ",
		s.action.Render("Adopt ♡"))
	lines = append(lines, actions)

	for _, c := range cache.AnimalComments[a.ID] {
		lines = append(lines, s.commentUser.Render("@"+c.AuthorName)+" "+s.comment.Render(c.Text))
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderPostCard(p domain.Post, cache *application.Cache, s styles) string {
	display := "@" + p.AuthorHandle
	if p.IsShelter {
		display = FormatShelterName(p.AuthorHandle)
	}

	likeStyle := s.action
	likeMark := "♡"
	if cache.IsLiked(p.ID) {
		likeStyle = s.liked
		likeMark = "♥"
	}

	lines := []string{
		s.name.Render(display) + "  " + s.handle.Render(p.Location),
		s.body.Render(p.BodyText),
		lipgloss.JoinHorizontal(lipgloss.Top,
			likeStyle.Render(fmt.Sprintf("%s %d", likeMark, p.LikeCount)), "  ",
			s.action.Render(fmt.Sprintf("Comment (%d)", len(p.Comments)))),
	}

	if len(p.Comments) == 0 {
		lines = append(lines, s.empty.Render("No comments yet."))
	}
	for _, c := range p.Comments {
		lines = append(lines, s.commentUser.Render("@"+c.AuthorName)+" "+s.comment.Render(c.Text))
	}

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderAdopt(cache *application.Cache, s styles) string {
	lines := []string{s.sectionTitle.Render("Find Shelters")}

	location := cache.ShelterLocation
	if location == "" {
		location = "City, ZIP, or address"
	}
	lines = append(lines, s.meta.Render("Location: ")+s.body.Render(location))

	if cache.ShelterStatus != "" {
		lines = append(lines, s.status.Render(cache.ShelterStatus))
	}

	for _, shelter := range cache.Shelters {
		lines = append(lines, renderShelter(shelter, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderShelter(shelter domain.Shelter, s styles) string {
	lines := []string{
		s.name.Render(shelter.Name),
		s.body.Render(shelter.Address),
		s.meta.Render("Hours: " + shelter.Hours),
		s.meta.Render(shelter.Phone),
	}
	if shelter.Website != "" {
		lines = append(lines, s.meta.Render(shelter.Website))
	}
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderSearch(cache *application.Cache, s styles) string {
	lines := []string{s.meta.Render("Search: ") + s.body.Render(cache.SearchQuery)}

	for _, p := range cache.FilterPosts(cache.SearchQuery) {
		lines = append(lines, renderPostCard(p, cache, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderNotifications(notifications []domain.Notification, s styles) string {
	if len(notifications) == 0 {
		return s.empty.Render("No activity yet.")
	}

	lines := make([]string, 0, len(notifications))
	for _, n := range notifications {
		lines = append(lines, s.commentUser.Render("@"+n.From)+" "+s.body.Render(n.Text)+"  "+s.handle.Render(n.Time))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderContacts(contacts []domain.Contact, s styles) string {
	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		name := c.Name
		if c.Online {
			name += " ●"
		}
		lines = append(lines, s.card.Render(
			s.name.Render(name)+"\n"+s.handle.Render(c.LastMsg)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderChat(messages []domain.ChatMessage, s styles) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		bubble := fmt.Sprintf("%s  %s", m.Text, m.Time)
		if m.Sender == domain.SenderMe {
			lines = append(lines, s.chatMine.Render("you: "+bubble))
		} else {
			lines = append(lines, s.chatTheirs.Render(bubble))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(profile domain.Profile, s styles) string {
	handle := profile.Handle
	if handle == "" {
		handle = profile.DisplayName
	}

	lines := []string{
		s.sectionTitle.Render(profile.DisplayName),
		s.handle.Render("@" + handle),
		s.body.Render(profile.Bio),
		s.action.Render("Edit Profile  ·  Sign Out"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderEditProfile(profile domain.Profile, s styles) string {
	lines := []string{
		s.sectionTitle.Render("Edit Profile"),
		s.meta.Render("USERNAME ") + s.body.Render(profile.DisplayName),
		s.meta.Render("BIO      ") + s.body.Render(profile.Bio),
		s.action.Render("Cancel  ·  Save"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
