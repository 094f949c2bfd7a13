package appview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instanimals/instanimals-cli/internal/application"
	"github.com/instanimals/instanimals-cli/internal/domain"
)

type frameSink struct {
	frames []string
}

func (f *frameSink) Write(frame string) {
	f.frames = append(f.frames, frame)
}

func loggedInSession(tab domain.Tab) *domain.Session {
	return &domain.Session{
		LoggedIn:  true,
		Profile:   domain.DefaultProfile(),
		ActiveTab: tab,
	}
}

func TestHeaderTitle(t *testing.T) {
	cases := []struct {
		name    string
		session *domain.Session
		want    string
	}{
		{"logged out", &domain.Session{ActiveTab: domain.TabExplore}, "Instanimals"},
		{"explore", loggedInSession(domain.TabExplore), "Explore"},
		{"adopt", loggedInSession(domain.TabAdopt), "Find Shelters"},
		{"notifications", loggedInSession(domain.TabNotifications), "Activity"},
		{"friends", loggedInSession(domain.TabFriends), "Messages"},
		{"profile", loggedInSession(domain.TabProfile), "My Profile"},
		{"edit profile", loggedInSession(domain.TabEditProfile), "Edit Profile"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HeaderTitle(tc.session))
		})
	}
}

func TestHeaderTitleChatOverride(t *testing.T) {
	session := loggedInSession(domain.TabFriends)
	session.ActiveChatID = 1

	assert.Equal(t, "Chat", HeaderTitle(session))
}

func TestBackVisible(t *testing.T) {
	assert.False(t, BackVisible(&domain.Session{ActiveTab: domain.TabSearch}), "logged out")
	assert.False(t, BackVisible(loggedInSession(domain.TabExplore)), "explore, no chat")
	assert.True(t, BackVisible(loggedInSession(domain.TabSearch)))

	onChat := loggedInSession(domain.TabFriends)
	onChat.ActiveChatID = 1
	assert.True(t, BackVisible(onChat))

	exploreChat := loggedInSession(domain.TabExplore)
	exploreChat.ActiveChatID = 1
	assert.True(t, BackVisible(exploreChat), "chat overrides the explore exception")
}

func TestFormatShelterName(t *testing.T) {
	cases := map[string]string{
		"Happy_Paws":          "Happy Paws",
		"San_Jose_Animal_Care": "San Jose Animal Care",
		"sanJoseAnimalCare":   "San Jose Animal Care",
		"happy-paws":          "Happy Paws",
		"Shelter":             "Shelter",
	}

	for raw, want := range cases {
		assert.Equal(t, want, FormatShelterName(raw), raw)
	}
}

func TestRenderNilSinkIsNoOp(t *testing.T) {
	engine := NewEngine(loggedInSession(domain.TabExplore), application.NewCache(), nil)

	assert.NotPanics(t, engine.Render)
}

func TestRenderWritesFullFrame(t *testing.T) {
	sink := &frameSink{}
	cache := application.NewCache()
	engine := NewEngine(loggedInSession(domain.TabSearch), cache, sink)

	engine.Render()
	engine.Render()

	require.Len(t, sink.frames, 2)
	assert.Equal(t, sink.frames[0], sink.frames[1], "re-render of unchanged state is identical")
}

func TestGateShownWhenLoggedOutRegardlessOfTab(t *testing.T) {
	cache := application.NewCache()
	for _, tab := range []domain.Tab{domain.TabExplore, domain.TabProfile, domain.TabFriends} {
		engine := NewEngine(&domain.Session{ActiveTab: tab}, cache, nil)
		view := engine.View()

		assert.Contains(t, view, "Find animals near you", tab)
		assert.Contains(t, view, "Buddy", tab)
		assert.Contains(t, view, "Rocky", tab)
	}
}

func TestExploreLoadingThenEmptyThenCards(t *testing.T) {
	cache := application.NewCache()
	engine := NewEngine(loggedInSession(domain.TabExplore), cache, nil)

	assert.Contains(t, engine.View(), "● ● ●", "loading dots before first load")

	cache.AnimalsLoaded = true
	assert.Contains(t, engine.View(), "No animals found. Try again later.")

	cache.Animals = []domain.Animal{{
		ID:          "demo-1",
		Name:        "Buddy",
		Breeds:      "Australian Shephard",
		Age:         "2 years",
		Gender:      "Male",
		ShelterName: "Local Shelter",
		Urgency:     domain.UrgencyCritical,
	}}
	view := engine.View()
	assert.Contains(t, view, "Buddy")
	assert.Contains(t, view, "Critical Urgency")
	assert.Contains(t, view, "Local Shelter")
	assert.NotContains(t, view, "No animals found")
}

func TestAnimalCardStarState(t *testing.T) {
	cache := application.NewCache()
	cache.AnimalsLoaded = true
	cache.Animals = []domain.Animal{{ID: "demo-1", Name: "Buddy"}}
	engine := NewEngine(loggedInSession(domain.TabExplore), cache, nil)

	assert.Contains(t, engine.View(), "☆ Star")

	cache.StarredAnimals["demo-1"] = true
	assert.Contains(t, engine.View(), "★ Starred")
}

func TestSearchFiltersPosts(t *testing.T) {
	cache := application.NewCache()
	cache.SearchQuery = "fox"
	engine := NewEngine(loggedInSession(domain.TabSearch), cache, nil)

	view := engine.View()
	assert.Contains(t, view, "little fox")
	assert.NotContains(t, view, "heron")
}

func TestSearchPostCardFormatsShelterName(t *testing.T) {
	cache := application.NewCache()
	cache.SearchQuery = "Golden"
	engine := NewEngine(loggedInSession(domain.TabSearch), cache, nil)

	view := engine.View()
	assert.Contains(t, view, "Happy Paws")
	assert.NotContains(t, view, "@Happy_Paws")
}

func TestAdoptViewShowsStatusAndResults(t *testing.T) {
	cache := application.NewCache()
	cache.ShelterLocation = "Portland"
	cache.ShelterStatus = "Found 1 centers."
	cache.Shelters = []domain.Shelter{{
		Name:    "Happy Paws Shelter",
		Address: "12 Main St, Portland, OR, 97201",
		Hours:   "Mo-Fr 09:00-17:00",
		Phone:   "N/A",
	}}
	engine := NewEngine(loggedInSession(domain.TabAdopt), cache, nil)

	view := engine.View()
	assert.Contains(t, view, "Find Shelters")
	assert.Contains(t, view, "Portland")
	assert.Contains(t, view, "Found 1 centers.")
	assert.Contains(t, view, "Happy Paws Shelter")
	assert.Contains(t, view, "Hours: Mo-Fr 09:00-17:00")
}

func TestFriendsContactListThenChat(t *testing.T) {
	cache := application.NewCache()
	session := loggedInSession(domain.TabFriends)
	engine := NewEngine(session, cache, nil)

	assert.Contains(t, engine.View(), "Happy Paws Shelter")
	assert.Contains(t, engine.View(), "Thanks for your inquiry!")

	session.ActiveChatID = 1
	view := engine.View()
	assert.Contains(t, view, "Chat")
	assert.Contains(t, view, "Hello! How can we help you today?")
}

func TestChatDistinguishesSenders(t *testing.T) {
	cache := application.NewCache()
	cache.Chats[1] = append(cache.Chats[1], domain.ChatMessage{
		Sender: domain.SenderMe, Text: "Hi there", Time: "14:07",
	})
	session := loggedInSession(domain.TabFriends)
	session.ActiveChatID = 1
	engine := NewEngine(session, cache, nil)

	view := engine.View()
	assert.Contains(t, view, "you: Hi there")
	assert.Contains(t, view, "14:07")
}

func TestProfileViews(t *testing.T) {
	cache := application.NewCache()
	session := loggedInSession(domain.TabProfile)
	engine := NewEngine(session, cache, nil)

	view := engine.View()
	assert.Contains(t, view, "Felix Nature")
	assert.Contains(t, view, "@Felix")
	assert.Contains(t, view, "Wildlife enthusiast")

	session.ActiveTab = domain.TabEditProfile
	edit := engine.View()
	assert.Contains(t, edit, "USERNAME")
	assert.Contains(t, edit, "BIO")
}

func TestNotificationsView(t *testing.T) {
	cache := application.NewCache()
	engine := NewEngine(loggedInSession(domain.TabNotifications), cache, nil)

	view := engine.View()
	assert.Contains(t, view, "@Mike")
	assert.Contains(t, view, "liked your moment")
	assert.Contains(t, view, "2m ago")
}

func TestTruncateCaption(t *testing.T) {
	long := make([]rune, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'a')
	}

	got := truncate(string(long), captionLimit)
	assert.Len(t, []rune(got), captionLimit+1)
	assert.Equal(t, "…", string([]rune(got)[captionLimit:]))
	assert.Equal(t, "short", truncate("short", captionLimit))
}
