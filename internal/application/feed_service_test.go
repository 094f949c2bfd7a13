package application

import (
	"context"
	"testing"
	"time"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInSession() *domain.Session {
	return &domain.Session{
		LoggedIn:  true,
		Profile:   domain.Profile{DisplayName: "Felix", Handle: "Felix", AvatarSeed: "Felix"},
		ActiveTab: domain.TabExplore,
	}
}

func newFeedFixture(t *testing.T) (*FeedService, *Cache, *fakeGateway, *fakeStore) {
	t.Helper()

	cache := NewCache()
	gateway := &fakeGateway{}
	store := &fakeStore{}
	svc := NewFeedService(loggedInSession(), cache, store, gateway, fixedClock{now: time.UnixMilli(1_700_000_000_000)})
	return svc, cache, gateway, store
}

func TestToggleLikeIsIdempotentToggle(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)
	post, ok := cache.FindPost(1)
	require.True(t, ok)
	initial := post.LikeCount

	require.NoError(t, svc.ToggleLike(1))
	assert.Equal(t, initial+1, post.LikeCount)
	assert.True(t, cache.IsLiked(1))

	require.NoError(t, svc.ToggleLike(1))
	assert.Equal(t, initial, post.LikeCount, "liking twice equals not liking at all")
	assert.False(t, cache.IsLiked(1))

	for range 5 {
		require.NoError(t, svc.ToggleLike(1))
	}
	assert.Equal(t, initial+1, post.LikeCount)
}

func TestToggleLikeRequiresLogin(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)
	svc.session.LoggedIn = false
	post, _ := cache.FindPost(1)
	initial := post.LikeCount

	err := svc.ToggleLike(1)

	require.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.Equal(t, initial, post.LikeCount)
	assert.Empty(t, cache.Liked)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _, _, _ := newFeedFixture(t)

	err := svc.ToggleLike(999)

	require.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestSubmitCommentBlankInputNeverMutates(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)
	post, _ := cache.FindPost(1)
	before := len(post.Comments)

	for _, text := range []string{"", "   ", "\t\n"} {
		err := svc.SubmitComment(1, text)
		require.ErrorIs(t, err, domain.ErrEmptyInput)
	}

	assert.Equal(t, before, len(post.Comments))
}

func TestSubmitCommentAppendsWithProfileName(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)

	require.NoError(t, svc.SubmitComment(2, "  Such a good boy!  "))

	post, _ := cache.FindPost(2)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, domain.Comment{AuthorName: "Felix", Text: "Such a good boy!"}, post.Comments[0])
}

func TestToggleAnimalStarFlipsOverlay(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)

	starred, err := svc.ToggleAnimalStar("a-1")
	require.NoError(t, err)
	assert.True(t, starred)
	assert.True(t, cache.StarredAnimals["a-1"])

	starred, err = svc.ToggleAnimalStar("a-1")
	require.NoError(t, err)
	assert.False(t, starred)
}

func TestSubmitAnimalCommentAppends(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)

	require.NoError(t, svc.SubmitAnimalComment("a-7", "Adorable!"))

	require.Len(t, cache.AnimalComments["a-7"], 1)
	assert.Equal(t, "Felix", cache.AnimalComments["a-7"][0].AuthorName)
}

func TestCreatePostPrependsWithZeroLikes(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)
	before := len(cache.Posts)

	post, err := svc.CreatePost("Hello")
	require.NoError(t, err)

	require.Len(t, cache.Posts, before+1)
	assert.Equal(t, post, cache.Posts[0], "new post sits at index 0")
	assert.Equal(t, "Felix", post.AuthorHandle)
	assert.Zero(t, post.LikeCount)
	assert.Empty(t, post.Comments)
	assert.Equal(t, domain.PostID(1_700_000_000_000), post.ID)
}

func TestCreatePostDefaultMediaURLIsConfigurable(t *testing.T) {
	svc, _, _, _ := newFeedFixture(t)

	post, err := svc.CreatePost("no placeholder")
	require.NoError(t, err)
	assert.Empty(t, post.MediaURL)

	svc.DefaultMediaURL = "https://example.com/placeholder.jpg"
	post, err = svc.CreatePost("with placeholder")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/placeholder.jpg", post.MediaURL)
}

func TestCreatePostBlankTextRejected(t *testing.T) {
	svc, cache, _, _ := newFeedFixture(t)
	before := len(cache.Posts)

	_, err := svc.CreatePost("   ")

	require.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Equal(t, before, len(cache.Posts))
}

func TestLoadAnimalsSuccessReplacesList(t *testing.T) {
	svc, cache, gateway, _ := newFeedFixture(t)
	gateway.animals = []domain.Animal{{ID: "a-1", Name: "Buddy"}}

	svc.LoadAnimals(context.Background())

	assert.True(t, cache.AnimalsLoaded)
	assert.Len(t, cache.Animals, 1)
}

func TestLoadAnimalsTimeoutStillMarksLoaded(t *testing.T) {
	svc, cache, gateway, _ := newFeedFixture(t)
	gateway.blockAnimals = true
	svc.animalTimeout = 25 * time.Millisecond

	done := make(chan struct{})
	go func() {
		svc.LoadAnimals(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("LoadAnimals did not honor its timeout")
	}

	assert.True(t, cache.AnimalsLoaded, "loaded flag must flip so the spinner stops")
	assert.Empty(t, cache.Animals, "feed shows the empty-state message")
}

func TestLoadAnimalsEmptyResponseKeepsEmptyState(t *testing.T) {
	svc, cache, gateway, _ := newFeedFixture(t)
	gateway.animals = nil

	svc.LoadAnimals(context.Background())

	assert.True(t, cache.AnimalsLoaded)
	assert.Empty(t, cache.Animals)
}

func TestMarkAnimalFetchStartedFiresOnce(t *testing.T) {
	cache := NewCache()

	assert.True(t, cache.MarkAnimalFetchStarted())
	assert.False(t, cache.MarkAnimalFetchStarted())
	assert.False(t, cache.MarkAnimalFetchStarted())
}

func TestLogoutClearsStorageAndResetsSession(t *testing.T) {
	svc, _, _, store := newFeedFixture(t)
	store.record = domain.SessionRecord{Token: "felix@example.com", Profile: svc.session.Profile}

	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, 1, store.cleared)
	assert.False(t, svc.session.LoggedIn)
	assert.Equal(t, domain.DefaultProfile(), svc.session.Profile)
	assert.False(t, svc.session.ChatOpen())
}

func TestFilterPostsCaseInsensitiveSubstring(t *testing.T) {
	cache := NewCache()

	matches := cache.FilterPosts("LUNA")
	require.Len(t, matches, 1)
	assert.Equal(t, domain.PostID(4), matches[0].ID)

	assert.Len(t, cache.FilterPosts(""), len(cache.Posts))
	assert.Empty(t, cache.FilterPosts("zebra"))
}
