package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

const animalFetchTimeout = 5 * time.Second

// FeedService carries the feed-facing action handlers: like toggling,
// comments, post creation, animal overlays, and the one-shot animal load.
// Every gated handler returns domain.ErrNotLoggedIn without mutating state
// when the session is anonymous; the caller routes that into the login flow.
type FeedService struct {
	session *domain.Session
	cache   *Cache
	store   ports.ProfileStore
	gateway ports.Gateway
	clock   ports.Clock

	// DefaultMediaURL is attached to newly created posts; empty means no
	// placeholder image.
	DefaultMediaURL string

	animalTimeout time.Duration
}

func NewFeedService(session *domain.Session, cache *Cache, store ports.ProfileStore, gateway ports.Gateway, clock ports.Clock) *FeedService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FeedService{
		session:       session,
		cache:         cache,
		store:         store,
		gateway:       gateway,
		clock:         clock,
		animalTimeout: animalFetchTimeout,
	}
}

// ToggleLike flips the session's liked membership for a post and adjusts the
// like count by one. Liking twice is equivalent to not liking at all.
func (s *FeedService) ToggleLike(id domain.PostID) error {
	if !s.session.LoggedIn {
		return domain.ErrNotLoggedIn
	}

	post, ok := s.cache.FindPost(id)
	if !ok {
		return fmt.Errorf("toggle like %d: %w", id, domain.ErrPostNotFound)
	}

	if s.cache.IsLiked(id) {
		delete(s.cache.Liked, id)
		post.LikeCount--
	} else {
		s.cache.Liked[id] = struct{}{}
		post.LikeCount++
	}

	return nil
}

// SubmitComment appends a comment authored by the current profile. Blank
// input (after trimming) never mutates the comment list.
func (s *FeedService) SubmitComment(id domain.PostID, text string) error {
	if !s.session.LoggedIn {
		return domain.ErrNotLoggedIn
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyInput
	}

	post, ok := s.cache.FindPost(id)
	if !ok {
		return fmt.Errorf("comment on %d: %w", id, domain.ErrPostNotFound)
	}

	post.Comments = append(post.Comments, domain.Comment{
		AuthorName: s.session.Profile.DisplayName,
		Text:       text,
	})

	return nil
}

// ToggleAnimalStar flips the client-local starred overlay for an animal and
// returns the new state. Only the affected control needs re-rendering.
func (s *FeedService) ToggleAnimalStar(id string) (bool, error) {
	if !s.session.LoggedIn {
		return false, domain.ErrNotLoggedIn
	}

	now := !s.cache.StarredAnimals[id]
	s.cache.StarredAnimals[id] = now
	return now, nil
}

// SubmitAnimalComment appends a client-local comment on an animal card.
func (s *FeedService) SubmitAnimalComment(id, text string) error {
	if !s.session.LoggedIn {
		return domain.ErrNotLoggedIn
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyInput
	}

	s.cache.AnimalComments[id] = append(s.cache.AnimalComments[id], domain.Comment{
		AuthorName: s.session.Profile.DisplayName,
		Text:       text,
	})

	return nil
}

// CreatePost prepends a new post authored by the current profile, with a
// unix-millisecond id, zero likes, and no comments.
func (s *FeedService) CreatePost(text string) (domain.Post, error) {
	if !s.session.LoggedIn {
		return domain.Post{}, domain.ErrNotLoggedIn
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Post{}, domain.ErrEmptyInput
	}

	post := domain.Post{
		ID:           domain.PostID(s.clock.Now().UnixMilli()),
		AuthorHandle: s.session.Profile.DisplayName,
		BodyText:     text,
		MediaURL:     s.DefaultMediaURL,
		Location:     "Local",
	}
	s.cache.Posts = append([]domain.Post{post}, s.cache.Posts...)

	return post, nil
}

// LoadAnimals fetches the adoptable-animal list with a hard timeout. The
// loaded flag becomes true on every outcome, including timeout and transport
// failure, so the loading indicator never spins forever; the feed then shows
// its empty-state message instead.
func (s *FeedService) LoadAnimals(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.animalTimeout)
	defer cancel()

	animals, err := s.gateway.AdoptableAnimals(ctx)
	if err == nil && len(animals) > 0 {
		s.cache.Animals = animals
	}
	s.cache.AnimalsLoaded = true
}

// Logout clears the durable store and resets the session to logged-out
// defaults. Storage failures do not block the local reset; nothing here is
// fatal.
func (s *FeedService) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.session.LoggedIn = false
	s.session.Profile = domain.DefaultProfile()
	s.session.ActiveChatID = 0

	if err != nil {
		return fmt.Errorf("clear session storage: %w", err)
	}
	return nil
}
