package application

import (
	"strings"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

// Cache is the in-memory domain state driving the current views: posts,
// animals, notifications, contacts, and chat transcripts, plus the
// client-local overlays (liked set, starred animals, local animal comments).
// Nothing here is persisted; only the profile survives a restart, and it is
// owned by the session store.
type Cache struct {
	Posts []domain.Post

	Animals             []domain.Animal
	AnimalsLoaded       bool
	animalsFetchStarted bool

	Notifications []domain.Notification
	Contacts      []domain.Contact
	Chats         map[domain.ChatID][]domain.ChatMessage

	Liked          map[domain.PostID]struct{}
	StarredAnimals map[string]bool
	AnimalComments map[string][]domain.Comment

	SearchQuery     string
	ShelterLocation string
	ShelterStatus   string
	Shelters        []domain.Shelter
}

func NewCache() *Cache {
	return &Cache{
		Posts:          seedPosts(),
		Notifications:  seedNotifications(),
		Contacts:       seedContacts(),
		Chats:          seedChats(),
		Liked:          make(map[domain.PostID]struct{}),
		StarredAnimals: make(map[string]bool),
		AnimalComments: make(map[string][]domain.Comment),
	}
}

// FindPost returns a pointer into the post slice so handlers can mutate like
// counts and comments in place. Handlers must re-check existence before
// mutating: an async response may arrive after the post is gone.
func (c *Cache) FindPost(id domain.PostID) (*domain.Post, bool) {
	for i := range c.Posts {
		if c.Posts[i].ID == id {
			return &c.Posts[i], true
		}
	}
	return nil, false
}

// IsLiked reports membership in the session's liked set.
func (c *Cache) IsLiked(id domain.PostID) bool {
	_, ok := c.Liked[id]
	return ok
}

// FilterPosts returns posts whose body contains the query, case-insensitive.
// An empty query matches everything.
func (c *Cache) FilterPosts(query string) []domain.Post {
	q := strings.ToLower(query)
	matched := make([]domain.Post, 0, len(c.Posts))
	for _, p := range c.Posts {
		if strings.Contains(strings.ToLower(p.BodyText), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// MarkAnimalFetchStarted flips the fetch-started flag and reports whether
// this call was the one that flipped it, so the render path triggers exactly
// one load no matter how many re-renders happen while loading.
func (c *Cache) MarkAnimalFetchStarted() bool {
	if c.animalsFetchStarted {
		return false
	}
	c.animalsFetchStarted = true
	return true
}

func seedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:           1,
			AuthorHandle: "John_Nature",
			BodyText:     "Caught this little fox taking a nap in the woods today. So peaceful!",
			MediaURL:     "https://images.unsplash.com/photo-1517683201413-571216591730?auto=format&fit=crop&w=1200&q=80",
			LikeCount:    128,
			Location:     "California, USA",
			Comments:     []domain.Comment{{AuthorName: "NatureLens", Text: "Amazing shot!"}},
		},
		{
			ID:           2,
			AuthorHandle: "Happy_Paws",
			IsShelter:    true,
			Website:      "happypaws.org",
			BodyText:     "Max is a 2-year-old Golden mix waiting for his forever home! ❤️",
			MediaURL:     "https://images.unsplash.com/photo-1552053831-71594a27632d?auto=format&fit=crop&w=1200&q=80",
			LikeCount:    2100,
			Location:     "New York, USA",
		},
		{
			ID:           3,
			AuthorHandle: "WildLens",
			BodyText:     "A stunning morning at the lake — spotted this heron right at sunrise. Nature never disappoints. 🌅",
			MediaURL:     "https://images.unsplash.com/photo-1444464666168-49d633b86797?auto=format&fit=crop&w=1200&q=80",
			LikeCount:    340,
			Location:     "Oregon, USA",
			Comments:     []domain.Comment{{AuthorName: "BirdWatch22", Text: "What a capture!"}},
		},
		{
			ID:           4,
			AuthorHandle: "San_Jose_Animal_Care",
			IsShelter:    true,
			Website:      "sanjoseanimals.org",
			BodyText:     "Meet Luna! This 3-year-old tabby is looking for a quiet home. She loves cozy blankets and afternoon naps 🐱",
			MediaURL:     "https://images.unsplash.com/photo-1519052537078-e6302a4968d4?auto=format&fit=crop&w=1200&q=80",
			LikeCount:    876,
			Location:     "San José, CA",
		},
		{
			ID:           5,
			AuthorHandle: "TrailPhoto",
			BodyText:     "Found this little turtle crossing the trail today. Took my time and waited for it to pass safely 🐢",
			MediaURL:     "https://images.unsplash.com/photo-1437622368342-7a3d73a34c8f?auto=format&fit=crop&w=1200&q=80",
			LikeCount:    512,
			Location:     "Texas, USA",
			Comments:     []domain.Comment{{AuthorName: "NatureKid", Text: "So cute 🐢"}},
		},
	}
}

func seedNotifications() []domain.Notification {
	return []domain.Notification{
		{ID: 1, From: "Mike", Text: "liked your moment", Time: "2m ago"},
		{ID: 2, From: "WildLens", Text: "started following you", Time: "1h ago"},
	}
}

func seedContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, Name: "Happy Paws Shelter", LastMsg: "Thanks for your inquiry!", AvatarSeed: "Happy", Online: true},
	}
}

func seedChats() map[domain.ChatID][]domain.ChatMessage {
	return map[domain.ChatID][]domain.ChatMessage{
		1: {{Sender: domain.SenderThem, Text: "Hello! How can we help you today?", Time: "10:00"}},
	}
}
