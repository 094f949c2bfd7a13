package domain

// PostID is a unix-millisecond creation timestamp for locally created posts,
// which keeps ids unique and roughly monotonic. Seed posts use small integers.
type PostID int64

type Post struct {
	ID           PostID
	AuthorHandle string
	IsShelter    bool
	Website      string
	BodyText     string
	MediaURL     string
	LikeCount    int
	Location     string
	Comments     []Comment
}

// Comment is append-only; there is no edit or delete.
type Comment struct {
	AuthorName string
	Text       string
}
