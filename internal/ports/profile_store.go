package ports

import (
	"context"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

// ProfileStore persists the auth token marker and the profile across runs.
// Load on a fresh install returns a record with an empty token and the
// default profile.
type ProfileStore interface {
	Load(ctx context.Context) (domain.SessionRecord, error)
	Save(ctx context.Context, record domain.SessionRecord) error
	Clear(ctx context.Context) error
}
