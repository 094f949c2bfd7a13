package ports

import (
	"context"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

// Gateway is the backend API surface the client consumes.
type Gateway interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	Signup(ctx context.Context, email, password, username string) (domain.AuthResult, error)

	AdoptableAnimals(ctx context.Context) ([]domain.Animal, error)

	UrgentPets(ctx context.Context, limit int) ([]domain.Pet, error)
	ExplorePets(ctx context.Context, limit int) ([]domain.Pet, error)
	Pet(ctx context.Context, id string) (domain.Pet, error)
	Match(ctx context.Context, petID string, criteria domain.MatchCriteria) (domain.MatchResult, error)
	Apply(ctx context.Context, petID string, application domain.AdoptionApplication) (string, error)
	FosterInterest(ctx context.Context, interest domain.FosterInterest) error

	AnimalSpeech(ctx context.Context, text, gender string) ([]byte, error)
}
