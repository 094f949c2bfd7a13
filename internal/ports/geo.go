package ports

import (
	"context"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

type Geocoder interface {
	Geocode(ctx context.Context, query string) (domain.GeoPoint, error)
}

type ShelterFinder interface {
	NearbyShelters(ctx context.Context, at domain.GeoPoint, radiusMeters int) ([]domain.Shelter, error)
}
