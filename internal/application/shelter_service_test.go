package application

import (
	"context"
	"errors"
	"testing"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShelterSearchEmptyInputIssuesNoRequests(t *testing.T) {
	cache := NewCache()
	geocoder := &fakeGeocoder{}
	finder := &fakeFinder{}
	svc := NewShelterService(cache, geocoder, finder)

	for _, input := range []string{"", "   "} {
		err := svc.Search(context.Background(), input)
		require.ErrorIs(t, err, domain.ErrEmptyInput)
	}

	assert.Zero(t, geocoder.calls)
	assert.Zero(t, finder.calls)
	assert.Equal(t, StatusEnterLocation, cache.ShelterStatus)
}

func TestShelterSearchSuccess(t *testing.T) {
	cache := NewCache()
	geocoder := &fakeGeocoder{point: domain.GeoPoint{Lat: 37.338, Lon: -121.886}}
	finder := &fakeFinder{shelters: []domain.Shelter{
		{Name: "Happy Paws", Address: "12 Oak St, San José, CA"},
		{Name: "Second Chance", Address: "90 Elm Ave, San José, CA"},
	}}
	svc := NewShelterService(cache, geocoder, finder)

	require.NoError(t, svc.Search(context.Background(), "  San José  "))

	assert.Equal(t, "San José", cache.ShelterLocation, "location is remembered for the adopt view")
	assert.Len(t, cache.Shelters, 2)
	assert.Equal(t, "Found 2 centers.", cache.ShelterStatus)
}

func TestShelterSearchNoGeocodeMatchKeepsPriorResults(t *testing.T) {
	cache := NewCache()
	cache.Shelters = []domain.Shelter{{Name: "Prior Result"}}
	geocoder := &fakeGeocoder{err: ErrNoGeocodeMatch}
	finder := &fakeFinder{}
	svc := NewShelterService(cache, geocoder, finder)

	err := svc.Search(context.Background(), "Atlantis")

	require.ErrorIs(t, err, ErrNoGeocodeMatch)
	assert.Equal(t, StatusLocationNotFound, cache.ShelterStatus)
	assert.Len(t, cache.Shelters, 1, "prior results stay on screen")
	assert.Zero(t, finder.calls)
}

func TestShelterSearchTransportErrorKeepsPriorResults(t *testing.T) {
	cache := NewCache()
	cache.Shelters = []domain.Shelter{{Name: "Prior Result"}}
	geocoder := &fakeGeocoder{point: domain.GeoPoint{Lat: 1, Lon: 2}}
	finder := &fakeFinder{err: errors.New("overpass: 504")}
	svc := NewShelterService(cache, geocoder, finder)

	err := svc.Search(context.Background(), "Portland")

	require.Error(t, err)
	assert.Equal(t, StatusMapServerError, cache.ShelterStatus)
	assert.Len(t, cache.Shelters, 1)
}

func TestShelterSearchZeroResults(t *testing.T) {
	cache := NewCache()
	geocoder := &fakeGeocoder{point: domain.GeoPoint{Lat: 1, Lon: 2}}
	finder := &fakeFinder{}
	svc := NewShelterService(cache, geocoder, finder)

	require.NoError(t, svc.Search(context.Background(), "Remote Island"))

	assert.Equal(t, "Found 0 centers.", cache.ShelterStatus)
	assert.Empty(t, cache.Shelters)
}
