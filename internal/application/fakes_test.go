package application

import (
	"context"
	"time"

	"github.com/instanimals/instanimals-cli/internal/domain"
	"github.com/instanimals/instanimals-cli/internal/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeStore struct {
	record   domain.SessionRecord
	saved    int
	cleared  int
	loadErr  error
	saveErr  error
	clearErr error
}

func (s *fakeStore) Load(context.Context) (domain.SessionRecord, error) {
	if s.loadErr != nil {
		return domain.SessionRecord{}, s.loadErr
	}
	return s.record, nil
}

func (s *fakeStore) Save(_ context.Context, record domain.SessionRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.record = record
	s.saved++
	return nil
}

func (s *fakeStore) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.record = domain.SessionRecord{}
	s.cleared++
	return nil
}

type apiErr struct {
	msg string
}

func (e apiErr) Error() string       { return e.msg }
func (e apiErr) UserMessage() string { return e.msg }

// fakeGateway counts calls and serves configured results. When blockAnimals
// is set, AdoptableAnimals waits for context cancellation, imitating a
// backend that never answers.
type fakeGateway struct {
	loginCalls  int
	signupCalls int
	animalCalls int
	speechCalls int

	authResult domain.AuthResult
	authErr    error

	animals      []domain.Animal
	animalsErr   error
	blockAnimals bool

	lastSignupUsername string

	speech    []byte
	speechErr error
}

func (g *fakeGateway) Login(context.Context, string, string) (domain.AuthResult, error) {
	g.loginCalls++
	return g.authResult, g.authErr
}

func (g *fakeGateway) Signup(_ context.Context, _, _, username string) (domain.AuthResult, error) {
	g.signupCalls++
	g.lastSignupUsername = username
	return g.authResult, g.authErr
}

func (g *fakeGateway) AdoptableAnimals(ctx context.Context) ([]domain.Animal, error) {
	g.animalCalls++
	if g.blockAnimals {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return g.animals, g.animalsErr
}

func (g *fakeGateway) UrgentPets(context.Context, int) ([]domain.Pet, error) {
	return nil, nil
}

func (g *fakeGateway) ExplorePets(context.Context, int) ([]domain.Pet, error) {
	return nil, nil
}

func (g *fakeGateway) Pet(context.Context, string) (domain.Pet, error) {
	return domain.Pet{}, domain.ErrPetNotFound
}

func (g *fakeGateway) Match(context.Context, string, domain.MatchCriteria) (domain.MatchResult, error) {
	return domain.MatchResult{}, nil
}

func (g *fakeGateway) Apply(context.Context, string, domain.AdoptionApplication) (string, error) {
	return "", nil
}

func (g *fakeGateway) FosterInterest(context.Context, domain.FosterInterest) error {
	return nil
}

func (g *fakeGateway) AnimalSpeech(context.Context, string, string) ([]byte, error) {
	g.speechCalls++
	return g.speech, g.speechErr
}

type fakeGeocoder struct {
	calls int
	point domain.GeoPoint
	err   error
}

func (g *fakeGeocoder) Geocode(context.Context, string) (domain.GeoPoint, error) {
	g.calls++
	return g.point, g.err
}

type fakeFinder struct {
	calls    int
	shelters []domain.Shelter
	err      error
}

func (f *fakeFinder) NearbyShelters(context.Context, domain.GeoPoint, int) ([]domain.Shelter, error) {
	f.calls++
	return f.shelters, f.err
}

type fakePlayback struct {
	stopped int
	done    chan struct{}
}

func newFakePlayback() *fakePlayback {
	return &fakePlayback{done: make(chan struct{})}
}

func (p *fakePlayback) Stop() {
	p.stopped++
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

func (p *fakePlayback) Done() <-chan struct{} {
	return p.done
}

type fakePlayer struct {
	calls    int
	playback *fakePlayback
	err      error
}

func (p *fakePlayer) Play(context.Context, []byte) (ports.Playback, error) {
	p.calls++
	return p.playback, p.err
}
