package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/instanimals/instanimals-cli/internal/ports"
)

// SpeechService toggles text-to-speech playback of animal descriptions. At
// most one playback handle exists: invoking Toggle while audio is playing
// stops it instead of starting a concurrent stream.
type SpeechService struct {
	gateway ports.Gateway
	player  ports.Player

	current ports.Playback
}

func NewSpeechService(gateway ports.Gateway, player ports.Player) *SpeechService {
	return &SpeechService{gateway: gateway, player: player}
}

// Toggle stops the active playback if one is still running, otherwise
// synthesizes the text and starts playing it. The returned bool reports
// whether playback started.
func (s *SpeechService) Toggle(ctx context.Context, text, gender string) (bool, error) {
	if s.Playing() {
		s.current.Stop()
		s.current = nil
		return false, nil
	}

	if gender = strings.ToLower(gender); gender == "" {
		gender = "male"
	}

	audio, err := s.gateway.AnimalSpeech(ctx, text, gender)
	if err != nil {
		return false, fmt.Errorf("synthesize speech: %w", err)
	}

	playback, err := s.player.Play(ctx, audio)
	if err != nil {
		return false, fmt.Errorf("start playback: %w", err)
	}
	s.current = playback

	return true, nil
}

var closedDone = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Done returns the active playback's completion channel, or an already
// closed channel when nothing is playing.
func (s *SpeechService) Done() <-chan struct{} {
	if s.current == nil {
		return closedDone
	}
	return s.current.Done()
}

// Stop ends any active playback and drops the handle.
func (s *SpeechService) Stop() {
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
}

// Playing reports whether a playback handle is live. A handle whose Done
// channel has closed is discarded here, releasing it for the next Toggle.
func (s *SpeechService) Playing() bool {
	if s.current == nil {
		return false
	}
	select {
	case <-s.current.Done():
		s.current = nil
		return false
	default:
		return true
	}
}
