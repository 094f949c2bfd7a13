package ports

import "context"

// Player starts audio playback and hands back the single live handle.
type Player interface {
	Play(ctx context.Context, audio []byte) (Playback, error)
}

// Playback is one in-flight playback. Stop is idempotent; Done is closed when
// playback ends or is canceled, after resources are released.
type Playback interface {
	Stop()
	Done() <-chan struct{}
}
