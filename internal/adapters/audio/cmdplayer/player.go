// Package cmdplayer plays audio clips by shelling out to an external player
// binary (mpv, ffplay, afplay, ...). Playback is asynchronous; the caller
// holds a handle it can stop or wait on.
package cmdplayer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/instanimals/instanimals-cli/internal/ports"
)

// ErrNoPlayer is returned when none of the candidate player binaries is on
// PATH.
var ErrNoPlayer = errors.New("no audio player found")

// candidates are tried in order; args silence player UI and exit at EOF.
var candidates = []struct {
	binary string
	args   []string
}{
	{"mpv", []string{"--no-terminal", "--no-video"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"afplay", nil},
	{"mpg123", []string{"-q"}},
}

type Player struct {
	binary string
	args   []string
	logger *zap.Logger
}

var _ ports.Player = (*Player)(nil)

// NewPlayer resolves the player binary. An explicit binary overrides the
// candidate scan.
func NewPlayer(binary string, logger *zap.Logger) (*Player, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if binary != "" {
		path, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("resolve audio player %q: %w", binary, err)
		}
		return &Player{binary: path, logger: logger}, nil
	}

	for _, c := range candidates {
		path, err := exec.LookPath(c.binary)
		if err != nil {
			continue
		}
		return &Player{binary: path, args: c.args, logger: logger}, nil
	}

	return nil, ErrNoPlayer
}

// Play writes the clip to a temp file and starts the player process. The
// returned handle deletes the file once the process exits.
func (p *Player) Play(ctx context.Context, audio []byte) (ports.Playback, error) {
	path := filepath.Join(os.TempDir(), "instanimals-"+uuid.NewString()+".mp3")
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		return nil, fmt.Errorf("write audio file: %w", err)
	}

	playCtx, cancel := context.WithCancel(ctx)

	args := append(append([]string{}, p.args...), path)
	command := exec.CommandContext(playCtx, p.binary, args...)
	if err := command.Start(); err != nil {
		cancel()
		os.Remove(path)
		return nil, fmt.Errorf("start audio player: %w", err)
	}

	handle := &playback{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		if err := command.Wait(); err != nil && playCtx.Err() == nil {
			p.logger.Debug("audio player exited with error", zap.Error(err))
		}
		cancel()
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			p.logger.Warn("remove audio file", zap.String("path", path), zap.Error(err))
		}
	}()

	return handle, nil
}

type playback struct {
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func (p *playback) Stop() {
	p.stopOnce.Do(p.cancel)
}

func (p *playback) Done() <-chan struct{} {
	return p.done
}
