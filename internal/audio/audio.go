// Package audio plays word pronunciation clips through whichever command
// line player the host has installed. No player is a soft failure: exercises
// that need sound degrade to their silent variants.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoPlayer is returned when no supported audio player is installed.
var ErrNoPlayer = errors.New("no audio player found")

// Player plays one audio source to completion.
type Player interface {
	Play(ctx context.Context, src string) error
}

// candidate players, probed in order. Each must accept a file path or URL
// as its final argument and exit when playback is done.
var candidates = []struct {
	bin  string
	args []string
}{
	{"afplay", nil},
	{"mpv", []string{"--no-video", "--really-quiet"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
}

// CommandPlayer shells out to an installed media player.
type CommandPlayer struct {
	bin  string
	args []string
}

// Detect probes the PATH for a supported player and returns a CommandPlayer
// for the first one found, or ErrNoPlayer.
func Detect() (*CommandPlayer, error) {
	for _, c := range candidates {
		if path, err := exec.LookPath(c.bin); err == nil {
			return &CommandPlayer{bin: path, args: c.args}, nil
		}
	}
	return nil, ErrNoPlayer
}

// Play runs the player on src and waits for it to finish. The context
// cancels playback.
func (p *CommandPlayer) Play(ctx context.Context, src string) error {
	args := append(append([]string{}, p.args...), src)
	cmd := exec.CommandContext(ctx, p.bin, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play %s: %w", src, err)
	}
	return nil
}

// Silent is a Player that does nothing. Used when sound is disabled or no
// player is installed.
type Silent struct{}

func (Silent) Play(context.Context, string) error { return nil }
