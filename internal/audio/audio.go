// Package audio implements the timer's audio collaborator on top of the
// system media player. Cue playback is best-effort: a missing player or
// sound file degrades to a synthesized terminal bell, never an error
// surfaced to the timer.
package audio

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/tmalley/focusboard/internal/logger"
	"github.com/tmalley/focusboard/internal/timer"
)

var execCommand = exec.Command

// Player plays cue tones and break background audio. It satisfies
// timer.Audio.
type Player struct {
	mu        sync.Mutex
	soundPath string // optional custom sound file; empty means tone fallback only
	bgStop    chan struct{}
}

// NewPlayer creates a player. soundPath may be empty.
func NewPlayer(soundPath string) *Player {
	return &Player{soundPath: soundPath}
}

// SetSoundPath swaps the custom sound file, e.g. after a settings change.
func (p *Player) SetSoundPath(path string) {
	p.mu.Lock()
	p.soundPath = path
	p.mu.Unlock()
}

// PlayTone plays a short cue. A custom sound file is preferred; on any
// failure the synthesized bell is used instead.
func (p *Player) PlayTone(kind timer.ToneKind, volume int) {
	p.mu.Lock()
	path := p.soundPath
	p.mu.Unlock()

	if volume <= 0 {
		return
	}

	go func() {
		if path != "" {
			err := playFile(path, volume)
			if err == nil {
				return
			}
			logger.Debug("Custom sound playback failed, falling back to tone", "kind", kind, "error", err)
		}
		bell()
	}()
}

// StopTone stops cue playback. Cues are short one-shots, so this only
// matters for a custom sound that is still playing; the bell cannot be
// recalled.
func (p *Player) StopTone() {}

// StartBackground starts looping break ambience until StopBackground.
func (p *Player) StartBackground(kind timer.ToneKind, volume int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bgStop != nil || volume <= 0 || p.soundPath == "" {
		return
	}

	stop := make(chan struct{})
	p.bgStop = stop
	path := p.soundPath

	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := playFile(path, volume); err != nil {
				logger.Debug("Background audio playback failed", "error", err)
				// Avoid a tight spin when the player keeps failing
				select {
				case <-stop:
					return
				case <-time.After(5 * time.Second):
				}
			}
		}
	}()
}

// StopBackground ends the background loop. Safe to call when idle.
func (p *Player) StopBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bgStop != nil {
		close(p.bgStop)
		p.bgStop = nil
	}
}

// playFile plays a sound file synchronously through the platform player.
func playFile(path string, volume int) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = execCommand("afplay", "-v", fmt.Sprintf("%.2f", float64(volume)/100), path)
	case "windows":
		cmd = execCommand("powershell", "-c", fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path))
	default:
		// PulseAudio volume is 0-65536
		cmd = execCommand("paplay", fmt.Sprintf("--volume=%d", volume*65536/100), path)
	}
	return cmd.Run()
}

// bell writes the terminal bell, the lowest-common-denominator cue.
func bell() {
	fmt.Fprint(os.Stderr, "\a")
}
