// Package sound provides the audible feedback cue played after a settings
// change. It supports cross-platform playback via OS-native audio commands.
package sound

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/zjrosen/a11ypanel/internal/config"
	"github.com/zjrosen/a11ypanel/internal/log"
)

// Emitter plays feedback. Implementations handle all errors internally -
// Play is fire-and-forget.
type Emitter interface {
	Play()
}

// NoopEmitter is an Emitter that does nothing.
// Use this as a safe default when sound is disabled or unavailable.
type NoopEmitter struct{}

// Play does nothing.
func (NoopEmitter) Play() {}

// SettingsSource reports the user's sound feedback preference at call time.
type SettingsSource interface {
	SoundFeedback() bool
}

// Session is one independent audio playback. Each Play call on a
// FeedbackEmitter opens its own session and closes it when done.
type Session interface {
	// PlayWAV plays encoded WAV bytes and blocks until playback ends.
	PlayWAV(data []byte) error
	// PlayFile plays a WAV file from disk and blocks until playback ends.
	PlayFile(path string) error
	Close() error
}

// SessionOpener creates a new Session. It returns an error when no audio
// output is available.
type SessionOpener func() (Session, error)

var errAudioUnavailable = errors.New("no audio player available")

// FeedbackEmitter plays a short tone when the user has sound feedback on.
type FeedbackEmitter struct {
	source       SettingsSource
	enabled      bool
	overrideFile string
	clip         []byte // read-only after construction
	open         SessionOpener
	inflight     sync.WaitGroup
}

// NewFeedbackEmitter creates an emitter that plays through the platform's
// audio command. cfg.Enabled=false silences it regardless of the setting.
func NewFeedbackEmitter(src SettingsSource, cfg config.SoundConfig) *FeedbackEmitter {
	cmd, args := detectAudioCommand()

	log.Debug(log.CatSound, "Sound service initialized",
		"audioAvailable", cmd != "",
		"audioCommand", cmd,
		"platform", runtime.GOOS,
	)

	return NewFeedbackEmitterWithOpener(src, cfg, systemOpener(cmd, args))
}

// NewFeedbackEmitterWithOpener is NewFeedbackEmitter with an explicit
// session factory.
func NewFeedbackEmitterWithOpener(src SettingsSource, cfg config.SoundConfig, open SessionOpener) *FeedbackEmitter {
	return &FeedbackEmitter{
		source:       src,
		enabled:      cfg.Enabled,
		overrideFile: cfg.OverrideFile,
		clip:         ToneFromConfig(cfg).WAV(),
		open:         open,
	}
}

// Play emits the feedback tone asynchronously if sound feedback is on.
// Does nothing if:
//   - The user's soundFeedback setting is off
//   - Sound is disabled in config
//   - No audio output is available
//
// Returns immediately; completion is never reported.
func (e *FeedbackEmitter) Play() {
	if !e.enabled || e.source == nil || !e.source.SoundFeedback() {
		return
	}

	sess, err := e.open()
	if err != nil {
		log.Debug(log.CatSound, "Audio unavailable", "error", err)
		return
	}

	e.inflight.Add(1)
	go e.playAsync(sess)
}

// playAsync runs one session to completion in its own goroutine.
func (e *FeedbackEmitter) playAsync(sess Session) {
	defer e.inflight.Done()
	defer func() {
		if err := sess.Close(); err != nil {
			log.Debug(log.CatSound, "Closing audio session failed", "error", err)
		}
	}()

	if e.overrideFile != "" {
		// Verify file exists at runtime (for graceful fallback)
		_, err := os.Stat(e.overrideFile)
		if err == nil {
			if err := sess.PlayFile(e.overrideFile); err != nil {
				log.Debug(log.CatSound, "Override playback failed", "path", e.overrideFile, "error", err)
			}
			return
		}
		log.Debug(log.CatSound, "Override sound file not found, falling back to tone",
			"path", e.overrideFile, "error", err)
	}

	if err := sess.PlayWAV(e.clip); err != nil {
		log.Debug(log.CatSound, "Audio playback failed", "error", err)
	}
}

// Wait blocks until every tone started so far has finished. Used at exit
// so the last cue is not cut off.
func (e *FeedbackEmitter) Wait() {
	e.inflight.Wait()
}

// systemOpener returns a SessionOpener backed by an OS audio command.
func systemOpener(audioCommand string, audioArgs []string) SessionOpener {
	return func() (Session, error) {
		if audioCommand == "" {
			return nil, errAudioUnavailable
		}
		return &commandSession{
			id:           uuid.NewString(),
			audioCommand: audioCommand,
			audioArgs:    audioArgs,
		}, nil
	}
}

// commandSession plays through an external player process, writing the
// clip to a temp file first.
type commandSession struct {
	id           string
	audioCommand string
	audioArgs    []string
	tmpPath      string
}

func (s *commandSession) PlayWAV(data []byte) error {
	tmpFile, err := os.CreateTemp("", "a11ypanel-sound-*.wav")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	s.tmpPath = tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		if closeErr := tmpFile.Close(); closeErr != nil {
			log.Debug(log.CatSound, "Failed to close temp file after write error", "session", s.id, "error", closeErr)
		}
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	return s.PlayFile(s.tmpPath)
}

func (s *commandSession) PlayFile(path string) error {
	args := buildArgs(s.audioArgs, path)

	log.Debug(log.CatSound, "Playing feedback", "session", s.id, "path", path)

	// audioCommand is validated at construction time via detectAudioCommand
	// which only returns commands found in PATH
	cmd := exec.Command(s.audioCommand, args...) //nolint:gosec // audioCommand validated at construction
	return cmd.Run()
}

// Close removes the session's temp file, if any.
func (s *commandSession) Close() error {
	if s.tmpPath == "" {
		return nil
	}
	err := os.Remove(s.tmpPath)
	s.tmpPath = ""
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// buildArgs constructs command arguments for the audio player.
// Creates a new slice to avoid data races from shared backing arrays.
func buildArgs(audioArgs []string, path string) []string {
	// Windows PowerShell needs path interpolation into the command
	if runtime.GOOS == "windows" {
		return []string{"-c", fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)}
	}

	args := make([]string, len(audioArgs)+1)
	copy(args, audioArgs)
	args[len(args)-1] = path
	return args
}

// detectAudioCommand returns the audio command and base arguments for the current platform.
// Returns empty string if no audio player is available.
// Note: Windows args are constructed in buildArgs() due to path interpolation needs.
func detectAudioCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		if path, err := exec.LookPath("afplay"); err == nil {
			return path, nil
		}
	case "linux":
		// Linux: prefer paplay (PulseAudio), fall back to aplay (ALSA)
		if path, err := exec.LookPath("paplay"); err == nil {
			return path, nil
		}
		if path, err := exec.LookPath("aplay"); err == nil {
			return path, []string{"-q"} // quiet mode
		}
	case "windows":
		if path, err := exec.LookPath("powershell.exe"); err == nil {
			return path, nil
		}
	}
	return "", nil
}
