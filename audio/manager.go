package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Manager owns the speaker and plays the game's feedback cues.
// All cues are synthesized; there are no sample assets to load.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialized sound manager.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer.
// Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker Close; clearing the
// mixer is enough to stop output.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

func (m *Manager) playCue(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(s)
}

// DigitSet plays the short blip for committing a digit.
func (m *Manager) DigitSet() {
	m.playCue(newVolume(NewTone(660, 60*time.Millisecond, WaveSine, sampleRate), 0.5))
}

// NoteToggle plays the softer tick for flipping a pencil-mark.
func (m *Manager) NoteToggle() {
	m.playCue(newVolume(NewTone(440, 40*time.Millisecond, WaveSine, sampleRate), 0.35))
}

// CellClear plays the falling cue for erasing a cell.
func (m *Manager) CellClear() {
	m.playCue(newVolume(NewTone(220, 80*time.Millisecond, WaveSaw, sampleRate), 0.35))
}

// CheckPassed plays an ascending arpeggio for a solved board.
func (m *Manager) CheckPassed() {
	seq := beep.Seq(
		NewTone(523.25, 120*time.Millisecond, WaveSine, sampleRate),
		NewTone(659.25, 120*time.Millisecond, WaveSine, sampleRate),
		NewTone(783.99, 180*time.Millisecond, WaveSine, sampleRate),
	)
	m.playCue(newVolume(seq, 0.5))
}

// CheckFailed plays a low buzz for a board that does not check out.
func (m *Manager) CheckFailed() {
	m.playCue(newVolume(NewTone(110, 250*time.Millisecond, WaveSquare, sampleRate), 0.3))
}
