package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDuration = time.Millisecond * 100

	stepDuration  = time.Millisecond * 70
	stepCooldown  = time.Millisecond * 260
	stepFreqHz    = 150.0
	stepAmplitude = 0.22

	thudDuration  = time.Millisecond * 140
	thudCooldown  = time.Millisecond * 220
	thudFreqHz    = 95.0
	thudAmplitude = 0.3
)

// Manager plays movement cues. All methods are safe to call before
// Initialize and after Cleanup; they do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastStep    time.Time
	lastThud    time.Time
}

// NewManager creates a new cue manager
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything and releases the mixer
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	m.mixer.Clear()
	m.initialized = false
}

// Footstep plays a short tap for a committed move. Movement happens
// every tick while a key is held, so steps are rate limited to stay a
// rhythm rather than a drone.
func (m *Manager) Footstep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	now := time.Now()
	if now.Sub(m.lastStep) < stepCooldown {
		return
	}
	m.lastStep = now

	streamer := beep.Take(sampleRate.N(stepDuration), NewStepGenerator(sampleRate))
	m.mixer.Add(streamer)
}

// Thud plays a dull knock for a rejected move against a wall.
func (m *Manager) Thud() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	now := time.Now()
	if now.Sub(m.lastThud) < thudCooldown {
		return
	}
	m.lastThud = now

	streamer := beep.Take(sampleRate.N(thudDuration), NewThudGenerator(sampleRate))
	m.mixer.Add(streamer)
}

// StepGenerator generates a soft footstep tap
type StepGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewStepGenerator creates a footstep sound generator
func NewStepGenerator(sr beep.SampleRate) *StepGenerator {
	return &StepGenerator{sr: sr}
}

func (g *StepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Falling pitch with a fast decay reads as a heel strike
		freq := stepFreqHz * (1 - 0.4*math.Min(t/0.07, 1))
		envelope := math.Exp(-t * 45)
		sample := stepAmplitude * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *StepGenerator) Err() error {
	return nil
}

// ThudGenerator generates a dull wall knock
type ThudGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewThudGenerator creates a wall knock generator
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Low fundamental plus one harmonic for body
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*thudFreqHz*t)
		sample += 0.12 * math.Sin(2*math.Pi*thudFreqHz*2*t)

		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 20)
		sample *= attack * decay * thudAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
