// Package audio provides the editor's bell as a short generated tone.
package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	bellFrequency = 880
	bellDuration  = 60 * time.Millisecond
)

// Bell rings a short sine tone through the system speaker. Initialization is
// best-effort, on headless hosts every ring is a silent no-op.
type Bell struct {
	enabled bool
}

// NewBell initializes the speaker. QEDIT_BELL=0 disables the bell without
// touching the audio device.
func NewBell() *Bell {
	if v := os.Getenv("QEDIT_BELL"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil && !on {
			return &Bell{}
		}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Bell{}
	}
	return &Bell{enabled: true}
}

// Enabled reports whether the audio device initialized
func (b *Bell) Enabled() bool {
	return b.enabled
}

// Ring plays the bell tone, no-op when disabled
func (b *Bell) Ring() {
	if !b.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, bellFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(bellDuration), sine))
}
