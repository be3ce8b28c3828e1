// Package sound plays the end-of-countdown chime.
package sound

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeRate     = beep.SampleRate(44100)
	chimePitch    = 880
	chimeDuration = 300 * time.Millisecond
)

// Chime holds a pre-rendered tone. A failed audio setup leaves Play a no-op,
// the countdown itself must keep working on machines without sound output.
type Chime struct {
	speakerLock sync.Mutex
	buffer      *beep.Buffer
}

// NewChime initializes the speaker and synthesizes the tone buffer.
func NewChime() *Chime {
	chime := &Chime{}

	if err := speaker.Init(chimeRate, chimeRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: failed to initialize speaker: %v", err)
		return chime
	}

	tone, err := generators.SineTone(chimeRate, chimePitch)
	if err != nil {
		log.Printf("Audio disabled: failed to generate tone: %v", err)
		return chime
	}

	chime.buffer = beep.NewBuffer(beep.Format{
		SampleRate:  chimeRate,
		NumChannels: 2,
		Precision:   2,
	})
	chime.buffer.Append(beep.Take(chimeRate.N(chimeDuration), tone))
	return chime
}

// Play queues the tone on the speaker. Safe to call from any goroutine.
func (chime *Chime) Play() {
	if chime.buffer == nil {
		return
	}

	chime.speakerLock.Lock()
	defer chime.speakerLock.Unlock()

	speaker.Play(chime.buffer.Streamer(0, chime.buffer.Len()))
}
