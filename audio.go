package main

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/garden/system"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cues maps the character events that make a sound to their notes.
var cues = map[system.EventKind][]note{
	system.EventPerfectDodge:  {{1318.51, 60 * time.Millisecond}, {1760, 90 * time.Millisecond}},
	system.EventWallBounce:    {{220, 70 * time.Millisecond}},
	system.EventEnemyDefeated: {{660, 50 * time.Millisecond}, {880, 50 * time.Millisecond}, {1320, 80 * time.Millisecond}},
	system.EventDied:          {{330, 150 * time.Millisecond}, {196, 300 * time.Millisecond}},
}

// sounds plays short synthesized cues for character events. A failed audio
// device leaves it silent.
type sounds struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	ready  bool
}

func newSounds(mute bool) *sounds {
	s := &sounds{mixer: &beep.Mixer{}}
	s.volume = newVolume(s.mixer, 0.4)
	s.volume.Silent = mute

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("sandbox: audio disabled: %v", err)
		return s
	}
	speaker.Play(s.volume)
	s.ready = true
	return s
}

func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// cueStreamer builds the tone sequence for an event, or nil when the event
// is silent.
func cueStreamer(kind system.EventKind) beep.Streamer {
	notes, ok := cues[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}

func (s *sounds) play(evt system.Event) {
	if s == nil || !s.ready {
		return
	}
	cue := cueStreamer(evt.Kind)
	if cue == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(cue)
	speaker.Unlock()
}

func (s *sounds) muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume.Silent
}

func (s *sounds) setMuted(m bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.volume.Silent = m
	speaker.Unlock()
}

func (s *sounds) Close() {
	if s == nil || !s.ready {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.ready = false
}
