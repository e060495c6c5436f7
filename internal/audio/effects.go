package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Note is one step of a melody. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// backgroundTune is a slow minor arpeggio looped under play.
var backgroundTune = []Note{
	{220.00, 300 * time.Millisecond},
	{261.63, 300 * time.Millisecond},
	{329.63, 300 * time.Millisecond},
	{261.63, 300 * time.Millisecond},
	{196.00, 300 * time.Millisecond},
	{246.94, 300 * time.Millisecond},
	{293.66, 300 * time.Millisecond},
	{0, 300 * time.Millisecond},
}

// tone returns d worth of a sine tone at freq, or silence for freq 0.
func tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	if freq <= 0 {
		return generators.Silence(n)
	}
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return beep.Take(n, s)
}

// square returns d worth of a square tone at freq.
func square(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	s, err := generators.SquareTone(sampleRate, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return beep.Take(n, s)
}

// JumpSound is a two-step upward chirp.
func JumpSound() beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, 40*time.Millisecond),
		tone(783.99, 60*time.Millisecond),
	), effectVolume)
}

// GameOverSound is a descending phrase ending on a long low note.
func GameOverSound() beep.Streamer {
	return newVolume(beep.Seq(
		square(392.00, 150*time.Millisecond),
		square(311.13, 150*time.Millisecond),
		square(196.00, 400*time.Millisecond),
	), effectVolume*0.5)
}

// Melody streams a note sequence forever with a short fade on each note.
type Melody struct {
	sr    beep.SampleRate
	notes []Note
	idx   int // current note
	pos   int // sample within the current note
}

// NewMelody creates an endless melody over notes.
func NewMelody(sr beep.SampleRate, notes []Note) *Melody {
	return &Melody{sr: sr, notes: notes}
}

// Stream fills samples; it never runs out while notes is non-empty.
func (m *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	for i := range samples {
		note := m.notes[m.idx]
		length := m.sr.N(note.Duration)
		var v float64
		if note.Freq > 0 && length > 0 {
			t := float64(m.pos) / float64(m.sr)
			// linear decay over the note to avoid clicks at boundaries
			env := 1 - float64(m.pos)/float64(length)
			v = math.Sin(2*math.Pi*note.Freq*t) * env
		}
		samples[i][0] = v
		samples[i][1] = v

		m.pos++
		if m.pos >= length {
			m.pos = 0
			m.idx = (m.idx + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

// Err always returns nil.
func (m *Melody) Err() error { return nil }
