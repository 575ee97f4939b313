package playback

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Sink is the audio output the engine renders into.
type Sink interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(streamers ...beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// SpeakerSink writes to the process-wide beep speaker.
type SpeakerSink struct{}

// Init opens the speaker. It may be called only once per process.
func (SpeakerSink) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}

// Play appends streamers to the speaker mixer.
func (SpeakerSink) Play(streamers ...beep.Streamer) {
	speaker.Play(streamers...)
}

// Clear removes every streamer from the speaker mixer.
func (SpeakerSink) Clear() {
	speaker.Clear()
}

// Lock blocks the speaker goroutine so streamer state can be read.
func (SpeakerSink) Lock() {
	speaker.Lock()
}

// Unlock releases Lock.
func (SpeakerSink) Unlock() {
	speaker.Unlock()
}
