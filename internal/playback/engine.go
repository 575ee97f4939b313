package playback

//go:generate mockgen -source=engine.go -destination=mocks/engine_mock.go

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEmptyURL indicates Play was called without a source.
	ErrEmptyURL = errors.New("audio url is empty")
	// ErrClosed indicates the engine was used after Close.
	ErrClosed = errors.New("playback engine is closed")
	// ErrUnreachable indicates the source could not be fetched.
	ErrUnreachable = errors.New("audio source is unreachable")
	// ErrHTTPStatus indicates the source answered with a non-200 status.
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrDecode indicates the source is not a decodable MP3 stream.
	ErrDecode = errors.New("failed to decode audio")
	// ErrOutput indicates the audio output device could not be initialised.
	ErrOutput = errors.New("failed to initialise audio output")
)

// Engine plays at most one remote audio source at a time.
type Engine interface {
	// Play replaces the current source with rawURL and starts it in the
	// background. generation is echoed in every Event for this source.
	Play(ctx context.Context, rawURL string, generation uint64) error
	// Stop halts playback. It is safe to call when nothing is playing.
	Stop()
	// Position returns the elapsed time of the current source.
	Position() time.Duration
	// SetEventHandler registers the receiver of engine events.
	SetEventHandler(handler func(Event))
	// Close stops playback and rejects further Play calls.
	Close() error
}

// EventKind classifies engine events.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventFinished
	EventFailed
)

// String returns a readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFinished:
		return "finished"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is emitted from engine goroutines.
type Event struct {
	Kind       EventKind
	Generation uint64
	URL        string
	// Size is the stream length in bytes, -1 when the server did not say.
	Size int64
	Err  error
}
