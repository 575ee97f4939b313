package model

// PlaybackStatus represents the state of the single playback session
type PlaybackStatus string

const (
	// PlaybackIdle means nothing is bound to the media engine
	PlaybackIdle PlaybackStatus = "Idle"

	// PlaybackLoading means the engine is opening the remote source
	PlaybackLoading PlaybackStatus = "Loading"

	// PlaybackPlaying means audio is being rendered
	PlaybackPlaying PlaybackStatus = "Playing"

	// PlaybackError means the last source could not be opened or decoded
	PlaybackError PlaybackStatus = "Error"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsActive returns true if the engine currently owns a source
func (ps PlaybackStatus) IsActive() bool {
	return ps == PlaybackLoading || ps == PlaybackPlaying
}
