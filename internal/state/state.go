// Package state holds the selection and playback snapshot of the player and
// the pure reducer that derives the next snapshot from a user or engine action.
// Side effects are returned as values and executed by the controller.
package state

import (
	"github.com/ytget/quranpak-player/internal/model"
)

// NoSelection marks an empty chapter selection or an unbound engine.
const NoSelection = -1

// State is an immutable snapshot. Reduce returns a new value; callers never
// mutate a State they did not create.
type State struct {
	ChapterCount int
	Selected     int
	Reciter      string
	Aya          string
	AutoPlay     bool

	Status     model.PlaybackStatus
	Playing    int
	Generation uint64
	// Size of the current stream in bytes, -1 when unknown.
	Size int64

	CatalogErr error
	Err        error
}

// Initial returns the start-up snapshot: no catalog, nothing playing.
func Initial() State {
	return State{
		Selected: NoSelection,
		Reciter:  model.DefaultReciters()[0],
		Status:   model.PlaybackIdle,
		Playing:  NoSelection,
		Size:     -1,
	}
}

// HasSelection reports whether a chapter is selected.
func (s State) HasSelection() bool {
	return s.Selected >= 0 && s.Selected < s.ChapterCount
}

// AtLast reports whether the selection is on the final chapter.
func (s State) AtLast() bool {
	return s.Selected >= s.ChapterCount-1
}
