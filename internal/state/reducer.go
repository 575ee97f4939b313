package state

import (
	"github.com/ytget/quranpak-player/internal/model"
)

// Reduce returns the snapshot that follows s after a, together with the
// effects the controller must run. It never performs I/O.
//
//nolint:gocyclo,cyclop // One case per action keeps the transition table readable.
func Reduce(s State, a Action) (State, []Effect) {
	switch a := a.(type) {
	case CatalogLoaded:
		s.ChapterCount = max(a.Count, 0)
		s.Selected = NoSelection
		if s.ChapterCount > 0 {
			s.Selected = 0
		}
		s.CatalogErr = nil
		return s, nil

	case CatalogFailed:
		s.ChapterCount = 0
		s.Selected = NoSelection
		s.CatalogErr = a.Err
		return s, nil

	case SelectChapter:
		if a.Index < 0 || a.Index >= s.ChapterCount {
			s.Selected = NoSelection
		} else {
			s.Selected = a.Index
		}
		return s, nil

	case SelectReciter:
		if model.IsReciter(a.Name) {
			s.Reciter = a.Name
		}
		return s, nil

	case SetAya:
		s.Aya = a.Text
		return s, nil

	case SetAutoPlay:
		s.AutoPlay = a.Enabled
		return s, nil

	case Play:
		if !s.HasSelection() {
			return s, nil
		}
		return start(s, s.Selected)

	case Stop:
		s.Status = model.PlaybackIdle
		s.Playing = NoSelection
		s.Size = -1
		// Outstanding engine events belong to the stopped session.
		s.Generation++
		return s, []Effect{StopPlayback{}}

	case Next:
		if s.Selected >= s.ChapterCount-1 {
			return s, nil
		}
		s.Selected++
		return start(s, s.Selected)

	case Download:
		if !s.HasSelection() {
			return s, nil
		}
		s.Err = nil
		return s, []Effect{OpenURL{Index: s.Selected, Reciter: s.Reciter}}

	case DownloadFailed:
		s.Err = a.Err
		return s, nil

	case PlaybackStarted:
		if a.Generation != s.Generation || s.Status != model.PlaybackLoading {
			return s, nil
		}
		s.Status = model.PlaybackPlaying
		s.Size = a.Size
		return s, nil

	case PlaybackFinished:
		if a.Generation != s.Generation || !s.Status.IsActive() {
			return s, nil
		}
		finished := s.Playing
		s.Status = model.PlaybackIdle
		s.Playing = NoSelection
		s.Size = -1
		if s.AutoPlay && finished+1 < s.ChapterCount {
			s.Selected = finished + 1
			return start(s, s.Selected)
		}
		return s, nil

	case PlaybackFailed:
		if a.Generation != s.Generation {
			return s, nil
		}
		s.Status = model.PlaybackError
		s.Playing = NoSelection
		s.Size = -1
		s.Err = a.Err
		return s, nil
	}

	return s, nil
}

func start(s State, index int) (State, []Effect) {
	s.Generation++
	s.Status = model.PlaybackLoading
	s.Playing = index
	s.Size = -1
	s.Err = nil
	return s, []Effect{StartPlayback{Index: index, Reciter: s.Reciter, Generation: s.Generation}}
}
