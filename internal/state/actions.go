package state

// Action is an event fed to Reduce.
type Action interface {
	action()
}

// Effect is work Reduce asks the controller to perform.
type Effect interface {
	effect()
}

type (
	// CatalogLoaded reports a successfully loaded catalog.
	CatalogLoaded struct{ Count int }
	// CatalogFailed reports a catalog that could not be loaded.
	CatalogFailed struct{ Err error }
	// SelectChapter moves the chapter selection.
	SelectChapter struct{ Index int }
	// SelectReciter changes the reciter.
	SelectReciter struct{ Name string }
	// SetAya records the aya field text. It has no downstream effect.
	SetAya struct{ Text string }
	// SetAutoPlay toggles advancing to the next chapter on completion.
	SetAutoPlay struct{ Enabled bool }
	// Play binds the engine to the selected chapter.
	Play struct{}
	// Stop halts playback.
	Stop struct{}
	// Next advances the selection by one and plays it.
	Next struct{}
	// Download hands the selected chapter's URL to the host handler.
	Download struct{}
	// DownloadFailed reports that the host handler refused the URL.
	DownloadFailed struct{ Err error }
	// PlaybackStarted reports that the engine is rendering audio.
	PlaybackStarted struct {
		Generation uint64
		Size       int64
	}
	// PlaybackFinished reports that the stream reached its end.
	PlaybackFinished struct{ Generation uint64 }
	// PlaybackFailed reports that the engine could not open or decode the source.
	PlaybackFailed struct {
		Generation uint64
		Err        error
	}
)

func (CatalogLoaded) action()    {}
func (CatalogFailed) action()    {}
func (SelectChapter) action()    {}
func (SelectReciter) action()    {}
func (SetAya) action()           {}
func (SetAutoPlay) action()      {}
func (Play) action()             {}
func (Stop) action()             {}
func (Next) action()             {}
func (Download) action()         {}
func (DownloadFailed) action()   {}
func (PlaybackStarted) action()  {}
func (PlaybackFinished) action() {}
func (PlaybackFailed) action()   {}

type (
	// StartPlayback asks the engine to replace its source with the chapter at Index.
	StartPlayback struct {
		Index      int
		Reciter    string
		Generation uint64
	}
	// StopPlayback asks the engine to halt.
	StopPlayback struct{}
	// OpenURL asks the host handler to open the chapter's audio URL.
	OpenURL struct {
		Index   int
		Reciter string
	}
)

func (StartPlayback) effect() {}
func (StopPlayback) effect()  {}
func (OpenURL) effect()       {}
