package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/quranpak-player/internal/model"
)

func loaded(count int) State {
	s, _ := Reduce(Initial(), CatalogLoaded{Count: count})
	return s
}

func TestInitial(t *testing.T) {
	t.Parallel()

	s := Initial()
	assert.Equal(t, NoSelection, s.Selected)
	assert.Equal(t, NoSelection, s.Playing)
	assert.Equal(t, model.PlaybackIdle, s.Status)
	assert.Equal(t, model.ReciterAbdulBasit, s.Reciter)
	assert.False(t, s.HasSelection())
}

func TestReduce_CatalogLoaded(t *testing.T) {
	t.Parallel()

	s := loaded(3)
	assert.Equal(t, 3, s.ChapterCount)
	assert.Equal(t, 0, s.Selected)

	empty := loaded(0)
	assert.Equal(t, NoSelection, empty.Selected)
}

func TestReduce_CatalogFailed(t *testing.T) {
	t.Parallel()

	cause := errors.New("missing")
	s, effects := Reduce(Initial(), CatalogFailed{Err: cause})

	assert.Nil(t, effects)
	assert.Equal(t, 0, s.ChapterCount)
	assert.Equal(t, NoSelection, s.Selected)
	assert.Equal(t, cause, s.CatalogErr)
}

func TestReduce_SelectChapterClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index    int
		expected int
	}{
		{index: 0, expected: 0},
		{index: 2, expected: 2},
		{index: 3, expected: NoSelection},
		{index: -1, expected: NoSelection},
		{index: -7, expected: NoSelection},
	}

	for _, tt := range tests {
		s, effects := Reduce(loaded(3), SelectChapter{Index: tt.index})
		assert.Nil(t, effects)
		assert.Equal(t, tt.expected, s.Selected, "index %d", tt.index)
	}
}

func TestReduce_PlayWithoutSelectionIsNoop(t *testing.T) {
	t.Parallel()

	before, _ := Reduce(loaded(2), SelectChapter{Index: NoSelection})
	after, effects := Reduce(before, Play{})

	assert.Nil(t, effects)
	assert.Equal(t, before, after)
}

func TestReduce_PlayStartsSelected(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), SelectChapter{Index: 1})
	s, effects := Reduce(s, Play{})

	require.Len(t, effects, 1)
	assert.Equal(t, StartPlayback{Index: 1, Reciter: model.ReciterAbdulBasit, Generation: 1}, effects[0])
	assert.Equal(t, model.PlaybackLoading, s.Status)
	assert.Equal(t, 1, s.Playing)
}

func TestReduce_PlaySupersedesPrevious(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), Play{})
	s, _ = Reduce(s, PlaybackStarted{Generation: 1})
	require.Equal(t, model.PlaybackPlaying, s.Status)

	s, _ = Reduce(s, SelectChapter{Index: 1})
	s, effects := Reduce(s, Play{})

	require.Len(t, effects, 1)
	assert.Equal(t, uint64(2), effects[0].(StartPlayback).Generation)

	// A late event from the first session must not affect the second.
	s, _ = Reduce(s, PlaybackFinished{Generation: 1})
	assert.Equal(t, model.PlaybackLoading, s.Status)
	assert.Equal(t, 1, s.Playing)
}

func TestReduce_StopAlwaysEmits(t *testing.T) {
	t.Parallel()

	s, effects := Reduce(Initial(), Stop{})
	assert.Equal(t, []Effect{StopPlayback{}}, effects)
	assert.Equal(t, model.PlaybackIdle, s.Status)

	s, _ = Reduce(loaded(2), Play{})
	s, effects = Reduce(s, Stop{})
	assert.Equal(t, []Effect{StopPlayback{}}, effects)
	assert.Equal(t, NoSelection, s.Playing)

	// The stopped session's start event is stale.
	s, _ = Reduce(s, PlaybackStarted{Generation: 1})
	assert.Equal(t, model.PlaybackIdle, s.Status)
}

func TestReduce_NextAdvancesAndPlays(t *testing.T) {
	t.Parallel()

	s, effects := Reduce(loaded(3), Next{})

	assert.Equal(t, 1, s.Selected)
	require.Len(t, effects, 1)
	assert.Equal(t, 1, effects[0].(StartPlayback).Index)
}

func TestReduce_NextAtLastIsIdempotent(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), SelectChapter{Index: 1})
	after, effects := Reduce(s, Next{})

	assert.Nil(t, effects)
	assert.Equal(t, s, after)
}

func TestReduce_NextOnEmptyCatalog(t *testing.T) {
	t.Parallel()

	s := loaded(0)
	after, effects := Reduce(s, Next{})

	assert.Nil(t, effects)
	assert.Equal(t, s, after)
}

func TestReduce_WorkedExample(t *testing.T) {
	t.Parallel()

	// Two chapters, index 0 selected: next plays index 1, next again stays.
	s := loaded(2)
	require.Equal(t, 0, s.Selected)

	s, effects := Reduce(s, Next{})
	assert.Equal(t, 1, s.Selected)
	assert.Equal(t, []Effect{StartPlayback{Index: 1, Reciter: s.Reciter, Generation: 1}}, effects)

	s, effects = Reduce(s, Next{})
	assert.Equal(t, 1, s.Selected)
	assert.Nil(t, effects)
}

func TestReduce_Download(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), SelectReciter{Name: model.ReciterAlafasy})
	s, effects := Reduce(s, Download{})
	assert.Equal(t, []Effect{OpenURL{Index: 0, Reciter: model.ReciterAlafasy}}, effects)
	assert.Equal(t, model.PlaybackIdle, s.Status)

	none, _ := Reduce(s, SelectChapter{Index: NoSelection})
	_, effects = Reduce(none, Download{})
	assert.Nil(t, effects)

	failed, _ := Reduce(s, DownloadFailed{Err: errors.New("no browser")})
	assert.EqualError(t, failed.Err, "no browser")
}

func TestReduce_SelectReciterClosedSet(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(Initial(), SelectReciter{Name: model.ReciterAlGhamdi})
	assert.Equal(t, model.ReciterAlGhamdi, s.Reciter)

	s, _ = Reduce(s, SelectReciter{Name: "Unknown"})
	assert.Equal(t, model.ReciterAlGhamdi, s.Reciter)
}

func TestReduce_AyaIsInert(t *testing.T) {
	t.Parallel()

	s, effects := Reduce(loaded(2), SetAya{Text: "abc"})
	assert.Nil(t, effects)
	assert.Equal(t, "abc", s.Aya)
	assert.Equal(t, 0, s.Selected)
}

func TestReduce_PlaybackStartedRecordsSize(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(1), Play{})
	s, _ = Reduce(s, PlaybackStarted{Generation: 1, Size: 4096})

	assert.Equal(t, model.PlaybackPlaying, s.Status)
	assert.Equal(t, int64(4096), s.Size)
}

func TestReduce_PlaybackFailedSurfacesError(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(1), Play{})
	s, effects := Reduce(s, PlaybackFailed{Generation: 1, Err: errors.New("404")})

	assert.Nil(t, effects)
	assert.Equal(t, model.PlaybackError, s.Status)
	assert.EqualError(t, s.Err, "404")

	// Playing again clears the error.
	s, _ = Reduce(s, Play{})
	assert.NoError(t, s.Err)
	assert.Equal(t, model.PlaybackLoading, s.Status)
}

func TestReduce_FinishedWithoutAutoPlay(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), Play{})
	s, _ = Reduce(s, PlaybackStarted{Generation: 1})
	s, effects := Reduce(s, PlaybackFinished{Generation: 1})

	assert.Nil(t, effects)
	assert.Equal(t, model.PlaybackIdle, s.Status)
	assert.Equal(t, 0, s.Selected)
}

func TestReduce_FinishedWithAutoPlayAdvances(t *testing.T) {
	t.Parallel()

	s, _ := Reduce(loaded(2), SetAutoPlay{Enabled: true})
	s, _ = Reduce(s, Play{})
	s, _ = Reduce(s, PlaybackStarted{Generation: 1})
	s, effects := Reduce(s, PlaybackFinished{Generation: 1})

	assert.Equal(t, 1, s.Selected)
	assert.Equal(t, []Effect{StartPlayback{Index: 1, Reciter: s.Reciter, Generation: 2}}, effects)

	// The last chapter ends the run.
	s, _ = Reduce(s, PlaybackStarted{Generation: 2})
	s, effects = Reduce(s, PlaybackFinished{Generation: 2})
	assert.Nil(t, effects)
	assert.Equal(t, model.PlaybackIdle, s.Status)
	assert.Equal(t, 1, s.Selected)
}
