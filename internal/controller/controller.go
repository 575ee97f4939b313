// Package controller connects the state reducer to the outside world. Every
// user or engine event is reduced into a new snapshot, the returned effects are
// executed against the playback engine and the URL opener, and subscribers
// (the window) are notified with the resulting snapshot.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ytget/quranpak-player/internal/catalog"
	"github.com/ytget/quranpak-player/internal/logger"
	"github.com/ytget/quranpak-player/internal/model"
	"github.com/ytget/quranpak-player/internal/platform"
	"github.com/ytget/quranpak-player/internal/playback"
	"github.com/ytget/quranpak-player/internal/state"
)

// ErrNoChapter indicates an effect referenced an index outside the catalog.
var ErrNoChapter = errors.New("no chapter at index")

// Option configures a Controller.
type Option func(*Controller)

// WithContext sets the parent context for playback requests and logging.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Controller owns the player state and the playback handle.
type Controller struct {
	ctx    context.Context
	engine playback.Engine
	opener platform.URLOpener

	// runMu serializes dispatch; mu guards the fields below it.
	runMu sync.Mutex

	mu          sync.Mutex
	state       state.State
	catalog     *catalog.Catalog
	subscribers []func(state.State)
}

// New creates a controller and registers itself as the engine's event handler.
func New(engine playback.Engine, opener platform.URLOpener, opts ...Option) *Controller {
	c := &Controller{
		ctx:     context.Background(),
		engine:  engine,
		opener:  opener,
		state:   state.Initial(),
		catalog: catalog.Empty(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.ctx = logger.WithKV(c.ctx, "component", "controller")
	c.engine.SetEventHandler(c.onEngineEvent)

	return c
}

// LoadCatalog reads the chapter list. On failure the catalog is left empty
// and the error is recorded in the state for display.
func (c *Controller) LoadCatalog(path string) error {
	cat, err := catalog.Load(path)
	if err != nil {
		logger.ErrorKV(c.ctx, "failed to load catalog", "path", path, "error", err)
		c.SetCatalog(catalog.Empty(), err)
		return err
	}

	logger.InfoKV(c.ctx, "catalog loaded", "path", path, "chapters", cat.Len())
	c.SetCatalog(cat, nil)

	return nil
}

// SetCatalog installs cat. A non-nil loadErr marks the catalog as failed.
func (c *Controller) SetCatalog(cat *catalog.Catalog, loadErr error) {
	if cat == nil {
		cat = catalog.Empty()
	}

	c.mu.Lock()
	c.catalog = cat
	c.mu.Unlock()

	if loadErr != nil {
		c.dispatch(state.CatalogFailed{Err: loadErr})
		return
	}
	c.dispatch(state.CatalogLoaded{Count: cat.Len()})
}

// Subscribe registers fn to receive every new snapshot. fn may be called from
// engine goroutines.
func (c *Controller) Subscribe(fn func(state.State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribers = append(c.subscribers, fn)
}

// State returns the current snapshot.
func (c *Controller) State() state.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Catalog returns the loaded catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.catalog
}

// Chapter returns the selected chapter, if any.
func (c *Controller) Chapter() (model.Chapter, bool) {
	s := c.State()
	return c.Catalog().At(s.Selected)
}

// Position returns the elapsed time of the current stream.
func (c *Controller) Position() time.Duration {
	if !c.State().Status.IsActive() {
		return 0
	}
	return c.engine.Position()
}

// Play starts the selected chapter, replacing whatever is playing.
func (c *Controller) Play() { c.dispatch(state.Play{}) }

// Stop halts playback.
func (c *Controller) Stop() { c.dispatch(state.Stop{}) }

// Next selects and plays the following chapter. It does nothing on the last one.
func (c *Controller) Next() { c.dispatch(state.Next{}) }

// Download opens the selected chapter's audio URL in the host handler.
func (c *Controller) Download() { c.dispatch(state.Download{}) }

// Select moves the chapter selection; -1 clears it.
func (c *Controller) Select(index int) { c.dispatch(state.SelectChapter{Index: index}) }

// SelectReciter changes the reciter used for the next playback or download.
func (c *Controller) SelectReciter(name string) { c.dispatch(state.SelectReciter{Name: name}) }

// SetAya records the aya field.
func (c *Controller) SetAya(text string) { c.dispatch(state.SetAya{Text: text}) }

// SetAutoPlay toggles advancing when a chapter finishes.
func (c *Controller) SetAutoPlay(enabled bool) { c.dispatch(state.SetAutoPlay{Enabled: enabled}) }

// Close releases the playback engine.
func (c *Controller) Close() error {
	return c.engine.Close()
}

// dispatch reduces action and runs its effects. runMu keeps the reduce and
// effect steps of concurrent callers from interleaving, so the engine sees
// generations in the order the reducer issued them. Follow-up actions produced
// by effects are queued rather than dispatched recursively.
func (c *Controller) dispatch(action state.Action) {
	c.runMu.Lock()

	for queue := []state.Action{action}; len(queue) > 0; {
		current := queue[0]
		queue = queue[1:]

		c.mu.Lock()
		next, effects := state.Reduce(c.state, current)
		c.state = next
		c.mu.Unlock()

		logger.DebugKV(c.ctx, "action reduced",
			"action", fmt.Sprintf("%T", current),
			"selected", next.Selected,
			"status", next.Status,
			"generation", next.Generation,
			"effects", len(effects),
		)

		for _, effect := range effects {
			if followUp := c.run(effect); followUp != nil {
				queue = append(queue, followUp)
			}
		}
	}

	c.runMu.Unlock()

	c.notify()
}

// run executes effect and returns the action its outcome produces, if any.
func (c *Controller) run(effect state.Effect) state.Action {
	switch e := effect.(type) {
	case state.StartPlayback:
		ch, ok := c.Catalog().At(e.Index)
		if !ok {
			return state.PlaybackFailed{Generation: e.Generation, Err: fmt.Errorf("%w: %d", ErrNoChapter, e.Index)}
		}

		audio := ch.AudioFor(e.Reciter)
		logger.InfoKV(c.ctx, "play", "chapter", ch.Label(), "reciter", e.Reciter, "url", audio, "generation", e.Generation)

		if err := c.engine.Play(c.ctx, audio, e.Generation); err != nil {
			logger.ErrorKV(c.ctx, "engine refused source", "url", audio, "error", err)
			return state.PlaybackFailed{Generation: e.Generation, Err: err}
		}

	case state.StopPlayback:
		logger.Info(c.ctx, "stop")
		c.engine.Stop()

	case state.OpenURL:
		ch, ok := c.Catalog().At(e.Index)
		if !ok {
			return state.DownloadFailed{Err: fmt.Errorf("%w: %d", ErrNoChapter, e.Index)}
		}

		u, err := platform.ParseAudioURL(ch.AudioFor(e.Reciter))
		if err == nil {
			logger.InfoKV(c.ctx, "download delegated", "chapter", ch.Label(), "url", u.String())
			err = c.opener.OpenURL(u)
		}

		if err != nil {
			logger.ErrorKV(c.ctx, "failed to open audio url", "chapter", ch.Label(), "error", err)
			return state.DownloadFailed{Err: err}
		}
	}

	return nil
}

func (c *Controller) onEngineEvent(ev playback.Event) {
	logger.DebugKV(c.ctx, "engine event", "kind", ev.Kind.String(), "generation", ev.Generation)

	switch ev.Kind {
	case playback.EventStarted:
		c.dispatch(state.PlaybackStarted{Generation: ev.Generation, Size: ev.Size})
	case playback.EventFinished:
		c.dispatch(state.PlaybackFinished{Generation: ev.Generation})
	case playback.EventFailed:
		c.dispatch(state.PlaybackFailed{Generation: ev.Generation, Err: ev.Err})
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	snapshot := c.state
	subscribers := make([]func(state.State), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}
