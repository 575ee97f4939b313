package playback

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/google/uuid"

	"github.com/ytget/quranpak-player/internal/logger"
)

const (
	// DefaultResampleQuality is passed to beep.Resample when a stream's rate
	// differs from the rate the output was opened with.
	DefaultResampleQuality = 4

	// outputBuffer is the amount of audio buffered by the speaker.
	outputBuffer = time.Second / 10
)

// Decoder turns a response body into a seekable stream.
type Decoder func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// Option configures a BeepEngine.
type Option func(*BeepEngine)

// WithHTTPClient sets the client used to fetch sources.
func WithHTTPClient(client *http.Client) Option {
	return func(e *BeepEngine) {
		if client != nil {
			e.client = client
		}
	}
}

// WithSink replaces the speaker output.
func WithSink(sink Sink) Option {
	return func(e *BeepEngine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithDecoder replaces the MP3 decoder.
func WithDecoder(decode Decoder) Option {
	return func(e *BeepEngine) {
		if decode != nil {
			e.decode = decode
		}
	}
}

// NewHTTPClient returns a client that gives up when a server does not start
// answering within headerTimeout. The body itself is streamed without a deadline.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = headerTimeout

	return &http.Client{Transport: transport}
}

// BeepEngine streams MP3 sources over HTTP into the beep speaker.
type BeepEngine struct {
	client *http.Client
	sink   Sink
	decode Decoder

	mu       sync.Mutex
	handler  func(Event)
	current  uint64
	cancel   context.CancelFunc
	stream   beep.StreamSeekCloser
	format   beep.Format
	sinkRate beep.SampleRate
	closed   bool
}

// NewBeepEngine creates an engine writing to the system speaker.
func NewBeepEngine(opts ...Option) *BeepEngine {
	e := &BeepEngine{
		client: http.DefaultClient,
		sink:   SpeakerSink{},
		decode: mp3.Decode,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SetEventHandler implements Engine.
func (e *BeepEngine) SetEventHandler(handler func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.handler = handler
}

// Play implements Engine.
func (e *BeepEngine) Play(ctx context.Context, rawURL string, generation uint64) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}

	e.stopLocked()

	loadCtx, cancel := context.WithCancel(ctx)
	e.current = generation
	e.cancel = cancel
	e.mu.Unlock()

	loadCtx = logger.WithKV(loadCtx, "session", uuid.NewString(), "generation", generation)
	logger.InfoKV(loadCtx, "opening stream", "url", rawURL)

	go e.load(loadCtx, rawURL, generation)

	return nil
}

// Stop implements Engine.
func (e *BeepEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
}

// Position implements Engine.
func (e *BeepEngine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return 0
	}

	e.sink.Lock()
	pos := e.stream.Position()
	e.sink.Unlock()

	return e.format.SampleRate.D(pos)
}

// Close implements Engine.
func (e *BeepEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.stopLocked()

	return nil
}

// Shutdown lets the dependency container release the engine.
func (e *BeepEngine) Shutdown() error {
	return e.Close()
}

// stopLocked tears down the current source. e.mu must be held.
func (e *BeepEngine) stopLocked() {
	e.current = 0

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	if e.stream != nil {
		e.sink.Clear()

		if err := e.stream.Close(); err != nil {
			logger.Warnf(context.Background(), "failed to close stream: %v", err)
		}

		e.stream = nil
	}
}

func (e *BeepEngine) load(ctx context.Context, rawURL string, generation uint64) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		e.fail(ctx, generation, rawURL, fmt.Errorf("failed to build request: %w", err))
		return
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.fail(ctx, generation, rawURL, fmt.Errorf("%w: %w", ErrUnreachable, err))
		return
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		e.fail(ctx, generation, rawURL, fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status))
		return
	}

	stream, format, err := e.decode(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		e.fail(ctx, generation, rawURL, fmt.Errorf("%w: %w", ErrDecode, err))
		return
	}

	e.mu.Lock()

	if e.current != generation || ctx.Err() != nil {
		e.mu.Unlock()
		_ = stream.Close()
		logger.Debug(ctx, "stream superseded before start")
		return
	}

	if err = e.ensureSinkLocked(format.SampleRate); err != nil {
		e.mu.Unlock()
		_ = stream.Close()
		e.fail(ctx, generation, rawURL, err)
		return
	}

	var out beep.Streamer = stream
	if format.SampleRate != e.sinkRate {
		out = beep.Resample(DefaultResampleQuality, format.SampleRate, e.sinkRate, stream)
	}

	e.stream = stream
	e.format = format

	// The callback runs on the speaker goroutine with the speaker locked.
	e.sink.Play(beep.Seq(out, beep.Callback(func() {
		go e.finish(ctx, generation, rawURL)
	})))

	e.mu.Unlock()

	logger.InfoKV(ctx, "stream started",
		"sample_rate", int(format.SampleRate),
		"channels", format.NumChannels,
		"size", resp.ContentLength,
	)

	e.emit(Event{Kind: EventStarted, Generation: generation, URL: rawURL, Size: resp.ContentLength})
}

// ensureSinkLocked opens the output at the first stream's rate. e.mu must be held.
func (e *BeepEngine) ensureSinkLocked(rate beep.SampleRate) error {
	if e.sinkRate != 0 {
		return nil
	}

	if err := e.sink.Init(rate, rate.N(outputBuffer)); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	e.sinkRate = rate

	return nil
}

func (e *BeepEngine) finish(ctx context.Context, generation uint64, rawURL string) {
	e.mu.Lock()

	if e.current != generation {
		e.mu.Unlock()
		return
	}

	stream := e.stream
	e.stream = nil
	e.current = 0

	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}

	e.mu.Unlock()

	if stream != nil {
		_ = stream.Close()
	}

	logger.Info(ctx, "stream finished")

	e.emit(Event{Kind: EventFinished, Generation: generation, URL: rawURL, Size: -1})
}

func (e *BeepEngine) fail(ctx context.Context, generation uint64, rawURL string, err error) {
	e.mu.Lock()

	stale := e.current != generation || ctx.Err() != nil
	if !stale {
		e.current = 0

		if e.cancel != nil {
			e.cancel()
			e.cancel = nil
		}
	}

	e.mu.Unlock()

	if stale {
		logger.Debugf(ctx, "dropping error of superseded stream: %v", err)
		return
	}

	logger.ErrorKV(ctx, "playback failed", "url", rawURL, "error", err)

	e.emit(Event{Kind: EventFailed, Generation: generation, URL: rawURL, Size: -1, Err: err})
}

func (e *BeepEngine) emit(ev Event) {
	e.mu.Lock()
	handler := e.handler
	e.mu.Unlock()

	if handler != nil {
		handler(ev)
	}
}
