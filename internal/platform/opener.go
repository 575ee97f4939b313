package platform

//go:generate mockgen -source=opener.go -destination=mocks/opener_mock.go

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

var (
	// ErrNilURL indicates an opener was called without a URL.
	ErrNilURL = errors.New("url is nil")
	// ErrNotAbsoluteURL indicates an audio URL without an http(s) scheme or host.
	ErrNotAbsoluteURL = errors.New("audio url must be an absolute http(s) url")
	// ErrUnsupportedOS indicates there is no known open command for the host.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// URLOpener hands a URL to an external agent, typically the default browser.
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// ParseAudioURL parses an absolute http(s) URL. The returned URL always
// renders back to raw, including unescaped paths and upper-case schemes.
func ParseAudioURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse audio url: %w", err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotAbsoluteURL, raw)
	}

	return verbatim(u, raw), nil
}

// verbatim pins the rendered form of u to raw. Host and Path stay parsed.
func verbatim(u *url.URL, raw string) *url.URL {
	if u.String() == raw {
		return u
	}

	scheme, rest, _ := strings.Cut(raw, ":")

	kept := *u
	kept.Scheme = scheme
	kept.Opaque = rest
	kept.RawQuery = ""
	kept.ForceQuery = false
	kept.Fragment = ""
	kept.RawFragment = ""

	return &kept
}

// AppOpener opens URLs through the fyne application, falling back to another
// opener when the driver refuses.
type AppOpener struct {
	app      fyne.App
	fallback URLOpener
}

// NewAppOpener creates an opener backed by app. fallback may be nil.
func NewAppOpener(app fyne.App, fallback URLOpener) *AppOpener {
	return &AppOpener{app: app, fallback: fallback}
}

// OpenURL implements URLOpener.
func (o *AppOpener) OpenURL(u *url.URL) error {
	if u == nil {
		return ErrNilURL
	}

	err := o.app.OpenURL(u)
	if err == nil || o.fallback == nil {
		return err
	}

	if fbErr := o.fallback.OpenURL(u); fbErr != nil {
		return errors.Join(err, fbErr)
	}
	return nil
}

// CommandOpener launches the host's open command for a URL.
type CommandOpener struct {
	goos string
	run  func(name string, args ...string) error
}

// NewCommandOpener creates an opener for the running OS.
func NewCommandOpener() *CommandOpener {
	return &CommandOpener{goos: runtime.GOOS, run: startCommand}
}

// OpenURL implements URLOpener.
func (o *CommandOpener) OpenURL(u *url.URL) error {
	if u == nil {
		return ErrNilURL
	}

	target := u.String()

	switch o.goos {
	case OSDarwin:
		return o.run(OpenCommand, target)
	case OSWindows:
		// The empty argument is the window title expected by start.
		return o.run(CmdCommand, WindowsCmdFlag, StartCommand, "", target)
	case OSLinux, OSFreeBSD:
		return o.run(XDGOpenCommand, target)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOS, o.goos)
	}
}

// startCommand launches name without waiting for the handler to exit.
func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
