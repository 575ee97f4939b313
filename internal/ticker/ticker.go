// Package ticker drives the decorative colour cycle of the credit label.
package ticker

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultInterval is the cadence of the colour cycle.
const DefaultInterval = 500 * time.Millisecond

// ErrInvalidHex indicates a palette entry that is not #rrggbb.
var ErrInvalidHex = errors.New("invalid hex colour")

// DefaultPalette returns the five palette entries in rotation order.
func DefaultPalette() []string {
	return []string{"#ff4757", "#ff9f1a", "#2ed573", "#1e90ff", "#6c5ce7"}
}

// ColorCycler rotates through a fixed palette.
type ColorCycler struct {
	mu      sync.Mutex
	palette []color.Color
	index   int
}

// NewColorCycler creates a cycler over palette, or over DefaultPalette when
// palette is empty.
func NewColorCycler(palette []color.Color) *ColorCycler {
	if len(palette) == 0 {
		palette = MustParsePalette(DefaultPalette())
	}

	copied := make([]color.Color, len(palette))
	copy(copied, palette)

	return &ColorCycler{palette: copied}
}

// Next returns the current colour and advances the rotation, wrapping at the end.
func (c *ColorCycler) Next() color.Color {
	c.mu.Lock()
	defer c.mu.Unlock()

	col := c.palette[c.index]
	c.index = (c.index + 1) % len(c.palette)

	return col
}

// Index returns the position of the colour the next call to Next returns.
func (c *ColorCycler) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index
}

// Len returns the palette size.
func (c *ColorCycler) Len() int {
	return len(c.palette)
}

// Run calls apply with the next colour every interval until ctx is done.
// apply runs on the ticker goroutine; UI callers hop to the main thread themselves.
func (c *ColorCycler) Run(ctx context.Context, interval time.Duration, apply func(color.Color)) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			apply(c.Next())
		}
	}
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParsePalette parses every entry with ParseHex.
func ParsePalette(entries []string) ([]color.Color, error) {
	palette := make([]color.Color, 0, len(entries))
	for _, entry := range entries {
		col, err := ParseHex(entry)
		if err != nil {
			return nil, err
		}
		palette = append(palette, col)
	}
	return palette, nil
}

// MustParsePalette is ParsePalette for compile-time constants.
func MustParsePalette(entries []string) []color.Color {
	palette, err := ParsePalette(entries)
	if err != nil {
		panic(err)
	}
	return palette
}
