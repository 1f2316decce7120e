// Package capture grabs screen pixels for the detection loop.
//
// Capture goes through the OS screen-capture subsystem (via the
// kbinani/screenshot library) and always reflects the live screen at call
// time; nothing is cached between calls. Capture failures are reported as
// *Error so callers can treat them as transient and retry on the next poll.
package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Region is a screen rectangle in absolute display coordinates.
//
// The zero value means "no region configured"; use PrimaryRegion to resolve
// it to the primary display before handing it to a capture loop.
type Region struct {
	X      int `json:"x"`      // Left edge in screen coordinates
	Y      int `json:"y"`      // Top edge in screen coordinates
	Width  int `json:"width"`  // Width in pixels
	Height int `json:"height"` // Height in pixels
}

// Empty reports whether the region has no configured size.
func (r Region) Empty() bool {
	return r.Width == 0 && r.Height == 0
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Region) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// Error reports a failed capture attempt for a specific region.
type Error struct {
	Region Region
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("capture of region %s failed: %v", e.Region, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Grabber captures the pixels of a screen region on demand.
//
// Implementations must return a fresh bitmap reflecting the screen at call
// time. The returned image uses (0,0)-based coordinates; callers translate
// back to screen coordinates using the region origin.
type Grabber interface {
	Capture(r Region) (*image.RGBA, error)
}

// Screen is a Grabber backed by the live display.
type Screen struct{}

// NewScreen returns a Grabber that reads from the OS capture subsystem.
func NewScreen() *Screen {
	return &Screen{}
}

// Capture grabs exactly the pixels within r from the current screen state.
//
// Failures (capture subsystem unavailable, region outside every display)
// are returned as *Error and are safe to retry on a later poll.
func (s *Screen) Capture(r Region) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, &Error{Region: r, Err: fmt.Errorf("invalid dimensions %dx%d", r.Width, r.Height)}
	}

	img, err := screenshot.CaptureRect(r.Rect())
	if err != nil {
		return nil, &Error{Region: r, Err: err}
	}
	return img, nil
}

// PrimaryRegion returns the full bounds of the primary display.
func PrimaryRegion() (Region, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return Region{}, fmt.Errorf("no active displays found")
	}
	bounds := screenshot.GetDisplayBounds(0)
	return Region{
		X:      bounds.Min.X,
		Y:      bounds.Min.Y,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// Validate checks that r has positive dimensions and lies within an active
// display. Used at startup so a misconfigured region fails the process
// before the loop starts instead of erroring on every tick.
func Validate(r Region) error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("region must have positive dimensions, got %dx%d", r.Width, r.Height)
	}

	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return fmt.Errorf("no active displays found")
	}
	for i := 0; i < n; i++ {
		if r.Rect().In(screenshot.GetDisplayBounds(i)) {
			return nil
		}
	}
	return fmt.Errorf("region %s is outside all %d active display(s)", r, n)
}
