// Package input synthesizes pointer clicks via the OS input-injection
// subsystem.
package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// DispatchError reports that a synthetic click could not be delivered at
// the requested screen coordinate.
type DispatchError struct {
	X, Y   int
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("click dispatch at (%d,%d) failed: %s", e.X, e.Y, e.Reason)
}

// Clicker dispatches a press-release click at a screen coordinate.
//
// The click lands in whatever application is visible at that location; the
// operator is responsible for keeping the target window on screen.
type Clicker interface {
	Click(x, y int) error
}

// Mouse is a Clicker backed by the system pointer device.
type Mouse struct{}

// NewMouse returns a Clicker that injects events through robotgo.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Click moves the pointer to (x, y) and performs a left press-release.
//
// robotgo does not surface injection failures directly, so the pointer
// position is read back after the move: a pointer that never arrived means
// the injection subsystem rejected the event (typically missing
// accessibility or input permissions), reported as *DispatchError.
func (m *Mouse) Click(x, y int) error {
	robotgo.Move(x, y)

	if cx, cy := robotgo.Location(); cx != x || cy != y {
		return &DispatchError{
			X: x, Y: y,
			Reason: fmt.Sprintf("pointer at (%d,%d) after move; input injection may lack permissions", cx, cy),
		}
	}

	robotgo.Click("left")
	return nil
}
