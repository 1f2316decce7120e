package watcher

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync/atomic"
	"time"

	"github.com/ironsheep/queue-clicker/internal/capture"
	"github.com/ironsheep/queue-clicker/internal/config"
	"github.com/ironsheep/queue-clicker/internal/detect"
)

// State is the watcher's lifecycle position.
type State int32

const (
	StateIdle    State = iota // before Run
	StateRunning              // polling
	StateStopped              // terminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Verifier confirms that a candidate region carries the expected label.
type Verifier interface {
	Verify(img image.Image, bounds image.Rectangle) (bool, error)
}

// Clicker dispatches a press-release click at a screen coordinate.
type Clicker interface {
	Click(x, y int) error
}

// Watcher owns the detection loop and its state.
type Watcher struct {
	cfg      *config.Config
	grabber  capture.Grabber
	verifier Verifier
	clicker  Clicker
	state    atomic.Int32
}

// New assembles a Watcher from its collaborators.
//
// verifier may be nil, which runs the loop in color-only mode: any color
// match is clicked without label confirmation. This is the only place the
// OCR-availability decision is made.
func New(cfg *config.Config, grabber capture.Grabber, verifier Verifier, clicker Clicker) *Watcher {
	return &Watcher{
		cfg:      cfg,
		grabber:  grabber,
		verifier: verifier,
		clicker:  clicker,
	}
}

// State returns the watcher's current lifecycle state.
func (w *Watcher) State() State {
	return State(w.state.Load())
}

// Run executes the detection loop until ctx is cancelled.
//
// It first waits out the configured grace delay (so the operator can bring
// the target window to the front), then polls: capture, detect, optionally
// verify, click, wait. Cancellation at any point, including mid-wait,
// transitions the watcher to Stopped and returns nil. Run can be called
// once; subsequent calls fail.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return fmt.Errorf("watcher already started (state %s)", w.State())
	}
	defer w.state.Store(int32(StateStopped))

	if !w.countdown(ctx) {
		return nil
	}

	log.Printf("Monitoring region %s every %v (ocr=%v)", w.cfg.Region, w.cfg.PollInterval, w.verifier != nil)

	for {
		clicked := w.tick()
		if clicked && w.cfg.StopAfterClick {
			log.Printf("Button clicked, stopping as configured")
			return nil
		}
		if !w.wait(ctx, w.cfg.PollInterval) {
			return nil
		}
	}
}

// countdown waits out the grace delay, logging each remaining second.
// Returns false if ctx was cancelled during the wait.
func (w *Watcher) countdown(ctx context.Context) bool {
	remaining := w.cfg.GraceDelay
	if remaining <= 0 {
		return true
	}

	log.Printf("Starting in %v... position the target window now", remaining)
	for remaining > 0 {
		step := time.Second
		if remaining < step {
			step = remaining
		}
		if !w.wait(ctx, step) {
			return false
		}
		remaining -= step
		if secs := int(remaining / time.Second); secs > 0 && remaining%time.Second == 0 {
			log.Printf("%d...", secs)
		}
	}
	return true
}

// tick runs one capture-detect-verify-click iteration and reports whether
// any click was dispatched. All failures are local to the tick.
func (w *Watcher) tick() bool {
	img, err := w.grabber.Capture(w.cfg.Region)
	if err != nil {
		log.Printf("Capture failed, will retry: %v", err)
		return false
	}

	candidates := detect.FindCandidates(img, w.cfg.Signature, w.cfg.Detect)
	if len(candidates) == 0 {
		return false
	}
	log.Printf("Found %d potential button(s)", len(candidates))

	clicked := false
	for _, cand := range candidates {
		if w.accept(img, cand) && w.click(cand) {
			clicked = true
		}
		if !w.cfg.ClickAll {
			break
		}
	}
	return clicked
}

// accept applies the accuracy policy to a single candidate.
func (w *Watcher) accept(img image.Image, cand detect.Candidate) bool {
	if w.verifier == nil {
		return true
	}

	ok, err := w.verifier.Verify(img, cand.Bounds.Rect())
	if err != nil {
		log.Printf("Label verification failed, skipping candidate: %v", err)
		return false
	}
	if !ok {
		log.Printf("Candidate at (%d,%d) did not match the expected label", cand.Center.X, cand.Center.Y)
	}
	return ok
}

// click dispatches at the candidate's center, translated to screen
// coordinates.
func (w *Watcher) click(cand detect.Candidate) bool {
	x := w.cfg.Region.X + cand.Center.X
	y := w.cfg.Region.Y + cand.Center.Y

	if err := w.clicker.Click(x, y); err != nil {
		log.Printf("Click failed: %v", err)
		return false
	}
	log.Printf("Button found and clicked at (%d,%d)", x, y)
	return true
}

// wait blocks for d or until ctx is cancelled, whichever comes first.
// Returns false on cancellation.
func (w *Watcher) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
