// Package watcher runs the capture → detect → verify → click loop.
//
// A Watcher polls a configured screen region on a fixed cadence, looking
// for the target button via color detection and (optionally) OCR label
// verification, and dispatches a synthetic click when a candidate is
// accepted.
//
// # Lifecycle
//
// A Watcher moves through three states:
//
//	Idle -> Running (on Run) -> Stopped (on cancellation or stop-after-click)
//
// Run is one-shot: Stopped is terminal and a second Run returns an error.
// A fresh Watcher is needed for a fresh run.
//
// # Accuracy policy
//
// Whether OCR runs is decided once, at construction: a Watcher built with a
// nil Verifier clicks any color match unconditionally (fast, may
// false-positive), one built with a Verifier requires label confirmation
// before clicking (slower, accurate). The hot loop never re-checks engine
// availability.
//
// # Failure policy
//
// Capture and dispatch failures are transient: they are logged, the tick is
// abandoned, and the loop tries again after the poll interval. Nothing
// short of context cancellation ends a run (unless StopAfterClick is set).
//
// The loop is strictly sequential. Overlapping iterations could dispatch
// duplicate clicks or race on the shared pointer device, so one tick must
// finish before the next starts, and the inter-tick wait races a timer
// against the context so cancellation is honored within timer granularity.
package watcher
