// Package detect finds button-like color regions in captured bitmaps.
//
// Detection works on a color signature rather than a template: pixels whose
// HSV values fall inside the configured hue/saturation/value window are
// grouped into connected components, and each component that survives the
// size and aspect-ratio filters becomes a click candidate.
//
// # Pipeline
//
//  1. Mask: classify every pixel against the Signature (HSV window)
//  2. Components: flood-fill 8-connected matching pixels into regions
//  3. Filtering: drop regions outside the area window or aspect window
//  4. Ordering: sort surviving candidates by pixel area, largest first
//
// # Coordinate System
//
// All coordinates are relative to the input bitmap with origin (0,0) at the
// top-left corner. Callers working with screen captures translate back to
// screen coordinates by adding the capture region's origin.
//
// # Determinism
//
// FindCandidates is a pure function of its inputs: the same bitmap, signature
// and options always produce the same candidates in the same order. Ties in
// area preserve scan order (top-left component first).
package detect
