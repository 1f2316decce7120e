// Package ocr verifies candidate button labels using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to confirm
// that a detected color region actually carries the expected button text.
// Verification is best-effort by design: OCR output is noisy, so matching is
// a case-insensitive substring check against a keyword list, and a false
// negative just means the loop waits for the next poll.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Availability is probed exactly once at startup with Available. When the
// probe fails the caller must not construct a Verifier at all; the
// detection loop then runs in color-only mode for the process lifetime.
//
// # Preprocessing
//
// Before recognition the candidate region is expanded by a context margin,
// cropped, converted to grayscale and binarized. Chat-client buttons render
// light text on a saturated background, which raw Tesseract handles poorly;
// thresholding first makes the label legible to it.
//
// # Temporary Files
//
// Tesseract consumes file paths, so each verification writes the
// preprocessed crop to a temporary PNG and removes it afterwards.
package ocr
