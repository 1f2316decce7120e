package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// thresholdLevel separates light label text from the saturated button
// background after grayscale conversion.
const thresholdLevel = 150

// Available reports whether the Tesseract engine and the requested
// language data are usable on this system.
//
// Intended to be called once at startup: a non-nil error means no Verifier
// should be constructed and the caller should degrade to color-only
// detection for the process lifetime.
func Available(language string) error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("tesseract not available: %w", err)
	}
	for _, l := range langs {
		if l == language {
			return nil
		}
	}
	return fmt.Errorf("tesseract language %q not installed (available: %s)",
		language, strings.Join(langs, ", "))
}

// Verifier confirms that a candidate region carries one of the expected
// label keywords.
//
// Construct one with New only after Available has succeeded. A Verifier is
// stateless between calls and safe to reuse across loop iterations.
type Verifier struct {
	language string
	keywords []string
	margin   int
}

// New creates a Verifier for the given Tesseract language code.
//
// keywords are the accepted label strings; recognition matches when any of
// them appears as a case-insensitive substring of the OCR output. margin is
// the number of pixels of surrounding context included around the candidate
// bounds before recognition, which helps Tesseract when the tight bounding
// box clips letter edges.
func New(language string, keywords []string, margin int) *Verifier {
	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			normalized = append(normalized, k)
		}
	}
	return &Verifier{language: language, keywords: normalized, margin: margin}
}

// Verify runs text recognition over the candidate region of img and reports
// whether any expected keyword is present.
//
// bounds is in img coordinates and is expanded by the configured margin,
// clamped to the image. Failures are returned as (false, err); callers
// treat them like a failed match and retry on a later poll.
func (v *Verifier) Verify(img image.Image, bounds image.Rectangle) (bool, error) {
	region := expand(bounds, v.margin).Intersect(img.Bounds())
	if region.Empty() {
		return false, fmt.Errorf("candidate region %v lies outside the bitmap", bounds)
	}

	cropped := imaging.Crop(img, region)
	binary := segment.Threshold(effect.Grayscale(cropped), thresholdLevel)

	text, err := v.recognize(binary)
	if err != nil {
		return false, err
	}
	return matchKeywords(text, v.keywords), nil
}

// recognize writes the preprocessed crop to a temporary PNG and runs
// Tesseract over it (tesseract needs a file path).
func (v *Verifier) recognize(img image.Image) (string, error) {
	tmpFile, err := os.CreateTemp("", "queue-clicker-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(v.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// matchKeywords reports whether any keyword appears in text,
// case-insensitively. Keywords are assumed already lowercased.
func matchKeywords(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// expand grows r by margin pixels on every side.
func expand(r image.Rectangle, margin int) image.Rectangle {
	return image.Rect(r.Min.X-margin, r.Min.Y-margin, r.Max.X+margin, r.Max.Y+margin)
}
