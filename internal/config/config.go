// Package config loads the tool's settings from environment variables,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ironsheep/queue-clicker/internal/capture"
	"github.com/ironsheep/queue-clicker/internal/detect"
)

// Config holds every knob the detection loop reads. It is populated once at
// startup and read-only afterwards.
type Config struct {
	// UseOCR enables label verification before clicking. Forced off for
	// the process lifetime when the OCR engine is unavailable at startup.
	UseOCR bool

	// Region is the screen area to monitor. Empty means the primary
	// display; the resolver in main fills it in before the loop starts.
	Region capture.Region

	// Signature is the HSV window that counts as the button color.
	Signature detect.Signature

	// Detect filters which color components survive as candidates.
	Detect detect.Options

	// Keywords are accepted label strings for OCR verification.
	Keywords []string

	// PollInterval is the fixed delay between detection attempts.
	PollInterval time.Duration

	// GraceDelay is the startup pause that lets the operator bring the
	// target window to the front.
	GraceDelay time.Duration

	// ClickAll clicks every accepted candidate per tick instead of just
	// the largest.
	ClickAll bool

	// StopAfterClick ends the run after the first successful click,
	// matching the behavior of one-shot queue joining.
	StopAfterClick bool

	// OCRLanguage is the Tesseract language code.
	OCRLanguage string

	// OCRMargin is the pixel margin of context kept around a candidate
	// crop before recognition.
	OCRMargin int
}

// Load builds a Config from the environment.
//
// A .env file in the working directory or next to the executable is loaded
// first if present; real environment variables win over .env entries.
// Unset variables fall back to defaults that reproduce the original tuning:
// 500ms polls, 5s grace, the chat-client blue window and "join queue"
// keyword set.
func Load() (*Config, error) {
	loadDotenv()

	region, err := parseRegion(os.Getenv("CAPTURE_REGION"))
	if err != nil {
		return nil, fmt.Errorf("CAPTURE_REGION: %w", err)
	}

	pollInterval, err := envDuration("POLL_INTERVAL", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	graceDelay, err := envDuration("GRACE_DELAY", 5*time.Second)
	if err != nil {
		return nil, err
	}

	sig := detect.DefaultSignature()
	if sig.HueMin, err = envFloat("HUE_MIN", sig.HueMin); err != nil {
		return nil, err
	}
	if sig.HueMax, err = envFloat("HUE_MAX", sig.HueMax); err != nil {
		return nil, err
	}
	if sig.SatMin, err = envFloat("SAT_MIN", sig.SatMin); err != nil {
		return nil, err
	}
	if sig.ValMin, err = envFloat("VAL_MIN", sig.ValMin); err != nil {
		return nil, err
	}

	opts := detect.DefaultOptions()
	if opts.MinArea, err = envInt("MIN_AREA", opts.MinArea); err != nil {
		return nil, err
	}
	if opts.MaxArea, err = envInt("MAX_AREA", opts.MaxArea); err != nil {
		return nil, err
	}
	if opts.MinAspect, err = envFloat("MIN_ASPECT", opts.MinAspect); err != nil {
		return nil, err
	}
	if opts.MaxAspect, err = envFloat("MAX_ASPECT", opts.MaxAspect); err != nil {
		return nil, err
	}

	margin, err := envInt("OCR_MARGIN", 20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		UseOCR:         envBool("USE_OCR", true),
		Region:         region,
		Signature:      sig,
		Detect:         opts,
		Keywords:       splitKeywords(envString("LABEL_KEYWORDS", "join queue,queue,join,enter queue")),
		PollInterval:   pollInterval,
		GraceDelay:     graceDelay,
		ClickAll:       envBool("CLICK_ALL_MATCHES", false),
		StopAfterClick: envBool("STOP_AFTER_CLICK", false),
		OCRLanguage:    envString("OCR_LANGUAGE", "eng"),
		OCRMargin:      margin,
	}

	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("POLL_INTERVAL must be positive, got %v", cfg.PollInterval)
	}
	if len(cfg.Keywords) == 0 && cfg.UseOCR {
		return nil, fmt.Errorf("LABEL_KEYWORDS must not be empty when USE_OCR is enabled")
	}

	return cfg, nil
}

// loadDotenv tries the working directory first, then the executable's
// directory. Missing files are not an error.
func loadDotenv() {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			godotenv.Load(p)
			break
		}
	}
}

// parseRegion parses "x,y,width,height". Empty input means "use the
// primary display", returned as an empty Region for the caller to resolve.
func parseRegion(s string) (capture.Region, error) {
	if strings.TrimSpace(s) == "" {
		return capture.Region{}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return capture.Region{}, fmt.Errorf("expected x,y,width,height, got %q", s)
	}

	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return capture.Region{}, fmt.Errorf("bad component %q in %q", p, s)
		}
		vals[i] = v
	}

	r := capture.Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}
	if r.Width <= 0 || r.Height <= 0 {
		return capture.Region{}, fmt.Errorf("width and height must be positive in %q", s)
	}
	return r, nil
}

func splitKeywords(s string) []string {
	var keywords []string
	for _, k := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(k); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1" || v == "yes"
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return f, nil
}
