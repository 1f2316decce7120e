package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/queue-clicker/internal/capture"
	"github.com/ironsheep/queue-clicker/internal/config"
	"github.com/ironsheep/queue-clicker/internal/input"
	"github.com/ironsheep/queue-clicker/internal/ocr"
	"github.com/ironsheep/queue-clicker/internal/watcher"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("queue-clicker %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Status lines are the tool's output contract, so the logger writes
	// to stdout rather than stderr.
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Region.Empty() {
		cfg.Region, err = capture.PrimaryRegion()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot initialize screen capture: %v\n", err)
			os.Exit(1)
		}
	} else if err := capture.Validate(cfg.Region); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid capture region: %v\n", err)
		os.Exit(1)
	}

	// The OCR decision is made exactly once, here: if the engine is
	// missing the verifier is never constructed and the loop runs
	// color-only for the process lifetime.
	var verifier watcher.Verifier
	if cfg.UseOCR {
		if err := ocr.Available(cfg.OCRLanguage); err != nil {
			log.Printf("OCR unavailable, falling back to color-only detection: %v", err)
			cfg.UseOCR = false
		} else {
			verifier = ocr.New(cfg.OCRLanguage, cfg.Keywords, cfg.OCRMargin)
		}
	}

	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watcher.New(cfg, capture.NewScreen(), verifier, input.NewMouse())
	if err := w.Run(ctx); err != nil {
		log.Fatalf("Watcher error: %v", err)
	}
	log.Printf("Monitoring stopped")
}

func printBanner(cfg *config.Config) {
	fmt.Println("============================================================")
	fmt.Println("Queue Auto-Clicker")
	fmt.Println("============================================================")
	fmt.Println()
	fmt.Println("Instructions:")
	fmt.Println("1. Open the chat application and navigate to the channel")
	fmt.Println("2. Make sure the channel is visible on screen")
	fmt.Println("3. The tool will watch for the blue 'join queue' button")
	fmt.Println("4. When found, it will click the button automatically")
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("- Capture region: %s\n", cfg.Region)
	fmt.Printf("- Check interval: %v\n", cfg.PollInterval)
	fmt.Printf("- OCR verification: %v\n", cfg.UseOCR)
	if cfg.UseOCR {
		fmt.Printf("- Label keywords: %v\n", cfg.Keywords)
	}
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop at any time")
	fmt.Println("============================================================")
	fmt.Println()
}

func printHelp() {
	fmt.Println("queue-clicker - watches the screen for a 'join queue' button and clicks it")
	fmt.Println()
	fmt.Println("Usage: queue-clicker [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables (a .env file is also read if present):")
	fmt.Println("  USE_OCR=true|false        Verify the button label before clicking (default true)")
	fmt.Println("  CAPTURE_REGION=x,y,w,h    Screen area to monitor (default: primary display)")
	fmt.Println("  POLL_INTERVAL=500ms       Delay between detection attempts")
	fmt.Println("  GRACE_DELAY=5s            Startup pause before monitoring begins")
	fmt.Println("  LABEL_KEYWORDS=a,b,...    Accepted button labels for OCR matching")
	fmt.Println("  HUE_MIN/HUE_MAX           Target hue window in degrees (default 200/260)")
	fmt.Println("  SAT_MIN/VAL_MIN           Minimum saturation/brightness 0-1 (default 0.35)")
	fmt.Println("  MIN_AREA/MAX_AREA         Candidate size window in pixels (default 1000/100000)")
	fmt.Println("  MIN_ASPECT/MAX_ASPECT     Candidate width/height window (default 1.5/10)")
	fmt.Println("  CLICK_ALL_MATCHES=true    Click every accepted candidate per check")
	fmt.Println("  STOP_AFTER_CLICK=true     Exit after the first successful click")
	fmt.Println("  OCR_LANGUAGE=eng          Tesseract language code")
	fmt.Println("  OCR_MARGIN=20             Context pixels kept around the OCR crop")
	fmt.Println()
	fmt.Println("Requires Tesseract for OCR verification; without it the tool")
	fmt.Println("degrades to color-only detection.")
}
