package detect

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

// buttonBlue sits at roughly hue 227 with high saturation and brightness,
// comfortably inside the default signature window.
var buttonBlue = color.RGBA{R: 40, G: 80, B: 220, A: 255}

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect paints a filled rectangle onto img
func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.Set(x, y, c)
		}
	}
}

// looseOptions disables the button-shape filters so geometric properties
// can be tested with simple squares.
func looseOptions(minArea int) Options {
	return Options{MinArea: minArea, MaxArea: 0, MinAspect: 0, MaxAspect: 0}
}

func TestSignatureMatch(t *testing.T) {
	sig := DefaultSignature()

	tests := []struct {
		name string
		c    color.Color
		want bool
	}{
		{"button blue", buttonBlue, true},
		{"pure blue", color.RGBA{0, 0, 255, 255}, true},
		{"white", color.White, false},        // zero saturation
		{"black", color.Black, false},        // zero value
		{"red", color.RGBA{200, 30, 30, 255}, false},
		{"green", color.RGBA{30, 200, 30, 255}, false},
		{"dark navy", color.RGBA{10, 10, 60, 255}, false}, // too dim
		{"pale blue", color.RGBA{220, 225, 240, 255}, false}, // washed out
	}

	for _, tt := range tests {
		if got := sig.Match(tt.c); got != tt.want {
			t.Errorf("%s: Match = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindCandidates_EmptyBitmap(t *testing.T) {
	img := createTestImage(100, 100, color.White)

	got := FindCandidates(img, DefaultSignature(), looseOptions(10))
	if len(got) != 0 {
		t.Errorf("expected no candidates on background-only bitmap, got %d", len(got))
	}
}

func TestFindCandidates_SingleRegion(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	fillRect(img, 40, 40, 60, 60, buttonBlue) // 20x20 square at (40,40)

	got := FindCandidates(img, DefaultSignature(), looseOptions(100))
	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %d", len(got))
	}

	c := got[0]
	if c.Area != 400 {
		t.Errorf("Area = %d, want 400", c.Area)
	}
	if c.Width != 20 || c.Height != 20 {
		t.Errorf("size = %dx%d, want 20x20", c.Width, c.Height)
	}
	// Center must land inside the square, near (50,50).
	if c.Center.X < 48 || c.Center.X > 51 || c.Center.Y < 48 || c.Center.Y > 51 {
		t.Errorf("Center = (%d,%d), want approximately (50,50)", c.Center.X, c.Center.Y)
	}
}

func TestFindCandidates_OrderedByArea(t *testing.T) {
	img := createTestImage(200, 100, color.White)
	fillRect(img, 10, 10, 30, 20, buttonBlue)   // 20x10 = 200 px
	fillRect(img, 100, 50, 160, 70, buttonBlue) // 60x20 = 1200 px

	got := FindCandidates(img, DefaultSignature(), looseOptions(100))
	if len(got) != 2 {
		t.Fatalf("expected two candidates, got %d", len(got))
	}
	if got[0].Area != 1200 || got[1].Area != 200 {
		t.Errorf("areas = [%d, %d], want [1200, 200]", got[0].Area, got[1].Area)
	}
	if got[0].Bounds.X1 != 100 {
		t.Errorf("largest candidate should be the right-hand region, got X1=%d", got[0].Bounds.X1)
	}
}

func TestFindCandidates_Idempotent(t *testing.T) {
	img := createTestImage(120, 120, color.White)
	fillRect(img, 10, 10, 50, 30, buttonBlue)
	fillRect(img, 70, 80, 110, 100, buttonBlue)

	first := FindCandidates(img, DefaultSignature(), looseOptions(50))
	second := FindCandidates(img, DefaultSignature(), looseOptions(50))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestFindCandidates_MinAreaFilter(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	fillRect(img, 40, 40, 44, 44, buttonBlue) // 16 px, below threshold

	got := FindCandidates(img, DefaultSignature(), looseOptions(100))
	if len(got) != 0 {
		t.Errorf("sub-threshold region should be rejected, got %d candidates", len(got))
	}
}

func TestFindCandidates_MaxAreaFilter(t *testing.T) {
	img := createTestImage(100, 100, buttonBlue) // whole bitmap matches

	opts := Options{MinArea: 100, MaxArea: 5000}
	got := FindCandidates(img, DefaultSignature(), opts)
	if len(got) != 0 {
		t.Errorf("oversized region should be rejected, got %d candidates", len(got))
	}
}

func TestFindCandidates_AspectFilter(t *testing.T) {
	img := createTestImage(100, 100, color.White)
	fillRect(img, 10, 10, 70, 25, buttonBlue) // 60x15, aspect 4.0: button-like
	fillRect(img, 90, 10, 95, 90, buttonBlue) // 5x80, aspect 0.0625: scrollbar-like

	// Default aspect window with a lower area floor so the 900 px
	// button-shaped region is judged on shape alone.
	opts := DefaultOptions()
	opts.MinArea = 100
	got := FindCandidates(img, DefaultSignature(), opts)

	if len(got) != 1 {
		t.Fatalf("expected one candidate after aspect filtering, got %d", len(got))
	}
	if got[0].Width != 60 {
		t.Errorf("surviving candidate width = %d, want 60", got[0].Width)
	}
}

func TestFindCandidates_DiagonalPixelsConnect(t *testing.T) {
	// Two diagonal pixel runs touching corner-to-corner form one
	// 8-connected component.
	img := createTestImage(20, 20, color.White)
	for i := 0; i < 10; i++ {
		img.Set(i, i, buttonBlue)
	}

	got := FindCandidates(img, DefaultSignature(), looseOptions(5))
	if len(got) != 1 {
		t.Fatalf("diagonal run should form a single component, got %d", len(got))
	}
	if got[0].Area != 10 {
		t.Errorf("Area = %d, want 10", got[0].Area)
	}
}

func TestBoundsRect(t *testing.T) {
	b := Bounds{X1: 10, Y1: 20, X2: 29, Y2: 39}
	want := image.Rect(10, 20, 30, 40)
	if got := b.Rect(); got != want {
		t.Errorf("Rect() = %v, want %v", got, want)
	}
}
