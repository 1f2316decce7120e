package ocr

import (
	"image"
	"testing"
)

func TestMatchKeywords(t *testing.T) {
	keywords := []string{"join queue", "queue", "join"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact label", "Join Queue", true},
		{"noisy surroundings", "x]» JOIN QUEUE «(8", true},
		{"partial keyword", "rejoin the raid", true}, // "join" is a substring
		{"multiline output", "general\n\nQueue is open\n", true},
		{"no match", "Send Message", false},
		{"empty output", "", false},
	}

	for _, tt := range tests {
		if got := matchKeywords(tt.text, keywords); got != tt.want {
			t.Errorf("%s: matchKeywords(%q) = %v, want %v", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestNewNormalizesKeywords(t *testing.T) {
	v := New("eng", []string{" Join Queue ", "", "QUEUE"}, 20)

	if len(v.keywords) != 2 {
		t.Fatalf("expected 2 keywords after normalization, got %d", len(v.keywords))
	}
	if v.keywords[0] != "join queue" || v.keywords[1] != "queue" {
		t.Errorf("keywords = %v, want lowercased trimmed forms", v.keywords)
	}
}

func TestExpandClampsViaIntersect(t *testing.T) {
	img := image.Rect(0, 0, 100, 100)
	bounds := image.Rect(5, 5, 30, 20)

	got := expand(bounds, 20).Intersect(img)
	want := image.Rect(0, 0, 50, 40)
	if got != want {
		t.Errorf("expanded region = %v, want %v", got, want)
	}
}

func TestVerifyRejectsRegionOutsideBitmap(t *testing.T) {
	v := New("eng", []string{"queue"}, 0)
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))

	ok, err := v.Verify(img, image.Rect(200, 200, 250, 250))
	if ok {
		t.Error("Verify should not confirm a region outside the bitmap")
	}
	if err == nil {
		t.Error("Verify should report an error for a region outside the bitmap")
	}
}
