package detect

import (
	"image"
	"sort"
)

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (inclusive)
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Rect converts the bounds to a half-open image.Rectangle.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2+1, b.Y2+1)
}

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Candidate is a detected region plausibly matching the target button.
//
// Center is where a click aimed at this candidate would land, in bitmap
// coordinates. Area is the number of matching pixels in the component, not
// the bounding-box area, so ragged anti-aliased edges don't inflate it.
type Candidate struct {
	// Bounds is the bounding box enclosing the matching component.
	Bounds Bounds `json:"bounds"`

	// Center is the center point of the bounding box.
	Center Point `json:"center"`

	// Width is the horizontal extent of the bounding box in pixels.
	Width int `json:"width"`

	// Height is the vertical extent of the bounding box in pixels.
	Height int `json:"height"`

	// Area is the number of pixels in the connected component.
	Area int `json:"area"`
}

// Options controls which components survive as candidates.
//
// The aspect window rejects components whose bounding box is the wrong
// shape for a button: tall-and-narrow blobs (scrollbar fragments, avatar
// rings) and extremely wide ones (highlighted message rows).
type Options struct {
	MinArea   int     // Minimum component pixel count. Smaller is noise.
	MaxArea   int     // Maximum component pixel count. Larger is background.
	MinAspect float64 // Minimum bounding-box width/height ratio.
	MaxAspect float64 // Maximum bounding-box width/height ratio.
}

// DefaultOptions returns the filter window tuned for a chat client's action
// button at typical display scaling.
func DefaultOptions() Options {
	return Options{MinArea: 1000, MaxArea: 100000, MinAspect: 1.5, MaxAspect: 10}
}

// FindCandidates scans a bitmap for connected regions matching the color
// signature and returns surviving regions as click candidates.
//
// Parameters:
//   - img: Source bitmap, typically a fresh screen capture.
//   - sig: HSV window defining the target color.
//   - opts: Area and aspect filters; see DefaultOptions.
//
// Returns candidates ordered by descending pixel area (largest, most
// confident match first). An empty slice is the normal "button not present"
// result, not an error. The function is deterministic: identical inputs
// yield identical output, with area ties kept in scan order.
func FindCandidates(img image.Image, sig Signature, opts Options) []Candidate {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := buildMask(img, sig, width, height)

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	candidates := make([]Candidate, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}

			component := floodFill(mask, visited, x, y, width, height)

			cand, ok := summarize(component, opts)
			if ok {
				candidates = append(candidates, cand)
			}
		}
	}

	// Largest first; sort.SliceStable keeps scan order for equal areas.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Area > candidates[j].Area
	})

	return candidates
}

// buildMask classifies every pixel against the signature.
func buildMask(img image.Image, sig Signature, width, height int) [][]bool {
	bounds := img.Bounds()
	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			mask[y][x] = sig.Match(img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}
	return mask
}

// floodFill collects the 8-connected component containing (startX, startY).
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large components. Marks pixels visited as it goes.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) []Point {
	component := make([]Point, 0)
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		component = append(component, p)

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return component
}

// summarize reduces a component to a Candidate, applying the option filters.
func summarize(component []Point, opts Options) (Candidate, bool) {
	if len(component) == 0 {
		return Candidate{}, false
	}

	minX, minY := component[0].X, component[0].Y
	maxX, maxY := minX, minY
	for _, p := range component {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	area := len(component)
	if area < opts.MinArea || (opts.MaxArea > 0 && area > opts.MaxArea) {
		return Candidate{}, false
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	aspect := float64(w) / float64(h)
	if aspect < opts.MinAspect || (opts.MaxAspect > 0 && aspect > opts.MaxAspect) {
		return Candidate{}, false
	}

	return Candidate{
		Bounds: Bounds{X1: minX, Y1: minY, X2: maxX, Y2: maxY},
		Center: Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  w,
		Height: h,
		Area:   area,
	}, true
}
