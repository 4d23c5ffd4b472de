package input

import "math"

// PointerSignal holds the latest pointer position in viewport coordinates.
type PointerSignal struct {
	x, y    float64
	present bool
}

// Set records a pointer position.
func (p *PointerSignal) Set(x, y float64) {
	p.x, p.y = x, y
	p.present = true
}

// Clear marks the pointer as outside the viewport.
func (p *PointerSignal) Clear() { p.present = false }

// Position returns the last position and whether the pointer is present.
func (p PointerSignal) Position() (x, y float64, ok bool) {
	return p.x, p.y, p.present
}

// ScrollSignal tracks the vertical scroll offset of a document taller than
// its viewport.
type ScrollSignal struct {
	offset   float64
	document float64
	viewport float64
}

// Resize sets the document and viewport heights, keeping the offset in range.
func (s *ScrollSignal) Resize(document, viewport float64) {
	s.document = document
	s.viewport = viewport
	s.offset = s.clamp(s.offset)
}

// ScrollBy moves the offset by delta rows.
func (s *ScrollSignal) ScrollBy(delta float64) {
	s.offset = s.clamp(s.offset + delta)
}

// ScrollTo moves the offset to y.
func (s *ScrollSignal) ScrollTo(y float64) {
	s.offset = s.clamp(y)
}

// Offset returns the raw offset in rows.
func (s ScrollSignal) Offset() float64 { return s.offset }

// Progress returns the offset as a fraction of the scrollable height.
func (s ScrollSignal) Progress() float64 {
	limit := s.limit()
	if limit <= 0 {
		return 0
	}
	return s.offset / limit
}

func (s ScrollSignal) limit() float64 {
	return math.Max(0, s.document-s.viewport)
}

func (s ScrollSignal) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), s.limit())
}

// SurfaceSignal reports a pointer position relative to a rectangle, where
// (0,0) is the top-left corner and (1,1) the bottom-right. Values outside
// [0,1] are passed through.
func SurfaceSignal(x, y, left, top, width, height float64) (px, py float64) {
	return (x - left) / width, (y - top) / height
}
