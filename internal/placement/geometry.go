package placement

// GeometryProvider reports the current rendered size of a page (1-based).
// ok is false while the page has not been measured.
type GeometryProvider interface {
	PageRect(page int) (Rect, bool)
}

// StaticGeometry : fixed page sizes, keyed by page number
type StaticGeometry map[int]Rect

func (g StaticGeometry) PageRect(page int) (Rect, bool) {
	r, ok := g[page]
	if !ok || !r.Known() {
		return Rect{}, false
	}
	return r, true
}

// ScaledGeometry renders page sizes given in document units (PDF points) at a zoom factor
type ScaledGeometry struct {
	Pages []Rect
	Zoom  float64
}

func (g ScaledGeometry) PageRect(page int) (Rect, bool) {
	if page < 1 || page > len(g.Pages) {
		return Rect{}, false
	}
	zoom := g.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	r := g.Pages[page-1].Scale(zoom)
	if !r.Known() {
		return Rect{}, false
	}
	return r, true
}
