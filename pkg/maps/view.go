package maps

// View is the rendered map surface consumed as a controlled component: it
// draws whatever viewport and marker it is handed and never mutates camera
// state on its own. User-driven pan/zoom/rotate must be fed back into the
// owner through its move event, not applied here.
type View interface {
	SetViewport(v Viewport)

	// SetMarker places the single point marker. There is at most one marker
	// at any time; a second call replaces the first.
	SetMarker(p Point)
}
