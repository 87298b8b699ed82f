package maps

// Padding is extra space kept clear around the viewport edges, in screen
// pixels.
type Padding struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Viewport is the full camera state of the rendered map. The map component is
// controlled: it renders exactly this state and reports user-driven camera
// moves back as a replacement Viewport.
type Viewport struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
	Bearing   float64 `json:"bearing"`
	Pitch     float64 `json:"pitch"`
	Padding   Padding `json:"padding"`
}

// Point is a geographic coordinate in lon/lat order.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}
