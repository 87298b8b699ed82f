package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/geoglue/mapsearch/pkg/geocoder"
	"github.com/geoglue/mapsearch/pkg/maps"
	"github.com/geoglue/mapsearch/pkg/widget"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	query = flag.String("q", "Kebun Binatang Ragunan", "place to search for")
)

// printingMap stands in for the rendered map: it just prints every camera and
// marker update the widget pushes at it.
type printingMap struct{}

func (printingMap) SetViewport(v maps.Viewport) {
	fmt.Printf("viewport -> lon=%.4f lat=%.4f zoom=%.1f\n", v.Longitude, v.Latitude, v.Zoom)
}

func (printingMap) SetMarker(p maps.Point) {
	fmt.Printf("marker   -> lon=%.4f lat=%.4f\n", p.Longitude, p.Latitude)
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	viper.AutomaticEnv()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client := geocoder.NewClient(geocoder.Config{
		AccessToken: viper.GetString("MAPBOX_ACCESS_TOKEN"),
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}, logger)

	start := maps.Viewport{Longitude: 106.8272, Latitude: -6.1754, Zoom: 10}

	w, err := widget.New(widget.Config{
		Geocoder:        client,
		Map:             printingMap{},
		InitialViewport: start,
	}, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer w.Close()

	// Type the query one keystroke at a time, the way a user would, so the
	// debounce coalesces the burst into a single lookup.
	runes := []rune(*query)
	for i := range runes {
		w.InputChanged(string(runes[:i+1]))
		time.Sleep(40 * time.Millisecond)
	}

	time.Sleep(widget.DefaultDebounceInterval + 2*time.Second)

	state := w.State()
	if len(state.Suggestions) == 0 {
		fmt.Println("no suggestions")
		return
	}
	for i, s := range state.Suggestions {
		fmt.Printf("%d. %s\n", i+1, s.DisplayName)
	}

	w.KeyDown(widget.KeyEnter)

	from := maps.Point{Longitude: start.Longitude, Latitude: start.Latitude}
	if marker, ok := w.Marker(); ok {
		fmt.Printf("camera moved %.1f km\n", maps.HaversineDistance(from, marker))
	}
}
