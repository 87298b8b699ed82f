package widget

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/geoglue/mapsearch/pkg/concurrent"
	"github.com/geoglue/mapsearch/pkg/geocoder"
	"github.com/geoglue/mapsearch/pkg/maps"

	"go.uber.org/zap"
)

const (
	// DefaultDebounceInterval is how long the input must stay idle before a
	// lookup is issued.
	DefaultDebounceInterval = 300 * time.Millisecond

	// MinQueryLength is the trimmed length below which no lookup happens and
	// suggestions are cleared immediately.
	MinQueryLength = 3

	// SelectionZoom is the fixed zoom applied when a place is selected.
	// Bearing and pitch are left untouched.
	SelectionZoom = 14.0
)

type Config struct {
	Geocoder Geocoder

	// Map, List and Input are render sinks. Any of them may be nil, in which
	// case the corresponding effects are dropped.
	Map   maps.View
	List  ListView
	Input InputView

	// DebounceInterval overrides DefaultDebounceInterval when > 0.
	DebounceInterval time.Duration

	// InitialViewport is the camera state before any interaction.
	InitialViewport maps.Viewport
}

// Widget is the search widget controller. It owns the suggestion UI state,
// the map viewport and the marker, and drives them from discrete input
// events. All methods are safe for concurrent use, but the component is
// event-driven: each event is a single atomic state transition.
type Widget struct {
	log      *zap.Logger
	geocoder Geocoder
	mapView  maps.View
	list     ListView
	input    InputView
	debounce *concurrent.Debouncer

	// ctx scopes in-flight lookups to the widget lifetime; Close cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	query        string
	suggestions  []geocoder.Feature
	highlighted  int
	dropdownOpen bool
	viewport     maps.Viewport
	marker       *maps.Point

	// fetchSeq tags every issued lookup; a completion whose tag is no longer
	// current is stale and gets discarded, so only the latest query's results
	// are ever shown.
	fetchSeq uint64
	closed   bool
}

func New(cfg Config, log *zap.Logger) (*Widget, error) {
	if cfg.Geocoder == nil {
		return nil, errors.New("widget: geocoder is required")
	}
	interval := cfg.DebounceInterval
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Widget{
		log:         log,
		geocoder:    cfg.Geocoder,
		mapView:     cfg.Map,
		list:        cfg.List,
		input:       cfg.Input,
		debounce:    concurrent.NewDebouncer(interval),
		ctx:         ctx,
		cancel:      cancel,
		highlighted: -1,
		viewport:    cfg.InitialViewport,
	}, nil
}

// InputChanged handles a text change in the search input. Sub-threshold input
// clears suggestions immediately and issues no lookup; anything else restarts
// the debounce timer.
func (w *Widget) InputChanged(text string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.query = text

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		w.suggestions = nil
		w.highlighted = -1
		w.dropdownOpen = false
		w.fetchSeq++
		w.mu.Unlock()

		w.debounce.Cancel()
		return
	}
	w.mu.Unlock()

	w.debounce.Trigger(func() { w.lookup(trimmed) })
}

// lookup runs on the debounce goroutine once the input has been idle for the
// full interval.
func (w *Widget) lookup(query string) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.fetchSeq++
	seq := w.fetchSeq
	w.mu.Unlock()

	features, err := w.geocoder.Forward(w.ctx, query)
	if err != nil {
		// Lookup failures are swallowed: suggestions stay as they are and
		// the user sees no error.
		w.log.Debug("geocode lookup failed",
			zap.String("query", query), zap.Error(err))
		return
	}

	w.mu.Lock()
	if w.closed || seq != w.fetchSeq {
		w.mu.Unlock()
		w.log.Debug("discarding stale lookup result", zap.String("query", query))
		return
	}
	wasOpen := w.dropdownOpen
	w.suggestions = features
	w.highlighted = -1
	w.dropdownOpen = true
	list := w.list
	w.mu.Unlock()

	if !wasOpen && list != nil {
		list.Focus()
	}
}

// KeyDown handles a keyboard event while the input or the list holds focus.
func (w *Widget) KeyDown(key Key) {
	switch key {
	case KeyArrowDown:
		w.moveHighlight(1)
	case KeyArrowUp:
		w.moveHighlight(-1)
	case KeyEnter:
		w.selectHighlighted()
	case KeyEscape:
		w.mu.Lock()
		w.dropdownOpen = false
		w.highlighted = -1
		w.mu.Unlock()
	}
}

// moveHighlight cycles the highlight circularly through the suggestions:
// past the last index wraps to 0, before index 0 wraps to the last index.
func (w *Widget) moveHighlight(delta int) {
	w.mu.Lock()
	if w.closed || !w.dropdownOpen || len(w.suggestions) == 0 {
		w.mu.Unlock()
		return
	}
	count := len(w.suggestions)

	next := 0
	switch {
	case w.highlighted < 0 && delta > 0:
		next = 0
	case w.highlighted < 0 && delta < 0:
		next = count - 1
	default:
		next = (w.highlighted + delta + count) % count
	}
	w.highlighted = next
	list := w.list
	w.mu.Unlock()

	if list != nil {
		list.ScrollIntoView(next)
	}
}

func (w *Widget) selectHighlighted() {
	w.mu.Lock()
	if w.closed || !w.dropdownOpen || len(w.suggestions) == 0 {
		w.mu.Unlock()
		return
	}
	index := w.highlighted
	if index < 0 {
		// Enter with no highlight picks the first suggestion.
		index = 0
	}
	w.mu.Unlock()

	w.ClickSuggestion(index)
}

// ClickSuggestion selects the suggestion at index, regardless of highlight
// state. Selection is terminal for the interaction: it moves the camera to
// the place at the fixed selection zoom, places the marker, echoes the
// display name into the input, closes the dropdown and blurs the input.
func (w *Widget) ClickSuggestion(index int) {
	w.mu.Lock()
	if w.closed || index < 0 || index >= len(w.suggestions) {
		w.mu.Unlock()
		return
	}
	feature := w.suggestions[index]

	w.viewport.Longitude = feature.Center.Longitude
	w.viewport.Latitude = feature.Center.Latitude
	w.viewport.Zoom = SelectionZoom

	center := feature.Center
	w.marker = &center

	w.query = feature.DisplayName
	w.dropdownOpen = false
	w.highlighted = -1

	// A pending or in-flight lookup from earlier keystrokes must not reopen
	// the dropdown after selection.
	w.fetchSeq++

	viewport := w.viewport
	mapView, input := w.mapView, w.input
	w.mu.Unlock()

	w.debounce.Cancel()

	if mapView != nil {
		mapView.SetViewport(viewport)
		mapView.SetMarker(center)
	}
	if input != nil {
		input.SetText(feature.DisplayName)
		input.Blur()
	}

	w.log.Debug("place selected",
		zap.String("id", feature.ID),
		zap.String("name", feature.DisplayName),
		zap.Float64("lon", center.Longitude),
		zap.Float64("lat", center.Latitude))
}

// ClickOutside closes the dropdown without selecting anything.
func (w *Widget) ClickOutside() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropdownOpen = false
	w.highlighted = -1
}

// MapMoved handles a user-driven pan/zoom/rotate reported by the map view.
// The emitted viewport replaces the current one wholesale and becomes the new
// source of truth.
func (w *Widget) MapMoved(v maps.Viewport) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.viewport = v
}

// State returns a snapshot of the suggestion UI.
func (w *Widget) State() SearchState {
	w.mu.Lock()
	defer w.mu.Unlock()

	suggestions := make([]geocoder.Feature, len(w.suggestions))
	copy(suggestions, w.suggestions)

	return SearchState{
		Query:            w.query,
		Suggestions:      suggestions,
		HighlightedIndex: w.highlighted,
		DropdownOpen:     w.dropdownOpen,
	}
}

// Viewport returns the current camera state.
func (w *Widget) Viewport() maps.Viewport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewport
}

// Marker returns the marker position and whether a marker is set. There is
// never more than one marker; once set it is only ever replaced.
func (w *Widget) Marker() (maps.Point, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.marker == nil {
		return maps.Point{}, false
	}
	return *w.marker, true
}

// Close tears the widget down: the pending debounce timer is released,
// in-flight lookups are cancelled and every further event is ignored.
func (w *Widget) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.debounce.Close()
	w.cancel()
}
