package widget

import (
	"context"

	"github.com/geoglue/mapsearch/pkg/geocoder"
)

// Geocoder resolves free-text input into candidate places.
type Geocoder interface {
	Forward(ctx context.Context, query string) ([]geocoder.Feature, error)
}

// ListView receives render effects for the suggestion dropdown. Focus is
// requested whenever the dropdown opens; ScrollIntoView follows every
// highlight change so the highlighted row stays visible (nearest edge).
type ListView interface {
	Focus()
	ScrollIntoView(index int)
}

// InputView receives render effects for the text input. SetText echoes the
// selected display name back into the input; Blur removes keyboard focus
// after a selection.
type InputView interface {
	SetText(text string)
	Blur()
}

// Key is a keyboard event routed to the widget while the search input or the
// suggestion list holds focus.
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowUp
	KeyEnter
	KeyEscape
)

// DropdownState is the finite state of the suggestion dropdown.
type DropdownState int

const (
	DropdownClosed DropdownState = iota
	DropdownOpenEmpty
	DropdownOpenWithResults
)

// SearchState is a point-in-time snapshot of the suggestion UI.
// HighlightedIndex is -1 (no highlight) or a valid index into Suggestions;
// it resets to -1 whenever Suggestions is replaced.
type SearchState struct {
	Query            string
	Suggestions      []geocoder.Feature
	HighlightedIndex int
	DropdownOpen     bool
}

// Dropdown reduces the snapshot to its dropdown state.
func (s SearchState) Dropdown() DropdownState {
	switch {
	case !s.DropdownOpen:
		return DropdownClosed
	case len(s.Suggestions) == 0:
		return DropdownOpenEmpty
	default:
		return DropdownOpenWithResults
	}
}
