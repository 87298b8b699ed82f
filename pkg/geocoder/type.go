package geocoder

import "github.com/geoglue/mapsearch/pkg/maps"

// Feature is one candidate place from a geocoding response. Fields are
// carried verbatim from the remote API; a result set is always replaced
// wholesale, never merged.
type Feature struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	Center      maps.Point `json:"center"`
}

type geocodingResponse struct {
	Features []struct {
		ID        string    `json:"id"`
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

func (r geocodingResponse) toFeatures() []Feature {
	features := make([]Feature, 0, len(r.Features))
	for _, f := range r.Features {
		if len(f.Center) != 2 {
			continue
		}
		features = append(features, Feature{
			ID:          f.ID,
			DisplayName: f.PlaceName,
			Center: maps.Point{
				Longitude: f.Center[0],
				Latitude:  f.Center[1],
			},
		})
	}
	return features
}
