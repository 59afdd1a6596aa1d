package places

import (
	"context"
	"fmt"
	"net/url"
)

// Place is a Google Place or geocoding result. Search and geocode
// responses populate a subset of these fields; PlaceDetails fills in
// the rest.
type Place struct {
	PlaceID           string             `json:"place_id"`
	Name              string             `json:"name"`
	URL               string             `json:"url"`
	FormattedAddress  string             `json:"formatted_address"`
	Website           string             `json:"website"`
	PhoneNumber       string             `json:"international_phone_number"`
	Types             []string           `json:"types"`
	AddressComponents []AddressComponent `json:"address_components"`
	Geometry          struct {
		Location LatLng `json:"location"`
	} `json:"geometry"`
}

// AddressComponent is one part of a place's address, tagged with its
// component types ("locality", "country", ...).
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Component returns the long name of the first address component
// tagged with the given type, or "".
func (p *Place) Component(componentType string) string {
	for _, component := range p.AddressComponents {
		for _, t := range component.Types {
			if t == componentType {
				return component.LongName
			}
		}
	}
	return ""
}

// PlaceDetails fetches the full record for a place id.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*Place, error) {
	v, err := c.cached("place:"+placeID, func() (interface{}, error) {
		params := url.Values{"place_id": {placeID}}
		payload, err := c.get(ctx, "/maps/api/place/details/json", params)
		if err != nil {
			return nil, err
		}
		if payload.Result == nil {
			return nil, fmt.Errorf("places: no result for place id %s", placeID)
		}
		return payload.Result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Place), nil
}

// FindPlaceIDs resolves a free-text query (a name, address or phone
// number) to candidate place ids.
func (c *Client) FindPlaceIDs(ctx context.Context, query string) ([]string, error) {
	v, err := c.cached("find:"+query, func() (interface{}, error) {
		params := url.Values{
			"input":     {query},
			"inputtype": {"textquery"},
			"fields":    {"place_id"},
		}
		payload, err := c.get(ctx, "/maps/api/place/findplacefromtext/json", params)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(payload.Candidates))
		for _, candidate := range payload.Candidates {
			if candidate.PlaceID != "" {
				ids = append(ids, candidate.PlaceID)
			}
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// FindPlaces resolves a free-text query to full place records.
func (c *Client) FindPlaces(ctx context.Context, query string) ([]*Place, error) {
	ids, err := c.FindPlaceIDs(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]*Place, 0, len(ids))
	for _, id := range ids {
		place, err := c.PlaceDetails(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, place)
	}
	return out, nil
}

// Geocode resolves an address to geocoding results.
func (c *Client) Geocode(ctx context.Context, address string) ([]Place, error) {
	v, err := c.cached("geocode:"+address, func() (interface{}, error) {
		payload, err := c.get(ctx, "/maps/api/geocode/json", url.Values{"address": {address}})
		if err != nil {
			return nil, err
		}
		return payload.Results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Place), nil
}

// ReverseGeocode resolves a coordinate pair to geocoding results.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) ([]Place, error) {
	latlng := fmt.Sprintf("%f,%f", lat, lng)
	v, err := c.cached("reverse:"+latlng, func() (interface{}, error) {
		payload, err := c.get(ctx, "/maps/api/geocode/json", url.Values{"latlng": {latlng}})
		if err != nil {
			return nil, err
		}
		return payload.Results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Place), nil
}
