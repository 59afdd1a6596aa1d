package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/places"
)

// ErrNotChurch is returned when a Google Place is not listed as a
// church or place of worship.
var ErrNotChurch = errors.New("handlers: place is not a church or place of worship")

// ChurchDocument maps a Google Place onto the churches collection.
type ChurchDocument struct {
	Place *places.Place

	// HTTPClient fetches the church website during denomination
	// resolution. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	address string
}

// NewChurchDocument wraps a place, rejecting places that are not
// churches or places of worship.
func NewChurchDocument(place *places.Place) (*ChurchDocument, error) {
	accepted := false
	for _, t := range place.Types {
		if t == "church" || t == "place_of_worship" {
			accepted = true
			break
		}
	}
	if !accepted {
		return nil, ErrNotChurch
	}
	return &ChurchDocument{Place: place, address: place.FormattedAddress}, nil
}

// ChurchFromPlaceID resolves a Google Place id into a church document,
// reverse geocoding an address when the place record carries none.
func ChurchFromPlaceID(ctx context.Context, maps *places.Client, placeID string) (*ChurchDocument, error) {
	place, err := maps.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, err
	}
	doc, err := NewChurchDocument(place)
	if err != nil {
		return nil, err
	}
	if doc.address == "" {
		location := place.Geometry.Location
		results, err := maps.ReverseGeocode(ctx, location.Lat, location.Lng)
		if err != nil {
			return nil, err
		}
		for _, result := range results {
			if result.FormattedAddress != "" {
				doc.address = result.FormattedAddress
				break
			}
		}
	}
	return doc, nil
}

func (d *ChurchDocument) Kind() string { return KindChurch }

func (d *ChurchDocument) Collection() string { return model.CollectionChurches }

func (d *ChurchDocument) PrimaryData() bson.M {
	location := d.Place.Geometry.Location
	return bson.M{
		"address":  d.address,
		"country":  d.Place.Component("country"),
		"gpid":     d.Place.PlaceID,
		"location": model.NewLocation(location.Lat, location.Lng),
		"maps_url": d.Place.URL,
		"name":     d.Place.Name,
		"phone":    d.Place.PhoneNumber,
		"postcode": d.Place.Component("postal_code"),
		"website":  d.Place.Website,
	}
}

// SecondaryData resolves the church's denomination from its name, with
// the website text as a fallback. Website failures only cost the
// fallback.
func (d *ChurchDocument) SecondaryData(ctx context.Context) (bson.M, error) {
	denomination := ResolveDenominationFromText(d.Place.Name)
	if denomination == "" && d.Place.Website != "" {
		client := d.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}
		if resolved, err := ResolveDenominationFromWebsite(ctx, client, d.Place.Website); err == nil {
			denomination = resolved
		}
	}
	return bson.M{"denomination": denomination}, nil
}

func (d *ChurchDocument) LinkSchema() map[string]LinkRule {
	return churchLinkSchema()
}
