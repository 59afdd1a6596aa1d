package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Location is a GeoJSON point with the raw coordinates kept alongside for
// convenience in queries and API responses.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
	Latitude    float64   `bson:"latitude" json:"latitude"`
	Longitude   float64   `bson:"longitude" json:"longitude"`
}

// NewLocation builds a GeoJSON point. GeoJSON orders coordinates longitude
// first.
func NewLocation(latitude, longitude float64) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
		Latitude:    latitude,
		Longitude:   longitude,
	}
}

// Church represents a physical church in the churches collection.
type Church struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GPID         string             `bson:"gpid" json:"gpid"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Postcode     string             `bson:"postcode,omitempty" json:"postcode,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	MapsURL      string             `bson:"maps_url,omitempty" json:"maps_url,omitempty"`
	Location     Location           `bson:"location" json:"location"`
	Denomination string             `bson:"denomination,omitempty" json:"denomination,omitempty"`
	Link         Links              `bson:"link,omitempty" json:"link,omitempty"`
	Metadata     Metadata           `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
