package model

import "go.mongodb.org/mongo-driver/bson"

// Decode converts a raw stored document into one of the typed document
// structs (Channel, Church, Sermon).
func Decode(document bson.M, out interface{}) error {
	data, err := bson.Marshal(document)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}
