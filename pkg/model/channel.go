package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Channel represents a YouTube channel in the channels collection.
type Channel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ChannelID  string             `bson:"channel_id" json:"channel_id"`
	ChannelURL string             `bson:"channel_url" json:"channel_url"`
	Host       string             `bson:"host" json:"host"`
	Name       string             `bson:"name" json:"name"`
	Link       Links              `bson:"link,omitempty" json:"link,omitempty"`
	Metadata   Metadata           `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
