package model

import "time"

// Version is stamped into document metadata on every write.
const Version = "0.1.0"

// Metadata records when and by whom a document was written.
type Metadata struct {
	InsertedDate     time.Time `bson:"inserted_date,omitempty" json:"inserted_date,omitempty"`
	InsertedUsername string    `bson:"inserted_username,omitempty" json:"inserted_username,omitempty"`
	InsertedVersion  string    `bson:"inserted_version,omitempty" json:"inserted_version,omitempty"`
	ModifiedDate     time.Time `bson:"modified_date,omitempty" json:"modified_date,omitempty"`
	ModifiedUsername string    `bson:"modified_username,omitempty" json:"modified_username,omitempty"`
	ModifiedVersion  string    `bson:"modified_version,omitempty" json:"modified_version,omitempty"`
}
