package model

// Links holds the "link" sub-document of a stored document. Values are a
// single object id for to-one fields or a slice of object ids for to-many
// fields.
type Links map[string]interface{}
