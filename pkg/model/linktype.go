package model

//go:generate go run github.com/dmarkham/enumer -type LinkType -trimprefix LinkType -transform snake -output linktype.gen.go

// LinkType describes the cardinality of a link field between documents.
type LinkType int

const (
	// LinkTypeToOne stores a single object id under the link field ($set).
	LinkTypeToOne LinkType = iota
	// LinkTypeToMany stores a set of object ids under the link field ($addToSet).
	LinkTypeToMany
)
