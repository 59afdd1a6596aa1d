package model

// DefaultDatabase is the database name used unless configuration overrides it.
const DefaultDatabase = "windwords_db"

// Collection names within the windwords database.
const (
	CollectionBooks         = "books"
	CollectionChannels      = "channels"
	CollectionChurches      = "churches"
	CollectionDenominations = "denominations"
	CollectionResources     = "resources"
	CollectionSermons       = "sermons"
)

// Collections lists every collection, in the order used when scanning the
// whole database for an object id.
func Collections() []string {
	return []string{
		CollectionBooks,
		CollectionChannels,
		CollectionChurches,
		CollectionDenominations,
		CollectionResources,
		CollectionSermons,
	}
}
