// Package places is a Google Maps Web Service client covering place
// details, place search and geocoding. Lookups are memoised for the
// lifetime of the client, so repeated resolution of the same church
// costs one API call.
package places
