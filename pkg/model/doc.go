// Package model defines the database documents for windwords.
//
// Documents map to collections in the windwords MongoDB database:
//
//   - Channel: a YouTube channel that publishes sermons
//   - Church: a physical church resolved through the Google Places API
//   - Sermon: a captioned sermon video with extracted scripture references
//
// Every inserted document carries a Metadata block recording when, by whom
// and at which version it was written. Documents reference each other
// through the "link" sub-document; LinkType describes whether a link field
// holds a single object id or a set of them.
package model
