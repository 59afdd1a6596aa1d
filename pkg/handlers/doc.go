// Package handlers maps harvested objects (YouTube channels and
// videos, Google Places) onto their database documents. Each document
// type declares identity fields, enrich-at-insert fields and the link
// schema describing how it cross-references other documents.
package handlers
