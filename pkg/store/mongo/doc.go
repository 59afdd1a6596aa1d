// Package mongo implements store.Store against a MongoDB Atlas cluster.
//
// Connections are built from the MONGO_USERNAME, MONGO_PASSWORD and
// MONGO_CLUSTER credentials as an SRV connection string. Every insert and
// update stamps the document metadata with the acting username and the
// running version.
package mongo
