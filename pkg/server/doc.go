// Package server provides the HTTP server for the windwords API.
//
// This package implements the HTTP server that exposes the harvested
// channels, churches and sermons over REST. It uses gorilla/mux for
// routing and gorilla/handlers for request logging.
//
// # Server Setup
//
//	srv := server.NewServer(store, service, logger, host, port)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the standard windwords endpoints including:
//
//   - / - Status page
//   - /channels - Channel listing and registration
//   - /churches - Church listing and registration
//   - /sermons - Sermon listing
//   - /scriptures/extract - Scripture reference extraction
//   - /populate - Trigger a harvest run
package server
