// Package main provides windwordsctl, the CLI for the windwords sermon
// harvester.
//
// windwords collects sermon videos from registered YouTube channels,
// extracts the Bible scripture references spoken in their captions, and
// cross-links the sermons with their channels and churches in MongoDB.
//
// # Architecture
//
// The harvester is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/populate: Harvest runs over registered channels
//   - pkg/handlers: Document construction and cross-linking
//   - pkg/scripture: Scripture reference extraction
//   - pkg/youtube: Channel, video and caption retrieval
//   - pkg/places: Google Maps Places and Geocoding client
//   - pkg/srt: Caption format conversion and parsing
//   - pkg/store: MongoDB document storage
//   - pkg/model: Document models and enumerations
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Register a channel and its church
//	windwordsctl channel add https://www.youtube.com/@example --place-id <place-id>
//
//	# Harvest recent sermons from every registered channel
//	windwordsctl populate
//
//	# Start the API server
//	windwordsctl server
//
// # Environment Variables
//
//   - MONGO_USERNAME: Database username
//   - MONGO_PASSWORD: Database password
//   - MONGO_CLUSTER: Atlas cluster name
//   - GOOGLE_MAPS_API_KEY: Key for Places and Geocoding requests
//   - WINDWORDS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - WINDWORDS_PORT: Server port (default: 8000)
package main
