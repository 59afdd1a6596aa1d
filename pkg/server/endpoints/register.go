package endpoints

import (
	"github.com/windwords/windwords/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterChannelsEndpoints(srv)
	RegisterChurchesEndpoints(srv)
	RegisterSermonsEndpoints(srv)
	RegisterScripturesEndpoints(srv)
	RegisterPopulateEndpoints(srv)
}
