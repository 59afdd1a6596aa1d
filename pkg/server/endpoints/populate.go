package endpoints

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/windwords/windwords/pkg/server"
)

// PopulateRequest is the optional body accepted by POST /populate.
// With a channel url only that channel is harvested; weeks overrides
// the configured trailing upload window for this run.
type PopulateRequest struct {
	ChannelURL string `json:"channel_url,omitempty"`
	Weeks      int    `json:"weeks,omitempty"`
}

// PopulateResponse acknowledges a harvest run.
type PopulateResponse struct {
	Status string `json:"status"`
}

// RegisterPopulateEndpoints registers the harvest trigger endpoint
func RegisterPopulateEndpoints(s *server.Server) {
	s.Router.HandleFunc("/populate", handlePopulate(s)).Methods("POST")
}

// handlePopulate kicks off a harvest run in the background. The run
// outlives the request, so it gets its own context.
func handlePopulate(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request PopulateRequest
		if err := decodeJSON(r, &request); err != nil && err != io.EOF {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		service := s.Populate.WithWindow(time.Duration(request.Weeks) * 7 * 24 * time.Hour)

		go func() {
			ctx := context.Background()
			var err error
			if request.ChannelURL != "" {
				err = service.PopulateChannel(ctx, request.ChannelURL)
			} else {
				err = service.PopulateSermons(ctx)
			}
			if err != nil {
				s.Logger.Error("populate run failed", zap.Error(err))
			}
		}()

		writeJSON(w, http.StatusAccepted, PopulateResponse{Status: "accepted"})
	}
}
