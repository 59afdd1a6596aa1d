package endpoints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/handlers"
	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/server"
	"github.com/windwords/windwords/pkg/store"
)

// RegisterChannelRequest is the body accepted by POST /channels. When
// a place ID is given the church is registered and linked as well.
type RegisterChannelRequest struct {
	ChannelURL string `json:"channel_url"`
	PlaceID    string `json:"place_id,omitempty"`
}

// RegisterChannelsEndpoints registers the channel endpoints
func RegisterChannelsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/channels", handleListDocuments(s.Store, model.CollectionChannels)).Methods("GET")
	s.Router.HandleFunc("/channels/{id}", handleGetDocument(s.Store, model.CollectionChannels)).Methods("GET")
	s.Router.HandleFunc("/channels", handleRegisterChannel(s)).Methods("POST")
}

func handleRegisterChannel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request RegisterChannelRequest
		if err := decodeJSON(r, &request); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if request.ChannelURL == "" {
			writeError(w, http.StatusBadRequest, errors.New("channel_url is required"))
			return
		}

		ctx := r.Context()
		var channel *handlers.ChannelDocument
		var err error
		if request.PlaceID != "" {
			channel, err = s.Populate.InsertChannelAndChurch(ctx, request.ChannelURL, request.PlaceID)
		} else {
			channel, err = s.Populate.InsertChannel(ctx, request.ChannelURL)
		}
		if err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		document, err := handlers.Find(ctx, s.Store, channel)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, stringify(document))
	}
}

// CountResponse is returned for list requests with count=true.
type CountResponse struct {
	Count int64 `json:"count"`
}

// handleListDocuments returns the documents in the collection,
// honouring the limit, skip and count=true query parameters.
func handleListDocuments(s store.Store, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("count") == "true" {
			count, err := s.CountDocuments(r.Context(), collection, listQuery(r))
			if err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusOK, CountResponse{Count: count})
			return
		}

		documents, err := s.FindDocuments(r.Context(), collection, listQuery(r), listOptions(r))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		out := make([]bson.M, 0, len(documents))
		for _, document := range documents {
			out = append(out, stringify(document))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetDocument(s store.Store, collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		document, err := handlers.FindByHexID(r.Context(), s, collection, id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, stringify(document))
	}
}
