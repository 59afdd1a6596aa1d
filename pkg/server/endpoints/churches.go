package endpoints

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/server"
)

// RegisterChurchRequest is the body accepted by POST /churches.
type RegisterChurchRequest struct {
	PlaceID string `json:"place_id"`
}

// RegisterChurchesEndpoints registers the church endpoints
func RegisterChurchesEndpoints(s *server.Server) {
	s.Router.HandleFunc("/churches", handleListDocuments(s.Store, model.CollectionChurches)).Methods("GET")
	s.Router.HandleFunc("/churches/{id}", handleGetDocument(s.Store, model.CollectionChurches)).Methods("GET")
	s.Router.HandleFunc("/churches", handleRegisterChurch(s)).Methods("POST")
}

func handleRegisterChurch(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request RegisterChurchRequest
		if err := decodeJSON(r, &request); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if request.PlaceID == "" {
			writeError(w, http.StatusBadRequest, errors.New("place_id is required"))
			return
		}

		ctx := r.Context()
		if _, err := s.Populate.InsertChurch(ctx, request.PlaceID); err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		document, err := s.Store.FindDocument(ctx, model.CollectionChurches, bson.M{"gpid": request.PlaceID})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, stringify(document))
	}
}
