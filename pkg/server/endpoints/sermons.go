package endpoints

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/server"
	"github.com/windwords/windwords/pkg/youtube"
)

// AddSermonRequest is the body accepted by POST /sermons. Either a
// video url or a bare video id may be given.
type AddSermonRequest struct {
	URL     string `json:"url,omitempty"`
	VideoID string `json:"video_id,omitempty"`
	Force   bool   `json:"force,omitempty"`
}

// RegisterSermonsEndpoints registers the sermon endpoints
func RegisterSermonsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/sermons", handleListDocuments(s.Store, model.CollectionSermons)).Methods("GET")
	s.Router.HandleFunc("/sermons/{id}", handleGetDocument(s.Store, model.CollectionSermons)).Methods("GET")
	s.Router.HandleFunc("/sermons", handleAddSermon(s)).Methods("POST")
}

func handleAddSermon(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request AddSermonRequest
		if err := decodeJSON(r, &request); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		videoID := request.VideoID
		if videoID == "" {
			videoID = youtube.VideoID(request.URL)
		}
		if videoID == "" {
			writeError(w, http.StatusBadRequest, errors.New("url or video_id is required"))
			return
		}

		ctx := r.Context()
		video, err := s.Populate.Video(ctx, videoID)
		if err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		if !request.Force {
			sermon, err := s.Populate.IsVideoSermon(ctx, video)
			if err != nil {
				writeError(w, http.StatusBadGateway, err)
				return
			}
			if !sermon {
				writeError(w, http.StatusUnprocessableEntity, errors.New("video does not qualify as a sermon"))
				return
			}
		}

		if err := s.Populate.InsertVideoSermon(ctx, video); err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}

		document, err := s.Store.FindDocument(ctx, model.CollectionSermons, bson.M{"video_id": videoID})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusCreated, stringify(document))
	}
}
