package endpoints

import (
	"errors"
	"net/http"

	"github.com/windwords/windwords/pkg/scripture"
	"github.com/windwords/windwords/pkg/server"
)

// ExtractScripturesRequest is the body accepted by POST
// /scriptures/extract.
type ExtractScripturesRequest struct {
	Text string `json:"text"`
}

// ExtractScripturesResponse lists the references found in the text.
type ExtractScripturesResponse struct {
	Scriptures []string `json:"scriptures"`
}

// RegisterScripturesEndpoints registers the scripture extraction
// endpoint
func RegisterScripturesEndpoints(s *server.Server) {
	bible := scripture.New()
	s.Router.HandleFunc("/scriptures/extract", handleExtractScriptures(bible)).Methods("POST")
}

func handleExtractScriptures(bible *scripture.Bible) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ExtractScripturesRequest
		if err := decodeJSON(r, &request); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if request.Text == "" {
			writeError(w, http.StatusBadRequest, errors.New("text is required"))
			return
		}

		scriptures := scripture.Strings(bible.Extract(request.Text))
		writeJSON(w, http.StatusOK, ExtractScripturesResponse{Scriptures: scriptures})
	}
}
