package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/server"
	"github.com/windwords/windwords/pkg/store"
)

// StatusResponse represents the JSON response from /
type StatusResponse struct {
	Status   string           `json:"status"`
	Version  string           `json:"version"`
	Database map[string]int64 `json:"database"`
}

// RegisterStatusEndpoints registers the status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus(s.Store)).Methods("GET")
}

func handleStatus(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts := map[string]int64{}
		for _, collection := range []string{
			model.CollectionChannels,
			model.CollectionChurches,
			model.CollectionSermons,
		} {
			count, err := store.CountCollection(r.Context(), s, collection)
			if err != nil {
				writeError(w, http.StatusServiceUnavailable, err)
				return
			}
			counts[collection] = count
		}

		// JSON via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			writeJSON(w, http.StatusOK, StatusResponse{
				Status:   "ok",
				Version:  model.Version,
				Database: counts,
			})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <title>windwords Status</title>
  </head>
  <body>
    <main>
      <h1>Status</h1>
      <p>Your windwords server is running!</p>
      <dl>
        <dt>Version</dt>
        <dd>` + model.Version + `</dd>
        <dt>Channels</dt>
        <dd>` + fmt.Sprint(counts[model.CollectionChannels]) + `</dd>
        <dt>Churches</dt>
        <dd>` + fmt.Sprint(counts[model.CollectionChurches]) + `</dd>
        <dt>Sermons</dt>
        <dd>` + fmt.Sprint(counts[model.CollectionSermons]) + `</dd>
      </dl>
    </main>
  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
