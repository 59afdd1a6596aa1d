package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/windwords/windwords/pkg/store"
)

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, into interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(into)
}

// listOptions builds query modifiers from the limit and skip query
// parameters. Unparseable values are ignored.
func listOptions(r *http.Request) *store.FindOptions {
	options := &store.FindOptions{
		Sort: []store.SortField{{Field: "_id"}},
	}
	if limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64); err == nil && limit > 0 {
		options.Limit = limit
	}
	if skip, err := strconv.ParseInt(r.URL.Query().Get("skip"), 10, 64); err == nil && skip > 0 {
		options.Skip = skip
	}
	return options
}

// listQuery builds a filter from the recognised query parameters.
// Parameters that don't apply to the collection simply match nothing.
func listQuery(r *http.Request) bson.M {
	query := bson.M{}
	for param, field := range map[string]string{
		"scripture":    "scriptures",
		"channel_id":   "channel_id",
		"video_id":     "video_id",
		"gpid":         "gpid",
		"denomination": "denomination",
	} {
		if value := r.URL.Query().Get(param); value != "" {
			query[field] = value
		}
	}
	return query
}

// stringify renders ObjectIDs as hex strings so the documents encode
// cleanly as JSON.
func stringify(doc bson.M) bson.M {
	out := bson.M{}
	for key, value := range doc {
		out[key] = stringifyValue(value)
	}
	return out
}

func stringifyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case interface{ Hex() string }:
		return v.Hex()
	case bson.M:
		return stringify(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = stringifyValue(item)
		}
		return out
	case primitive.A:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = stringifyValue(item)
		}
		return out
	default:
		return value
	}
}
