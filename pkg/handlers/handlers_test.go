package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/windwords/windwords/pkg/handlers"
	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/places"
	"github.com/windwords/windwords/pkg/store/storetest"
	"github.com/windwords/windwords/pkg/youtube"
)

func channelDocument() *handlers.ChannelDocument {
	return handlers.NewChannelDocument(&youtube.Channel{
		ID:   "UCdeadbeef",
		URL:  "https://www.youtube.com/channel/UCdeadbeef",
		Name: "Grace Community Church",
		Host: "www.youtube.com",
	})
}

func churchDocument(t *testing.T) *handlers.ChurchDocument {
	t.Helper()
	doc, err := handlers.NewChurchDocument(&places.Place{
		PlaceID: "place-1",
		Name:    "Grace Community Church",
		Types:   []string{"church", "place_of_worship"},
	})
	require.NoError(t, err)
	return doc
}

func TestPrune(t *testing.T) {
	pruned := handlers.Prune(bson.M{
		"name":     "Grace Community Church",
		"website":  "",
		"phone":    nil,
		"captions": []string{},
		"srt":      bson.M{},
		"nested":   bson.M{"empty": "", "kept": "value"},
		"duration": 0,
	})

	assert.Equal(t, bson.M{
		"name":     "Grace Community Church",
		"nested":   bson.M{"kept": "value"},
		"duration": 0,
	}, pruned)
}

func TestInsertAndExists(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	doc := channelDocument()

	exists, err := handlers.Exists(ctx, s, doc)
	require.NoError(t, err)
	assert.False(t, exists)

	id, err := handlers.Insert(ctx, s, doc)
	require.NoError(t, err)
	assert.False(t, id.IsZero())

	exists, err = handlers.Exists(ctx, s, doc)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = handlers.Insert(ctx, s, doc)
	assert.ErrorIs(t, err, handlers.ErrAlreadyExists)
}

func TestInsertStampsMetadata(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()

	_, err := handlers.Insert(ctx, s, channelDocument())
	require.NoError(t, err)

	stored, err := handlers.Find(ctx, s, channelDocument())
	require.NoError(t, err)
	metadata, ok := stored["metadata"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, model.Version, metadata["inserted_version"])
	assert.NotEmpty(t, metadata["inserted_date"])
}

func TestLinkToOneAndToMany(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	channel := channelDocument()
	church := churchDocument(t)

	_, err := handlers.Insert(ctx, s, channel)
	require.NoError(t, err)
	_, err = handlers.Insert(ctx, s, church)
	require.NoError(t, err)

	// channel -> church is to-one
	linked, err := handlers.IsLinked(ctx, s, channel, church)
	require.NoError(t, err)
	assert.False(t, linked)

	require.NoError(t, handlers.Link(ctx, s, channel, church))
	linked, err = handlers.IsLinked(ctx, s, channel, church)
	require.NoError(t, err)
	assert.True(t, linked)

	churchID, err := handlers.ObjectID(ctx, s, church)
	require.NoError(t, err)
	ids, err := handlers.LinkedIDs(ctx, s, channel, "church")
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{churchID}, ids)

	// church -> channel is to-many; relinking must not duplicate
	require.NoError(t, handlers.Link(ctx, s, church, channel))
	require.NoError(t, handlers.Link(ctx, s, church, channel))
	ids, err = handlers.LinkedIDs(ctx, s, church, "channels")
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestLinkRequiresInsertedDocuments(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	channel := channelDocument()
	church := churchDocument(t)

	assert.Error(t, handlers.Link(ctx, s, channel, church))
}

func TestLinkUnrelatedKindsFails(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	sermon := handlers.NewVideoDocument(&youtube.Video{ID: "video-1"}, nil, nil, nil)
	other := handlers.NewVideoDocument(&youtube.Video{ID: "video-2"}, nil, nil, nil)

	err := handlers.Link(ctx, s, sermon, other)
	assert.ErrorIs(t, err, handlers.ErrNotLinkable)
}

func TestResolveDenominationFromText(t *testing.T) {
	testCases := []struct {
		text     string
		expected string
	}{
		{"Grace Baptist Church", "Baptist"},
		{"st peter's catholic cathedral", "Catholic"},
		{"Baptist fellowship of the Presbyterian Baptist tradition", "Baptist"},
		{"Grace Community Church", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.expected, handlers.ResolveDenominationFromText(tc.text))
		})
	}
}

func TestResolveDenominationFromWebsite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Welcome</title>`+
			`<style>body { color: red }</style></head>`+
			`<body><p>We are a Pentecostal congregation.</p>`+
			`<script>var pentecostalTracker = 1;</script></body></html>`)
	}))
	defer server.Close()

	denomination, err := handlers.ResolveDenominationFromWebsite(
		context.Background(), server.Client(), server.URL,
	)
	require.NoError(t, err)
	assert.Equal(t, "Pentecostal", denomination)
}

func TestChurchSecondaryDataFallsBackToWebsite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>A Methodist congregation</body></html>`)
	}))
	defer server.Close()

	doc, err := handlers.NewChurchDocument(&places.Place{
		PlaceID: "place-1",
		Name:    "Grace Community Church",
		Website: server.URL,
		Types:   []string{"church"},
	})
	require.NoError(t, err)
	doc.HTTPClient = server.Client()

	secondary, err := doc.SecondaryData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Methodist", secondary["denomination"])
}

func TestNewChurchDocumentRejectsNonChurches(t *testing.T) {
	_, err := handlers.NewChurchDocument(&places.Place{
		PlaceID: "place-1",
		Name:    "Grace Cafe",
		Types:   []string{"cafe", "food"},
	})
	assert.ErrorIs(t, err, handlers.ErrNotChurch)
}
