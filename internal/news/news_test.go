package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/missionctl/internal/fetch"
)

func TestClient_LatestRequestsThreeArticles(t *testing.T) {
	t.Parallel()

	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 3, "results": [
			{"news_site": "SpaceNews", "title": "One", "url": "https://a.example/1", "image_url": "https://img.example/1.jpg"},
			{"news_site": "NASA", "title": "Two", "url": "https://a.example/2", "image_url": ""},
			{"news_site": "ESA", "title": "Three", "url": "https://a.example/3"}
		]}`))
	}))
	t.Cleanup(server.Close)

	result := NewClient(server.URL, nil, nil).Latest(context.Background(), 3)
	if !result.OK() {
		t.Fatalf("Latest failed: %v", result.Err)
	}
	if gotLimit != "3" {
		t.Fatalf("limit query = %q, want 3", gotLimit)
	}

	want := []Article{
		{Source: "SpaceNews", Title: "One", URL: "https://a.example/1", ImageURL: "https://img.example/1.jpg"},
		{Source: "NASA", Title: "Two", URL: "https://a.example/2"},
		{Source: "ESA", Title: "Three", URL: "https://a.example/3"},
	}
	if diff := cmp.Diff(want, result.Value); diff != "" {
		t.Fatalf("Latest mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_LatestFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garbage":
			_, _ = w.Write([]byte("<html>"))
		case "/noresults":
			_, _ = w.Write([]byte(`{"count": 0}`))
		default:
			http.Error(w, "down", http.StatusBadGateway)
		}
	}))
	t.Cleanup(server.Close)

	cases := map[string]fetch.Kind{
		"/garbage":   fetch.KindParse,
		"/noresults": fetch.KindEmpty,
		"/down":      fetch.KindStatus,
	}
	for path, want := range cases {
		got := NewClient(server.URL+path, nil, nil).Latest(context.Background(), 3)
		if got.OK() || got.Kind != want {
			t.Fatalf("Latest(%s) kind = %v, want %v", path, got.Kind, want)
		}
	}
}

func TestClient_LatestTrimsToLimit(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"title":"a"},{"title":"b"},{"title":"c"},{"title":"d"}]}`))
	}))
	t.Cleanup(server.Close)

	got := NewClient(server.URL, nil, nil).Latest(context.Background(), 3)
	if len(got.Value) != 3 {
		t.Fatalf("Latest returned %d articles, want 3", len(got.Value))
	}
}

func TestBuildPanel_Success(t *testing.T) {
	result := fetch.OK([]Article{
		{Source: "SpaceNews", Title: "One", URL: "https://a.example/1", ImageURL: "https://img.example/1.jpg"},
		{Source: "NASA", Title: "Two", URL: "https://a.example/2"},
	})

	got := BuildPanel(result)

	want := Panel{Cards: []Card{
		{Image: "https://img.example/1.jpg", Source: "SpaceNews", Title: "One", Link: "https://a.example/1", Label: ReadLabel},
		{Image: PlaceholderImage, Source: "NASA", Title: "Two", Link: "https://a.example/2", Label: ReadLabel},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildPanel mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPanel_FailureShowsOneNotice(t *testing.T) {
	got := BuildPanel(fetch.Fail[[]Article](errors.New("connection refused")))
	if len(got.Cards) != 0 {
		t.Fatalf("failure rendered %d cards, want 0", len(got.Cards))
	}
	if got.Notice != OfflineNotice {
		t.Fatalf("Notice = %q, want %q", got.Notice, OfflineNotice)
	}
}

func TestBuildPanel_EmptySuccessHasNoNotice(t *testing.T) {
	got := BuildPanel(fetch.OK([]Article{}))
	if len(got.Cards) != 0 || got.Notice != "" {
		t.Fatalf("BuildPanel(empty) = %#v, want no cards and no notice", got)
	}
}
