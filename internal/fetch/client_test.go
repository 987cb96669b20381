package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestClient_GetAndPostJSON(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/items":
			if r.URL.Query().Get("limit") != "3" {
				http.Error(w, "bad limit", http.StatusBadRequest)
				return
			}
			_, _ = w.Write([]byte(`{"results":[1,2,3]}`))
		case "/echo":
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"reply":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	endpoint, err := WithQuery(server.URL+"/items", "limit", 3)
	if err != nil {
		t.Fatalf("WithQuery returned error: %v", err)
	}
	var list struct {
		Results []int `json:"results"`
	}
	if err := c.GetJSON(ctx, endpoint, &list); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if len(list.Results) != 3 {
		t.Fatalf("GetJSON results = %v, want 3 entries", list.Results)
	}

	var reply struct {
		Reply string `json:"reply"`
	}
	if err := c.PostJSON(ctx, server.URL+"/echo", map[string]string{"message": "hi"}, &reply); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}
	if reply.Reply != "ok" || gotBody["message"] != "hi" {
		t.Fatalf("PostJSON reply = %q body = %v, want ok/hi", reply.Reply, gotBody)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if !strings.HasPrefix(gotUserAgent, "missionctl/") {
		t.Fatalf("User-Agent = %q, want missionctl/*", gotUserAgent)
	}
}

func TestClient_ClassifiesFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/garbage":
			_, _ = w.Write([]byte("{not-json"))
		case "/boom":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}
	}))
	t.Cleanup(server.Close)

	c := NewClient()
	var dest map[string]any

	err := c.GetJSON(context.Background(), server.URL+"/garbage", &dest)
	if got := Classify(err); got != KindParse {
		t.Fatalf("Classify(garbage) = %v, want %v (err %v)", got, KindParse, err)
	}

	err = c.GetJSON(context.Background(), server.URL+"/boom", &dest)
	if got := Classify(err); got != KindStatus {
		t.Fatalf("Classify(boom) = %v, want %v (err %v)", got, KindStatus, err)
	}
	if !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("error = %q, want it to mention status 500", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = c.GetJSON(ctx, server.URL+"/slow", &dest)
	if got := Classify(err); got != KindTimeout {
		t.Fatalf("Classify(slow) = %v, want %v (err %v)", got, KindTimeout, err)
	}

	err = c.GetJSON(context.Background(), "http://127.0.0.1:1/unreachable", &dest)
	if got := Classify(err); got != KindTransport {
		t.Fatalf("Classify(unreachable) = %v, want %v (err %v)", got, KindTransport, err)
	}
}

func TestClient_LimiterRejectsWithoutBlocking(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c := NewClient(WithLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))
	var dest map[string]any

	if err := c.GetJSON(context.Background(), server.URL, &dest); err != nil {
		t.Fatalf("first GetJSON returned error: %v", err)
	}
	err := c.GetJSON(context.Background(), server.URL, &dest)
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("second GetJSON error = %v, want ErrRateLimited", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hits = %d, want 1", got)
	}
}

func TestResultConstructors(t *testing.T) {
	ok := OK(42)
	if !ok.OK() || ok.Value != 42 {
		t.Fatalf("OK(42) = %#v, want usable 42", ok)
	}

	failed := Fail[int](errors.New("dial tcp: connection refused"))
	if failed.OK() || failed.Kind != KindTransport {
		t.Fatalf("Fail kind = %v, want %v", failed.Kind, KindTransport)
	}

	empty := Empty[[]string]("no future launch")
	if empty.OK() || empty.Kind != KindEmpty || !errors.Is(empty.Err, ErrEmpty) {
		t.Fatalf("Empty = %#v, want KindEmpty wrapping ErrEmpty", empty)
	}

	if got := Fail[int](nil); got.OK() {
		t.Fatalf("Fail(nil) reported OK")
	}
}

func TestWithQuery_InvalidURL(t *testing.T) {
	if _, err := WithQuery("://bad", "limit", 1); err == nil {
		t.Fatalf("WithQuery returned nil error, want parse error")
	}
}
