package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Response is a canned reply served by FakeAPI.
type Response struct {
	Status int
	Body   string
}

// Request records a call made against FakeAPI.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// FakeAPI is an in-process stand-in for the level catalogue service.
type FakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	levels   map[string]Response
	mark     Response
	requests []Request
	gate     chan struct{}
	arrivals chan string
}

// NewFakeAPI starts a server that answers every game with 404 until told
// otherwise. It is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		levels:   make(map[string]Response),
		mark:     Response{Status: http.StatusNoContent},
		arrivals: make(chan string, 64),
	}
	r := chi.NewRouter()
	r.Get("/{game}/random_level", f.randomLevel)
	r.Post("/smm2/mark_cleared", f.markCleared)
	f.server = httptest.NewServer(r)
	t.Cleanup(func() {
		f.Release()
		f.server.Close()
	})
	return f
}

// URL is the API root to hand to the client.
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// Client returns an HTTP client bound to the server.
func (f *FakeAPI) Client() *http.Client {
	return f.server.Client()
}

// SetLevel configures the reply for a game's random_level endpoint.
func (f *FakeAPI) SetLevel(game string, status int, body string) {
	f.mu.Lock()
	f.levels[game] = Response{Status: status, Body: body}
	f.mu.Unlock()
}

// SetLevelJSON serves v as a 200 JSON body for game.
func (f *FakeAPI) SetLevelJSON(t *testing.T, game string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encode level: %v", err)
	}
	f.SetLevel(game, http.StatusOK, string(data))
}

// SetMarkCleared configures the reply for mark_cleared.
func (f *FakeAPI) SetMarkCleared(status int, body string) {
	f.mu.Lock()
	f.mark = Response{Status: status, Body: body}
	f.mu.Unlock()
}

// Hold makes random_level handlers block until Release is called.
func (f *FakeAPI) Hold() {
	f.mu.Lock()
	if f.gate == nil {
		f.gate = make(chan struct{})
	}
	f.mu.Unlock()
}

// Release unblocks held handlers.
func (f *FakeAPI) Release() {
	f.mu.Lock()
	if f.gate != nil {
		close(f.gate)
		f.gate = nil
	}
	f.mu.Unlock()
}

// Arrivals yields the raw query of each random_level request as it reaches
// the handler, before any hold.
func (f *FakeAPI) Arrivals() <-chan string {
	return f.arrivals
}

// Requests returns a copy of every recorded request.
func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Count returns how many requests hit path.
func (f *FakeAPI) Count(path string) int {
	n := 0
	for _, r := range f.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeAPI) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(body),
	})
	f.mu.Unlock()
}

func (f *FakeAPI) randomLevel(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	select {
	case f.arrivals <- r.URL.RawQuery:
	default:
	}
	f.mu.Lock()
	gate := f.gate
	resp, ok := f.levels[chi.URLParam(r, "game")]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if !ok {
		resp = Response{Status: http.StatusNotFound, Body: "Not Found"}
	}
	write(w, resp)
}

func (f *FakeAPI) markCleared(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	f.mu.Lock()
	resp := f.mark
	f.mu.Unlock()
	write(w, resp)
}

func write(w http.ResponseWriter, resp Response) {
	if resp.Status == http.StatusOK {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.Status)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}
